// Package resolver chooses effective configuration values for an analysis
// call. Precedence is always explicit argument > environment > config file >
// derived default, and every resolved value reports which of the four sources
// supplied it.
package resolver

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

type Source string

const (
	SourceArgument    Source = "argument"
	SourceEnvironment Source = "environment"
	SourceConfig      Source = "config"
	SourceDefault     Source = "default"
)

// Kind selects which log file of the application a call targets.
type Kind string

const (
	KindError Kind = "error"
	KindWarn  Kind = "warn"
	KindAll   Kind = "all"
)

func (k Kind) Valid() bool {
	switch k {
	case KindError, KindWarn, KindAll:
		return true
	}
	return false
}

// ErrUnresolved marks a required value no source could supply.
var ErrUnresolved = errors.New("value unresolved")

// Resolved is a chosen value together with the source that supplied it.
type Resolved struct {
	Value  string
	Source Source
}

// Resolve is the pure precedence function: the first non-empty candidate in
// precedence order wins.
func Resolve(explicit, envValue, fileValue, fallback string) Resolved {
	switch {
	case explicit != "":
		return Resolved{Value: explicit, Source: SourceArgument}
	case envValue != "":
		return Resolved{Value: envValue, Source: SourceEnvironment}
	case fileValue != "":
		return Resolved{Value: fileValue, Source: SourceConfig}
	default:
		return Resolved{Value: fallback, Source: SourceDefault}
	}
}

// FileConfig holds the config-file layer of the precedence chain.
type FileConfig struct {
	LogDir     string
	AppName    string
	AppPackage string
	ErrorPath  string
	WarnPath   string
	AllPath    string
}

type Resolver struct {
	cfg       FileConfig
	lookupEnv func(string) (string, bool)
}

type Option func(*Resolver)

// WithEnvLookup replaces the environment snapshot, used by tests.
func WithEnvLookup(lookup func(string) (string, bool)) Option {
	return func(r *Resolver) {
		r.lookupEnv = lookup
	}
}

func New(cfg FileConfig, opts ...Option) *Resolver {
	r := &Resolver{
		cfg:       cfg,
		lookupEnv: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

const defaultLogDir = "/data/logs"

var pathEnvVars = map[Kind]string{
	KindError: "ERROR_LOG_PATH",
	KindWarn:  "WARN_LOG_PATH",
	KindAll:   "ALL_LOG_PATH",
}

var defaultFileNames = map[Kind]string{
	KindError: "log_error.log",
	KindWarn:  "log_warn.log",
	KindAll:   "all.log",
}

func (r *Resolver) env(key string) string {
	v, _ := r.lookupEnv(key)
	return v
}

// LogPath resolves the log file path for a level kind. The derived default is
// <log_dir>/<app_name>/<file>, which needs a resolvable application name.
func (r *Resolver) LogPath(kind Kind, explicit string) (Resolved, error) {
	filePath := ""
	switch kind {
	case KindError:
		filePath = r.cfg.ErrorPath
	case KindWarn:
		filePath = r.cfg.WarnPath
	case KindAll:
		filePath = r.cfg.AllPath
	}

	fallback := ""
	if app, err := r.AppName(); err == nil {
		dir := Resolve("", r.env("LOG_DIR"), r.cfg.LogDir, defaultLogDir)
		fallback = filepath.Join(dir.Value, app.Value, defaultFileNames[kind])
	}

	res := Resolve(explicit, r.env(pathEnvVars[kind]), filePath, fallback)
	if res.Value == "" {
		return Resolved{}, ErrUnresolved
	}
	return res, nil
}

// AppName resolves the analyzed application's name.
func (r *Resolver) AppName() (Resolved, error) {
	envName := r.env("APP_NAME")
	if envName == "" {
		envName = r.env("SPRING_APPLICATION_NAME")
	}

	res := Resolve("", envName, r.cfg.AppName, "")
	if res.Value == "" {
		return Resolved{}, ErrUnresolved
	}
	return res, nil
}

var appNameSuffixRe = regexp.MustCompile(`(?i)[-_](service|api|app|web|core)$`)

// AppPackage resolves the dotted package prefix owning the application's
// frames. Without an explicit value it is inferred from the application name
// ("cdc-major-disease-service" becomes "cdc.major.disease"); the inference
// only counts when it produces a dotted name.
func (r *Resolver) AppPackage() (Resolved, error) {
	res := Resolve("", r.env("APP_PACKAGE"), r.cfg.AppPackage, "")
	if res.Value != "" {
		return res, nil
	}

	app, err := r.AppName()
	if err != nil {
		return Resolved{}, ErrUnresolved
	}

	trimmed := appNameSuffixRe.ReplaceAllString(app.Value, "")
	inferred := strings.NewReplacer("-", ".", "_", ".").Replace(trimmed)
	if !strings.Contains(inferred, ".") {
		return Resolved{}, ErrUnresolved
	}

	return Resolved{Value: inferred, Source: SourceDefault}, nil
}
