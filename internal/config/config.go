package config

import (
	"os"

	errorsUtils "github.com/egz13/logprobe/pkg/errors"

	"github.com/ilyakaznacheev/cleanenv"
	log "github.com/sirupsen/logrus"

	"github.com/joho/godotenv"
)

type (
	Config struct {
		App        `yaml:"app"`
		Log        `yaml:"log"`
		HTTP       `yaml:"http"`
		Prometheus `yaml:"prometheus"`
		Target     `yaml:"target"`
		Analyzer   `yaml:"analyzer"`
		Broker     `yaml:"broker"`
	}

	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version" env-required:"true"`
	}

	Log struct {
		Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	}

	HTTP struct {
		Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	}

	Prometheus struct {
		Port string `yaml:"port" env:"PROMETHEUS_PORT" env-default:"9090"`
	}

	// Target describes the analyzed application's logs. The path and name
	// fields deliberately carry no env tags: environment overrides for them
	// go through the resolver so the precedence source stays reportable per
	// field.
	Target struct {
		AppName    string `yaml:"app_name"`
		AppPackage string `yaml:"app_package"`
		LogDir     string `yaml:"log_dir"`
		ErrorPath  string `yaml:"error_path"`
		WarnPath   string `yaml:"warn_path"`
		AllPath    string `yaml:"all_path"`
	}

	Analyzer struct {
		MaxBlockLines       int  `yaml:"max_block_lines" env-default:"200"`
		MaxCauseDepth       int  `yaml:"max_cause_depth" env-default:"10"`
		ContextLines        int  `yaml:"context_lines" env-default:"2"`
		MaxDefects          int  `yaml:"max_defects" env-default:"50"`
		MaxMatches          int  `yaml:"max_matches" env-default:"30"`
		SearchMaxLines      int  `yaml:"search_max_lines" env-default:"1000"`
		KeepThrowSite       bool `yaml:"keep_throw_site" env:"KEEP_THROW_SITE"`
		CaseSensitiveSearch bool `yaml:"case_sensitive_search"`
	}

	Broker struct {
		Enabled bool     `yaml:"enabled" env:"BROKER_ENABLED"`
		Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS"`
		Topic   string   `yaml:"topic" env-default:"defect-alerts"`
	}
)

const envPath = ".env"

func New() (*Config, error) {
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		log.Warnf("Error loading .env file: %v", err)
	}

	cfg := &Config{}

	pathToConfig, ok := os.LookupEnv("APP_CONFIG_PATH")
	if !ok || pathToConfig == "" {
		log.WithField("env_var", "APP_CONFIG_PATH").
			Info("Config path is not set, using default")
		pathToConfig = "config/config.yaml"
	}

	if err := cleanenv.ReadConfig(pathToConfig, cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if err := cleanenv.UpdateEnv(cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return cfg, nil
}
