package resolver_test

import (
	"testing"

	"github.com/egz13/logprobe/internal/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envLookup(env map[string]string) resolver.Option {
	return resolver.WithEnvLookup(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
}

func TestResolve(t *testing.T) {
	testCases := []struct {
		name       string
		explicit   string
		envValue   string
		fileValue  string
		fallback   string
		wantValue  string
		wantSource resolver.Source
	}{
		{
			name:     "argument beats everything",
			explicit: "/tmp/arg.log", envValue: "/tmp/env.log", fileValue: "/tmp/cfg.log", fallback: "/tmp/def.log",
			wantValue: "/tmp/arg.log", wantSource: resolver.SourceArgument,
		},
		{
			name:     "environment beats config and default",
			envValue: "/tmp/env.log", fileValue: "/tmp/cfg.log", fallback: "/tmp/def.log",
			wantValue: "/tmp/env.log", wantSource: resolver.SourceEnvironment,
		},
		{
			name:      "config beats default",
			fileValue: "/tmp/cfg.log", fallback: "/tmp/def.log",
			wantValue: "/tmp/cfg.log", wantSource: resolver.SourceConfig,
		},
		{
			name:     "default is the last resort",
			fallback: "/tmp/def.log",
			wantValue: "/tmp/def.log", wantSource: resolver.SourceDefault,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := resolver.Resolve(tc.explicit, tc.envValue, tc.fileValue, tc.fallback)
			assert.Equal(t, resolver.Resolved{Value: tc.wantValue, Source: tc.wantSource}, got)
		})
	}
}

func TestResolver_LogPath(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      resolver.FileConfig
		env      map[string]string
		kind     resolver.Kind
		explicit string
		want     resolver.Resolved
		wantErr  error
	}{
		{
			name:     "explicit argument wins",
			cfg:      resolver.FileConfig{ErrorPath: "/cfg/error.log"},
			env:      map[string]string{"ERROR_LOG_PATH": "/env/error.log"},
			kind:     resolver.KindError,
			explicit: "/arg/error.log",
			want:     resolver.Resolved{Value: "/arg/error.log", Source: resolver.SourceArgument},
		},
		{
			name: "per kind environment variable",
			cfg:  resolver.FileConfig{WarnPath: "/cfg/warn.log"},
			env:  map[string]string{"WARN_LOG_PATH": "/env/warn.log"},
			kind: resolver.KindWarn,
			want: resolver.Resolved{Value: "/env/warn.log", Source: resolver.SourceEnvironment},
		},
		{
			name: "config file path",
			cfg:  resolver.FileConfig{AllPath: "/cfg/all.log"},
			kind: resolver.KindAll,
			want: resolver.Resolved{Value: "/cfg/all.log", Source: resolver.SourceConfig},
		},
		{
			name: "derived default from app name",
			cfg:  resolver.FileConfig{AppName: "billing-service"},
			kind: resolver.KindError,
			want: resolver.Resolved{Value: "/data/logs/billing-service/log_error.log", Source: resolver.SourceDefault},
		},
		{
			name: "derived default honors LOG_DIR",
			cfg:  resolver.FileConfig{AppName: "billing-service"},
			env:  map[string]string{"LOG_DIR": "/var/log/apps"},
			kind: resolver.KindWarn,
			want: resolver.Resolved{Value: "/var/log/apps/billing-service/log_warn.log", Source: resolver.SourceDefault},
		},
		{
			name:    "no source at all",
			cfg:     resolver.FileConfig{},
			kind:    resolver.KindAll,
			wantErr: resolver.ErrUnresolved,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := resolver.New(tc.cfg, envLookup(tc.env))
			got, err := r.LogPath(tc.kind, tc.explicit)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolver_AppName(t *testing.T) {
	t.Run("APP_NAME beats spring name", func(t *testing.T) {
		r := resolver.New(resolver.FileConfig{AppName: "from-config"}, envLookup(map[string]string{
			"APP_NAME":                "primary",
			"SPRING_APPLICATION_NAME": "secondary",
		}))
		got, err := r.AppName()
		require.NoError(t, err)
		assert.Equal(t, resolver.Resolved{Value: "primary", Source: resolver.SourceEnvironment}, got)
	})

	t.Run("spring name as environment fallback", func(t *testing.T) {
		r := resolver.New(resolver.FileConfig{}, envLookup(map[string]string{
			"SPRING_APPLICATION_NAME": "billing-service",
		}))
		got, err := r.AppName()
		require.NoError(t, err)
		assert.Equal(t, resolver.Resolved{Value: "billing-service", Source: resolver.SourceEnvironment}, got)
	})

	t.Run("config value", func(t *testing.T) {
		r := resolver.New(resolver.FileConfig{AppName: "from-config"}, envLookup(nil))
		got, err := r.AppName()
		require.NoError(t, err)
		assert.Equal(t, resolver.Resolved{Value: "from-config", Source: resolver.SourceConfig}, got)
	})

	t.Run("unresolvable", func(t *testing.T) {
		r := resolver.New(resolver.FileConfig{}, envLookup(nil))
		_, err := r.AppName()
		assert.ErrorIs(t, err, resolver.ErrUnresolved)
	})
}

func TestResolver_AppPackage(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     resolver.FileConfig
		env     map[string]string
		want    resolver.Resolved
		wantErr error
	}{
		{
			name: "environment value wins",
			cfg:  resolver.FileConfig{AppPackage: "com.cfg.pkg"},
			env:  map[string]string{"APP_PACKAGE": "com.env.pkg"},
			want: resolver.Resolved{Value: "com.env.pkg", Source: resolver.SourceEnvironment},
		},
		{
			name: "config value",
			cfg:  resolver.FileConfig{AppPackage: "com.cfg.pkg"},
			want: resolver.Resolved{Value: "com.cfg.pkg", Source: resolver.SourceConfig},
		},
		{
			name: "inferred from app name with service suffix",
			cfg:  resolver.FileConfig{AppName: "cdc-major-disease-service"},
			want: resolver.Resolved{Value: "cdc.major.disease", Source: resolver.SourceDefault},
		},
		{
			name: "inferred from underscored name with api suffix",
			cfg:  resolver.FileConfig{AppName: "order_tracking_api"},
			want: resolver.Resolved{Value: "order.tracking", Source: resolver.SourceDefault},
		},
		{
			name:    "inference without dots fails",
			cfg:     resolver.FileConfig{AppName: "billing-service"},
			wantErr: resolver.ErrUnresolved,
		},
		{
			name:    "no app name either",
			cfg:     resolver.FileConfig{},
			wantErr: resolver.ErrUnresolved,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := resolver.New(tc.cfg, envLookup(tc.env))
			got, err := r.AppPackage()

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
