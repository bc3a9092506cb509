package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("PGSQL_URL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "America/Edmonton", cfg.ReportingLocation.String())
	assert.Equal(t, "300-M", cfg.RateLimit)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Empty(t, cfg.CORSAllowedOrigins)
	assert.Equal(t, int32(10), cfg.DBMaxConns)
	assert.Equal(t, 5*time.Second, cfg.DBLockTimeout)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Postgres")
	t.Setenv("PGSQL_URL", "postgres://ledger@localhost/ledger")
	t.Setenv("REPORTING_TIMEZONE", "America/Toronto")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("RATE_LIMIT", "10-S")
	t.Setenv("DB_MAX_CONNS", "4")
	t.Setenv("DB_LOCK_TIMEOUT", "750ms")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StoragePostgres, cfg.StorageDriver)
	assert.Equal(t, "America/Toronto", cfg.ReportingLocation.String())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "10-S", cfg.RateLimit)
	assert.Equal(t, int32(4), cfg.DBMaxConns)
	assert.Equal(t, 750*time.Millisecond, cfg.DBLockTimeout)
}

func TestLoadConfig_Rejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"postgres without url", map[string]string{"STORAGE_DRIVER": "postgres", "PGSQL_URL": ""}},
		{"unknown driver", map[string]string{"STORAGE_DRIVER": "sqlite"}},
		{"bad timezone", map[string]string{"STORAGE_DRIVER": "memory", "REPORTING_TIMEZONE": "Mars/Olympus"}},
		{"bad rate", map[string]string{"STORAGE_DRIVER": "memory", "RATE_LIMIT": "lots"}},
		{"negative lock timeout", map[string]string{"STORAGE_DRIVER": "memory", "DB_LOCK_TIMEOUT": "-1s"}},
		{"default secret in production", map[string]string{"STORAGE_DRIVER": "memory", "IS_PRODUCTION": "true", "JWT_SECRET": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
