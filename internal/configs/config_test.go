package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv сбрасывает переменные, которые могли прийти из окружения разработчика
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_NAME", "PORT", "STORAGE_DRIVER", "DATABASE_URL", "RABBITMQ_ENABLED", "RABBITMQ_URL",
		"RABBITMQ_EXCHANGE", "FLUENTBIT_ENABLED", "FLUENTBIT_HOST", "FLUENTBIT_PORT", "FLUENTBIT_LOG_LEVEL",
		"STDOUT_LOG_LEVEL", "CORS_ALLOWED_ORIGINS", "PAGE_SIZE", "SUBMIT_TIMEOUT", "SEED_MOCK_DATA",
		"DRAFT_TTL",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "listing-service", cfg.AppName)
	assert.Equal(t, "8080", cfg.Rest.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Rest.CORSAllowedOrigins)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.True(t, cfg.Storage.SeedMockData)
	assert.False(t, cfg.RabbitMQ.Enabled)
	assert.Equal(t, 12, cfg.Listing.PageSize)
	assert.Equal(t, 5*time.Second, cfg.Listing.SubmitTimeout)
	assert.Equal(t, 24*time.Hour, cfg.Listing.DraftTTL)
	assert.Equal(t, "debug", cfg.StdoutLogger.Level)
}

func TestLoadConfig_FromEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9090\nSTORAGE_DRIVER=Postgres\nDATABASE_URL=postgres://u:p@localhost/db\n" +
		"CORS_ALLOWED_ORIGINS=http://a.test,http://b.test\nSUBMIT_TIMEOUT=750ms\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Rest.Port)
	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Rest.CORSAllowedOrigins)
	assert.Equal(t, 750*time.Millisecond, cfg.Listing.SubmitTimeout)
}

func TestLoadConfig_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"postgres without url", map[string]string{"STORAGE_DRIVER": "postgres"}},
		{"unknown driver", map[string]string{"STORAGE_DRIVER": "mongo"}},
		{"rabbit without url", map[string]string{"RABBITMQ_ENABLED": "true"}},
		{"zero page size", map[string]string{"PAGE_SIZE": "0"}},
		{"bad timeout", map[string]string{"SUBMIT_TIMEOUT": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(missingEnvFile(t))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_FluentWithoutHostIsDisabled(t *testing.T) {
	clearEnv(t)
	t.Setenv("FLUENTBIT_ENABLED", "true")

	cfg, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)
	assert.False(t, cfg.FluentBit.Enabled)
}
