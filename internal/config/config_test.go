package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CorsAllowedOrigins)
	assert.Equal(t, 365, cfg.GA4.LookbackDays)
	assert.Equal(t, 60*time.Second, cfg.GA4.RequestTimeout())
	assert.Equal(t, 60*time.Second, cfg.Worker.HeartbeatInterval)
	assert.Equal(t, 6*time.Hour, cfg.Worker.SyncInterval)
	assert.Equal(t, 3, cfg.Worker.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.Worker.RetryDelay)
	assert.Equal(t, 5*time.Minute, cfg.Worker.JobTimeout())
	assert.False(t, cfg.Worker.Enabled)
	assert.True(t, cfg.Worker.SyncEnabled)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeoutDuration())
	assert.Equal(t, cfg.Database.URL, cfg.Database.DSN)
}

func TestNewConfig_Ambiente(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("GA4_LOOKBACK_DAYS", "0")
	t.Setenv("JOB_MAX_RETRIES", "0")
	t.Setenv("GA4_SYNC_INTERVAL", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://painel.example,http://localhost:3000")
	t.Setenv("DATABASE_URL", "user:pass@db:5432/metrics")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.GA4.LookbackDays)
	assert.Equal(t, 1, cfg.Worker.MaxRetries)
	assert.Equal(t, 30*time.Minute, cfg.Worker.SyncInterval)
	assert.Equal(t, []string{"https://painel.example", "http://localhost:3000"}, cfg.Server.CorsAllowedOrigins)
	assert.Equal(t, "postgres://user:pass@db:5432/metrics", cfg.Database.DSN)
}

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{name: "URL completa", url: "postgres://u:p@localhost:5432/db?sslmode=disable", expected: "postgres://u:p@localhost:5432/db?sslmode=disable"},
		{name: "Formato chave=valor", url: "host=localhost dbname=db", expected: "host=localhost dbname=db"},
		{name: "Sem esquema", url: "u:p@localhost:5432/db", expected: "postgres://u:p@localhost:5432/db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, buildDSN(tt.url))
		})
	}
}

func TestTimeoutsComValoresInvalidos(t *testing.T) {
	assert.Equal(t, 10*time.Second, Database{QueryTimeout: -1}.QueryTimeoutDuration())
	assert.Equal(t, 60*time.Second, GA4{}.RequestTimeout())
	assert.Equal(t, 5*time.Minute, Worker{}.JobTimeout())
	assert.Equal(t, 30*time.Second, Worker{TimeoutSeconds: 30}.JobTimeout())
}
