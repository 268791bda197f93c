package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/fingold")
	t.Setenv("TIMEZONE", "UTC")
	for _, key := range []string{"PORT", "S3_BUCKET", "EXPORT_RATE_LIMIT", "EXPORT_URL_TTL", "CHART_CACHE_SIZE", "CHART_WARM_INTERVAL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, 20, cfg.ExportRateLimit)
	assert.Equal(t, 15*time.Minute, cfg.ExportURLTTL)
	assert.Equal(t, int64(32<<20), cfg.ChartCacheSize)
	assert.Equal(t, 10*time.Minute, cfg.ChartWarmInterval)
	assert.False(t, cfg.S3.Enabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/fingold")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("TIMEZONE", "Asia/Kolkata")
	t.Setenv("EXPORT_RATE_LIMIT", "5")
	t.Setenv("EXPORT_URL_TTL", "1h")
	t.Setenv("S3_BUCKET", "reports")
	t.Setenv("CHART_WARM_INTERVAL", "0s")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, "Asia/Kolkata", cfg.Location.String())
	assert.Equal(t, 5, cfg.ExportRateLimit)
	assert.Equal(t, time.Hour, cfg.ExportURLTTL)
	assert.True(t, cfg.S3.Enabled())
	assert.Zero(t, cfg.ChartWarmInterval)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing database url", map[string]string{"DATABASE_URL": ""}},
		{"bad timezone", map[string]string{"TIMEZONE": "Mars/Olympus"}},
		{"bad rate limit", map[string]string{"EXPORT_RATE_LIMIT": "lots"}},
		{"zero rate limit", map[string]string{"EXPORT_RATE_LIMIT": "0"}},
		{"bad ttl", map[string]string{"EXPORT_URL_TTL": "soon"}},
		{"ttl too long", map[string]string{"EXPORT_URL_TTL": "200h"}},
		{"bad warm interval", map[string]string{"CHART_WARM_INTERVAL": "often"}},
		{"negative warm interval", map[string]string{"CHART_WARM_INTERVAL": "-1m"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "postgres://localhost/fingold")
			t.Setenv("TIMEZONE", "UTC")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
