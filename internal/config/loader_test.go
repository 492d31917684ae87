package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	t.Setenv("APP_ENVIRONMENT", "sandbox")
	t.Setenv("APP_SERVICE_NAME", "svc-monitoring-test")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("POSTGRES_HOST", "localhost")
	t.Setenv("POSTGRES_SEED_SAMPLE_DATA", "false")

	cfg, err := Init()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "sandbox", cfg.App.Env.Name)
	assert.Equal(t, "svc-monitoring-test", cfg.App.ServiceName)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.False(t, cfg.Database.SeedSampleData)
}

func TestInit_DefaultValues(t *testing.T) {
	cfg, err := Init()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	// App defaults
	assert.Equal(t, "svc-monitoring", cfg.App.ServiceName)
	assert.Equal(t, "development", cfg.App.Env.Name)

	// HTTPServer defaults
	assert.Equal(t, "0.0.0.0", cfg.HTTPServer.Host)
	assert.Equal(t, uint(8080), cfg.HTTPServer.Port)
	assert.Equal(t, 30*time.Second, cfg.HTTPServer.WriteTimeout)

	// Database defaults
	assert.Equal(t, "postgres", cfg.Database.Host)
	assert.Equal(t, uint(5432), cfg.Database.Port)
	assert.Equal(t, "monitoring", cfg.Database.Database)
	assert.Equal(t, 25, cfg.Database.MaxConnections)
	assert.True(t, cfg.Database.SeedSampleData)

	// Logging defaults
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Logging.AccessLog.Enabled)
	assert.False(t, cfg.Logging.AccessLog.LogHealthChecks)

	// Telemetry defaults
	assert.False(t, cfg.Telemetry.Enabled)
}

func TestGetEnvironment(t *testing.T) {
	cases := []struct {
		name     string
		env      string
		expected int
	}{
		{
			name:     "production",
			env:      "production",
			expected: Production,
		},
		{
			name:     "prod shorthand",
			env:      "prod",
			expected: Production,
		},
		{
			name:     "staging",
			env:      "staging",
			expected: Staging,
		},
		{
			name:     "sandbox",
			env:      "sandbox",
			expected: Sandbox,
		},
		{
			name:     "unknown defaults to development",
			env:      "unknown",
			expected: Development,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &ServiceConfig{
				App: App{Env: Environment{Name: tc.env}},
			}

			assert.Equal(t, tc.expected, cfg.GetEnvironment())
		})
	}
}

func TestIsProduction(t *testing.T) {
	cfg := &ServiceConfig{App: App{Env: Environment{Name: "production"}}}
	assert.True(t, cfg.IsProduction())

	cfg.App.Env.Name = "development"
	assert.False(t, cfg.IsProduction())
}
