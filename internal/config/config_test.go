package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MODEL_BACKEND", "")
	t.Setenv("PORT", "")

	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, BackendArtifact, cfg.Models.Backend)
	assert.Equal(t, "./models", cfg.Models.Dir)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, int64(10485760), cfg.Upload.MaxFileSize)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MODEL_BACKEND", "RULES")
	t.Setenv("QDRANT_TOP_K", "9")
	t.Setenv("AUDIT_ENABLED", "true")
	t.Setenv("RETRY_INITIAL_DELAY", "500ms")
	t.Setenv("WORKER_CONCURRENCY", "not-a-number")

	cfg := Load()

	assert.Equal(t, BackendRules, cfg.Models.Backend)
	assert.Equal(t, 9, cfg.Qdrant.TopK)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "500ms", cfg.Worker.RetryInitialDelay.String())
	assert.Equal(t, 3, cfg.Worker.Concurrency)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.Models.Backend = "pickle" },
			wantErr: true,
		},
		{
			name:    "zero concurrency",
			mutate:  func(c *Config) { c.Worker.Concurrency = 0 },
			wantErr: true,
		},
		{
			name:    "audit enabled without database name",
			mutate:  func(c *Config) { c.Database.Enabled = true; c.Database.DBName = "" },
			wantErr: true,
		},
		{
			name:    "non numeric port",
			mutate:  func(c *Config) { c.Server.Port = "http" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
