package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "http://localhost:8000/api", cfg.ProviderBaseURL)
	assert.Equal(t, "http://localhost:8000/api", cfg.SinkBaseURL)
	assert.Equal(t, 25, cfg.MinimumEnrollment)
	assert.Equal(t, 30*time.Second, cfg.SolverBudget)
	assert.Equal(t, 1.0, cfg.CoverageWeight)
	assert.Equal(t, 1.0, cfg.ScoreWeight)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ENV", EnvProduction)
	t.Setenv("PROVIDER_BASE_URL", "https://data.example.edu/api")
	t.Setenv("MINIMUM_ENROLLMENT", "12")
	t.Setenv("SOLVER_BUDGET", "2m")
	t.Setenv("SCORE_WEIGHT", "0.5")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.Env)
	assert.Equal(t, "https://data.example.edu/api", cfg.ProviderBaseURL)
	assert.Equal(t, 12, cfg.MinimumEnrollment)
	assert.Equal(t, 2*time.Minute, cfg.SolverBudget)
	assert.Equal(t, 0.5, cfg.ScoreWeight)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadRejectsNegativeValues(t *testing.T) {
	t.Setenv("MINIMUM_ENROLLMENT", "-1")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MINIMUM_ENROLLMENT")
}

func TestLoadRejectsNegativeBudget(t *testing.T) {
	t.Setenv("SOLVER_BUDGET", "-5s")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SOLVER_BUDGET")
}
