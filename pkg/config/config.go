package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	// ProviderBaseURL is the data service serving the five input
	// collections; SinkBaseURL receives generated classes. They usually
	// point at the same API.
	ProviderBaseURL string
	SinkBaseURL     string

	MinimumEnrollment int
	SolverBudget      time.Duration
	CoverageWeight    float64
	ScoreWeight       float64

	Log LogConfig
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", EnvDevelopment)
	v.SetDefault("PROVIDER_BASE_URL", "http://localhost:8000/api")
	v.SetDefault("SINK_BASE_URL", "http://localhost:8000/api")
	v.SetDefault("MINIMUM_ENROLLMENT", 25)
	v.SetDefault("SOLVER_BUDGET", "30s")
	v.SetDefault("COVERAGE_WEIGHT", 1.0)
	v.SetDefault("SCORE_WEIGHT", 1.0)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	cfg := &Config{
		Env:               v.GetString("APP_ENV"),
		ProviderBaseURL:   v.GetString("PROVIDER_BASE_URL"),
		SinkBaseURL:       v.GetString("SINK_BASE_URL"),
		MinimumEnrollment: v.GetInt("MINIMUM_ENROLLMENT"),
		SolverBudget:      v.GetDuration("SOLVER_BUDGET"),
		CoverageWeight:    v.GetFloat64("COVERAGE_WEIGHT"),
		ScoreWeight:       v.GetFloat64("SCORE_WEIGHT"),
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	if cfg.MinimumEnrollment < 0 {
		return nil, fmt.Errorf("MINIMUM_ENROLLMENT must be >= 0, got %d", cfg.MinimumEnrollment)
	}
	if cfg.SolverBudget < 0 {
		return nil, fmt.Errorf("SOLVER_BUDGET must be >= 0, got %v", cfg.SolverBudget)
	}
	return cfg, nil
}
