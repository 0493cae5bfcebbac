package config

import (
	"strconv"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// Runtime holds process settings read from the environment
type Runtime struct {
	RedisURL   string `env:"PROGRESSION_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	Store      string `env:"PROGRESSION_STORE" envDefault:"memory"`
	TuningPath string `env:"PROGRESSION_TUNING_PATH"`
	LogLevel   string `env:"PROGRESSION_LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"PROGRESSION_LOG_FORMAT" envDefault:"text"`
	Seed       uint64 `env:"PROGRESSION_SEED"`

	// AntiMacro overrides the tuning toggle when non-empty
	AntiMacro string `env:"PROGRESSION_ANTI_MACRO"`
}

// Store backends
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// LoadRuntime parses Runtime from PROGRESSION_* environment variables
func LoadRuntime() (*Runtime, error) {
	var cfg Runtime
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the runtime settings
func (r *Runtime) Validate() error {
	vb := errors.NewValidationBuilder()

	switch r.Store {
	case StoreMemory:
	case StoreRedis:
		errors.ValidateRequired("PROGRESSION_REDIS_URL", r.RedisURL, vb)
	default:
		vb.Fieldf("PROGRESSION_STORE", "must be %q or %q", StoreMemory, StoreRedis)
	}

	if r.AntiMacro != "" {
		if _, err := strconv.ParseBool(r.AntiMacro); err != nil {
			vb.Field("PROGRESSION_ANTI_MACRO", "must be a boolean")
		}
	}

	switch r.LogFormat {
	case "text", "json":
	default:
		vb.Field("PROGRESSION_LOG_FORMAT", "must be text or json")
	}

	return vb.Build()
}

// Apply folds runtime overrides into t
func (r *Runtime) Apply(t *Tuning) {
	if enabled, err := strconv.ParseBool(r.AntiMacro); err == nil {
		t.AntiMacro.Enabled = enabled
	}
}
