package config

import (
	"strings"
	"time"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type IntakeConfig struct {
	BaseConfig
	Intake IntakeSettings `envconfig:"INTAKE"`
}

type IntakeSettings struct {
	Storage              string        `envconfig:"STORAGE" default:"memory" validate:"oneof=memory postgres"`
	MaxSymptoms          int           `envconfig:"MAX_SYMPTOMS" default:"20" validate:"min=1"`
	SymptomSearchLimit   int           `envconfig:"SYMPTOM_SEARCH_LIMIT" default:"10" validate:"min=1"`
	SessionTTL           time.Duration `envconfig:"SESSION_TTL" default:"2h"`
	SessionSweepInterval time.Duration `envconfig:"SESSION_SWEEP_INTERVAL" default:"5m"`

	// DiagnosisHealthURL, when set, adds the diagnosis backend to readiness.
	DiagnosisHealthURL     string        `envconfig:"DIAGNOSIS_HEALTH_URL" validate:"omitempty,url"`
	DiagnosisHealthTimeout time.Duration `envconfig:"DIAGNOSIS_HEALTH_TIMEOUT" default:"5s"`
}

func (s IntakeSettings) UsesPostgres() bool {
	return strings.ToLower(s.Storage) == StoragePostgres
}

func (c *IntakeConfig) normalize() {
	c.Intake.Storage = strings.ToLower(c.Intake.Storage)
}

func LoadIntake() (*IntakeConfig, error) {
	var cfg IntakeConfig
	if err := load(&cfg, &cfg.BaseConfig); err != nil {
		return nil, err
	}
	return &cfg, nil
}
