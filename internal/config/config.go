package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"

	"patientintake/internal/platform/logger"
)

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
	EnvTest        = "test"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type BaseConfig struct {
	Environment string       `envconfig:"ENV" default:"development" validate:"oneof=development staging production test"`
	Logger      LoggerConfig `envconfig:"LOGGER"`
}

type LoggerConfig struct {
	Level  logger.Level  `envconfig:"LEVEL" default:"info"`
	Format logger.Format `envconfig:"FORMAT" default:"json"`
}

func LoadBase() (*BaseConfig, error) {
	var cfg BaseConfig
	if err := load(&cfg, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// normalizer is implemented by configs holding case-insensitive enums.
type normalizer interface {
	normalize()
}

// load fills target from the environment and checks its validate tags.
// Environment names are matched case-insensitively.
func load(target interface{}, base *BaseConfig) error {
	if err := envconfig.Process("", target); err != nil {
		return err
	}

	base.Environment = strings.ToLower(base.Environment)
	if n, ok := target.(normalizer); ok {
		n.normalize()
	}

	if err := validate.Struct(target); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (c *BaseConfig) IsDevelopment() bool {
	return strings.ToLower(c.Environment) == EnvDevelopment
}

func (c *BaseConfig) IsProduction() bool {
	return strings.ToLower(c.Environment) == EnvProduction
}

func (c *BaseConfig) IsStaging() bool {
	return strings.ToLower(c.Environment) == EnvStaging
}

func (c *BaseConfig) IsTest() bool {
	return strings.ToLower(c.Environment) == EnvTest
}
