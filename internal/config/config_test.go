package config

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"

	"patientintake/internal/platform/logger"
)

type ConfigTestSuite struct {
	envSuite
}

func (s *ConfigTestSuite) TestLoadBase_DefaultValues() {
	cfg, err := LoadBase()

	s.Require().NoError(err)
	s.Assert().Equal(EnvDevelopment, cfg.Environment)
	s.Assert().Equal(logger.LevelInfo, cfg.Logger.Level)
	s.Assert().Equal(logger.FormatJSON, cfg.Logger.Format)
}

func (s *ConfigTestSuite) TestLoadBase_WithEnvironmentVariables() {
	s.T().Setenv("ENV", "production")
	s.T().Setenv("LOGGER_LEVEL", "warn")
	s.T().Setenv("LOGGER_FORMAT", "text")

	cfg, err := LoadBase()

	s.Require().NoError(err)
	s.Assert().Equal(EnvProduction, cfg.Environment)
	s.Assert().Equal(logger.LevelWarn, cfg.Logger.Level)
	s.Assert().Equal(logger.FormatText, cfg.Logger.Format)
}

func (s *ConfigTestSuite) TestLoadBase_Invalid() {
	tests := []struct {
		name    string
		envVars map[string]string
		errText string
	}{
		{"unknown environment", map[string]string{"ENV": "qa"}, "'Environment' failed on the 'oneof' tag"},
		{"bad log level", map[string]string{"LOGGER_LEVEL": "verbose"}, "invalid log level"},
		{"bad log format", map[string]string{"LOGGER_FORMAT": "xml"}, "invalid log format"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.setenv(tt.envVars)
			defer s.unsetenv(tt.envVars)

			cfg, err := LoadBase()

			s.Assert().Nil(cfg)
			s.Assert().ErrorContains(err, tt.errText)
		})
	}
}

func (s *ConfigTestSuite) TestEnvironmentCheckers() {
	tests := []struct {
		env                                   string
		development, production, staging, tst bool
	}{
		{"development", true, false, false, false},
		{"PRODUCTION", false, true, false, false},
		{"Staging", false, false, true, false},
		{"test", false, false, false, true},
		{"unknown", false, false, false, false},
	}

	for _, tt := range tests {
		s.Run(tt.env, func() {
			cfg := &BaseConfig{Environment: tt.env}
			s.Assert().Equal(tt.development, cfg.IsDevelopment())
			s.Assert().Equal(tt.production, cfg.IsProduction())
			s.Assert().Equal(tt.staging, cfg.IsStaging())
			s.Assert().Equal(tt.tst, cfg.IsTest())
		})
	}
}

func (s *ConfigTestSuite) TestLoadBase_EnvironmentCaseInsensitive() {
	s.T().Setenv("ENV", "Production")

	cfg, err := LoadBase()

	s.Require().NoError(err)
	s.Assert().Equal(EnvProduction, cfg.Environment)
}

func (s *ConfigTestSuite) TestLoadBase_ReportsValidationErrors() {
	s.T().Setenv("ENV", "qa")

	_, err := LoadBase()

	var validationErrs validator.ValidationErrors
	s.Require().ErrorAs(err, &validationErrs)
	s.Require().Len(validationErrs, 1)
	s.Assert().Equal("Environment", validationErrs[0].Field())
	s.Assert().Equal("oneof", validationErrs[0].Tag())
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, &ConfigTestSuite{envSuite{vars: baseEnvVars}})
}
