package config

import (
	"os"

	"github.com/stretchr/testify/suite"
)

// envSuite clears the listed variables before each test and restores
// them afterwards.
type envSuite struct {
	suite.Suite
	vars     []string
	original map[string]string
}

func (s *envSuite) SetupTest() {
	s.original = make(map[string]string)
	for _, env := range s.vars {
		if val, exists := os.LookupEnv(env); exists {
			s.original[env] = val
		}
		s.Require().NoError(os.Unsetenv(env))
	}
}

func (s *envSuite) TearDownTest() {
	for _, env := range s.vars {
		s.Require().NoError(os.Unsetenv(env))
	}
	for env, val := range s.original {
		s.Require().NoError(os.Setenv(env, val))
	}
}

func (s *envSuite) setenv(values map[string]string) {
	for key, value := range values {
		s.Require().NoError(os.Setenv(key, value))
	}
}

func (s *envSuite) unsetenv(values map[string]string) {
	for key := range values {
		s.Require().NoError(os.Unsetenv(key))
	}
}

var baseEnvVars = []string{"ENV", "LOGGER_LEVEL", "LOGGER_FORMAT"}
