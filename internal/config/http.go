package config

import (
	"fmt"
	"time"
)

type HttpConfig struct {
	BaseConfig
	Server    HttpServerConfig `envconfig:"HTTP_SERVER"`
	RateLimit RateLimitConfig  `envconfig:"RATE_LIMIT"`
	CORS      CORSConfig       `envconfig:"CORS"`
}

type HttpServerConfig struct {
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"PORT" default:"8080" validate:"min=0,max=65535"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"30s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `envconfig:"IDLE_TIMEOUT" default:"120s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
	// MaxBodyBytes caps JSON and form bodies; intake payloads are small.
	MaxBodyBytes int64 `envconfig:"MAX_BODY_BYTES" default:"65536" validate:"gt=0"`
}

func (c HttpServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type RateLimitConfig struct {
	GlobalRequests int           `envconfig:"GLOBAL_REQUESTS" default:"1000" validate:"min=1"`
	GlobalWindow   time.Duration `envconfig:"GLOBAL_WINDOW" default:"1m"`
	RequestsPerIP  int           `envconfig:"REQUESTS_PER_IP" default:"100" validate:"min=1"`
	WindowPerIP    time.Duration `envconfig:"WINDOW_PER_IP" default:"1m"`
}

type CORSConfig struct {
	AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,POST,PUT,PATCH,OPTIONS"`
	AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"Accept,Content-Type,X-CSRF-Token,X-Request-Id"`
	ExposedHeaders   []string `envconfig:"EXPOSED_HEADERS" default:"Location"`
	AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS" default:"false"`
	MaxAge           int      `envconfig:"MAX_AGE" default:"86400"`
}

func LoadHttp() (*HttpConfig, error) {
	var cfg HttpConfig
	if err := load(&cfg, &cfg.BaseConfig); err != nil {
		return nil, err
	}
	return &cfg, nil
}
