package config

import (
	"fmt"
	"net/url"
	"time"
)

type DatabaseConfig struct {
	BaseConfig
	Postgres PostgresConfig `envconfig:"POSTGRES"`
}

type PostgresConfig struct {
	Host            string        `envconfig:"HOST" default:"localhost"`
	Port            int           `envconfig:"PORT" default:"5432"`
	User            string        `envconfig:"USER" default:"postgres"`
	Password        string        `envconfig:"PASSWORD" default:""`
	Database        string        `envconfig:"DB" default:"intake"`
	SSLMode         string        `envconfig:"SSL_MODE" default:"disable"`
	ConnectTimeout  time.Duration `envconfig:"CONNECT_TIMEOUT" default:"5s"`
	ConnectAttempts int           `envconfig:"CONNECT_ATTEMPTS" default:"5" validate:"min=1"`
	ConnectBackoff  time.Duration `envconfig:"CONNECT_BACKOFF" default:"500ms"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"2" validate:"ltefield=MaxOpenConns"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"30m"`
	ConnMaxIdleTime time.Duration `envconfig:"CONN_MAX_IDLE_TIME" default:"5m"`
}

// DSN renders a postgres:// URL so credentials with spaces or quotes
// survive without manual escaping.
func (c *PostgresConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   "/" + c.Database,
	}

	q := url.Values{}
	q.Set("sslmode", c.SSLMode)
	if seconds := int(c.ConnectTimeout / time.Second); seconds > 0 {
		q.Set("connect_timeout", fmt.Sprint(seconds))
	}
	u.RawQuery = q.Encode()

	return u.String()
}

func (c *PostgresConfig) GetMaxOpenConns() int {
	return c.MaxOpenConns
}

func (c *PostgresConfig) GetMaxIdleConns() int {
	return c.MaxIdleConns
}

func (c *PostgresConfig) GetConnMaxLifetime() time.Duration {
	return c.ConnMaxLifetime
}

func (c *PostgresConfig) GetConnMaxIdleTime() time.Duration {
	return c.ConnMaxIdleTime
}

func (c *PostgresConfig) GetConnectTimeout() time.Duration {
	return c.ConnectTimeout
}

func LoadDatabase() (*DatabaseConfig, error) {
	var cfg DatabaseConfig
	if err := load(&cfg, &cfg.BaseConfig); err != nil {
		return nil, err
	}
	return &cfg, nil
}
