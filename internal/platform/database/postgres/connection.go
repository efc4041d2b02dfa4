package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

const defaultPingTimeout = 5 * time.Second

type Config interface {
	DSN() string
	GetMaxOpenConns() int
	GetMaxIdleConns() int
	GetConnMaxLifetime() time.Duration
	GetConnMaxIdleTime() time.Duration
	GetConnectTimeout() time.Duration
}

// DB is a pooled connection to the intake submissions database.
type DB struct {
	*sql.DB
	pingTimeout time.Duration
}

// Opener creates a pool from configuration. Lifecycle takes one so tests
// can substitute a mocked pool.
type Opener func(cfg Config) (*DB, error)

func New(cfg Config) (*DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}

	db.SetMaxOpenConns(cfg.GetMaxOpenConns())
	db.SetMaxIdleConns(cfg.GetMaxIdleConns())
	db.SetConnMaxLifetime(cfg.GetConnMaxLifetime())
	db.SetConnMaxIdleTime(cfg.GetConnMaxIdleTime())

	return Wrap(db, cfg.GetConnectTimeout()), nil
}

// Wrap adopts an already opened pool. A non-positive timeout falls back to
// the default ping timeout.
func Wrap(db *sql.DB, pingTimeout time.Duration) *DB {
	if pingTimeout <= 0 {
		pingTimeout = defaultPingTimeout
	}
	return &DB{DB: db, pingTimeout: pingTimeout}
}

func (db *DB) Ping(ctx context.Context) error {
	timeout := db.pingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return db.DB.PingContext(ctx)
}

// InTx runs fn inside a transaction, committing on success and rolling back
// on error or panic.
func (db *DB) InTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
