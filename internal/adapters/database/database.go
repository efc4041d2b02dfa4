package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"patientintake/internal/config"
	"patientintake/internal/platform/database/postgres"
	"patientintake/internal/platform/logger"
)

// Lifecycle owns the submissions pool across fx start and stop.
type Lifecycle struct {
	cfg    *config.DatabaseConfig
	logger logger.Logger
	open   postgres.Opener

	mu sync.Mutex
	db *postgres.DB
}

func NewDatabaseLifecycle(cfg *config.DatabaseConfig, log logger.Logger) *Lifecycle {
	return newLifecycle(cfg, log, postgres.New)
}

func newLifecycle(cfg *config.DatabaseConfig, log logger.Logger, open postgres.Opener) *Lifecycle {
	return &Lifecycle{
		cfg:    cfg,
		logger: log,
		open:   open,
	}
}

// Start opens the pool and pings it, retrying with linear backoff until
// the configured attempts run out or ctx ends. A previous pool is closed.
func (d *Lifecycle) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db != nil {
		d.logger.Warn("Replacing open submissions pool")
		if err := d.db.Close(); err != nil {
			d.logger.Error("Failed to close previous submissions pool", logger.Error(err))
		}
		d.db = nil
	}

	pg := &d.cfg.Postgres
	attempts := pg.ConnectAttempts
	if attempts < 1 {
		attempts = 1
	}

	log := d.logger.With(
		logger.String("host", pg.Host),
		logger.Int("port", pg.Port),
		logger.String("database", pg.Database),
	)

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := d.connect(ctx)
		if err == nil {
			d.db = db
			log.Info("Connected to submissions database", logger.Int("attempt", attempt))
			return nil
		}
		lastErr = err

		if attempt == attempts {
			break
		}
		wait := time.Duration(attempt) * pg.ConnectBackoff
		log.Warn("Submissions database not reachable, retrying",
			logger.Int("attempt", attempt),
			logger.Duration("retry_in", wait),
			logger.Error(err),
		)

		select {
		case <-ctx.Done():
			return fmt.Errorf("connect to postgres: %w", ctx.Err())
		case <-time.After(wait):
		}
	}

	log.Error("Giving up on submissions database", logger.Int("attempts", attempts), logger.Error(lastErr))
	return fmt.Errorf("connect to postgres after %d attempts: %w", attempts, lastErr)
}

func (d *Lifecycle) connect(ctx context.Context) (*postgres.DB, error) {
	db, err := d.open(&d.cfg.Postgres)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			d.logger.Error("Failed to close pool after ping failure", logger.Error(closeErr))
		}
		return nil, err
	}
	return db, nil
}

// Stop closes the pool, giving up when ctx expires first.
func (d *Lifecycle) Stop(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db == nil {
		return nil
	}

	db := d.db
	d.db = nil

	done := make(chan error, 1)
	go func() {
		done <- db.Close()
	}()

	select {
	case err := <-done:
		if err != nil {
			d.logger.Error("Failed to close submissions pool", logger.Error(err))
			return err
		}
		d.logger.Info("Submissions pool closed")
		return nil
	case <-ctx.Done():
		d.logger.Warn("Submissions pool close timed out")
		return ctx.Err()
	}
}

func (d *Lifecycle) Connection() *postgres.DB {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.db
}
