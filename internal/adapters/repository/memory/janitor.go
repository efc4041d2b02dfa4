package memory

import (
	"context"
	"sync"
	"time"

	"patientintake/internal/config"
	"patientintake/internal/platform/logger"
)

// SessionJanitor periodically evicts sessions idle for longer than the
// configured TTL.
type SessionJanitor struct {
	repo     *SessionRepository
	logger   logger.Logger
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewSessionJanitor(cfg *config.IntakeConfig, repo *SessionRepository, log logger.Logger) *SessionJanitor {
	return &SessionJanitor{
		repo:     repo,
		logger:   log,
		ttl:      cfg.Intake.SessionTTL,
		interval: cfg.Intake.SessionSweepInterval,
		now:      time.Now,
	}
}

// Sweep runs one eviction pass.
func (j *SessionJanitor) Sweep(ctx context.Context) (int, error) {
	removed, err := j.repo.DeleteIdleSince(ctx, j.now().Add(-j.ttl))
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		j.logger.Info("Evicted idle intake sessions", logger.Int("count", removed))
	}
	return removed, nil
}

func (j *SessionJanitor) Start(context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.ttl <= 0 || j.interval <= 0 {
		j.logger.Info("Intake session expiry disabled")
		return nil
	}
	if j.cancel != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel
	j.done = make(chan struct{})

	go j.run(ctx, j.done)

	j.logger.Info("Started intake session janitor",
		logger.Duration("ttl", j.ttl),
		logger.Duration("interval", j.interval))
	return nil
}

func (j *SessionJanitor) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := j.Sweep(ctx); err != nil && ctx.Err() == nil {
				j.logger.Error("Failed to evict idle intake sessions", logger.Error(err))
			}
		}
	}
}

func (j *SessionJanitor) Stop(ctx context.Context) error {
	j.mu.Lock()
	cancel, done := j.cancel, j.done
	j.cancel, j.done = nil, nil
	j.mu.Unlock()

	if cancel == nil {
		return nil
	}

	cancel()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
