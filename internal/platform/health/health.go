package health

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

const DefaultCheckTimeout = 3 * time.Second

type CheckResult struct {
	Status    Status        `json:"status"`
	Component string        `json:"component,omitempty"`
	Message   string        `json:"message,omitempty"`
	Latency   time.Duration `json:"latency"`
	Error     string        `json:"error,omitempty"`
}

type Checker interface {
	Name() string
	Check(ctx context.Context) CheckResult
}

// Componenter is implemented by checkers that know what kind of
// dependency they probe ("datastore", "system").
type Componenter interface {
	Component() string
}

type ManagerInterface interface {
	Register(checker Checker)
	CheckAll(ctx context.Context) map[string]CheckResult
	IsHealthy(ctx context.Context) bool
}

type Option func(*Manager)

// WithCheckTimeout bounds every individual check. Non-positive values
// disable the per-check deadline.
func WithCheckTimeout(timeout time.Duration) Option {
	return func(m *Manager) {
		m.timeout = timeout
	}
}

type Manager struct {
	checkers []Checker
	timeout  time.Duration
	mu       sync.RWMutex
}

// Compile-time interface check
var _ ManagerInterface = (*Manager)(nil)

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		checkers: make([]Checker, 0),
		timeout:  DefaultCheckTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) Register(checker Checker) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkers = append(m.checkers, checker)
}

// CheckAll runs every registered checker concurrently. An unhealthy
// result never stops the other checks.
func (m *Manager) CheckAll(ctx context.Context) map[string]CheckResult {
	m.mu.RLock()
	checkers := make([]Checker, len(m.checkers))
	copy(checkers, m.checkers)
	m.mu.RUnlock()

	results := make(map[string]CheckResult, len(checkers))
	var (
		g   errgroup.Group
		rmu sync.Mutex
	)

	for _, checker := range checkers {
		g.Go(func() error {
			result := m.run(ctx, checker)

			rmu.Lock()
			results[checker.Name()] = result
			rmu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (m *Manager) run(ctx context.Context, checker Checker) CheckResult {
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	start := time.Now()
	result := checker.Check(ctx)
	result.Latency = time.Since(start)

	if c, ok := checker.(Componenter); ok && result.Component == "" {
		result.Component = c.Component()
	}
	return result
}

func (m *Manager) IsHealthy(ctx context.Context) bool {
	results := m.CheckAll(ctx)

	for _, result := range results {
		if result.Status == StatusUnhealthy {
			return false
		}
	}

	return true
}
