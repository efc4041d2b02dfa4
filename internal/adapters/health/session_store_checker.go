package health

import (
	"context"
	"fmt"

	"patientintake/internal/platform/health"
)

// SessionCounter reports how many intake sessions are open.
type SessionCounter interface {
	Count(ctx context.Context) (int, error)
}

type SessionStoreChecker struct {
	sessions SessionCounter
}

func NewSessionStoreChecker(sessions SessionCounter) *SessionStoreChecker {
	return &SessionStoreChecker{sessions: sessions}
}

func (c *SessionStoreChecker) Name() string {
	return "session_store"
}

func (c *SessionStoreChecker) Component() string {
	return "datastore"
}

func (c *SessionStoreChecker) Check(ctx context.Context) health.CheckResult {
	if err := ctx.Err(); err != nil {
		return unhealthy("session store check cancelled", err)
	}

	open, err := c.sessions.Count(ctx)
	if err != nil {
		return unhealthy("session store unavailable", err)
	}

	return health.CheckResult{
		Status:  health.StatusHealthy,
		Message: fmt.Sprintf("%d open sessions", open),
	}
}
