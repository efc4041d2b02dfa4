package health

import (
	"context"
	"fmt"

	"patientintake/internal/platform/database/postgres"
	"patientintake/internal/platform/health"
)

// Connector hands out the current database connection, nil while the
// lifecycle has not connected yet.
type Connector interface {
	Connection() *postgres.DB
}

// DatabaseChecker pings the submissions pool and reports its usage.
type DatabaseChecker struct {
	db   Connector
	name string
}

func NewDatabaseChecker(db Connector, name string) *DatabaseChecker {
	return &DatabaseChecker{db: db, name: name}
}

func (c *DatabaseChecker) Name() string {
	return c.name
}

func (c *DatabaseChecker) Component() string {
	return "datastore"
}

func (c *DatabaseChecker) Check(ctx context.Context) health.CheckResult {
	db := c.db.Connection()
	if db == nil {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "submissions database not connected",
		}
	}

	if err := db.Ping(ctx); err != nil {
		return unhealthy("submissions database ping failed", err)
	}

	stats := db.Stats()
	return health.CheckResult{
		Status:  health.StatusHealthy,
		Message: fmt.Sprintf("submissions database reachable, %d/%d connections in use", stats.InUse, stats.OpenConnections),
	}
}
