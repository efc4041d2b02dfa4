package health

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"patientintake/internal/platform/health"
	"patientintake/internal/version"
)

const defaultAPITimeout = 5 * time.Second

// APIChecker probes the health endpoint of a downstream HTTP service,
// such as the diagnosis backend that consumes submissions.
type APIChecker struct {
	client    *http.Client
	endpoint  string
	name      string
	userAgent string
}

func NewAPIChecker(endpoint, name string, timeout time.Duration) *APIChecker {
	if timeout <= 0 {
		timeout = defaultAPITimeout
	}
	return &APIChecker{
		client:    &http.Client{Timeout: timeout},
		endpoint:  endpoint,
		name:      name,
		userAgent: "patientintake/" + version.Get(),
	}
}

func (c *APIChecker) Name() string {
	return c.name
}

func (c *APIChecker) Component() string {
	return "system"
}

func (c *APIChecker) Check(ctx context.Context) health.CheckResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return unhealthy(c.name+" probe misconfigured", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return unhealthy(c.name+" unreachable", err)
	}
	defer func() {
		// Drain so the keep-alive connection is reused by the next probe.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: fmt.Sprintf("%s answered %d", c.name, resp.StatusCode),
		}
	}
	return health.CheckResult{
		Status:  health.StatusHealthy,
		Message: fmt.Sprintf("%s answered %d", c.name, resp.StatusCode),
	}
}

func unhealthy(message string, err error) health.CheckResult {
	return health.CheckResult{
		Status:  health.StatusUnhealthy,
		Message: message,
		Error:   err.Error(),
	}
}
