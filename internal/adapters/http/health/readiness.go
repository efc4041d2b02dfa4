package health

import (
	"context"
	"net/http"
	"sort"
	"time"

	"patientintake/internal/adapters/http/response"
	"patientintake/internal/platform/health"
	"patientintake/internal/platform/logger"
)

const readinessTimeout = 5 * time.Second

// ReadinessHandler reports whether the intake service can accept forms,
// rendered in the application/health+json layout.
type ReadinessHandler struct {
	version  string
	checks   health.ManagerInterface
	deadline time.Duration
}

func NewReadinessHandler(version string, checks health.ManagerInterface) *ReadinessHandler {
	return &ReadinessHandler{
		version:  version,
		checks:   checks,
		deadline: readinessTimeout,
	}
}

func (h *ReadinessHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.deadline)
	defer cancel()

	results := h.checks.CheckAll(ctx)
	now := time.Now().UTC()

	resp := ReadinessResponse{
		Status:  StatusPass,
		Version: h.version,
		Checks:  make(map[string][]CheckDetail, len(results)),
	}
	for name, result := range results {
		detail := toDetail(name, result, now)
		resp.Checks[name] = []CheckDetail{detail}
		resp.Status = worse(resp.Status, detail.Status)
		if detail.Status == StatusFail {
			resp.Notes = append(resp.Notes, "Dependency "+name+" is unavailable")
		}
	}
	sort.Strings(resp.Notes)

	code := http.StatusOK
	if resp.Status == StatusFail {
		code = http.StatusServiceUnavailable
		logger.FromContext(ctx).Warn("Not ready to accept intake forms", logger.Strings("notes", resp.Notes))
	}
	response.RespondJSON(w, code, resp)
}

func toDetail(name string, result health.CheckResult, now time.Time) CheckDetail {
	detail := CheckDetail{
		ComponentId:   name,
		ComponentType: result.Component,
		ObservedValue: result.Latency.Milliseconds(),
		ObservedUnit:  "ms",
		Status:        StatusWarn,
		Time:          now,
		Output:        result.Message,
	}
	if detail.ComponentType == "" {
		detail.ComponentType = "dependency"
	}
	if result.Error != "" {
		detail.Output = result.Error
	}

	switch result.Status {
	case health.StatusHealthy:
		detail.Status = StatusPass
	case health.StatusUnhealthy:
		detail.Status = StatusFail
	}
	return detail
}

// worse orders statuses pass < warn < fail.
func worse(a, b Status) Status {
	rank := func(s Status) int {
		switch s {
		case StatusFail:
			return 2
		case StatusWarn:
			return 1
		}
		return 0
	}
	if rank(b) > rank(a) {
		return b
	}
	return a
}
