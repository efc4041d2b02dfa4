package health

import (
	"net/http"
	"time"

	"patientintake/internal/adapters/http/response"
)

const ServiceID = "patientintake"

type LivenessHandler struct {
	version string
	started time.Time
}

func NewLivenessHandler(version string) *LivenessHandler {
	return &LivenessHandler{
		version: version,
		started: time.Now(),
	}
}

func (h *LivenessHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	select {
	case <-ctx.Done():
		response.RespondError(w, http.StatusRequestTimeout, ctx.Err())
		return
	default:
		now := time.Now()
		response.RespondJSON(w, http.StatusOK, LivenessResponse{
			Status:    StatusPass,
			ServiceId: ServiceID,
			Timestamp: now,
			Uptime:    now.Sub(h.started).Truncate(time.Second).String(),
			Version:   h.version,
		})
	}
}
