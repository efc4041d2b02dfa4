package health

import "time"

// Status values follow the draft RFC for HTTP health checks.
type Status string

const (
	StatusPass Status = "pass"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

type LivenessResponse struct {
	Status    Status    `json:"status"`
	ServiceId string    `json:"serviceId"`
	Version   string    `json:"version,omitempty"`
	Uptime    string    `json:"uptime"`
	Timestamp time.Time `json:"timestamp"`
}

type ReadinessResponse struct {
	Status  Status                   `json:"status"`
	Version string                   `json:"version"`
	Notes   []string                 `json:"notes,omitempty"`
	Checks  map[string][]CheckDetail `json:"checks,omitempty"`
}

// CheckDetail is one entry of the readiness "checks" object. ObservedValue
// carries the probe latency.
type CheckDetail struct {
	ComponentId   string    `json:"componentId,omitempty"`
	ComponentType string    `json:"componentType,omitempty"`
	Status        Status    `json:"status"`
	ObservedValue int64     `json:"observedValue,omitempty"`
	ObservedUnit  string    `json:"observedUnit,omitempty"`
	Output        string    `json:"output,omitempty"`
	Time          time.Time `json:"time"`
}
