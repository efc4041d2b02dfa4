package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"patientintake/internal/core/domain/intake"
	"patientintake/internal/platform/metrics"
)

// IntakeRecorder feeds intake events into the metrics provider.
type IntakeRecorder struct {
	provider *metrics.Provider
}

func NewIntakeRecorder(provider *metrics.Provider) *IntakeRecorder {
	return &IntakeRecorder{provider: provider}
}

func (r *IntakeRecorder) SessionCreated(ctx context.Context) {
	r.provider.IntakeSessions.Add(ctx, 1)
}

func (r *IntakeRecorder) SubmissionAccepted(ctx context.Context) {
	r.provider.IntakeSubmissions.Add(ctx, 1)
}

func (r *IntakeRecorder) ValidationFailed(ctx context.Context, field intake.Field) {
	r.provider.IntakeValidationFailures.Add(ctx, 1,
		metric.WithAttributes(attribute.String("field", string(field))))
}
