package intake

import (
	"context"

	"patientintake/internal/core/domain/intake"
)

// Recorder receives intake events for metrics.
type Recorder interface {
	SessionCreated(ctx context.Context)
	SubmissionAccepted(ctx context.Context)
	ValidationFailed(ctx context.Context, field intake.Field)
}

type nopRecorder struct{}

func (nopRecorder) SessionCreated(context.Context)                 {}
func (nopRecorder) SubmissionAccepted(context.Context)             {}
func (nopRecorder) ValidationFailed(context.Context, intake.Field) {}
