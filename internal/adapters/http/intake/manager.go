package intake

import (
	"context"

	"patientintake/internal/core/domain/intake"
	intakeUsecase "patientintake/internal/core/usecase/intake"
)

type Manager interface {
	CreateSession(ctx context.Context, input intakeUsecase.SessionInput) (*intake.Session, error)
	GetSession(ctx context.Context, id string) (*intake.Session, error)
	UpdateField(ctx context.Context, id string, field intake.Field, value string) (*intake.Session, error)
	SelectSymptoms(ctx context.Context, id string, symptoms []string) (*intake.Session, error)
	Submit(ctx context.Context, id string) (*intake.Record, error)
	Validate(ctx context.Context, values intake.Values) intake.Errors
	GetSubmission(ctx context.Context, id string) (*intake.Record, error)
}
