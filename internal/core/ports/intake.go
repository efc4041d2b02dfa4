package ports

import (
	"context"

	"patientintake/internal/core/domain/intake"
)

type SessionRepository interface {
	Save(ctx context.Context, session *intake.Session) error
	GetByID(ctx context.Context, id string) (*intake.Session, error)
}

type SubmissionRepository interface {
	Save(ctx context.Context, record *intake.Record) error
	GetByID(ctx context.Context, id string) (*intake.Record, error)
}

// SymptomCatalog answers the symptom picker's lookups.
type SymptomCatalog interface {
	Search(ctx context.Context, query string, limit int) ([]intake.Symptom, error)
}
