package memory

import (
	"context"
	"errors"
	"fmt"
	"time"

	memoryPlatform "patientintake/internal/platform/repository/memory"

	"patientintake/internal/core/domain/intake"
)

// SessionRepository keeps open intake forms for the lifetime of the process.
type SessionRepository struct {
	*memoryPlatform.Repository[*intake.Session]
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		Repository: memoryPlatform.New[*intake.Session](),
	}
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*intake.Session, error) {
	session, err := r.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err, intake.ErrSessionNotFound, id)
	}
	return session, nil
}

func (r *SessionRepository) Save(ctx context.Context, session *intake.Session) error {
	if err := r.Repository.Save(ctx, session); err != nil {
		return mapError(err, intake.ErrSessionNotFound, session.ID)
	}
	return nil
}

// DeleteIdleSince drops sessions whose last activity is before cutoff.
func (r *SessionRepository) DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error) {
	return r.Repository.DeleteFunc(ctx, func(session *intake.Session) bool {
		return session.LastActive().Before(cutoff)
	})
}

type SubmissionRepository struct {
	*memoryPlatform.Repository[*intake.Record]
}

func NewSubmissionRepository() *SubmissionRepository {
	return &SubmissionRepository{
		Repository: memoryPlatform.New[*intake.Record](),
	}
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id string) (*intake.Record, error) {
	record, err := r.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err, intake.ErrSubmissionNotFound, id)
	}
	return record, nil
}

func (r *SubmissionRepository) Save(ctx context.Context, record *intake.Record) error {
	if err := r.Repository.Save(ctx, record); err != nil {
		return mapError(err, intake.ErrSubmissionNotFound, record.ID)
	}
	return nil
}

func mapError(err, notFound error, id string) error {
	switch {
	case errors.Is(err, memoryPlatform.ErrNotFound):
		return notFound
	case errors.Is(err, memoryPlatform.ErrAlreadyExists):
		return fmt.Errorf("%w: %s", intake.ErrDuplicateID, id)
	default:
		return err
	}
}
