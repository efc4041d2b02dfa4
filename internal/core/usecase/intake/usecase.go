package intake

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"patientintake/internal/core/domain/intake"
	"patientintake/internal/core/ports"
	"patientintake/internal/platform/logger"
)

// SessionInput carries the props a caller opens a form with.
type SessionInput struct {
	Initial intake.Values
	Errors  intake.Errors
}

type Usecase struct {
	sessions ports.SessionRepository
	records  ports.SubmissionRepository
	recorder Recorder
	schema   *intake.Schema
	now      func() time.Time
	newID    func() string
}

func NewUsecase(sessions ports.SessionRepository, records ports.SubmissionRepository, recorder Recorder) *Usecase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Usecase{
		sessions: sessions,
		records:  records,
		recorder: recorder,
		schema:   intake.DefaultSchema(),
		now:      time.Now,
		newID:    func() string { return uuid.NewString() },
	}
}

func (uc *Usecase) CreateSession(ctx context.Context, input SessionInput) (*intake.Session, error) {
	log := logger.FromContext(ctx)

	session := &intake.Session{
		ID:        uc.newID(),
		Draft:     intake.NewDraft(input.Initial),
		CreatedAt: uc.now(),
	}
	session.Form = intake.NewForm(intake.Props{
		Initial: input.Initial,
		Errors:  input.Errors,
		Setters: session.Draft,
		Handler: &submissionSink{uc: uc, session: session},
		Schema:  uc.schema,
	})

	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	uc.recorder.SessionCreated(ctx)
	log.Debug("Intake session created", logger.String("session_id", session.ID))
	return session, nil
}

// GetSession loads a session and counts the lookup as activity.
func (uc *Usecase) GetSession(ctx context.Context, id string) (*intake.Session, error) {
	session, err := uc.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	session.Touch(uc.now())
	return session, nil
}

func (uc *Usecase) UpdateField(ctx context.Context, id string, field intake.Field, value string) (*intake.Session, error) {
	session, err := uc.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := session.Form.Set(field, value); err != nil {
		return nil, err
	}
	return session, nil
}

func (uc *Usecase) SelectSymptoms(ctx context.Context, id string, symptoms []string) (*intake.Session, error) {
	session, err := uc.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Form.SelectSymptoms(symptoms)
	return session, nil
}

// Submit runs the form's submit for the session and returns the stored
// record on success.
func (uc *Usecase) Submit(ctx context.Context, id string) (*intake.Record, error) {
	log := logger.FromContext(ctx)

	session, err := uc.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	slot := &recordSlot{}
	if _, err := session.Form.Submit(withRecordSlot(ctx, slot)); err != nil {
		var validationErr *intake.ValidationError
		if errors.As(err, &validationErr) {
			for _, field := range validationErr.Errors.Fields() {
				uc.recorder.ValidationFailed(ctx, field)
			}
			log.Debug("Intake submission rejected", logger.String("session_id", id), logger.Error(err))
		}
		return nil, err
	}

	uc.recorder.SubmissionAccepted(ctx)
	return slot.record, nil
}

// Validate checks a complete payload without opening a session.
func (uc *Usecase) Validate(ctx context.Context, values intake.Values) intake.Errors {
	errs := uc.schema.Validate(values)
	for _, field := range errs.Fields() {
		uc.recorder.ValidationFailed(ctx, field)
	}
	return errs
}

func (uc *Usecase) GetSubmission(ctx context.Context, id string) (*intake.Record, error) {
	return uc.records.GetByID(ctx, id)
}

// submissionSink is the submit handler given to each session's form.
type submissionSink struct {
	uc      *Usecase
	session *intake.Session
}

func (s *submissionSink) HandleSubmit(ctx context.Context, submission intake.Submission) error {
	log := logger.FromContext(ctx)

	record := &intake.Record{
		ID:          s.uc.newID(),
		SessionID:   s.session.ID,
		Submission:  submission,
		SubmittedAt: s.uc.now(),
	}
	if err := s.uc.records.Save(ctx, record); err != nil {
		log.Error("Failed to store intake submission",
			logger.String("session_id", s.session.ID),
			logger.Error(err))
		return err
	}

	s.session.SetRecord(record)
	if slot, ok := ctx.Value(recordSlotKey{}).(*recordSlot); ok {
		slot.record = record
	}
	log.Info("Intake submission accepted",
		logger.String("session_id", s.session.ID),
		logger.String("submission_id", record.ID),
		logger.Redacted("patient", submission.Name),
		logger.Redacted("allergies", submission.Allergies),
		logger.Int("symptoms", len(submission.Symptoms)))
	return nil
}

type recordSlotKey struct{}

// recordSlot hands the stored record back to the Submit call that produced
// it, independent of later submissions on the same session.
type recordSlot struct {
	record *intake.Record
}

func withRecordSlot(ctx context.Context, slot *recordSlot) context.Context {
	return context.WithValue(ctx, recordSlotKey{}, slot)
}
