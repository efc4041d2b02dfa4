package intake

import (
	"context"
	"fmt"
)

// Setters receive validated values for the caller-owned state.
type Setters interface {
	SetName(value string)
	SetAge(value string)
	SetAllergies(value string)
	SetSymptoms(value []string)
}

type SubmitHandler interface {
	HandleSubmit(ctx context.Context, submission Submission) error
}

// SubmitHandlerFunc adapts a plain function to SubmitHandler.
type SubmitHandlerFunc func(ctx context.Context, submission Submission) error

func (f SubmitHandlerFunc) HandleSubmit(ctx context.Context, submission Submission) error {
	return f(ctx, submission)
}

// Forward copies a validated submission into the setters and then calls the
// handler with the same payload.
func Forward(ctx context.Context, setters Setters, handler SubmitHandler, submission Submission) error {
	if setters != nil {
		setters.SetName(submission.Name)
		setters.SetAge(submission.Age)
		setters.SetAllergies(submission.Allergies)
		setters.SetSymptoms(append([]string(nil), submission.Symptoms...))
	}
	if handler == nil {
		return nil
	}
	if err := handler.HandleSubmit(ctx, submission); err != nil {
		return fmt.Errorf("submit handler: %w", err)
	}
	return nil
}
