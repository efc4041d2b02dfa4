package intake

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
)

type State string

const (
	StateEditing        State = "editing"
	StateSubmittedValid State = "submitted-valid"
)

// Props is what the owning view hands to the form.
type Props struct {
	Initial Values
	// Errors seeds messages detected outside the form.
	Errors  Errors
	Setters Setters
	Handler SubmitHandler
	Schema  *Schema
}

type Snapshot struct {
	Values    Values
	Errors    Errors
	State     State
	Attempted bool
}

type Listener interface {
	OnChange(snapshot Snapshot)
}

type ListenerFunc func(snapshot Snapshot)

func (f ListenerFunc) OnChange(snapshot Snapshot) {
	f(snapshot)
}

// Form tracks uncommitted edits and their validation state. Values only
// leave the form through the submission bridge.
type Form struct {
	mu        sync.Mutex
	schema    *Schema
	values    Values
	errors    Errors
	state     State
	attempted bool
	setters   Setters
	handler   SubmitHandler
	listeners []subscription
	nextSub   int
}

type subscription struct {
	id       int
	listener Listener
}

func NewForm(props Props) *Form {
	schema := props.Schema
	if schema == nil {
		schema = DefaultSchema()
	}
	initial := props.Initial.Clone()
	initial.Symptoms = NormalizeSymptoms(initial.Symptoms)

	errs := make(Errors, len(props.Errors))
	for field, msg := range props.Errors {
		if msg != "" {
			errs[field] = msg
		}
	}

	return &Form{
		schema:  schema,
		values:  initial,
		errors:  errs,
		state:   StateEditing,
		setters: props.Setters,
		handler: props.Handler,
	}
}

func (f *Form) Values() Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values.Clone()
}

func (f *Form) Error(field Field) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors[field]
}

func (f *Form) Errors() Errors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors.Clone()
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

// Subscribe registers l for change notifications and returns a function that
// removes it again.
func (f *Form) Subscribe(l Listener) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextSub++
	id := f.nextSub
	f.listeners = append(f.listeners, subscription{id: id, listener: l})

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		for i, sub := range f.listeners {
			if sub.id == id {
				f.listeners = append(f.listeners[:i], f.listeners[i+1:]...)
				return
			}
		}
	}
}

// Set updates one of the text fields. Symptoms go through SelectSymptoms.
// Setting the current value is not an edit: the state and errors stay as
// they are and listeners are not notified.
func (f *Form) Set(field Field, value string) error {
	f.mu.Lock()
	var target *string
	switch field {
	case FieldName:
		target = &f.values.Name
	case FieldAge:
		target = &f.values.Age
	case FieldAllergies:
		target = &f.values.Allergies
	default:
		f.mu.Unlock()
		return fmt.Errorf("%w: %q is not a text field", ErrUnknownField, field)
	}
	if *target == value {
		f.mu.Unlock()
		return nil
	}
	*target = value
	f.editedLocked(field)
	snapshot, listeners := f.snapshotLocked(), f.listenersLocked()
	f.mu.Unlock()

	notify(listeners, snapshot)
	return nil
}

// SelectSymptoms relays a selection change from the symptom picker. The
// caller's symptom setter sees the new selection right away. Re-selecting
// the current symptoms is not a change and is ignored.
func (f *Form) SelectSymptoms(symptoms []string) {
	selected := NormalizeSymptoms(symptoms)

	f.mu.Lock()
	if slices.Equal(selected, f.values.Symptoms) {
		f.mu.Unlock()
		return
	}
	f.values.Symptoms = selected
	f.editedLocked(FieldSymptoms)
	snapshot, listeners, setters := f.snapshotLocked(), f.listenersLocked(), f.setters
	f.mu.Unlock()

	if setters != nil {
		setters.SetSymptoms(append([]string(nil), selected...))
	}
	notify(listeners, snapshot)
}

// Submit validates every field. On failure nothing is forwarded and the
// returned *ValidationError lists all messages. On success the bridge runs
// once; a repeated Submit without an edit in between returns
// ErrAlreadySubmitted.
func (f *Form) Submit(ctx context.Context) (Submission, error) {
	f.mu.Lock()
	if f.state == StateSubmittedValid {
		f.mu.Unlock()
		return Submission{}, ErrAlreadySubmitted
	}

	f.attempted = true
	submission, err := f.schema.Parse(f.values)
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			f.errors = validationErr.Errors.Clone()
		}
		snapshot, listeners := f.snapshotLocked(), f.listenersLocked()
		f.mu.Unlock()

		notify(listeners, snapshot)
		return Submission{}, err
	}

	f.errors = make(Errors)
	f.state = StateSubmittedValid
	setters, handler := f.setters, f.handler
	f.mu.Unlock()

	if err := Forward(ctx, setters, handler, submission); err != nil {
		f.mu.Lock()
		f.state = StateEditing
		snapshot, listeners := f.snapshotLocked(), f.listenersLocked()
		f.mu.Unlock()

		notify(listeners, snapshot)
		return Submission{}, err
	}

	f.mu.Lock()
	snapshot, listeners := f.snapshotLocked(), f.listenersLocked()
	f.mu.Unlock()

	notify(listeners, snapshot)
	return submission, nil
}

// editedLocked returns the form to editing and, once a submit has been
// attempted, re-validates only the edited field.
func (f *Form) editedLocked(field Field) {
	f.state = StateEditing
	if !f.attempted {
		return
	}
	if msg := f.schema.ValidateField(field, f.values); msg != "" {
		f.errors[field] = msg
		return
	}
	delete(f.errors, field)
}

func (f *Form) snapshotLocked() Snapshot {
	return Snapshot{
		Values:    f.values.Clone(),
		Errors:    f.errors.Clone(),
		State:     f.state,
		Attempted: f.attempted,
	}
}

func (f *Form) listenersLocked() []Listener {
	out := make([]Listener, 0, len(f.listeners))
	for _, sub := range f.listeners {
		out = append(out, sub.listener)
	}
	return out
}

func notify(listeners []Listener, snapshot Snapshot) {
	for _, l := range listeners {
		l.OnChange(snapshot)
	}
}
