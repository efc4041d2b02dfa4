package intake

import (
	"sync"
	"time"
)

// Draft is the owner-side copy of the intake values. The form writes into it
// through the Setters interface once a submission validates, and the symptom
// picker writes into it on every selection change.
type Draft struct {
	mu     sync.RWMutex
	values Values
}

var _ Setters = (*Draft)(nil)

func NewDraft(initial Values) *Draft {
	return &Draft{values: initial.Clone()}
}

func (d *Draft) SetName(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.values.Name = value
}

func (d *Draft) SetAge(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.values.Age = value
}

func (d *Draft) SetAllergies(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.values.Allergies = value
}

func (d *Draft) SetSymptoms(value []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.values.Symptoms = append([]string(nil), value...)
}

func (d *Draft) Values() Values {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.values.Clone()
}

// Session binds one form to the draft that owns its values.
type Session struct {
	ID        string
	Form      *Form
	Draft     *Draft
	CreatedAt time.Time

	mu         sync.RWMutex
	record     *Record
	lastActive time.Time
}

func (s *Session) GetID() string {
	return s.ID
}

// Touch records activity on the session at the given time. Earlier times
// are ignored.
func (s *Session) Touch(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if at.After(s.lastActive) {
		s.lastActive = at
	}
}

// LastActive reports the latest Touch, or CreatedAt for an untouched
// session.
func (s *Session) LastActive() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastActive.After(s.CreatedAt) {
		return s.lastActive
	}
	return s.CreatedAt
}

func (s *Session) SetRecord(record *Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = record
}

// Record returns the last accepted submission, if any.
func (s *Session) Record() *Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.record
}

// Record is an accepted submission kept for the downstream consumer.
type Record struct {
	ID          string     `json:"id"`
	SessionID   string     `json:"session_id"`
	Submission  Submission `json:"submission"`
	SubmittedAt time.Time  `json:"submitted_at"`
}

func (r *Record) GetID() string {
	return r.ID
}
