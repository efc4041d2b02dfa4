package intake

import (
	"embed"
	"fmt"
	"io"
	"sync"

	"github.com/flosch/pongo2/v6"

	"patientintake/internal/core/domain/intake"
)

//go:embed templates/*.html
var templates embed.FS

const (
	cardTitle       = "Patient Information"
	cardDescription = "Please fill out the form below to get your diagnosis"

	// addedSymptomsInput names the free text input for symptoms not yet
	// on the checklist.
	addedSymptomsInput = "symptoms_new"
)

// CardField is one labelled input of the intake card.
type CardField struct {
	Name        string
	Label       string
	Type        string
	Value       string
	Description string
	Error       string
	// Selected lists the checked options of a checklist field.
	Selected []string
}

// View renders the intake card.
type View struct {
	card *pongo2.Template
}

func NewView() (*View, error) {
	set := pongo2.NewSet("intake", pongo2.NewFSLoader(templates))

	card, err := set.FromFile("templates/card.html")
	if err != nil {
		return nil, fmt.Errorf("load intake card template: %w", err)
	}
	return &View{card: card}, nil
}

// RenderCard writes the card for snapshot. record, when set, adds the
// submission confirmation.
func (v *View) RenderCard(w io.Writer, action string, snapshot intake.Snapshot, record *intake.Record) error {
	ctx := pongo2.Context{
		"title":       cardTitle,
		"description": cardDescription,
		"action":      action,
		"fields":      cardFields(snapshot),
		"added_input": addedSymptomsInput,
	}
	if record != nil {
		ctx["record"] = record
	}
	if err := v.card.ExecuteWriter(ctx, w); err != nil {
		return fmt.Errorf("render intake card: %w", err)
	}
	return nil
}

func cardFields(snapshot intake.Snapshot) []CardField {
	values, errs := snapshot.Values, snapshot.Errors
	return []CardField{
		{Name: string(intake.FieldName), Label: "Name", Type: "text", Value: values.Name, Error: errs[intake.FieldName]},
		{Name: string(intake.FieldAge), Label: "Age", Type: "number", Value: values.Age, Error: errs[intake.FieldAge]},
		{Name: string(intake.FieldAllergies), Label: "Allergies", Type: "text", Value: values.Allergies, Description: "Optional", Error: errs[intake.FieldAllergies]},
		{
			Name:        string(intake.FieldSymptoms),
			Label:       "Symptoms",
			Type:        "checklist",
			Selected:    values.Symptoms,
			Description: "Add new symptoms separated by commas",
			Error:       errs[intake.FieldSymptoms],
		},
	}
}

// snapshotCapture keeps the last snapshot a form published while one
// request was driving it.
type snapshotCapture struct {
	mu   sync.Mutex
	last *intake.Snapshot
}

func (c *snapshotCapture) OnChange(snapshot intake.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last = &snapshot
}

func (c *snapshotCapture) latest(fallback func() intake.Snapshot) intake.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last == nil {
		return fallback()
	}
	return *c.last
}
