package intake

import "fmt"

type Field string

const (
	FieldName      Field = "name"
	FieldAge       Field = "age"
	FieldAllergies Field = "allergies"
	FieldSymptoms  Field = "symptoms"
)

var fieldOrder = []Field{FieldName, FieldAge, FieldAllergies, FieldSymptoms}

func ParseField(raw string) (Field, error) {
	for _, field := range fieldOrder {
		if string(field) == raw {
			return field, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, raw)
}

func (f Field) order() int {
	for i, field := range fieldOrder {
		if field == f {
			return i
		}
	}
	return len(fieldOrder)
}

// Values is the editable state of the form. Age is kept as typed so it
// round-trips to the input unchanged.
type Values struct {
	Name      string
	Age       string
	Allergies string
	Symptoms  []string
}

func (v Values) Clone() Values {
	out := v
	out.Symptoms = append([]string(nil), v.Symptoms...)
	return out
}

// Submission is the validated payload handed to the submit handler.
type Submission struct {
	Name      string   `json:"name"`
	Age       string   `json:"age"`
	Symptoms  []string `json:"symptoms"`
	Allergies string   `json:"allergies"`
}

// NormalizeSymptoms drops duplicates and empty entries, keeping the first
// occurrence of each symptom in place.
func NormalizeSymptoms(symptoms []string) []string {
	out := make([]string, 0, len(symptoms))
	seen := make(map[string]struct{}, len(symptoms))
	for _, symptom := range symptoms {
		if symptom == "" {
			continue
		}
		if _, dup := seen[symptom]; dup {
			continue
		}
		seen[symptom] = struct{}{}
		out = append(out, symptom)
	}
	return out
}

// Symptom is one selectable entry offered to the symptom picker.
type Symptom struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
