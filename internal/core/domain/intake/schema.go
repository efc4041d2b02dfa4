package intake

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
)

const (
	MinNameLength = 2
	MinAge        = 1
	MaxAge        = 100
	MinSymptoms   = 1
)

// Rule checks a single field and returns the message to display, or "" when
// the field is valid.
type Rule struct {
	Field Field
	Check func(Values) string
}

type Schema struct {
	rules []Rule
}

// DefaultSchema holds the intake rules. Allergies carry no rule.
func DefaultSchema() *Schema {
	return NewSchema(
		Rule{Field: FieldName, Check: checkName},
		Rule{Field: FieldAge, Check: checkAge},
		Rule{Field: FieldSymptoms, Check: checkSymptoms},
	)
}

func NewSchema(rules ...Rule) *Schema {
	return &Schema{rules: rules}
}

// Validate evaluates every rule and collects one message per failing field.
// The first failing rule of a field wins.
func (s *Schema) Validate(v Values) Errors {
	errs := make(Errors)
	for _, rule := range s.rules {
		if errs.Has(rule.Field) {
			continue
		}
		if msg := rule.Check(v); msg != "" {
			errs[rule.Field] = msg
		}
	}
	return errs
}

// ValidateField evaluates the rules of one field only.
func (s *Schema) ValidateField(field Field, v Values) string {
	for _, rule := range s.rules {
		if rule.Field != field {
			continue
		}
		if msg := rule.Check(v); msg != "" {
			return msg
		}
	}
	return ""
}

// Parse validates v and, when it passes, builds the submission payload.
func (s *Schema) Parse(v Values) (Submission, error) {
	if errs := s.Validate(v); len(errs) > 0 {
		return Submission{}, &ValidationError{Errors: errs}
	}
	return Submission{
		Name:      v.Name,
		Age:       v.Age,
		Symptoms:  append([]string(nil), v.Symptoms...),
		Allergies: v.Allergies,
	}, nil
}

func checkName(v Values) string {
	if nameLength(v.Name) < MinNameLength {
		return MsgNameTooShort
	}
	return ""
}

func checkAge(v Values) string {
	if v.Age == "" {
		return MsgAgeRequired
	}
	if _, ok := ParseAge(v.Age); !ok {
		return MsgAgeOutOfRange
	}
	return ""
}

func checkSymptoms(v Values) string {
	if len(v.Symptoms) < MinSymptoms {
		return MsgSymptomRequired
	}
	return ""
}

// nameLength counts UTF-16 code units, the unit browsers report for input
// length. Characters outside the Basic Multilingual Plane count twice.
func nameLength(name string) int {
	n := 0
	for _, r := range name {
		if size := utf16.RuneLen(r); size > 0 {
			n += size
			continue
		}
		n++
	}
	return n
}

// ParseAge converts the typed age to a number and reports whether it falls in
// [MinAge, MaxAge]. Surrounding whitespace is ignored. Besides decimal and
// exponent notation, unsigned 0x, 0o and 0b integer literals are read the
// way a browser's Number() reads them; digit separators and hex floats are
// not numbers.
func ParseAge(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.ContainsRune(trimmed, '_') {
		return 0, false
	}

	var age float64
	if base := literalBase(trimmed); base != 0 {
		n, err := strconv.ParseUint(trimmed[2:], base, 64)
		if err != nil {
			return 0, false
		}
		age = float64(n)
	} else {
		if strings.ContainsAny(trimmed, "xXpP") {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsNaN(parsed) {
			return 0, false
		}
		age = parsed
	}
	return age, age >= MinAge && age <= MaxAge
}

func literalBase(s string) int {
	if len(s) < 2 || s[0] != '0' {
		return 0
	}
	switch s[1] {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	}
	return 0
}
