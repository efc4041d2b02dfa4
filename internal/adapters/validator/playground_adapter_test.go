package validator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	validatorPlatform "patientintake/internal/platform/validator"
)

type testPayload struct {
	Name      string   `json:"name" validate:"max=10"`
	Allergies *string  `json:"allergies,omitempty" validate:"omitempty,max=8"`
	Symptoms  []string `json:"symptoms" validate:"max=2,dive,required,max=6"`
	Storage   string   `json:"storage" validate:"required,oneof=memory postgres"`
	Contact   string   `validate:"omitempty,email"`
	Ignored   string   `json:"-"`
}

type TestEmpty struct{}

func validPayload() testPayload {
	return testPayload{
		Name:     "Jane",
		Symptoms: []string{"fever"},
		Storage:  "memory",
	}
}

func fieldMessages(t *testing.T, err error) map[string]string {
	t.Helper()

	var validationErr validatorPlatform.ValidationError
	require.ErrorAs(t, err, &validationErr)

	return validationErr.Messages()
}

func TestNewPlaygroundAdapter(t *testing.T) {
	validator := NewPlaygroundAdapter()

	require.NotNil(t, validator)
	assert.Implements(t, (*validatorPlatform.Validator)(nil), validator)
}

func TestPlaygroundValidator_Validate_Success(t *testing.T) {
	validator := NewPlaygroundAdapter()

	assert.NoError(t, validator.Validate(validPayload()))
	assert.NoError(t, validator.Validate(TestEmpty{}))
}

func TestPlaygroundValidator_Validate_UsesJSONNames(t *testing.T) {
	validator := NewPlaygroundAdapter()

	payload := validPayload()
	payload.Storage = ""
	payload.Contact = "not-an-email"

	messages := fieldMessages(t, validator.Validate(payload))

	assert.Equal(t, map[string]string{
		"storage": "This field is required",
		"contact": "This field must be a valid email address",
	}, messages)
}

func TestPlaygroundValidator_Validate_Messages(t *testing.T) {
	long := "penicillin"

	testCases := []struct {
		name    string
		mutate  func(p *testPayload)
		field   string
		message string
	}{
		{
			name:    "string max",
			mutate:  func(p *testPayload) { p.Name = strings.Repeat("a", 11) },
			field:   "name",
			message: "This field must be at most 10 characters long",
		},
		{
			name:    "optional pointer max",
			mutate:  func(p *testPayload) { p.Allergies = &long },
			field:   "allergies",
			message: "This field must be at most 8 characters long",
		},
		{
			name:    "slice max",
			mutate:  func(p *testPayload) { p.Symptoms = []string{"a", "b", "c"} },
			field:   "symptoms",
			message: "This field must contain at most 2 items",
		},
		{
			name:    "empty slice item",
			mutate:  func(p *testPayload) { p.Symptoms = []string{"fever", ""} },
			field:   "symptoms[1]",
			message: "This field is required",
		},
		{
			name:    "oneof",
			mutate:  func(p *testPayload) { p.Storage = "redis" },
			field:   "storage",
			message: "This field must be one of: memory postgres",
		},
	}

	validator := NewPlaygroundAdapter()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payload := validPayload()
			tc.mutate(&payload)

			messages := fieldMessages(t, validator.Validate(payload))

			assert.Len(t, messages, 1)
			assert.Equal(t, tc.message, messages[tc.field])
		})
	}
}

func TestPlaygroundValidator_Validate_NonStructError(t *testing.T) {
	validator := NewPlaygroundAdapter()

	err := validator.Validate("not a struct")

	require.Error(t, err)

	var validationErr validatorPlatform.ValidationError
	assert.False(t, errors.As(err, &validationErr))
}

func BenchmarkPlaygroundValidator_Validate_Success(b *testing.B) {
	validator := NewPlaygroundAdapter()
	payload := validPayload()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = validator.Validate(payload)
	}
}

func BenchmarkPlaygroundValidator_Validate_WithErrors(b *testing.B) {
	validator := NewPlaygroundAdapter()
	payload := validPayload()
	payload.Storage = ""

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = validator.Validate(payload)
	}
}
