package intake

import (
	"patientintake/internal/adapters/http/response"
	"patientintake/internal/core/domain/intake"
	"patientintake/internal/platform/sanitize"
)

// ValuesRequest is the full set of form values as sent by JSON clients.
type ValuesRequest struct {
	Name      string   `json:"name" validate:"max=200"`
	Age       string   `json:"age" validate:"max=16"`
	Allergies *string  `json:"allergies,omitempty" validate:"omitempty,max=1000"`
	Symptoms  []string `json:"symptoms" validate:"dive,required,max=100"`
}

func (r ValuesRequest) values() intake.Values {
	values := intake.Values{
		Name:     sanitize.Text(r.Name),
		Age:      sanitize.Text(r.Age),
		Symptoms: sanitize.Texts(r.Symptoms),
	}
	if r.Allergies != nil {
		values.Allergies = sanitize.Text(*r.Allergies)
	}
	return values
}

type CreateSessionRequest struct {
	ValuesRequest
	Errors map[string]string `json:"errors,omitempty" validate:"max=4,dive,max=200"`
}

type UpdateFieldRequest struct {
	Value *string `json:"value" validate:"required,max=1000"`
}

type SelectSymptomsRequest struct {
	Symptoms []string `json:"symptoms" validate:"required,dive,required,max=100"`
}

type ValuesResponse struct {
	Name      string   `json:"name"`
	Age       string   `json:"age"`
	Allergies string   `json:"allergies"`
	Symptoms  []string `json:"symptoms"`
}

type SessionResponse struct {
	ID           string                `json:"id"`
	State        intake.State          `json:"state"`
	Attempted    bool                  `json:"attempted"`
	Values       ValuesResponse        `json:"values"`
	Errors       []response.FieldError `json:"errors"`
	SubmissionID string                `json:"submission_id,omitempty"`
}

type ValidateResponse struct {
	Valid  bool                  `json:"valid"`
	Errors []response.FieldError `json:"errors"`
}

func newSessionResponse(session *intake.Session) SessionResponse {
	snapshot := session.Form.Snapshot()

	symptoms := snapshot.Values.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}

	resp := SessionResponse{
		ID:        session.ID,
		State:     snapshot.State,
		Attempted: snapshot.Attempted,
		Values: ValuesResponse{
			Name:      snapshot.Values.Name,
			Age:       snapshot.Values.Age,
			Allergies: snapshot.Values.Allergies,
			Symptoms:  symptoms,
		},
		Errors: fieldErrors(snapshot.Errors),
	}
	if record := session.Record(); record != nil {
		resp.SubmissionID = record.ID
	}
	return resp
}

func fieldErrors(errs intake.Errors) []response.FieldError {
	out := make([]response.FieldError, 0, len(errs))
	for _, field := range errs.Fields() {
		out = append(out, response.FieldError{Field: string(field), Message: errs[field]})
	}
	return out
}
