package intake

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"patientintake/internal/adapters/http/response"
	"patientintake/internal/config"
	"patientintake/internal/core/domain/intake"
	intakeUsecase "patientintake/internal/core/usecase/intake"
	httpErrors "patientintake/internal/platform/http"
	"patientintake/internal/platform/logger"
	"patientintake/internal/platform/sanitize"
	"patientintake/internal/platform/validator"
)

type Handler struct {
	manager     Manager
	validate    validator.Validator
	maxSymptoms int
}

func NewHandler(manager Manager, validate validator.Validator, cfg *config.IntakeConfig) *Handler {
	return &Handler{
		manager:     manager,
		validate:    validate,
		maxSymptoms: cfg.Intake.MaxSymptoms,
	}
}

func mapDomainError(err error) error {
	switch {
	case errors.Is(err, intake.ErrSessionNotFound):
		return httpErrors.NewNotFound("Session not found", err)
	case errors.Is(err, intake.ErrSubmissionNotFound):
		return httpErrors.NewNotFound("Submission not found", err)
	case errors.Is(err, intake.ErrUnknownField):
		return httpErrors.NewBadRequest("Unknown field", err)
	case errors.Is(err, intake.ErrAlreadySubmitted):
		return httpErrors.NewConflict("Form already submitted", err)
	case errors.Is(err, intake.ErrDuplicateID):
		return httpErrors.NewConflict("Identifier already in use", err)
	default:
		return err
	}
}

// decode reads and structurally validates a request body.
func (h *Handler) decode(r *http.Request, dst interface{}) error {
	contextLogger := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		contextLogger.Warn("Failed to decode request body", logger.Error(err))
		return httpErrors.NewBadRequest("invalid request payload", err)
	}

	if err := h.validate.Validate(dst); err != nil {
		var validationErr validator.ValidationError
		if errors.As(err, &validationErr) {
			contextLogger.Warn("Validation failed", logger.Error(err))
			return httpErrors.NewBadRequest("invalid request data", err).WithDetails(validationErr)
		}
		contextLogger.Error("Unexpected validation error", logger.Error(err))
		return httpErrors.NewBadRequest("invalid request data", err)
	}
	return nil
}

func (h *Handler) checkSymptomCount(symptoms []string) error {
	if len(symptoms) <= h.maxSymptoms {
		return nil
	}
	return httpErrors.NewBadRequest("too many symptoms", nil).WithDetails(
		validator.Reject(string(intake.FieldSymptoms), "This field must contain at most %d items", h.maxSymptoms),
	)
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) error {
	var req CreateSessionRequest
	if err := h.decode(r, &req); err != nil {
		return err
	}
	if err := h.checkSymptomCount(req.Symptoms); err != nil {
		return err
	}

	var external intake.Errors
	for raw, message := range req.Errors {
		field, err := intake.ParseField(raw)
		if err != nil {
			return mapDomainError(err)
		}
		if external == nil {
			external = make(intake.Errors, len(req.Errors))
		}
		external[field] = sanitize.Text(message)
	}

	session, err := h.manager.CreateSession(r.Context(), intakeUsecase.SessionInput{
		Initial: req.values(),
		Errors:  external,
	})
	if err != nil {
		return mapDomainError(err)
	}

	w.Header().Set("Location", "/api/intake/sessions/"+session.ID)
	response.RespondJSON(w, http.StatusCreated, newSessionResponse(session))
	return nil
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) error {
	session, err := h.manager.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, newSessionResponse(session))
	return nil
}

func (h *Handler) UpdateField(w http.ResponseWriter, r *http.Request) error {
	field, err := intake.ParseField(chi.URLParam(r, "field"))
	if err != nil {
		return mapDomainError(err)
	}

	var req UpdateFieldRequest
	if err := h.decode(r, &req); err != nil {
		return err
	}

	session, err := h.manager.UpdateField(r.Context(), chi.URLParam(r, "id"), field, sanitize.Text(*req.Value))
	if err != nil {
		return mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, newSessionResponse(session))
	return nil
}

func (h *Handler) SelectSymptoms(w http.ResponseWriter, r *http.Request) error {
	var req SelectSymptomsRequest
	if err := h.decode(r, &req); err != nil {
		return err
	}
	if err := h.checkSymptomCount(req.Symptoms); err != nil {
		return err
	}

	session, err := h.manager.SelectSymptoms(r.Context(), chi.URLParam(r, "id"), sanitize.Texts(req.Symptoms))
	if err != nil {
		return mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, newSessionResponse(session))
	return nil
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) error {
	record, err := h.manager.Submit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		var validationErr *intake.ValidationError
		if errors.As(err, &validationErr) {
			return httpErrors.NewUnprocessableEntity("Form is invalid", err).WithDetails(response.ValidationErrorResponse{
				Errors: fieldErrors(validationErr.Errors),
			})
		}
		return mapDomainError(err)
	}

	w.Header().Set("Location", "/api/intake/submissions/"+record.ID)
	response.RespondJSON(w, http.StatusCreated, record)
	return nil
}

func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) error {
	var req ValuesRequest
	if err := h.decode(r, &req); err != nil {
		return err
	}
	if err := h.checkSymptomCount(req.Symptoms); err != nil {
		return err
	}

	errs := h.manager.Validate(r.Context(), req.values())

	response.RespondJSON(w, http.StatusOK, ValidateResponse{
		Valid:  len(errs) == 0,
		Errors: fieldErrors(errs),
	})
	return nil
}

func (h *Handler) GetSubmission(w http.ResponseWriter, r *http.Request) error {
	record, err := h.manager.GetSubmission(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, record)
	return nil
}
