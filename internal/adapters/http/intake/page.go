package intake

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"patientintake/internal/adapters/http/response"
	"patientintake/internal/config"
	"patientintake/internal/core/domain/intake"
	intakeUsecase "patientintake/internal/core/usecase/intake"
	httpErrors "patientintake/internal/platform/http"
	"patientintake/internal/platform/logger"
	"patientintake/internal/platform/sanitize"
)

// PageHandler serves the server rendered intake card.
type PageHandler struct {
	manager     Manager
	view        *View
	maxSymptoms int
}

func NewPageHandler(manager Manager, view *View, cfg *config.IntakeConfig) *PageHandler {
	return &PageHandler{
		manager:     manager,
		view:        view,
		maxSymptoms: cfg.Intake.MaxSymptoms,
	}
}

func cardPath(id string) string {
	return "/intake/" + id
}

// New opens a blank session and redirects to its card.
func (h *PageHandler) New(w http.ResponseWriter, r *http.Request) error {
	session, err := h.manager.CreateSession(r.Context(), intakeUsecase.SessionInput{})
	if err != nil {
		return mapDomainError(err)
	}

	http.Redirect(w, r, cardPath(session.ID), http.StatusSeeOther)
	return nil
}

func (h *PageHandler) Show(w http.ResponseWriter, r *http.Request) error {
	session, err := h.manager.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return mapDomainError(err)
	}

	return h.render(w, http.StatusOK, session, session.Form.Snapshot())
}

// Submit applies a posted card to the session form and submits it.
func (h *PageHandler) Submit(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	contextLogger := logger.FromContext(ctx)
	id := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		return httpErrors.NewBadRequest("invalid form payload", err)
	}

	session, err := h.manager.GetSession(ctx, id)
	if err != nil {
		return mapDomainError(err)
	}

	capture := &snapshotCapture{}
	unsubscribe := session.Form.Subscribe(capture)
	defer unsubscribe()

	for _, field := range []intake.Field{intake.FieldName, intake.FieldAge, intake.FieldAllergies} {
		value := sanitize.Text(r.PostForm.Get(string(field)))
		if _, err := h.manager.UpdateField(ctx, id, field, value); err != nil {
			return mapDomainError(err)
		}
	}

	symptoms := collectSymptoms(r.PostForm[string(intake.FieldSymptoms)], r.PostForm[addedSymptomsInput])
	if len(symptoms) > h.maxSymptoms {
		return httpErrors.NewBadRequest("too many symptoms", nil)
	}
	if _, err := h.manager.SelectSymptoms(ctx, id, symptoms); err != nil {
		return mapDomainError(err)
	}

	status := http.StatusOK
	if _, err := h.manager.Submit(ctx, id); err != nil {
		var validationErr *intake.ValidationError
		switch {
		case errors.Is(err, intake.ErrAlreadySubmitted):
			// A re-posted card with unchanged values keeps its first record.
			contextLogger.Debug("Intake card already submitted", logger.String("session_id", id))
		case errors.As(err, &validationErr):
			contextLogger.Debug("Intake card rejected", logger.String("session_id", id))
			status = http.StatusUnprocessableEntity
		default:
			return mapDomainError(err)
		}
	}

	return h.render(w, status, session, capture.latest(session.Form.Snapshot))
}

func (h *PageHandler) render(w http.ResponseWriter, status int, session *intake.Session, snapshot intake.Snapshot) error {
	var record *intake.Record
	if snapshot.State == intake.StateSubmittedValid {
		record = session.Record()
	}

	var buf bytes.Buffer
	if err := h.view.RenderCard(&buf, cardPath(session.ID), snapshot, record); err != nil {
		return err
	}

	response.RespondHTML(w, status, buf.Bytes())
	return nil
}

// collectSymptoms merges the checked symptoms, taken verbatim, with the
// comma separated additions typed into the new symptom input.
func collectSymptoms(selected, added []string) []string {
	var out []string
	keep := func(item string) {
		if item = strings.TrimSpace(sanitize.Text(item)); item != "" {
			out = append(out, item)
		}
	}
	for _, item := range selected {
		keep(item)
	}
	for _, item := range added {
		for _, part := range strings.Split(item, ",") {
			keep(part)
		}
	}
	return intake.NormalizeSymptoms(out)
}
