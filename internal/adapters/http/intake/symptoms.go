package intake

import (
	"net/http"
	"strconv"

	"patientintake/internal/adapters/http/response"
	"patientintake/internal/config"
	"patientintake/internal/core/domain/intake"
	"patientintake/internal/core/ports"
	httpErrors "patientintake/internal/platform/http"
)

// SymptomHandler serves the catalog lookups behind the symptom picker.
type SymptomHandler struct {
	catalog ports.SymptomCatalog
	limit   int
}

func NewSymptomHandler(catalog ports.SymptomCatalog, cfg *config.IntakeConfig) *SymptomHandler {
	return &SymptomHandler{
		catalog: catalog,
		limit:   cfg.Intake.SymptomSearchLimit,
	}
}

type SymptomSearchResponse struct {
	Query    string           `json:"query"`
	Symptoms []intake.Symptom `json:"symptoms"`
}

func (h *SymptomHandler) Search(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query().Get("q")

	limit := h.limit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return httpErrors.NewBadRequest("limit must be a positive integer", err)
		}
		limit = min(parsed, h.limit)
	}

	symptoms, err := h.catalog.Search(r.Context(), query, limit)
	if err != nil {
		return err
	}
	if symptoms == nil {
		symptoms = []intake.Symptom{}
	}

	response.RespondJSON(w, http.StatusOK, SymptomSearchResponse{Query: query, Symptoms: symptoms})
	return nil
}
