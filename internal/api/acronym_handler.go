package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/til-api/internal/api/shared"
	"github.com/phrazzld/til-api/internal/domain"
	"github.com/phrazzld/til-api/internal/platform/logger"
	"github.com/phrazzld/til-api/internal/service"
)

// AcronymHandler handles acronym-related HTTP requests
type AcronymHandler struct {
	acronymService service.AcronymService
	logger         *slog.Logger
}

// NewAcronymHandler creates a new AcronymHandler
func NewAcronymHandler(acronymService service.AcronymService, logger *slog.Logger) *AcronymHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &AcronymHandler{
		acronymService: acronymService,
		logger:         logger.With(slog.String("component", "acronym_handler")),
	}
}

// Routes returns the acronym endpoints.
func (h *AcronymHandler) Routes() []Route {
	return []Route{
		{Method: http.MethodGet, Pattern: "/acronyms", Handler: h.ListAcronyms},
		{Method: http.MethodPost, Pattern: "/acronyms", Handler: h.CreateAcronym},
		{Method: http.MethodGet, Pattern: "/acronyms/search", Handler: h.SearchAcronyms},
		{Method: http.MethodGet, Pattern: "/acronyms/first", Handler: h.FirstAcronym},
		{Method: http.MethodGet, Pattern: "/acronyms/sorted", Handler: h.SortedAcronyms},
		{Method: http.MethodGet, Pattern: "/acronyms/{id}", Handler: h.GetAcronym},
		{Method: http.MethodPut, Pattern: "/acronyms/{id}", Handler: h.UpdateAcronym},
		{Method: http.MethodDelete, Pattern: "/acronyms/{id}", Handler: h.DeleteAcronym},
		{Method: http.MethodGet, Pattern: "/acronyms/{id}/user", Handler: h.GetAcronymOwner},
	}
}

// ListAcronyms handles GET /api/acronyms
func (h *AcronymHandler) ListAcronyms(w http.ResponseWriter, r *http.Request) {
	acronyms, err := h.acronymService.ListAcronyms(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list acronyms")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, acronymsToResponse(acronyms))
}

// GetAcronym handles GET /api/acronyms/{id}
func (h *AcronymHandler) GetAcronym(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	acronym, err := h.acronymService.GetAcronym(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get acronym")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, acronymToResponse(acronym))
}

// CreateAcronym handles POST /api/acronyms
// The created acronym is returned with 200, matching the other write endpoints.
func (h *AcronymHandler) CreateAcronym(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	input, err := decodeAcronymInput(r)
	if err != nil {
		log.Debug("rejected acronym body", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "")
		return
	}

	acronym, err := h.acronymService.CreateAcronym(r.Context(), input)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create acronym")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, acronymToResponse(acronym))
}

// UpdateAcronym handles PUT /api/acronyms/{id}
// All three fields are replaced; the body must carry every one of them.
func (h *AcronymHandler) UpdateAcronym(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	input, err := decodeAcronymInput(r)
	if err != nil {
		log.Debug("rejected acronym body",
			slog.String("acronym_id", id.String()),
			slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "")
		return
	}

	acronym, err := h.acronymService.UpdateAcronym(r.Context(), id, input)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update acronym")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, acronymToResponse(acronym))
}

// DeleteAcronym handles DELETE /api/acronyms/{id}
func (h *AcronymHandler) DeleteAcronym(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.acronymService.DeleteAcronym(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete acronym")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SearchAcronyms handles GET /api/acronyms/search?term=X
// Only a missing term is rejected; ?term= searches for the empty string.
func (h *AcronymHandler) SearchAcronyms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("term") {
		HandleValidationError(w, r, domain.NewValidationError("term", "required field", domain.ErrValidation))
		return
	}

	acronyms, err := h.acronymService.SearchAcronyms(r.Context(), query.Get("term"))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to search acronyms")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, acronymsToResponse(acronyms))
}

// FirstAcronym handles GET /api/acronyms/first
func (h *AcronymHandler) FirstAcronym(w http.ResponseWriter, r *http.Request) {
	acronym, err := h.acronymService.FirstAcronym(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get first acronym")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, acronymToResponse(acronym))
}

// SortedAcronyms handles GET /api/acronyms/sorted
func (h *AcronymHandler) SortedAcronyms(w http.ResponseWriter, r *http.Request) {
	acronyms, err := h.acronymService.SortedAcronyms(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list acronyms")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, acronymsToResponse(acronyms))
}

// GetAcronymOwner handles GET /api/acronyms/{id}/user
func (h *AcronymHandler) GetAcronymOwner(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	user, err := h.acronymService.GetAcronymOwner(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get acronym owner")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}
