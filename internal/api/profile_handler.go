package api

import (
	"log/slog"
	"net/http"

	"github.com/quillstudy/quill-api/internal/api/shared"
	"github.com/quillstudy/quill-api/internal/domain"
	"github.com/quillstudy/quill-api/internal/platform/logger"
	"github.com/quillstudy/quill-api/internal/service/study"
)

// ProfileHandler handles profile-related HTTP requests.
type ProfileHandler struct {
	studyService *study.Service
	logger       *slog.Logger
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(studyService *study.Service, logger *slog.Logger) *ProfileHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ProfileHandler")
	}

	return &ProfileHandler{
		studyService: studyService,
		logger:       logger.With(slog.String("component", "profile_handler")),
	}
}

// CreateProfile handles POST /profile requests. Each tenant has at most one
// profile; a second create returns 409.
func (h *ProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tenant, ok := tenantFromRequest(w, r, log)
	if !ok {
		return
	}

	var req ProfileRequest
	if !decodeAndValidate(w, r, log, &req) {
		return
	}

	profile, err := h.studyService.CreateProfile(
		r.Context(),
		tenant,
		req.DisplayName,
		domain.PersonalityMode(req.PersonalityMode),
		req.PreferredLanguage,
	)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, profile)
}

// UpdateProfile handles PUT /profile requests. All fields except the creation
// time are replaced.
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tenant, ok := tenantFromRequest(w, r, log)
	if !ok {
		return
	}

	var req ProfileRequest
	if !decodeAndValidate(w, r, log, &req) {
		return
	}

	profile, err := h.studyService.UpdateProfile(
		r.Context(),
		tenant,
		req.DisplayName,
		domain.PersonalityMode(req.PersonalityMode),
		req.PreferredLanguage,
	)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}

// GetProfile handles GET /profile requests.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tenant, ok := tenantFromRequest(w, r, log)
	if !ok {
		return
	}

	profile, err := h.studyService.GetProfile(r.Context(), tenant)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}
