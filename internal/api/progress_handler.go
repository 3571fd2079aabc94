package api

import (
	"log/slog"
	"net/http"

	"github.com/quillstudy/quill-api/internal/api/shared"
	"github.com/quillstudy/quill-api/internal/platform/logger"
	"github.com/quillstudy/quill-api/internal/service/study"
)

// ProgressHandler handles progress-stat, study-activity, and streak HTTP
// requests.
type ProgressHandler struct {
	studyService *study.Service
	logger       *slog.Logger
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(studyService *study.Service, logger *slog.Logger) *ProgressHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ProgressHandler")
	}

	return &ProgressHandler{
		studyService: studyService,
		logger:       logger.With(slog.String("component", "progress_handler")),
	}
}

// UpdateProgressStat handles PUT /progress requests. The write is an upsert
// keyed by subject.
func (h *ProgressHandler) UpdateProgressStat(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tenant, ok := tenantFromRequest(w, r, log)
	if !ok {
		return
	}

	var req UpdateProgressStatRequest
	if !decodeAndValidate(w, r, log, &req) {
		return
	}

	stat, err := h.studyService.UpdateProgressStat(r.Context(), tenant, req.Subject, req.MasteryPercent)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, stat)
}

// ListProgressStats handles GET /progress requests.
func (h *ProgressHandler) ListProgressStats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tenant, ok := tenantFromRequest(w, r, log)
	if !ok {
		return
	}

	stats, err := h.studyService.GetProgressStats(r.Context(), tenant)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}

// RecordStudyActivity handles POST /activity requests. The body is empty;
// the activity timestamp is always the server clock. Returns the updated
// streak.
func (h *ProgressHandler) RecordStudyActivity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tenant, ok := tenantFromRequest(w, r, log)
	if !ok {
		return
	}

	streak, err := h.studyService.RecordStudyActivity(r.Context(), tenant)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("study activity recorded", slog.Int("current_streak", streak.CurrentStreak))
	shared.RespondWithJSON(w, r, http.StatusOK, streak)
}

// GetStudyStreak handles GET /streak requests. A tenant with no recorded
// activity gets the zero streak rather than 404.
func (h *ProgressHandler) GetStudyStreak(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tenant, ok := tenantFromRequest(w, r, log)
	if !ok {
		return
	}

	streak, err := h.studyService.GetStudyStreak(r.Context(), tenant)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, streak)
}
