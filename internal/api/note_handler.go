package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quillstudy/quill-api/internal/api/shared"
	"github.com/quillstudy/quill-api/internal/platform/logger"
	"github.com/quillstudy/quill-api/internal/service/study"
)

// NoteHandler handles note-related HTTP requests.
type NoteHandler struct {
	studyService *study.Service
	logger       *slog.Logger
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(studyService *study.Service, logger *slog.Logger) *NoteHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for NoteHandler")
	}

	return &NoteHandler{
		studyService: studyService,
		logger:       logger.With(slog.String("component", "note_handler")),
	}
}

// CreateNote handles POST /notes requests.
func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tenant, ok := tenantFromRequest(w, r, log)
	if !ok {
		return
	}

	var req NoteRequest
	if !decodeAndValidate(w, r, log, &req) {
		return
	}

	note, err := h.studyService.CreateNote(r.Context(), tenant, req.Title, req.Content, req.Topic)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, note)
}

// ListNotes handles GET /notes requests. Notes are returned oldest first.
func (h *NoteHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tenant, ok := tenantFromRequest(w, r, log)
	if !ok {
		return
	}

	notes, err := h.studyService.GetNotes(r.Context(), tenant)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, notes)
}

// GetNote handles GET /notes/{noteID} requests. Reads are strict: an unknown
// note returns 404.
func (h *NoteHandler) GetNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tenant, ok := tenantFromRequest(w, r, log)
	if !ok {
		return
	}

	noteID := chi.URLParam(r, "noteID")
	if noteID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Note ID is required")
		return
	}

	note, err := h.studyService.GetNote(r.Context(), tenant, noteID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, note)
}

// UpdateNote handles PUT /notes/{noteID} requests. Updating an unknown note
// is a silent no-op and still returns 204.
func (h *NoteHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tenant, ok := tenantFromRequest(w, r, log)
	if !ok {
		return
	}

	noteID := chi.URLParam(r, "noteID")
	if noteID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Note ID is required")
		return
	}

	var req NoteRequest
	if !decodeAndValidate(w, r, log, &req) {
		return
	}

	err := h.studyService.UpdateNote(r.Context(), tenant, noteID, req.Title, req.Content, req.Topic)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteNote handles DELETE /notes/{noteID} requests. Deletion is idempotent.
func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tenant, ok := tenantFromRequest(w, r, log)
	if !ok {
		return
	}

	noteID := chi.URLParam(r, "noteID")
	if noteID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Note ID is required")
		return
	}

	if err := h.studyService.DeleteNote(r.Context(), tenant, noteID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
