package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quillstudy/quill-api/internal/api/shared"
	"github.com/quillstudy/quill-api/internal/domain"
	"github.com/quillstudy/quill-api/internal/platform/logger"
	"github.com/quillstudy/quill-api/internal/service/study"
)

// ChatHandler handles chat-session HTTP requests.
type ChatHandler struct {
	studyService *study.Service
	logger       *slog.Logger
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(studyService *study.Service, logger *slog.Logger) *ChatHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ChatHandler")
	}

	return &ChatHandler{
		studyService: studyService,
		logger:       logger.With(slog.String("component", "chat_handler")),
	}
}

// CreateChatSession handles POST /chats requests.
func (h *ChatHandler) CreateChatSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tenant, ok := tenantFromRequest(w, r, log)
	if !ok {
		return
	}

	var req CreateChatSessionRequest
	if !decodeAndValidate(w, r, log, &req) {
		return
	}

	session, err := h.studyService.CreateChatSession(r.Context(), tenant, req.Title)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("chat session created", slog.String("session_id", session.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, chatSessionToResponse(*session))
}

// ListChatSessions handles GET /chats requests. Sessions are returned most
// recent first.
func (h *ChatHandler) ListChatSessions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tenant, ok := tenantFromRequest(w, r, log)
	if !ok {
		return
	}

	sessions, err := h.studyService.GetChatSessions(r.Context(), tenant)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	responses := make([]ChatSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		responses = append(responses, chatSessionToResponse(session))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// AddMessage handles POST /chats/{sessionID}/messages requests. Appending to
// an unknown session returns 404.
func (h *ChatHandler) AddMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tenant, ok := tenantFromRequest(w, r, log)
	if !ok {
		return
	}

	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Session ID is required")
		return
	}

	var req AddMessageRequest
	if !decodeAndValidate(w, r, log, &req) {
		return
	}

	err := h.studyService.AddMessage(r.Context(), tenant, sessionID, domain.MessageRole(req.Role), req.Content)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetChatMessages handles GET /chats/{sessionID}/messages requests.
func (h *ChatHandler) GetChatMessages(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tenant, ok := tenantFromRequest(w, r, log)
	if !ok {
		return
	}

	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Session ID is required")
		return
	}

	messages, err := h.studyService.GetChatMessages(r.Context(), tenant, sessionID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, messages)
}

// DeleteChatSession handles DELETE /chats/{sessionID} requests. Deletion is
// idempotent: deleting an absent session still returns 204.
func (h *ChatHandler) DeleteChatSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tenant, ok := tenantFromRequest(w, r, log)
	if !ok {
		return
	}

	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Session ID is required")
		return
	}

	if err := h.studyService.DeleteChatSession(r.Context(), tenant, sessionID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
