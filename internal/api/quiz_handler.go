package api

import (
	"log/slog"
	"net/http"

	"github.com/quillstudy/quill-api/internal/api/shared"
	"github.com/quillstudy/quill-api/internal/platform/logger"
	"github.com/quillstudy/quill-api/internal/service/study"
)

// QuizHandler handles quiz-result HTTP requests.
type QuizHandler struct {
	studyService *study.Service
	logger       *slog.Logger
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(studyService *study.Service, logger *slog.Logger) *QuizHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for QuizHandler")
	}

	return &QuizHandler{
		studyService: studyService,
		logger:       logger.With(slog.String("component", "quiz_handler")),
	}
}

// RecordQuizResult handles POST /quizzes requests. Results are immutable
// once recorded.
func (h *QuizHandler) RecordQuizResult(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tenant, ok := tenantFromRequest(w, r, log)
	if !ok {
		return
	}

	var req RecordQuizResultRequest
	if !decodeAndValidate(w, r, log, &req) {
		return
	}

	result, err := h.studyService.RecordQuizResult(r.Context(), tenant, req.Subject, req.Score, req.TotalQuestions)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, result)
}

// ListQuizResults handles GET /quizzes requests. Results are returned most
// recent first.
func (h *QuizHandler) ListQuizResults(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tenant, ok := tenantFromRequest(w, r, log)
	if !ok {
		return
	}

	results, err := h.studyService.GetQuizResults(r.Context(), tenant)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, results)
}
