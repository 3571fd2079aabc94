package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quillstudy/quill-api/internal/api/shared"
	"github.com/quillstudy/quill-api/internal/platform/logger"
	"github.com/quillstudy/quill-api/internal/service/study"
)

// GoalHandler handles study-goal HTTP requests.
type GoalHandler struct {
	studyService *study.Service
	logger       *slog.Logger
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(studyService *study.Service, logger *slog.Logger) *GoalHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for GoalHandler")
	}

	return &GoalHandler{
		studyService: studyService,
		logger:       logger.With(slog.String("component", "goal_handler")),
	}
}

// CreateGoal handles POST /goals requests.
func (h *GoalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tenant, ok := tenantFromRequest(w, r, log)
	if !ok {
		return
	}

	var req CreateGoalRequest
	if !decodeAndValidate(w, r, log, &req) {
		return
	}

	goal, err := h.studyService.CreateGoal(r.Context(), tenant, req.Title, req.Description, req.TargetDate)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, goal)
}

// ListGoals handles GET /goals requests.
func (h *GoalHandler) ListGoals(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tenant, ok := tenantFromRequest(w, r, log)
	if !ok {
		return
	}

	goals, err := h.studyService.GetGoals(r.Context(), tenant)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, goals)
}

// CompleteGoal handles POST /goals/{goalID}/complete requests. Completion is
// idempotent; re-completing a goal returns the unchanged record.
func (h *GoalHandler) CompleteGoal(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tenant, ok := tenantFromRequest(w, r, log)
	if !ok {
		return
	}

	goalID := chi.URLParam(r, "goalID")
	if goalID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Goal ID is required")
		return
	}

	goal, err := h.studyService.CompleteGoal(r.Context(), tenant, goalID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, goal)
}
