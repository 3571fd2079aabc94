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

// DeckHandler handles flashcard deck and review HTTP requests.
type DeckHandler struct {
	studyService *study.Service
	logger       *slog.Logger
}

// NewDeckHandler creates a new DeckHandler.
func NewDeckHandler(studyService *study.Service, logger *slog.Logger) *DeckHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for DeckHandler")
	}

	return &DeckHandler{
		studyService: studyService,
		logger:       logger.With(slog.String("component", "deck_handler")),
	}
}

// CreateDeck handles POST /decks requests.
func (h *DeckHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tenant, ok := tenantFromRequest(w, r, log)
	if !ok {
		return
	}

	var req CreateDeckRequest
	if !decodeAndValidate(w, r, log, &req) {
		return
	}

	deck, err := h.studyService.CreateDeck(r.Context(), tenant, req.Name, req.Subject)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("deck created", slog.String("deck_id", deck.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, deckToResponse(*deck))
}

// ListDecks handles GET /decks requests. Decks are returned in creation
// order.
func (h *DeckHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tenant, ok := tenantFromRequest(w, r, log)
	if !ok {
		return
	}

	decks, err := h.studyService.GetDecks(r.Context(), tenant)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	responses := make([]DeckResponse, 0, len(decks))
	for _, deck := range decks {
		responses = append(responses, deckToResponse(deck))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// AddCard handles POST /decks/{deckID}/cards requests. Adding to an unknown
// deck returns 404.
func (h *DeckHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tenant, ok := tenantFromRequest(w, r, log)
	if !ok {
		return
	}

	deckID := chi.URLParam(r, "deckID")
	if deckID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Deck ID is required")
		return
	}

	var req AddCardRequest
	if !decodeAndValidate(w, r, log, &req) {
		return
	}

	card, err := h.studyService.AddCard(r.Context(), tenant, deckID, req.Front, req.Back)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, card)
}

// ListDeckCards handles GET /decks/{deckID}/cards requests.
func (h *DeckHandler) ListDeckCards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tenant, ok := tenantFromRequest(w, r, log)
	if !ok {
		return
	}

	deckID := chi.URLParam(r, "deckID")
	if deckID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Deck ID is required")
		return
	}

	cards, err := h.studyService.GetDeckCards(r.Context(), tenant, deckID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cards)
}

// ReviewCard handles POST /decks/{deckID}/cards/{cardID}/review requests.
// The server computes the new schedule from the qualitative rating; the
// client never supplies interval or ease numbers on this path. An unknown
// card returns 404.
func (h *DeckHandler) ReviewCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tenant, ok := tenantFromRequest(w, r, log)
	if !ok {
		return
	}

	deckID := chi.URLParam(r, "deckID")
	cardID := chi.URLParam(r, "cardID")
	if deckID == "" || cardID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Deck ID and card ID are required")
		return
	}

	var req ReviewCardRequest
	if !decodeAndValidate(w, r, log, &req) {
		return
	}

	card, err := h.studyService.ReviewCard(r.Context(), tenant, deckID, cardID, domain.ReviewRating(req.Rating))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("card reviewed",
		slog.String("card_id", cardID),
		slog.String("rating", req.Rating),
		slog.Int("interval", card.Interval))
	shared.RespondWithJSON(w, r, http.StatusOK, card)
}

// UpdateCardSchedule handles PUT /decks/{deckID}/cards/{cardID}/schedule
// requests, the legacy review path where the client supplies the computed
// schedule. Unlike ReviewCard, an unknown card is absorbed and still returns
// 204; only an unknown deck returns 404.
func (h *DeckHandler) UpdateCardSchedule(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tenant, ok := tenantFromRequest(w, r, log)
	if !ok {
		return
	}

	deckID := chi.URLParam(r, "deckID")
	cardID := chi.URLParam(r, "cardID")
	if deckID == "" || cardID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Deck ID and card ID are required")
		return
	}

	var req UpdateCardScheduleRequest
	if !decodeAndValidate(w, r, log, &req) {
		return
	}

	err := h.studyService.UpdateCardReview(r.Context(), tenant, deckID, cardID, req.Interval, req.EaseFactor)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
