package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillstudy/quill-api/internal/domain"
)

// createDeckWithCard creates a deck holding one card and returns both IDs.
func createDeckWithCard(t *testing.T, handler *DeckHandler, tenant string) (string, string) {
	t.Helper()

	rr := httptest.NewRecorder()
	handler.CreateDeck(rr, newAuthedRequest(t, http.MethodPost, "/api/decks", tenant,
		CreateDeckRequest{Name: "Go Basics", Subject: "golang"}, nil))
	require.Equal(t, http.StatusCreated, rr.Code)

	var deck DeckResponse
	decodeBody(t, rr, &deck)

	rr = httptest.NewRecorder()
	handler.AddCard(rr, newAuthedRequest(t, http.MethodPost, "/api/decks/"+deck.ID+"/cards", tenant,
		AddCardRequest{Front: "What does := do?", Back: "declare and assign"},
		map[string]string{"deckID": deck.ID}))
	require.Equal(t, http.StatusCreated, rr.Code)

	var card domain.Flashcard
	decodeBody(t, rr, &card)
	return deck.ID, card.ID
}

func TestDeckHandler_ReviewCard(t *testing.T) {
	t.Parallel()

	t.Run("good rating computes schedule server side", func(t *testing.T) {
		t.Parallel()
		handler := NewDeckHandler(newTestService(t), testLogger())
		deckID, cardID := createDeckWithCard(t, handler, "tenant-1")

		rr := httptest.NewRecorder()
		handler.ReviewCard(rr, newAuthedRequest(t, http.MethodPost,
			"/api/decks/"+deckID+"/cards/"+cardID+"/review", "tenant-1",
			ReviewCardRequest{Rating: "good"},
			map[string]string{"deckID": deckID, "cardID": cardID}))
		require.Equal(t, http.StatusOK, rr.Code)

		var card domain.Flashcard
		decodeBody(t, rr, &card)
		// A fresh card has interval 0 and the default ease factor; a good
		// review multiplies interval by ease and floors the product.
		assert.Equal(t, 0, card.Interval)
		assert.InDelta(t, domain.DefaultEaseFactor, card.EaseFactor, 1e-9)
	})

	t.Run("rejects unknown rating", func(t *testing.T) {
		t.Parallel()
		handler := NewDeckHandler(newTestService(t), testLogger())
		deckID, cardID := createDeckWithCard(t, handler, "tenant-1")

		rr := httptest.NewRecorder()
		handler.ReviewCard(rr, newAuthedRequest(t, http.MethodPost,
			"/api/decks/"+deckID+"/cards/"+cardID+"/review", "tenant-1",
			ReviewCardRequest{Rating: "perfect"},
			map[string]string{"deckID": deckID, "cardID": cardID}))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown card is a hard miss", func(t *testing.T) {
		t.Parallel()
		handler := NewDeckHandler(newTestService(t), testLogger())
		deckID, _ := createDeckWithCard(t, handler, "tenant-1")

		rr := httptest.NewRecorder()
		handler.ReviewCard(rr, newAuthedRequest(t, http.MethodPost,
			"/api/decks/"+deckID+"/cards/ghost/review", "tenant-1",
			ReviewCardRequest{Rating: "good"},
			map[string]string{"deckID": deckID, "cardID": "ghost"}))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestDeckHandler_UpdateCardSchedule(t *testing.T) {
	t.Parallel()

	t.Run("replaces the schedule", func(t *testing.T) {
		t.Parallel()
		handler := NewDeckHandler(newTestService(t), testLogger())
		deckID, cardID := createDeckWithCard(t, handler, "tenant-1")

		rr := httptest.NewRecorder()
		handler.UpdateCardSchedule(rr, newAuthedRequest(t, http.MethodPut,
			"/api/decks/"+deckID+"/cards/"+cardID+"/schedule", "tenant-1",
			UpdateCardScheduleRequest{Interval: 6, EaseFactor: 2.6},
			map[string]string{"deckID": deckID, "cardID": cardID}))
		require.Equal(t, http.StatusNoContent, rr.Code)

		rr = httptest.NewRecorder()
		handler.ListDeckCards(rr, newAuthedRequest(t, http.MethodGet,
			"/api/decks/"+deckID+"/cards", "tenant-1", nil,
			map[string]string{"deckID": deckID}))
		require.Equal(t, http.StatusOK, rr.Code)

		var cards []domain.Flashcard
		decodeBody(t, rr, &cards)
		require.Len(t, cards, 1)
		assert.Equal(t, 6, cards[0].Interval)
		assert.InDelta(t, 2.6, cards[0].EaseFactor, 1e-9)
	})

	t.Run("unknown card is absorbed", func(t *testing.T) {
		t.Parallel()
		handler := NewDeckHandler(newTestService(t), testLogger())
		deckID, _ := createDeckWithCard(t, handler, "tenant-1")

		rr := httptest.NewRecorder()
		handler.UpdateCardSchedule(rr, newAuthedRequest(t, http.MethodPut,
			"/api/decks/"+deckID+"/cards/ghost/schedule", "tenant-1",
			UpdateCardScheduleRequest{Interval: 6, EaseFactor: 2.6},
			map[string]string{"deckID": deckID, "cardID": "ghost"}))
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("unknown deck is a hard miss", func(t *testing.T) {
		t.Parallel()
		handler := NewDeckHandler(newTestService(t), testLogger())

		rr := httptest.NewRecorder()
		handler.UpdateCardSchedule(rr, newAuthedRequest(t, http.MethodPut,
			"/api/decks/ghost/cards/ghost/schedule", "tenant-1",
			UpdateCardScheduleRequest{Interval: 6, EaseFactor: 2.6},
			map[string]string{"deckID": "ghost", "cardID": "ghost"}))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("rejects ease factor below floor", func(t *testing.T) {
		t.Parallel()
		handler := NewDeckHandler(newTestService(t), testLogger())
		deckID, cardID := createDeckWithCard(t, handler, "tenant-1")

		rr := httptest.NewRecorder()
		handler.UpdateCardSchedule(rr, newAuthedRequest(t, http.MethodPut,
			"/api/decks/"+deckID+"/cards/"+cardID+"/schedule", "tenant-1",
			UpdateCardScheduleRequest{Interval: 6, EaseFactor: 1.0},
			map[string]string{"deckID": deckID, "cardID": cardID}))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeckHandler_ListDecks(t *testing.T) {
	t.Parallel()

	handler := NewDeckHandler(newTestService(t), testLogger())
	createDeckWithCard(t, handler, "tenant-1")

	rr := httptest.NewRecorder()
	handler.ListDecks(rr, newAuthedRequest(t, http.MethodGet, "/api/decks", "tenant-2", nil, nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var decks []DeckResponse
	decodeBody(t, rr, &decks)
	assert.Empty(t, decks, "decks must not leak across tenants")
}
