package study

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/quillstudy/quill-api/internal/domain"
	"github.com/quillstudy/quill-api/internal/store"
)

// CreateDeck creates a new flashcard deck with an empty card list.
func (s *Service) CreateDeck(ctx context.Context, tenant, name, subject string) (*domain.FlashcardDeck, error) {
	defer s.lockTenant(tenant)()

	deck, err := domain.NewFlashcardDeck(name, subject, s.now())
	if err != nil {
		return nil, err
	}

	if err := putRecord(ctx, s.kv, tenant, store.CollectionDecks, deck.ID, deck); err != nil {
		return nil, err
	}
	return deck, nil
}

// AddCard appends a new card with default scheduling values to the deck.
// Returns store.ErrDeckNotFound if the deck does not exist.
func (s *Service) AddCard(ctx context.Context, tenant, deckID, front, back string) (*domain.Flashcard, error) {
	defer s.lockTenant(tenant)()

	deck, err := s.getDeck(ctx, tenant, deckID)
	if err != nil {
		return nil, err
	}

	card, err := deck.AddCard(front, back, s.now())
	if err != nil {
		return nil, err
	}

	if err := putRecord(ctx, s.kv, tenant, store.CollectionDecks, deckID, deck); err != nil {
		return nil, err
	}
	return card, nil
}

// GetDecks returns all of the tenant's decks, oldest first.
func (s *Service) GetDecks(ctx context.Context, tenant string) ([]domain.FlashcardDeck, error) {
	defer s.lockTenant(tenant)()

	decks, err := listRecords[domain.FlashcardDeck](ctx, s.kv, tenant, store.CollectionDecks)
	if err != nil {
		return nil, err
	}

	// Entity IDs carry a nanosecond timestamp prefix, so the lexicographic
	// order of equal-length prefixes matches creation order closely enough
	// for a stable listing.
	sort.SliceStable(decks, func(i, j int) bool {
		return decks[i].ID < decks[j].ID
	})
	return decks, nil
}

// GetDeckCards returns the ordered cards of one deck.
// Returns store.ErrDeckNotFound if the deck does not exist.
func (s *Service) GetDeckCards(ctx context.Context, tenant, deckID string) ([]domain.Flashcard, error) {
	defer s.lockTenant(tenant)()

	deck, err := s.getDeck(ctx, tenant, deckID)
	if err != nil {
		return nil, err
	}
	return deck.Cards, nil
}

// UpdateCardReview replaces a card's schedule with caller-supplied values,
// recomputing the due time as now plus the interval in days.
//
// This is the legacy compatibility path: it trusts the client to have run
// the scheduler itself, which lets a hostile client assign itself arbitrary
// schedules. New clients should submit a rating through ReviewCard instead.
//
// Returns store.ErrDeckNotFound if the deck does not exist. A cardID with no
// match follows the lenient miss policy and leaves the deck unchanged.
func (s *Service) UpdateCardReview(
	ctx context.Context,
	tenant, deckID, cardID string,
	interval int,
	easeFactor float64,
) error {
	defer s.lockTenant(tenant)()

	deck, err := s.getDeck(ctx, tenant, deckID)
	if err != nil {
		return err
	}

	matched, err := deck.SetCardSchedule(cardID, interval, easeFactor, s.now())
	if err != nil {
		return err
	}
	if !matched {
		s.logger.Debug("card schedule update matched no card",
			slog.String("deck_id", deckID),
			slog.String("card_id", cardID))
		return nil
	}

	return putRecord(ctx, s.kv, tenant, store.CollectionDecks, deckID, deck)
}

// ReviewCard applies a qualitative review rating to a card, computing the new
// interval, ease factor, and due time with the review scheduler. This is the
// hardened review path; unlike UpdateCardReview it is strict about absence.
//
// Returns store.ErrDeckNotFound if the deck does not exist and
// store.ErrCardNotFound if the deck holds no such card.
func (s *Service) ReviewCard(
	ctx context.Context,
	tenant, deckID, cardID string,
	rating domain.ReviewRating,
) (*domain.Flashcard, error) {
	defer s.lockTenant(tenant)()

	deck, err := s.getDeck(ctx, tenant, deckID)
	if err != nil {
		return nil, err
	}

	card := deck.Card(cardID)
	if card == nil {
		return nil, store.ErrCardNotFound
	}

	sched, err := s.scheduler.Review(rating, card.Interval, card.EaseFactor, s.now())
	if err != nil {
		return nil, err
	}

	card.Interval = sched.Interval
	card.EaseFactor = sched.EaseFactor
	card.NextReview = sched.NextReview

	if err := putRecord(ctx, s.kv, tenant, store.CollectionDecks, deckID, deck); err != nil {
		return nil, err
	}

	reviewed := *card
	return &reviewed, nil
}

// getDeck loads one deck, translating generic absence into ErrDeckNotFound.
func (s *Service) getDeck(ctx context.Context, tenant, deckID string) (*domain.FlashcardDeck, error) {
	deck, err := getRecord[domain.FlashcardDeck](ctx, s.kv, tenant, store.CollectionDecks, deckID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrDeckNotFound
		}
		return nil, err
	}
	return deck, nil
}
