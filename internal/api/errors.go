package api

import (
	"errors"
	"net/http"

	"github.com/quillstudy/quill-api/internal/domain"
	"github.com/quillstudy/quill-api/internal/domain/srs"
	"github.com/quillstudy/quill-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case store.IsAlreadyExistsError(err):
		return http.StatusConflict

	// Validation errors from the domain layer
	case errors.Is(err, domain.ErrProfileNameEmpty),
		errors.Is(err, domain.ErrInvalidPersonalityMode),
		errors.Is(err, domain.ErrChatTitleEmpty),
		errors.Is(err, domain.ErrInvalidMessageRole),
		errors.Is(err, domain.ErrMessageContentEmpty),
		errors.Is(err, domain.ErrNoteTitleEmpty),
		errors.Is(err, domain.ErrDeckNameEmpty),
		errors.Is(err, domain.ErrCardFrontEmpty),
		errors.Is(err, domain.ErrInvalidInterval),
		errors.Is(err, domain.ErrInvalidEaseFactor),
		errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrGoalTitleEmpty),
		errors.Is(err, domain.ErrQuizSubjectEmpty),
		errors.Is(err, domain.ErrInvalidQuizScore),
		errors.Is(err, domain.ErrProgressSubjectEmpty),
		errors.Is(err, domain.ErrInvalidMastery),
		errors.Is(err, srs.ErrInvalidRating),
		errors.Is(err, srs.ErrNegativeState),
		errors.Is(err, srs.ErrEaseBelowFloor):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Not found errors
	case errors.Is(err, store.ErrProfileNotFound):
		return "Profile not found"

	case errors.Is(err, store.ErrChatSessionNotFound):
		return "Chat session not found"

	case errors.Is(err, store.ErrNoteNotFound):
		return "Note not found"

	case errors.Is(err, store.ErrDeckNotFound):
		return "Deck not found"

	case errors.Is(err, store.ErrCardNotFound):
		return "Card not found"

	case errors.Is(err, store.ErrGoalNotFound):
		return "Goal not found"

	case store.IsNotFoundError(err):
		return "Resource not found"

	// Conflict errors
	case errors.Is(err, store.ErrProfileExists):
		return "Profile already exists"

	case store.IsAlreadyExistsError(err):
		return "Resource already exists"

	// Validation errors carry no internal detail, so their own text is safe
	// to show to the client.
	case MapErrorToStatusCode(err) == http.StatusBadRequest:
		return err.Error()

	// Default case for unknown errors
	default:
		return "An unexpected error occurred"
	}
}
