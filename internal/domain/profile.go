package domain

import (
	"errors"
	"time"
)

// PersonalityMode selects the assistant persona used when rendering replies.
type PersonalityMode string

// Supported personality modes.
const (
	PersonalityStrictTeacher PersonalityMode = "strict_teacher"
	PersonalityFriendly      PersonalityMode = "friendly"
	PersonalityProCoder      PersonalityMode = "pro_coder"
)

// Profile-specific validation errors
var (
	// ErrProfileNameEmpty is returned when a profile's display name is empty.
	ErrProfileNameEmpty = errors.New("profile display name cannot be empty")

	// ErrInvalidPersonalityMode is returned when the personality mode is not
	// one of the supported values.
	ErrInvalidPersonalityMode = errors.New("invalid personality mode")
)

// Profile holds a tenant's assistant preferences. Exactly one profile exists
// per tenant; CreatedAt is immutable after creation.
type Profile struct {
	DisplayName       string          `json:"display_name"`
	PersonalityMode   PersonalityMode `json:"personality_mode"`
	PreferredLanguage string          `json:"preferred_language"`
	CreatedAt         time.Time       `json:"created_at"`
}

// NewProfile creates a new Profile with CreatedAt stamped from now.
// Returns an error if validation fails.
func NewProfile(displayName string, mode PersonalityMode, language string, now time.Time) (*Profile, error) {
	p := &Profile{
		DisplayName:       displayName,
		PersonalityMode:   mode,
		PreferredLanguage: language,
		CreatedAt:         now.UTC(),
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks if the Profile has valid data.
func (p *Profile) Validate() error {
	if p.DisplayName == "" {
		return ErrProfileNameEmpty
	}

	switch p.PersonalityMode {
	case PersonalityStrictTeacher, PersonalityFriendly, PersonalityProCoder:
	default:
		return ErrInvalidPersonalityMode
	}

	return nil
}

// Update replaces all mutable fields, leaving CreatedAt untouched.
// Returns an error if the new values are invalid.
func (p *Profile) Update(displayName string, mode PersonalityMode, language string) error {
	updated := &Profile{
		DisplayName:       displayName,
		PersonalityMode:   mode,
		PreferredLanguage: language,
		CreatedAt:         p.CreatedAt,
	}

	if err := updated.Validate(); err != nil {
		return err
	}

	*p = *updated
	return nil
}
