package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/quillstudy/quill-api/internal/domain"
	"github.com/quillstudy/quill-api/internal/store"
)

// CreateProfile creates the tenant's profile.
// Returns store.ErrProfileExists if the tenant already has one.
func (s *Service) CreateProfile(
	ctx context.Context,
	tenant string,
	displayName string,
	mode domain.PersonalityMode,
	language string,
) (*domain.Profile, error) {
	defer s.lockTenant(tenant)()

	_, err := getRecord[domain.Profile](ctx, s.kv, tenant, store.CollectionProfiles, profileKey)
	if err == nil {
		return nil, store.ErrProfileExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing profile: %w", err)
	}

	profile, err := domain.NewProfile(displayName, mode, language, s.now())
	if err != nil {
		return nil, err
	}

	if err := putRecord(ctx, s.kv, tenant, store.CollectionProfiles, profileKey, profile); err != nil {
		return nil, err
	}

	s.logger.Info("profile created", slog.String("display_name", displayName))
	return profile, nil
}

// UpdateProfile replaces all profile fields except the creation time.
// Returns store.ErrProfileNotFound if the tenant has no profile yet.
func (s *Service) UpdateProfile(
	ctx context.Context,
	tenant string,
	displayName string,
	mode domain.PersonalityMode,
	language string,
) (*domain.Profile, error) {
	defer s.lockTenant(tenant)()

	profile, err := getRecord[domain.Profile](ctx, s.kv, tenant, store.CollectionProfiles, profileKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrProfileNotFound
		}
		return nil, err
	}

	if err := profile.Update(displayName, mode, language); err != nil {
		return nil, err
	}

	if err := putRecord(ctx, s.kv, tenant, store.CollectionProfiles, profileKey, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// GetProfile returns the tenant's profile.
// Returns store.ErrProfileNotFound if none exists.
func (s *Service) GetProfile(ctx context.Context, tenant string) (*domain.Profile, error) {
	defer s.lockTenant(tenant)()

	profile, err := getRecord[domain.Profile](ctx, s.kv, tenant, store.CollectionProfiles, profileKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}
