package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wortle/wortle-server/internal/model"
	"github.com/wortle/wortle-server/internal/storage"
)

// Service resolves Google access tokens into durable player profiles
type Service struct {
	verifier Verifier
	store    storage.PlayerStore
	names    *DisplayNameGenerator
	logger   *slog.Logger
}

// New creates a new identity Service
func New(verifier Verifier, store storage.PlayerStore, names *DisplayNameGenerator, logger *slog.Logger) *Service {
	return &Service{
		verifier: verifier,
		store:    store,
		names:    names,
		logger:   logger,
	}
}

// Resolve verifies the access token and returns the player profile for
// its subject, creating the profile on first sight. Repeated calls for
// the same subject return the same profile ID and display name; only the
// provider-supplied fields are refreshed.
func (s *Service) Resolve(ctx context.Context, accessToken string) (*model.PlayerProfile, error) {
	verified, err := s.verifier.Verify(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	return s.upsert(ctx, verified)
}

func (s *Service) upsert(ctx context.Context, verified *Identity) (*model.PlayerProfile, error) {
	profile, err := s.store.GetPlayerBySubject(ctx, verified.Subject)
	if err == nil {
		return s.refresh(ctx, profile, verified)
	}
	if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, fmt.Errorf("player lookup failed: %w", err)
	}

	profile = &model.PlayerProfile{
		ProviderSubject: verified.Subject,
		Email:           verified.Email,
		Name:            verified.Name,
		Picture:         verified.Picture,
		DisplayName:     s.names.Generate(),
		TotalScore:      0,
	}

	err = s.store.InsertPlayer(ctx, profile)
	if err == nil {
		s.logger.Info("player created",
			slog.String("player_id", string(profile.ID)),
			slog.String("display_name", profile.DisplayName),
		)
		return profile, nil
	}

	// Lost a first-login race: the store's uniqueness constraint fired,
	// so another request inserted this subject first. Re-read and treat
	// as existing.
	if errors.Is(err, model.ErrPlayerExists) {
		existing, readErr := s.store.GetPlayerBySubject(ctx, verified.Subject)
		if readErr != nil {
			return nil, fmt.Errorf("player re-read after insert conflict failed: %w", readErr)
		}
		return s.refresh(ctx, existing, verified)
	}

	return nil, fmt.Errorf("player insert failed: %w", err)
}

// refresh overwrites the provider-supplied fields of an existing profile
// and returns it with display name and score untouched
func (s *Service) refresh(ctx context.Context, profile *model.PlayerProfile, verified *Identity) (*model.PlayerProfile, error) {
	if err := s.store.UpdateProfileFields(ctx, profile.ID, verified.Email, verified.Name, verified.Picture); err != nil {
		return nil, fmt.Errorf("player update failed: %w", err)
	}

	profile.Email = verified.Email
	profile.Name = verified.Name
	profile.Picture = verified.Picture
	return profile, nil
}
