package storage

import (
	"context"

	"github.com/wortle/wortle-server/internal/model"
)

// PlayerStore defines the interface for player profile persistence.
//
// Implementations must enforce uniqueness of ProviderSubject: InsertPlayer
// returns model.ErrPlayerExists when a profile for the subject already
// exists, which callers treat as "re-read and use the existing record"
// rather than as a failure. This is what makes concurrent first-time
// logins for the same subject safe.
type PlayerStore interface {
	// GetPlayerBySubject returns the profile for a provider subject,
	// or model.ErrPlayerNotFound.
	GetPlayerBySubject(ctx context.Context, subject string) (*model.PlayerProfile, error)

	// InsertPlayer creates a new profile. The store assigns profile.ID
	// before returning. Returns model.ErrPlayerExists if a profile with
	// the same ProviderSubject already exists.
	InsertPlayer(ctx context.Context, profile *model.PlayerProfile) error

	// UpdateProfileFields overwrites the provider-supplied mutable fields
	// (email, name, picture) of an existing profile. DisplayName and
	// TotalScore are never touched.
	UpdateProfileFields(ctx context.Context, id model.PlayerID, email, name, picture *string) error

	// Close releases any resources held by the store
	Close() error
}
