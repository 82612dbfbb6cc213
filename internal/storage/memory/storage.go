package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wortle/wortle-server/internal/model"
	"github.com/wortle/wortle-server/internal/storage"
)

// Storage is an in-memory implementation of the player store.
// Intended for tests and single-instance local development.
type Storage struct {
	mu sync.RWMutex

	players      map[model.PlayerID]*model.PlayerProfile
	subjectIndex map[string]model.PlayerID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:      make(map[model.PlayerID]*model.PlayerProfile),
		subjectIndex: make(map[string]model.PlayerID),
	}
}

// Ensure Storage implements the interface
var _ storage.PlayerStore = (*Storage)(nil)

func (s *Storage) GetPlayerBySubject(ctx context.Context, subject string) (*model.PlayerProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.subjectIndex[subject]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}

	copied := *s.players[id]
	return &copied, nil
}

func (s *Storage) InsertPlayer(ctx context.Context, profile *model.PlayerProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subjectIndex[profile.ProviderSubject]; ok {
		return model.ErrPlayerExists
	}

	profile.ID = model.PlayerID(uuid.NewString())
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	copied := *profile
	s.players[profile.ID] = &copied
	s.subjectIndex[profile.ProviderSubject] = profile.ID
	return nil
}

func (s *Storage) UpdateProfileFields(ctx context.Context, id model.PlayerID, email, name, picture *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.players[id]
	if !ok {
		return model.ErrPlayerNotFound
	}

	profile.Email = email
	profile.Name = name
	profile.Picture = picture
	profile.UpdatedAt = time.Now()
	return nil
}

// Close is a no-op for the in-memory store
func (s *Storage) Close() error {
	return nil
}
