package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/wortle/wortle-server/internal/dependencies/mocks"
	"github.com/wortle/wortle-server/internal/model"
	"github.com/wortle/wortle-server/internal/storage/memory"
	"github.com/wortle/wortle-server/internal/testutil"
)

// stubVerifier returns a fixed identity for any token
type stubVerifier struct {
	identity *Identity
	err      error
}

func (v *stubVerifier) Verify(ctx context.Context, accessToken string) (*Identity, error) {
	if v.err != nil {
		return nil, v.err
	}
	return v.identity, nil
}

func strptr(s string) *string {
	return &s
}

type ServiceSuite struct {
	suite.Suite
	store    *memory.Storage
	random   *mocks.MockRandom
	verifier *stubVerifier
	service  *Service
	ctx      context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.store = memory.New()
	s.random = mocks.NewMockRandom()
	s.verifier = &stubVerifier{
		identity: &Identity{
			Subject: "google-sub-1",
			Email:   strptr("player@example.com"),
			Name:    strptr("Player One"),
		},
	}
	s.service = New(s.verifier, s.store, NewDisplayNameGenerator(s.random), testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestFirstLoginCreatesProfile() {
	s.random.QueueIntn(2, 123)

	profile, err := s.service.Resolve(s.ctx, "token")
	s.Require().NoError(err)
	s.NotEmpty(profile.ID)
	s.Equal("google-sub-1", profile.ProviderSubject)
	s.Equal("ular#0123", profile.DisplayName)
	s.Equal(0, profile.TotalScore)
	s.Require().NotNil(profile.Email)
	s.Equal("player@example.com", *profile.Email)
}

func (s *ServiceSuite) TestRepeatLoginIsIdempotent() {
	s.random.QueueIntn(2, 123)

	first, err := s.service.Resolve(s.ctx, "token")
	s.Require().NoError(err)

	second, err := s.service.Resolve(s.ctx, "token")
	s.Require().NoError(err)
	s.Equal(first.ID, second.ID)
	s.Equal(first.DisplayName, second.DisplayName)
}

func (s *ServiceSuite) TestRepeatLoginRefreshesProviderFields() {
	s.random.QueueIntn(2, 123)

	_, err := s.service.Resolve(s.ctx, "token")
	s.Require().NoError(err)

	// Provider claims changed since the first login
	s.verifier.identity = &Identity{
		Subject: "google-sub-1",
		Email:   strptr("renamed@example.com"),
		Picture: strptr("https://example.com/new.png"),
	}

	profile, err := s.service.Resolve(s.ctx, "token")
	s.Require().NoError(err)
	s.Require().NotNil(profile.Email)
	s.Equal("renamed@example.com", *profile.Email)
	s.Nil(profile.Name)
	s.Require().NotNil(profile.Picture)
	s.Equal("https://example.com/new.png", *profile.Picture)

	// Identity and progress survive the refresh
	s.Equal("ular#0123", profile.DisplayName)
	s.Equal(0, profile.TotalScore)
}

func (s *ServiceSuite) TestVerifierErrorPropagates() {
	s.verifier.err = ErrProviderRejected

	_, err := s.service.Resolve(s.ctx, "bad-token")
	s.ErrorIs(err, ErrProviderRejected)
}

func (s *ServiceSuite) TestLostInsertRaceReturnsExistingProfile() {
	racing := &racingStore{Storage: s.store}
	s.service = New(s.verifier, racing, NewDisplayNameGenerator(s.random), testutil.NopLogger())

	profile, err := s.service.Resolve(s.ctx, "token")
	s.Require().NoError(err)
	s.Equal("panda#0001", profile.DisplayName, "the winning insert's profile is returned")
	s.Require().NotNil(profile.Email)
	s.Equal("player@example.com", *profile.Email)
}

// racingStore simulates a concurrent first login: the first insert is
// beaten to the store by a competing request for the same subject
type racingStore struct {
	*memory.Storage
	raced bool
}

func (s *racingStore) InsertPlayer(ctx context.Context, profile *model.PlayerProfile) error {
	if !s.raced {
		s.raced = true
		competitor := &model.PlayerProfile{
			ProviderSubject: profile.ProviderSubject,
			DisplayName:     "panda#0001",
		}
		if err := s.Storage.InsertPlayer(ctx, competitor); err != nil {
			return err
		}
	}
	return s.Storage.InsertPlayer(ctx, profile)
}
