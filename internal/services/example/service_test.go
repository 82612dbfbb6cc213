package example

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/wortle/wortle-server/internal/cache"
	cachememory "github.com/wortle/wortle-server/internal/cache/memory"
	"github.com/wortle/wortle-server/internal/dependencies/mocks"
	"github.com/wortle/wortle-server/internal/model"
	"github.com/wortle/wortle-server/internal/ratelimit"
	limitermemory "github.com/wortle/wortle-server/internal/ratelimit/memory"
	"github.com/wortle/wortle-server/internal/testutil"
)

// fakeGenerator counts calls and returns a canned result per word
type fakeGenerator struct {
	calls   int
	results map[string]*Result
	err     error
}

func (g *fakeGenerator) Generate(ctx context.Context, word string) (*Result, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	if result, ok := g.results[word]; ok {
		return result, nil
	}
	return &Result{
		Example: model.Example{German: "Satz mit " + word + ".", Translation: "Kalimat."},
		Source:  SourceJSON,
	}, nil
}

type ServiceSuite struct {
	suite.Suite
	clock     *mocks.MockClock
	generator *fakeGenerator
	service   *Service
	ctx       context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.generator = &fakeGenerator{results: map[string]*Result{}}
	s.service = New(
		limitermemory.New(ratelimit.DefaultConfig(), s.clock),
		cachememory.New(),
		s.generator,
		testutil.NopLogger(),
	)
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestGeneratesOnMiss() {
	example, fromCache, err := s.service.Example(s.ctx, "1.2.3.4", "Haus")
	s.Require().NoError(err)
	s.False(fromCache)
	s.Equal("Satz mit Haus.", example.German)
	s.Equal(1, s.generator.calls)
}

func (s *ServiceSuite) TestServesRepeatFromCache() {
	_, fromCache, err := s.service.Example(s.ctx, "1.2.3.4", "Haus")
	s.Require().NoError(err)
	s.False(fromCache)

	example, fromCache, err := s.service.Example(s.ctx, "1.2.3.4", "Haus")
	s.Require().NoError(err)
	s.True(fromCache)
	s.Equal("Satz mit Haus.", example.German)
	s.Equal(1, s.generator.calls, "cache hit must not reach the generator")
}

func (s *ServiceSuite) TestCacheKeyIsCaseFolded() {
	_, _, err := s.service.Example(s.ctx, "1.2.3.4", "Haus")
	s.Require().NoError(err)

	example, fromCache, err := s.service.Example(s.ctx, "1.2.3.4", "haus")
	s.Require().NoError(err)
	s.True(fromCache)
	s.Equal("Satz mit Haus.", example.German)
	s.Equal(1, s.generator.calls)
}

func (s *ServiceSuite) TestRateLimitAppliesBeforeCache() {
	// Prime the cache, then exhaust the window
	_, _, err := s.service.Example(s.ctx, "1.2.3.4", "Haus")
	s.Require().NoError(err)
	for i := 0; i < 9; i++ {
		_, _, err := s.service.Example(s.ctx, "1.2.3.4", "Haus")
		s.Require().NoError(err)
	}

	// Cached or not, the eleventh request in the window is rejected
	_, _, err = s.service.Example(s.ctx, "1.2.3.4", "Haus")
	s.ErrorIs(err, model.ErrRateLimited)
	s.Equal(1, s.generator.calls)
}

func (s *ServiceSuite) TestRateLimitRecoversAfterWindow() {
	for i := 0; i < 10; i++ {
		_, _, err := s.service.Example(s.ctx, "1.2.3.4", "Haus")
		s.Require().NoError(err)
	}
	_, _, err := s.service.Example(s.ctx, "1.2.3.4", "Haus")
	s.ErrorIs(err, model.ErrRateLimited)

	s.clock.Advance(61 * time.Second)
	_, fromCache, err := s.service.Example(s.ctx, "1.2.3.4", "Haus")
	s.Require().NoError(err)
	s.True(fromCache)
}

func (s *ServiceSuite) TestGeneratorErrorPropagates() {
	s.generator.err = errors.New("upstream exploded")

	_, _, err := s.service.Example(s.ctx, "1.2.3.4", "Haus")
	s.Require().Error(err)
	s.Contains(err.Error(), "upstream exploded")
}

func (s *ServiceSuite) TestGeneratorErrorIsNotCached() {
	s.generator.err = errors.New("upstream exploded")
	_, _, err := s.service.Example(s.ctx, "1.2.3.4", "Haus")
	s.Require().Error(err)

	s.generator.err = nil
	example, fromCache, err := s.service.Example(s.ctx, "1.2.3.4", "Haus")
	s.Require().NoError(err)
	s.False(fromCache)
	s.Equal("Satz mit Haus.", example.German)
}

func (s *ServiceSuite) TestBrokenCacheDegradesToMiss() {
	s.service = New(
		limitermemory.New(ratelimit.DefaultConfig(), s.clock),
		&brokenCache{},
		s.generator,
		testutil.NopLogger(),
	)

	example, fromCache, err := s.service.Example(s.ctx, "1.2.3.4", "Haus")
	s.Require().NoError(err)
	s.False(fromCache)
	s.Equal("Satz mit Haus.", example.German)
}

// brokenCache fails every operation
type brokenCache struct{}

var _ cache.Cache = (*brokenCache)(nil)

func (c *brokenCache) Get(ctx context.Context, key string) (*model.Example, error) {
	return nil, errors.New("cache backend down")
}

func (c *brokenCache) Put(ctx context.Context, key string, example *model.Example) error {
	return errors.New("cache backend down")
}
