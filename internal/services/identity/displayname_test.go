package identity

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wortle/wortle-server/internal/dependencies/mocks"
	"github.com/wortle/wortle-server/internal/dependencies/random"
)

func TestGenerateDeterministic(t *testing.T) {
	rnd := mocks.NewMockRandom()
	rnd.QueueIntn(1, 42)
	g := NewDisplayNameGenerator(rnd)

	assert.Equal(t, "panda#0042", g.Generate())
}

func TestGenerateZeroPadsNumeral(t *testing.T) {
	rnd := mocks.NewMockRandom()
	rnd.QueueIntn(0, 7)
	g := NewDisplayNameGenerator(rnd)

	assert.Equal(t, "kucing#0007", g.Generate())
}

func TestGenerateMatchesPattern(t *testing.T) {
	g := NewDisplayNameGenerator(random.New())
	pattern := regexp.MustCompile(`^(kucing|panda|ular|burung|ikan)#\d{4}$`)

	for i := 0; i < 50; i++ {
		name := g.Generate()
		assert.Regexp(t, pattern, name)
	}
}
