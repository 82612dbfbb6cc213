package identity

import (
	"fmt"

	"github.com/wortle/wortle-server/internal/dependencies/random"
)

// displayNameLabels is the fixed label set for generated player handles
var displayNameLabels = []string{"kucing", "panda", "ular", "burung", "ikan"}

// DisplayNameGenerator produces handles like "kucing#0042" for first-time
// players. Collisions are possible and accepted; the handle is cosmetic,
// not an identifier.
type DisplayNameGenerator struct {
	random random.Random
}

// NewDisplayNameGenerator creates a new DisplayNameGenerator
func NewDisplayNameGenerator(rnd random.Random) *DisplayNameGenerator {
	return &DisplayNameGenerator{random: rnd}
}

// Generate returns a random label plus a zero-padded four-digit numeral
func (g *DisplayNameGenerator) Generate() string {
	label := displayNameLabels[g.random.Intn(len(displayNameLabels))]
	return fmt.Sprintf("%s#%04d", label, g.random.Intn(10000))
}
