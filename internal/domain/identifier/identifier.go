package identifier

import (
	"encoding/hex"
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"
)

// Random returns a fresh version 4 UUID as 32 hex characters
func Random() string {
	return toHex(uuid.New())
}

// Deterministic returns the version 5 UUID of index within the DNS namespace,
// so the same index always yields the same identifier
func Deterministic(index int) string {
	return toHex(uuid.NewSHA1(uuid.NameSpaceDNS, []byte(strconv.Itoa(index))))
}

// Draw returns a uniform integer in [1, 100]
func Draw() int {
	return rand.IntN(100) + 1
}

// toHex renders id as 32 lowercase hex characters without dashes
func toHex(id uuid.UUID) string {
	return hex.EncodeToString(id[:])
}

// Kind tells which strategy produced an identifier
type Kind int

const (
	KindRandom Kind = iota
	KindDeterministic
)

func (k Kind) String() string {
	if k == KindDeterministic {
		return "deterministic"
	}
	return "random"
}

// Generator chooses between a random and a position-derived identifier for
// every message. Strategies are swappable for tests.
type Generator struct {
	Random        func() string
	Deterministic func(index int) string
	Draw          func() int
}

// NewGenerator returns a Generator backed by uuid and math/rand
func NewGenerator() *Generator {
	return &Generator{
		Random:        Random,
		Deterministic: Deterministic,
		Draw:          Draw,
	}
}

// For returns the identifier for the message at index.
//
// A collisionPercentage of 0 always yields a random identifier. Any other
// value draws in [1, 100] and picks random when the draw is <= collisionPercentage,
// deterministic otherwise.
func (g *Generator) For(index, collisionPercentage int) (string, Kind) {
	if collisionPercentage == 0 || g.Draw() <= collisionPercentage {
		return g.Random(), KindRandom
	}
	return g.Deterministic(index), KindDeterministic
}
