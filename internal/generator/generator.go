// Package generator builds typing text sequences.
package generator

import (
	"errors"
	"math/rand"
	"time"
)

// ErrNoWords is returned when a sample is requested from an empty word list.
var ErrNoWords = errors.New("word list is empty")

// Generator produces randomized typing text.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewWithSeed returns a Generator with a fixed seed.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Sample selects min(count, len(words)) distinct words uniformly at random
// without replacement, in randomized order.
func (g *Generator) Sample(words []string, count int) ([]string, error) {
	if count <= 0 {
		return nil, nil
	}
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	perm := g.rnd.Perm(len(words))
	if count > len(words) {
		count = len(words)
	}
	result := make([]string, 0, count)
	for _, idx := range perm[:count] {
		result = append(result, words[idx])
	}
	return result, nil
}
