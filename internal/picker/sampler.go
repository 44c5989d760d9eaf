package picker

import (
	"errors"
	"math/rand"
	"time"

	"github.com/abhisek/multiz/internal/facts"
)

// ErrNoFacts is returned when sampling from an empty fact set. With the
// fixed universe this indicates a programming error in the caller.
var ErrNoFacts = errors.New("no facts available for selection")

// WeightedFact pairs a fact with its sampling weight.
type WeightedFact struct {
	Fact   facts.Fact
	Weight int
}

// Sampler draws facts proportionally to their weights.
type Sampler struct {
	rnd *rand.Rand
}

// New returns a Sampler seeded with the current time.
func New() *Sampler {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand returns a Sampler using the given source, for deterministic
// tests.
func NewWithRand(rnd *rand.Rand) *Sampler {
	return &Sampler{rnd: rnd}
}

// SelectOne draws a single fact proportionally to weight. Candidates are
// walked in the order given, which callers keep in canonical universe
// order. A zero total weight degrades to a uniform draw.
func (s *Sampler) SelectOne(candidates []WeightedFact) (facts.Fact, error) {
	if len(candidates) == 0 {
		return facts.Fact{}, ErrNoFacts
	}
	if len(candidates) == 1 {
		return candidates[0].Fact, nil
	}

	total := 0
	for _, c := range candidates {
		total += c.Weight
	}
	if total == 0 {
		return candidates[s.rnd.Intn(len(candidates))].Fact, nil
	}

	r := s.rnd.Float64() * float64(total)
	for _, c := range candidates {
		r -= float64(c.Weight)
		if r <= 0 {
			return c.Fact, nil
		}
	}

	// Float drift can leave a hair of remainder after the walk.
	return candidates[len(candidates)-1].Fact, nil
}

// SelectMany draws count facts with replacement; repeats are expected.
func (s *Sampler) SelectMany(candidates []WeightedFact, count int) ([]facts.Fact, error) {
	selected := make([]facts.Fact, 0, count)
	for i := 0; i < count; i++ {
		f, err := s.SelectOne(candidates)
		if err != nil {
			return nil, err
		}
		selected = append(selected, f)
	}
	return selected, nil
}
