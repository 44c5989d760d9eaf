// Package facts defines the fixed multiplication fact universe.
package facts

import "fmt"

const (
	// MinFactor is the smallest factor in the practice range.
	MinFactor = 2

	// MaxFactor is the largest factor in the practice range.
	MaxFactor = 12

	// Count is the total number of facts in the universe.
	Count = (MaxFactor - MinFactor + 1) * (MaxFactor - MinFactor + 1)
)

// Fact is an ordered factor pair. The universe is fixed at startup;
// facts are never created or destroyed at runtime.
type Fact struct {
	N int
	M int
}

// Key returns the canonical stats key for the fact, e.g. "7x8".
func (f Fact) Key() string {
	return fmt.Sprintf("%dx%d", f.N, f.M)
}

// Answer returns the product.
func (f Fact) Answer() int {
	return f.N * f.M
}

// String returns the human-readable question form, e.g. "7 × 8".
func (f Fact) String() string {
	return fmt.Sprintf("%d × %d", f.N, f.M)
}

// All enumerates the full universe in canonical order:
// N ascending, then M ascending. Selection and board layout both
// depend on this ordering being stable.
func All() []Fact {
	out := make([]Fact, 0, Count)
	for n := MinFactor; n <= MaxFactor; n++ {
		for m := MinFactor; m <= MaxFactor; m++ {
			out = append(out, Fact{N: n, M: m})
		}
	}
	return out
}
