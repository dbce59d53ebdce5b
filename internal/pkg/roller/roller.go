// Package roller adapts rpg-toolkit dice rollers to the uniform integer draws the
// dungeon engine needs, and provides a seeded roller for reproducible runs.
package roller

import (
	"math/rand/v2"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-textquest/internal/errors"
)

// Seeded is a deterministic dice.Roller. Two rollers built from the same seed
// produce the same sequence.
type Seeded struct {
	rng *rand.Rand
}

// NewSeeded creates a deterministic roller
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

var _ dice.Roller = (*Seeded)(nil)

// Roll returns a value in [1, size]
func (s *Seeded) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive: %d", size)
	}
	return s.rng.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size
func (s *Seeded) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("dice count must not be negative: %d", count)
	}
	results := make([]int, count)
	for i := range results {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}

// Between draws a uniform integer from the inclusive range [lo, hi].
// A range with hi < lo is rejected.
func Between(r dice.Roller, lo, hi int) (int, error) {
	if hi < lo {
		return 0, errors.InvalidArgumentf("empty range [%d, %d]", lo, hi)
	}
	v, err := r.Roll(hi - lo + 1)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll")
	}
	return lo + v - 1, nil
}

// Percent draws a uniform integer from [0, 100)
func Percent(r dice.Roller) (int, error) {
	return Between(r, 0, 99)
}
