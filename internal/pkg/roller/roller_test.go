package roller_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-textquest/internal/errors"
	"github.com/KirkDiggler/rpg-textquest/internal/pkg/roller"
)

func TestSeeded_IsDeterministic(t *testing.T) {
	a := roller.NewSeeded(42)
	b := roller.NewSeeded(42)

	for i := 0; i < 100; i++ {
		va, err := a.Roll(20)
		require.NoError(t, err)
		vb, err := b.Roll(20)
		require.NoError(t, err)
		assert.Equal(t, va, vb)
	}
}

func TestSeeded_RollBounds(t *testing.T) {
	r := roller.NewSeeded(7)

	for i := 0; i < 1000; i++ {
		v, err := r.Roll(6)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 6)
	}

	_, err := r.Roll(0)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestSeeded_RollN(t *testing.T) {
	r := roller.NewSeeded(7)

	values, err := r.RollN(4, 6)
	require.NoError(t, err)
	assert.Len(t, values, 4)

	_, err = r.RollN(-1, 6)
	assert.Error(t, err)
}

func TestBetween(t *testing.T) {
	r := roller.NewSeeded(99)
	seen := make(map[int]bool)

	for i := 0; i < 2000; i++ {
		v, err := roller.Between(r, -3, 3)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, -3)
		assert.LessOrEqual(t, v, 3)
		seen[v] = true
	}
	assert.Len(t, seen, 7, "every value in the range should show up")

	v, err := roller.Between(r, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	_, err = roller.Between(r, 5, 4)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestPercent(t *testing.T) {
	r := roller.NewSeeded(1)
	for i := 0; i < 1000; i++ {
		v, err := roller.Percent(r)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 100)
	}
}
