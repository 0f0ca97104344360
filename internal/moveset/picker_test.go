package moveset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource struct {
	values []int
	i      int
}

func (s *fixedSource) Intn(n int) int {
	v := s.values[s.i%len(s.values)] % n
	s.i++
	return v
}

func TestPickWithDeterministicSource(t *testing.T) {
	set, err := New([]string{"rock", "paper", "scissors"})
	require.NoError(t, err)

	src := &fixedSource{values: []int{2, 0, 1}}

	for _, want := range []string{"scissors", "rock", "paper"} {
		got, err := set.PickWith(src)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestPickEmptySet(t *testing.T) {
	empty := &MoveSet{}
	_, err := empty.Pick()
	assert.ErrorIs(t, err, ErrEmptyMoveSet)

	_, err = empty.PickWith(&fixedSource{values: []int{0}})
	assert.ErrorIs(t, err, ErrEmptyMoveSet)
}

func TestPickMembership(t *testing.T) {
	set, err := New([]string{"a", "b", "c", "d", "e"})
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		move, err := set.Pick()
		require.NoError(t, err)
		assert.True(t, set.Contains(move))
	}
}

func TestPickUniformity(t *testing.T) {
	set, err := New([]string{"rock", "paper", "scissors"})
	require.NoError(t, err)

	const trials = 30000
	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		move, err := set.Pick()
		require.NoError(t, err)
		counts[move]++
	}

	expected := float64(trials) / float64(set.Len())
	for _, move := range set.Moves() {
		deviation := math.Abs(float64(counts[move])-expected) / expected
		assert.Less(t, deviation, 0.05,
			"move %q picked %d times, expected ~%.0f", move, counts[move], expected)
	}
}
