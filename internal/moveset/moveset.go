// Package moveset implements the cyclic beats-relation at the heart of the
// game: an ordered, odd-length set of distinct moves where each move is
// beaten by its successor in the cycle.
package moveset

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewMoves is returned for move sets smaller than three.
	ErrTooFewMoves = errors.New("at least 3 moves are required")
	// ErrEvenCount is returned for even-length move sets, which cannot
	// form a balanced cycle.
	ErrEvenCount = errors.New("the number of moves must be odd")
	// ErrDuplicateMove is returned when the same move appears twice.
	ErrDuplicateMove = errors.New("duplicate move")
)

// Outcome is the result of a round from the first player's perspective.
type Outcome int

const (
	Draw Outcome = iota
	Win
	Lose
)

// String returns the exact outcome literal shown to the player.
func (o Outcome) String() string {
	switch o {
	case Win:
		return "Win!"
	case Lose:
		return "Lose!"
	default:
		return "Draw!"
	}
}

// MoveSet is an ordered set of distinct moves. The order is fixed for the
// lifetime of a game and defines the cycle: moves[i] is beaten by
// moves[(i+1) % N].
type MoveSet struct {
	moves []string
	index map[string]int
}

// New validates the given move names and builds a MoveSet. The count must
// be odd and at least 3, and every name distinct. Validation failures are
// reported, never silently corrected.
func New(names []string) (*MoveSet, error) {
	if len(names) < 3 {
		return nil, fmt.Errorf("%w, got %d", ErrTooFewMoves, len(names))
	}
	if len(names)%2 == 0 {
		return nil, fmt.Errorf("%w, got %d", ErrEvenCount, len(names))
	}

	index := make(map[string]int, len(names))
	for i, name := range names {
		if _, ok := index[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateMove, name)
		}
		index[name] = i
	}

	moves := make([]string, len(names))
	copy(moves, names)
	return &MoveSet{moves: moves, index: index}, nil
}

// Len returns the number of moves N.
func (s *MoveSet) Len() int {
	return len(s.moves)
}

// Moves returns a copy of the moves in cycle order.
func (s *MoveSet) Moves() []string {
	out := make([]string, len(s.moves))
	copy(out, s.moves)
	return out
}

// Move returns the move at the given zero-based position.
func (s *MoveSet) Move(i int) string {
	return s.moves[i]
}

// Contains reports whether name is a member of the set.
func (s *MoveSet) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}

// BeatenBy returns the move that defeats the given move: its successor in
// the cycle. The relation is a bijection forming a single N-cycle.
func (s *MoveSet) BeatenBy(move string) string {
	i := s.index[move]
	return s.moves[(i+1)%len(s.moves)]
}

// DetermineWinner resolves a round from a's perspective. Win when b is the
// move a defeats, Lose when a is the move b defeats, Draw otherwise
// (including a == b). Pure: depends only on the set order and the pair.
// Both arguments must be members of the set.
func (s *MoveSet) DetermineWinner(a, b string) Outcome {
	switch {
	case s.BeatenBy(b) == a:
		return Win
	case s.BeatenBy(a) == b:
		return Lose
	default:
		return Draw
	}
}
