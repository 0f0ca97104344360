package moveset

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// ErrEmptyMoveSet is returned when picking from an empty set. Upstream
// validation keeps N >= 3, so this only guards direct misuse.
var ErrEmptyMoveSet = errors.New("move set is empty")

// IntSource supplies uniform integers in [0, n). Allows deterministic
// selection in tests; production picks go through crypto/rand.
type IntSource interface {
	Intn(n int) int
}

// Pick returns one move chosen uniformly at random using crypto/rand. The
// caller must not reveal the selection before committing to it.
func (s *MoveSet) Pick() (string, error) {
	if len(s.moves) == 0 {
		return "", ErrEmptyMoveSet
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(s.moves))))
	if err != nil {
		return "", fmt.Errorf("pick move: %w", err)
	}
	return s.moves[n.Int64()], nil
}

// PickWith returns one move using the provided source.
func (s *MoveSet) PickWith(src IntSource) (string, error) {
	if len(s.moves) == 0 {
		return "", ErrEmptyMoveSet
	}
	return s.moves[src.Intn(len(s.moves))], nil
}
