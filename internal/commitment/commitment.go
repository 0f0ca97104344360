// Package commitment implements the commit-reveal primitive used to prove
// the computer's move was fixed before the player chose theirs.
//
// A fresh 256-bit key is drawn per round and an HMAC-SHA256 tag over the
// move is shown up front. Revealing the key after the player's choice lets
// them recompute the tag and confirm nothing changed.
package commitment

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
)

// KeySize is the secret key length in bytes (256 bits).
const KeySize = 32

// ErrEntropyUnavailable indicates the secure random source failed. Fatal:
// retrying a failed entropy read would undermine the fairness guarantee.
var ErrEntropyUnavailable = errors.New("secure random source unavailable")

// Key is a single-use secret. It must never be reused across rounds and is
// threaded explicitly through the round, never stored as ambient state.
type Key []byte

// NewKey draws a fresh key from crypto/rand.
func NewKey() (Key, error) {
	k := make(Key, KeySize)
	if _, err := rand.Read(k); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return k, nil
}

// String returns the display form of the key (uppercase hex).
func (k Key) String() string {
	return fmt.Sprintf("%X", []byte(k))
}

// Tag is a keyed authentication code over a message.
type Tag []byte

// String returns the display form of the tag (uppercase hex).
func (t Tag) String() string {
	return fmt.Sprintf("%X", []byte(t))
}

// ComputeTag returns HMAC-SHA256(key, message). Deterministic for a given
// key/message pair.
func ComputeTag(key Key, message string) Tag {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(message))
	return Tag(mac.Sum(nil))
}

// Commitment binds a secret key to the tag it produced over some message.
type Commitment struct {
	Key Key
	Tag Tag
}

// Commit generates a fresh key and tags the given message with it.
func Commit(message string) (Commitment, error) {
	key, err := NewKey()
	if err != nil {
		return Commitment{}, err
	}
	return Commitment{Key: key, Tag: ComputeTag(key, message)}, nil
}

// Verify recomputes the tag over message and compares it in constant time.
func (c Commitment) Verify(message string) bool {
	return hmac.Equal(c.Tag, ComputeTag(c.Key, message))
}
