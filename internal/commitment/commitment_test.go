package commitment

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeyProperties(t *testing.T) {
	key, err := NewKey()
	require.NoError(t, err)
	assert.Len(t, []byte(key), KeySize)

	// Display form is hex of the full key
	decoded, err := hex.DecodeString(strings.ToLower(key.String()))
	require.NoError(t, err)
	assert.Equal(t, []byte(key), decoded)
}

func TestNewKeyUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		key, err := NewKey()
		require.NoError(t, err)
		require.False(t, seen[key.String()], "key reuse across invocations")
		seen[key.String()] = true
	}
}

func TestComputeTagDeterministic(t *testing.T) {
	key, err := NewKey()
	require.NoError(t, err)

	first := ComputeTag(key, "rock")
	second := ComputeTag(key, "rock")
	assert.Equal(t, first.String(), second.String())
}

func TestComputeTagDependsOnKey(t *testing.T) {
	k1, err := NewKey()
	require.NoError(t, err)
	k2, err := NewKey()
	require.NoError(t, err)

	assert.NotEqual(t, ComputeTag(k1, "rock").String(), ComputeTag(k2, "rock").String())
}

func TestComputeTagDependsOnMessage(t *testing.T) {
	key, err := NewKey()
	require.NoError(t, err)

	assert.NotEqual(t, ComputeTag(key, "rock").String(), ComputeTag(key, "paper").String())
}

func TestCommitVerify(t *testing.T) {
	c, err := Commit("scissors")
	require.NoError(t, err)

	assert.True(t, c.Verify("scissors"))
	assert.False(t, c.Verify("rock"))
}

func TestKnownVector(t *testing.T) {
	// RFC 4231 test case 2: HMAC-SHA256("Jefe", "what do ya want for nothing?")
	tag := ComputeTag(Key("Jefe"), "what do ya want for nothing?")
	assert.Equal(t,
		"5BDCC146BF60754E6A042426089575C75A003F089D2739839DEC58B964EC3843",
		tag.String())
}
