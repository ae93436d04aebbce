package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	// low cost to keep the test fast
	hash, err := HashPassword("s3cret", 4)
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash, "hash must not contain the plaintext")

	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestHashPassword_SaltedPerHash(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same", 4)
	require.NoError(t, err)
	h2, err := HashPassword("same", 4)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "two hashes of the same password must differ by salt")
}

func TestHashPassword_DefaultCost(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw", 0)
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "pw"))
}

func TestCheckDummyPassword_AlwaysFalse(t *testing.T) {
	t.Parallel()

	assert.False(t, CheckDummyPassword("anything"))
	assert.False(t, CheckDummyPassword(""))
}
