package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIterations = 1000 // Lower cost for faster testing.

func TestPBKDF2Hasher_Hash(t *testing.T) {
	hasher := NewPBKDF2HasherWithIterations(testIterations)

	password := "correct horse battery staple"
	hash, salt, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEmpty(t, salt)
	assert.NotEqual(t, password, hash)

	// Verify the derived material round-trips.
	assert.True(t, hasher.Verify(hash, salt, password))
}

func TestPBKDF2Hasher_HashIsSalted(t *testing.T) {
	hasher := NewPBKDF2HasherWithIterations(testIterations)

	hash1, salt1, err := hasher.Hash("same password")
	require.NoError(t, err)
	hash2, salt2, err := hasher.Hash("same password")
	require.NoError(t, err)

	// Fresh salt per call means the digests differ too.
	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, hash1, hash2)
}

func TestPBKDF2Hasher_Verify(t *testing.T) {
	hasher := NewPBKDF2HasherWithIterations(testIterations)

	password := "s3cret-Phrase"
	hash, salt, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Verify(hash, salt, password))
	assert.False(t, hasher.Verify(hash, salt, "wrong password"))
	assert.False(t, hasher.Verify(hash, salt, ""))

	// Corrupted stored material never verifies.
	assert.False(t, hasher.Verify("not-hex!", salt, password))
	assert.False(t, hasher.Verify(hash, "not-hex!", password))
	assert.False(t, hasher.Verify("", salt, password))
}

func TestPBKDF2Hasher_DefaultIterationsFallback(t *testing.T) {
	hasher := NewPBKDF2HasherWithIterations(0)

	hash, salt, err := hasher.Hash("pw")
	require.NoError(t, err)
	assert.True(t, hasher.Verify(hash, salt, "pw"))
}
