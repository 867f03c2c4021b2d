//go:build unit
// +build unit

package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("s3cret-password")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, hasher.Verify("s3cret-password", hash))
	assert.False(t, hasher.Verify("wrong-password", hash))
}

func TestPasswordHasher_DistinctSalts(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash1, err := hasher.Hash("same-password")
	require.NoError(t, err)
	hash2, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2, "hashing must not be deterministic across calls")
	assert.True(t, hasher.Verify("same-password", hash1))
	assert.True(t, hasher.Verify("same-password", hash2))
}

func TestPasswordHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := NewPasswordHasher(99)

	hash, err := hasher.Hash("password")
	require.NoError(t, err)
	assert.True(t, hasher.Verify("password", hash))
}
