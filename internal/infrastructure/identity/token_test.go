//go:build unit
// +build unit

package identity

import (
	"errors"
	"testing"
	"time"

	"github.com/Azu-ul/portfolio-back/internal/domain/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-signing-secret"

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	token, err := svc.Issue(users.Claims{ID: 7, Email: "clara@example.com", Rol: users.RoleAdmin})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.ID)
	assert.Equal(t, "clara@example.com", claims.Email)
	assert.Equal(t, users.RoleAdmin, claims.Rol)
	assert.True(t, claims.IsAdmin())
}

func TestTokenService_TamperedSignature(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	token, err := svc.Issue(users.Claims{ID: 1, Email: "user@example.com", Rol: users.RoleUser})
	require.NoError(t, err)

	// Flip the last signature byte.
	tampered := []byte(token)
	if tampered[len(tampered)-1] == 'A' {
		tampered[len(tampered)-1] = 'B'
	} else {
		tampered[len(tampered)-1] = 'A'
	}

	_, err = svc.Verify(string(tampered))
	require.Error(t, err)
	assert.True(t, errors.Is(err, users.ErrTokenInvalid))
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService(testSecret, time.Hour)
	verifier := NewTokenService("a-different-signing-secret", time.Hour)

	token, err := issuer.Issue(users.Claims{ID: 1, Email: "user@example.com", Rol: users.RoleUser})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, users.ErrTokenInvalid))
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService(testSecret, -time.Minute)

	token, err := svc.Issue(users.Claims{ID: 1, Email: "user@example.com", Rol: users.RoleAdmin})
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, users.ErrTokenInvalid))
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	for _, garbage := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		_, err := svc.Verify(garbage)
		require.Error(t, err, "expected error for %q", garbage)
		assert.True(t, errors.Is(err, users.ErrTokenInvalid))
	}
}
