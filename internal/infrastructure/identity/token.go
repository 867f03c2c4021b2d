package identity

import (
	"fmt"
	"time"

	"github.com/Azu-ul/portfolio-back/internal/domain/users"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// tokenClaims extends the JWT registered claims with the identity
// attributes carried by every issued token.
type tokenClaims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
	jwt.RegisteredClaims
}

type jwtTokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService signing HS256 tokens with the
// process-wide secret. Issued tokens expire after ttl.
func NewTokenService(secret string, ttl time.Duration) users.TokenService {
	return &jwtTokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *jwtTokenService) Issue(claims users.Claims) (string, error) {
	now := time.Now()
	tc := tokenClaims{
		UserID: claims.ID,
		Email:  claims.Email,
		Rol:    claims.Rol,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tc)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *jwtTokenService) Verify(tokenString string) (*users.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(_ *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", users.ErrTokenInvalid, err)
	}

	tc, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, users.ErrTokenInvalid
	}

	if tc.Rol == "" {
		return nil, fmt.Errorf("%w: missing role", users.ErrTokenInvalid)
	}

	return &users.Claims{
		ID:    tc.UserID,
		Email: tc.Email,
		Rol:   tc.Rol,
	}, nil
}
