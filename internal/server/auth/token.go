package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the contents of a session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// TokenService mints and checks HMAC-signed session tokens. Tokens are
// self-contained: checking one needs only the secret, never the store.
type TokenService struct {
	secret   []byte
	method   jwt.SigningMethod
	validity time.Duration
	now      func() time.Time
}

// NewTokenService accepts HS256, HS384 and HS512.
func NewTokenService(secret string, algorithm string, validity time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("empty token secret")
	}
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported token algorithm %q", algorithm)
	}
	return &TokenService{
		secret:   []byte(secret),
		method:   method,
		validity: validity,
		now:      time.Now,
	}, nil
}

// Issue returns a signed token for the user together with its expiry.
func (s *TokenService) Issue(userID, email string) (string, time.Time, error) {
	now := s.now()
	expires := now.Add(s.validity)

	token := jwt.NewWithClaims(s.method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		UserID: userID,
		Email:  email,
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, expires, nil
}

// Verify checks signature, algorithm and expiry. It fails with
// common.ErrTokenExpired once the expiry has passed and with
// common.ErrInvalidToken for anything else that is wrong with the token.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if claims.UserID == "" || claims.Email == "" {
		return nil, fmt.Errorf("%w: required claims missing", common.ErrInvalidToken)
	}

	return claims, nil
}
