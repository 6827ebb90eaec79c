package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

func newTestTokenService(t *testing.T, secret string, now time.Time) *TokenService {
	t.Helper()
	s, err := NewTokenService(secret, "HS256", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}
	s.now = func() time.Time { return now }
	return s
}

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	now := time.Now()
	s := newTestTokenService(t, "super-secret", now)

	tok, expires, err := s.Issue("user-123", "a@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if !expires.Equal(now.Add(time.Hour)) {
		t.Fatalf("expires = %v, want %v", expires, now.Add(time.Hour))
	}

	claims, err := s.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != "user-123" || claims.Email != "a@x.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestVerify_ExpiredAfterValidity(t *testing.T) {
	t.Parallel()

	now := time.Now()
	s := newTestTokenService(t, "secret", now)

	tok, _, err := s.Issue("u1", "u1@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	s.now = func() time.Time { return now.Add(time.Hour + 2*time.Second) }

	_, err = s.Verify(tok)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	now := time.Now()
	tok, _, err := newTestTokenService(t, "right-secret", now).Issue("u2", "u2@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = newTestTokenService(t, "wrong-secret", now).Verify(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	_, err := newTestTokenService(t, "k", time.Now()).Verify("not.a.jwt")
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestVerify_MissingClaims(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(secret)
	if err != nil {
		t.Fatal(err)
	}

	_, err = newTestTokenService(t, "k", time.Now()).Verify(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestVerify_MissingExpiry(t *testing.T) {
	t.Parallel()

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "u", Email: "e"}).SignedString([]byte("k"))
	if err != nil {
		t.Fatal(err)
	}

	_, err = newTestTokenService(t, "k", time.Now()).Verify(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestVerify_RejectsOtherAlgorithm(t *testing.T) {
	t.Parallel()

	now := time.Now()
	s512, err := NewTokenService("k", "HS512", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	tok, _, err := s512.Issue("u", "e")
	if err != nil {
		t.Fatal(err)
	}

	_, err = newTestTokenService(t, "k", now).Verify(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestNewTokenService_Errors(t *testing.T) {
	t.Parallel()

	if _, err := NewTokenService("", "HS256", time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
	if _, err := NewTokenService("k", "RS256", time.Hour); err == nil {
		t.Fatal("expected error for non-HMAC algorithm")
	}
	if _, err := NewTokenService("k", "nope", time.Hour); err == nil {
		t.Fatal("expected error for unknown algorithm")
	}
}
