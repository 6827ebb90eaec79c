package auth

import (
	"strings"

	"github.com/dmitrijs2005/todokeeper/internal/common"
)

// BearerToken extracts the token from an Authorization header value. The
// scheme is matched case-insensitively.
func BearerToken(header string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, strings.TrimSpace(common.BearerScheme)) {
		return "", common.ErrMissingCredential
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", common.ErrMissingCredential
	}

	return token, nil
}

// Authenticate resolves the calling user id from a raw Authorization header.
// Errors are one of common.ErrMissingCredential, common.ErrInvalidToken or
// common.ErrTokenExpired so transports can tell them apart.
func (s *TokenService) Authenticate(header string) (string, error) {
	token, err := BearerToken(header)
	if err != nil {
		return "", err
	}

	claims, err := s.Verify(token)
	if err != nil {
		return "", err
	}

	return claims.UserID, nil
}
