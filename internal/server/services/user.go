// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login and profile lookups.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/dmitrijs2005/todokeeper/internal/server/auth"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/repomanager"
)

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *models.User
}

// UserService provides account operations:
// - Register: create a user with a bcrypt password hash
// - Login: verify credentials and mint a bearer token
// - Profile: load the caller's own record
type UserService struct {
	repomanager repomanager.RepositoryManager
	hasher      *auth.PasswordHasher
	tokens      *auth.TokenService
	logger      logging.Logger

	dummyOnce sync.Once
	dummyHash string
}

func NewUserService(m repomanager.RepositoryManager, hasher *auth.PasswordHasher, tokens *auth.TokenService, logger logging.Logger) *UserService {
	return &UserService{
		repomanager: m,
		hasher:      hasher,
		tokens:      tokens,
		logger:      logger,
	}
}

// Register creates a new user. The email check and the insert are separate
// calls; the store's own uniqueness check closes the gap between them.
func (s *UserService) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	repo := s.repomanager.Users()

	_, err := repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, common.ErrDuplicateEmail
	case !errors.Is(err, common.ErrorNotFound):
		return nil, storageError("looking up user", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	u, err := repo.Create(ctx, &models.User{Email: email, Name: name, PasswordHash: hash})
	if err != nil {
		return nil, storageError("creating user", err)
	}

	s.logger.Info(ctx, "user registered", "user_id", u.ID)
	return u, nil
}

// Login checks the credentials and issues a token. Unknown email and wrong
// password both yield common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.TrimSpace(email)

	u, err := s.repomanager.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// keep the response time close to the wrong-password path
			s.hasher.Verify(password, s.dummy())
			return nil, common.ErrInvalidCredentials
		}
		return nil, storageError("looking up user", err)
	}

	if !s.hasher.Verify(password, u.PasswordHash) {
		s.logger.Debug(ctx, "password mismatch", "user_id", u.ID)
		return nil, common.ErrInvalidCredentials
	}

	token, expires, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	return &Session{Token: token, ExpiresAt: expires, User: u}, nil
}

// Profile returns the caller's user record.
func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.repomanager.Users().GetByID(ctx, userID)
	if err != nil {
		return nil, storageError("loading user", err)
	}
	return u, nil
}

func (s *UserService) dummy() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash("todokeeper-dummy-password")
	})
	return s.dummyHash
}
