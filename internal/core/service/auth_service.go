package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/userhub/user-management/internal/core/domain"
	"github.com/userhub/user-management/internal/core/ports"
)

// AuthService implements signup and login as single linear pipelines: each
// request either runs to completion or short-circuits at the first failing
// check, with no partial effects.
type AuthService struct {
	repo   ports.UserRepository
	issuer *TokenIssuer
	audit  ports.AuditSink
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, issuer *TokenIssuer, audit ports.AuditSink, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, issuer: issuer, audit: audit, logger: logger}
}

// Signup registers a new account and returns a session token for it.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (string, *domain.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return "", nil, domain.ErrMissingFields
	}

	email := strings.ToLower(input.Email)

	existing, err := s.repo.FindByUsernameOrEmail(ctx, input.Username, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}
	if existing != nil {
		s.record(domain.AuditSignup, nil, input.Username, false, "duplicate identity")
		return "", nil, domain.ErrUserExists
	}

	// Any caller may request admin here; nothing gates admin creation.
	role := domain.NormalizeRole(input.Role)

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user, err := s.repo.Create(ctx, &domain.User{
		Username:     input.Username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			// Lost the race against a concurrent signup; the unique index
			// rejected the insert.
			s.record(domain.AuditSignup, nil, input.Username, false, "duplicate identity")
			return "", nil, err
		}
		s.logger.Error().Err(err).Str("username", input.Username).Msg("signup: create failed")
		return "", nil, err
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		s.logger.Error().Err(err).Msg("signup: token issue failed")
		return "", nil, err
	}

	s.record(domain.AuditSignup, user, user.Username, true, "")
	s.logger.Info().Str("user_id", user.ID).Str("username", user.Username).Str("role", string(user.Role)).Msg("user registered")

	return token, user, nil
}

// Login authenticates an existing account by email or username and returns a
// fresh session token. Unknown identifier and wrong password are deliberately
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, emailOrUsername, password string) (string, *domain.User, error) {
	if emailOrUsername == "" || password == "" {
		return "", nil, domain.ErrMissingFields
	}

	user, err := s.repo.FindByIdentifier(ctx, emailOrUsername)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.record(domain.AuditLogin, nil, emailOrUsername, false, "unknown identifier")
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.record(domain.AuditLogin, user, emailOrUsername, false, "password mismatch")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		s.logger.Error().Err(err).Msg("login: token issue failed")
		return "", nil, err
	}

	s.record(domain.AuditLogin, user, user.Username, true, "")
	s.logger.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user logged in")

	return token, user, nil
}

func (s *AuthService) record(action domain.AuditAction, user *domain.User, username string, success bool, reason string) {
	if s.audit == nil {
		return
	}
	entry := domain.AuditEntry{
		Action:    action,
		Username:  username,
		Success:   success,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	}
	if user != nil {
		entry.UserID = user.ID
		entry.Role = user.Role
	}
	s.audit.Record(entry)
}
