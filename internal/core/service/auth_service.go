package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/rs/zerolog"

	"github.com/grocerytrack/grocery-api/internal/core/domain"
	"github.com/grocerytrack/grocery-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	users  ports.UserRepository
	tokens *TokenService
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log}
}

// Register validates input, hashes the password, and persists the account.
// The stored role is always "user" regardless of what the caller sent:
// accepting a caller-supplied role here would let any registrant self-escalate
// to admin.
func (s *AuthService) Register(ctx context.Context, fullName, email, password string) (*domain.User, error) {
	if fullName == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: full name, email and password are required", domain.ErrValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: malformed email", domain.ErrValidation)
	}
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, MinPasswordLength)
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues a bearer token. An unknown email and
// a wrong password are indistinguishable to the caller: both burn a bcrypt
// compare and both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: missing email or password", domain.ErrValidation)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			CheckPassword(password, dummyHash)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !CheckPassword(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("login successful")

	user.PasswordHash = ""
	return token, user, nil
}
