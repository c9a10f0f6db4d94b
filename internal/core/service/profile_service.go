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

// ProfileService lets an authenticated user update their own record.
type ProfileService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewProfileService(users ports.UserRepository, log zerolog.Logger) *ProfileService {
	return &ProfileService{users: users, log: log}
}

// UpdateProfile changes the caller's full name and/or email. Empty fields are
// left untouched. Switching to an email already held by another account fails
// with ErrUserExists.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID, fullName, email string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if email != "" && email != user.Email {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, fmt.Errorf("%w: malformed email", domain.ErrValidation)
		}
		existing, err := s.users.FindByEmail(ctx, email)
		if err == nil && existing.ID != userID {
			return nil, domain.ErrUserExists
		}
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		user.Email = email
	}
	if fullName != "" {
		user.FullName = fullName
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Msg("profile updated")
	return updated, nil
}
