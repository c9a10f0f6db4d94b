package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/grocerytrack/grocery-api/internal/core/domain"
	"github.com/grocerytrack/grocery-api/internal/core/ports"
)

// AdminService implements the admin-only management operations. Route-level
// RBAC guarantees the caller is an admin before any of these run.
type AdminService struct {
	users    ports.UserRepository
	items    ports.ItemRepository
	comments ports.CommentRepository
	log      zerolog.Logger
}

func NewAdminService(users ports.UserRepository, items ports.ItemRepository, comments ports.CommentRepository, log zerolog.Logger) *AdminService {
	return &AdminService{users: users, items: items, comments: comments, log: log}
}

// ListUsers returns every account, newest first, password hashes excluded.
func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// DeleteUser removes an account.
func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

// SetUserRole promotes or demotes an account. This is the only path through
// which an account can become admin.
func (s *AdminService) SetUserRole(ctx context.Context, id, role string) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, fmt.Errorf("%w: role must be %q or %q", domain.ErrValidation, domain.RoleUser, domain.RoleAdmin)
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Role = role
	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", id).Str("role", role).Msg("user role changed")
	return updated, nil
}

// ListItems returns every item paired with its owner's safe projection.
// Owners are resolved in one pass over the user list rather than per item.
func (s *AdminService) ListItems(ctx context.Context) ([]ports.ItemWithOwner, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	owners := make(map[string]*ports.ItemOwner, len(users))
	for _, u := range users {
		owners[u.ID] = &ports.ItemOwner{ID: u.ID, FullName: u.FullName, Email: u.Email}
	}

	result := make([]ports.ItemWithOwner, 0, len(items))
	for _, it := range items {
		// Owner may be nil when the account was deleted after the item.
		result = append(result, ports.ItemWithOwner{Item: it, Owner: owners[it.UserID]})
	}
	return result, nil
}

// DeleteItem removes an item and its comments.
func (s *AdminService) DeleteItem(ctx context.Context, id string) error {
	if _, err := s.items.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.items.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.comments.DeleteByItem(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("item_id", id).Msg("failed to delete item comments")
	}
	s.log.Info().Str("item_id", id).Msg("item deleted")
	return nil
}
