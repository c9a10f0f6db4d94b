package ports

import (
	"context"

	"github.com/grocerytrack/grocery-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// FindByID and List return users with the password hash blanked; only
// FindByEmail keeps it, since the login path needs it for verification.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	// List returns all users, newest first.
	List(ctx context.Context) ([]*domain.User, error)
}

// ItemRepository defines persistence operations for grocery items.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	FindByID(ctx context.Context, id string) (*domain.Item, error)
	// ListByUser returns the given user's items, newest first.
	ListByUser(ctx context.Context, userID string) ([]*domain.Item, error)
	// List returns all items across users, newest first.
	List(ctx context.Context) ([]*domain.Item, error)
	Delete(ctx context.Context, id string) error
}

// CommentRepository defines persistence operations for item comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	// ListByItem returns an item's comments, newest first.
	ListByItem(ctx context.Context, itemID string) ([]*domain.Comment, error)
	// DeleteByItem removes all comments attached to an item.
	DeleteByItem(ctx context.Context, itemID string) error
}
