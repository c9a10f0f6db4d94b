package ports

import (
	"context"

	"github.com/grocerytrack/grocery-api/internal/core/domain"
)

// AuthService implements registration and login.
type AuthService interface {
	// Register creates an account with the user role. Role assignment is
	// never caller-controlled; promotion is an admin operation.
	Register(ctx context.Context, fullName, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token plus the
	// safe user projection.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// ItemDetail is the full item view returned by GetItem.
type ItemDetail struct {
	Item     *domain.Item
	Comments []*domain.Comment
}

// AddCommentInput carries a new comment. Author falls back to AuthorDefault
// (the caller's full name) when empty.
type AddCommentInput struct {
	ItemID        string
	Author        string
	AuthorDefault string
	Text          string
}

// ItemService defines use-case operations on a user's grocery list.
type ItemService interface {
	CreateItem(ctx context.Context, userID, title, description string) (*domain.Item, error)
	ListItems(ctx context.Context, userID string) ([]*domain.Item, error)
	GetItem(ctx context.Context, id string) (*ItemDetail, error)
	AddComment(ctx context.Context, in AddCommentInput) (*domain.Comment, error)
}

// ProfileService lets a user read and update their own record.
type ProfileService interface {
	UpdateProfile(ctx context.Context, userID, fullName, email string) (*domain.User, error)
}

// ItemOwner is the owner projection attached to admin item listings.
type ItemOwner struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// ItemWithOwner pairs an item with its owning user for the admin view.
type ItemWithOwner struct {
	Item  *domain.Item `json:"item"`
	Owner *ItemOwner   `json:"owner,omitempty"`
}

// AdminService defines admin-only management operations.
type AdminService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
	SetUserRole(ctx context.Context, id, role string) (*domain.User, error)
	ListItems(ctx context.Context) ([]ItemWithOwner, error)
	// DeleteItem removes the item and all comments attached to it.
	DeleteItem(ctx context.Context, id string) error
}
