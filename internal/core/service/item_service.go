package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/grocerytrack/grocery-api/internal/core/domain"
	"github.com/grocerytrack/grocery-api/internal/core/ports"
)

// ItemService implements the owner-scoped grocery list use cases.
type ItemService struct {
	items    ports.ItemRepository
	comments ports.CommentRepository
	log      zerolog.Logger
}

func NewItemService(items ports.ItemRepository, comments ports.CommentRepository, log zerolog.Logger) *ItemService {
	return &ItemService{items: items, comments: comments, log: log}
}

// CreateItem adds an item to the caller's list.
func (s *ItemService) CreateItem(ctx context.Context, userID, title, description string) (*domain.Item, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return nil, fmt.Errorf("%w: title and description are required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	item := &domain.Item{
		UserID:      userID,
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.items.Create(ctx, item)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("item_id", created.ID).Str("user_id", userID).Msg("item created")
	return created, nil
}

// ListItems returns the caller's items, newest first.
func (s *ItemService) ListItems(ctx context.Context, userID string) ([]*domain.Item, error) {
	return s.items.ListByUser(ctx, userID)
}

// GetItem returns an item together with its comments.
func (s *ItemService) GetItem(ctx context.Context, id string) (*ports.ItemDetail, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByItem(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ports.ItemDetail{Item: item, Comments: comments}, nil
}

// AddComment attaches a comment to an existing item. The author string
// defaults to the caller's full name when the client sends none.
func (s *ItemService) AddComment(ctx context.Context, in ports.AddCommentInput) (*domain.Comment, error) {
	if in.ItemID == "" || strings.TrimSpace(in.Text) == "" {
		return nil, fmt.Errorf("%w: item id and text are required", domain.ErrValidation)
	}

	if _, err := s.items.FindByID(ctx, in.ItemID); err != nil {
		return nil, err
	}

	author := strings.TrimSpace(in.Author)
	if author == "" {
		author = in.AuthorDefault
	}

	comment := &domain.Comment{
		ItemID:    in.ItemID,
		Author:    author,
		Text:      strings.TrimSpace(in.Text),
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("item_id", in.ItemID).Str("comment_id", created.ID).Msg("comment added")
	return created, nil
}
