package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/grocerytrack/grocery-api/internal/core/domain"
)

const commentsCollection = "comments"

type CommentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{coll: db.Collection(commentsCollection)}
}

type mongoComment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ItemID    string             `bson:"item_id"`
	Author    string             `bson:"author"`
	Text      string             `bson:"text"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (mc *mongoComment) toDomain() *domain.Comment {
	return &domain.Comment{
		ID:        mc.ID.Hex(),
		ItemID:    mc.ItemID,
		Author:    mc.Author,
		Text:      mc.Text,
		CreatedAt: mc.CreatedAt,
	}
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoComment{
		ItemID:    comment.ItemID,
		Author:    comment.Author,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	created := *comment
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *CommentRepository) ListByItem(ctx context.Context, itemID string) ([]*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"item_id": itemID}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer cur.Close(ctx)

	var comments []*domain.Comment
	for cur.Next(ctx) {
		var mc mongoComment
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode comment: %w", err)
		}
		comments = append(comments, mc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (r *CommentRepository) DeleteByItem(ctx context.Context, itemID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"item_id": itemID}); err != nil {
		return fmt.Errorf("delete comments: %w", err)
	}
	return nil
}

// EnsureIndexes creates the item index used by comment listings and cascades.
func (r *CommentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "item_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
