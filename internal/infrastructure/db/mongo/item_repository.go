package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/grocerytrack/grocery-api/internal/core/domain"
)

const itemsCollection = "items"

type ItemRepository struct {
	coll *mongo.Collection
}

func NewItemRepository(db *mongo.Database) *ItemRepository {
	return &ItemRepository{coll: db.Collection(itemsCollection)}
}

type mongoItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (mi *mongoItem) toDomain() *domain.Item {
	return &domain.Item{
		ID:          mi.ID.Hex(),
		UserID:      mi.UserID,
		Title:       mi.Title,
		Description: mi.Description,
		CreatedAt:   mi.CreatedAt,
		UpdatedAt:   mi.UpdatedAt,
	}
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoItem{
		UserID:      item.UserID,
		Title:       item.Title,
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}

	created := *item
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id string) (*domain.Item, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrItemNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mi mongoItem
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mi); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return mi.toDomain(), nil
}

func (r *ItemRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Item, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *ItemRepository) List(ctx context.Context) ([]*domain.Item, error) {
	return r.list(ctx, bson.M{})
}

func (r *ItemRepository) list(ctx context.Context, filter bson.M) ([]*domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer cur.Close(ctx)

	var items []*domain.Item
	for cur.Next(ctx) {
		var mi mongoItem
		if err := cur.Decode(&mi); err != nil {
			return nil, fmt.Errorf("decode item: %w", err)
		}
		items = append(items, mi.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrItemNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// EnsureIndexes creates the owner index used by per-user listings.
func (r *ItemRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
