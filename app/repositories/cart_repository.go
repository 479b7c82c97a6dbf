package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/rabbit/app/models"
	"github.com/shashiranjanraj/rabbit/pkg/database"
)

type CartRepository struct {
	col *mongo.Collection
}

func NewCartRepository(db *database.DB) *CartRepository {
	return &CartRepository{col: db.Collection(database.Carts)}
}

func (r *CartRepository) FindByOwner(ctx context.Context, owner models.Owner) (*models.Cart, error) {
	if owner.IsZero() {
		return nil, models.ErrNotFound
	}

	var cart models.Cart
	err := r.col.FindOne(ctx, owner.Filter()).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *CartRepository) FindByID(ctx context.Context, id string) (*models.Cart, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	var cart models.Cart
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// Save recomputes the cart totals and writes the document, inserting when the
// cart is new. Totals are never trusted from the caller.
func (r *CartRepository) Save(ctx context.Context, cart *models.Cart) error {
	cart.Recompute()

	now := time.Now()
	cart.UpdatedAt = now

	if cart.ID.IsZero() {
		cart.ID = primitive.NewObjectID()
		cart.CreatedAt = now
		_, err := r.col.InsertOne(ctx, cart)
		return err
	}

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": cart.ID}, cart)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *CartRepository) Delete(ctx context.Context, cart *models.Cart) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": cart.ID})
	return err
}
