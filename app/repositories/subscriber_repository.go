package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/rabbit/app/models"
	"github.com/shashiranjanraj/rabbit/pkg/database"
)

type SubscriberRepository struct {
	col *mongo.Collection
}

func NewSubscriberRepository(db *database.DB) *SubscriberRepository {
	return &SubscriberRepository{col: db.Collection(database.Subscribers)}
}

func (r *SubscriberRepository) Create(ctx context.Context, sub *models.Subscriber) error {
	sub.ID = primitive.NewObjectID()
	if sub.SubscribedAt.IsZero() {
		sub.SubscribedAt = time.Now()
	}

	_, err := r.col.InsertOne(ctx, sub)
	if database.IsDup(err) {
		return models.ErrAlreadyExists
	}
	return err
}

func (r *SubscriberRepository) FindByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	var sub models.Subscriber
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriberRepository) All(ctx context.Context) ([]models.Subscriber, error) {
	cur, err := r.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "subscribedAt", Value: -1}}))
	if err != nil {
		return nil, err
	}

	subs := []models.Subscriber{}
	if err := cur.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *SubscriberRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
