package seeders

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/rabbit/app/models"
	"github.com/shashiranjanraj/rabbit/pkg/auth"
	"github.com/shashiranjanraj/rabbit/pkg/database"
)

const (
	AdminEmail    = "admin@example.com"
	adminPassword = "Admin123"
)

func init() {
	Register("users", SeedUsers)
}

// SeedUsers wipes the users collection and inserts the default admin.
func SeedUsers(ctx context.Context, db *database.DB) error {
	col := db.Collection(database.Users)
	if _, err := col.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	now := time.Now()
	admin := models.User{
		ID:        primitive.NewObjectID(),
		Name:      "Admin User",
		Email:     AdminEmail,
		Password:  hash,
		Role:      models.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = col.InsertOne(ctx, admin)
	return err
}
