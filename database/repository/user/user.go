package userRepo

import (
	"context"
	"time"

	"servana/database"
	"servana/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines data access for user documents. Get methods return
// (nil, nil) when no document matches.
type UserRepository interface {
	Create(u *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(u *models.User) error
	Delete(id string) error
	ListAll() ([]models.User, error)
}

// MongoUserRepo is the production implementation backed by MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo returns a repository over the users collection.
func NewMongoUserRepo() *MongoUserRepo {
	return &MongoUserRepo{coll: database.Collection("users")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
