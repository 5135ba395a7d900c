// File: database/repository/user/interface.go
package userRepo

import (
	"context"
	"errors"

	"contour/database"
	"contour/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Sentinel errors surfaced to the service layer.
var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// UpdateFields applies a partial update to a user record.
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error)
	// Delete removes a user record by its ID.
	Delete(ctx context.Context, id string) error
	// EnsureIndexes creates the unique indexes the collection relies on.
	EnsureIndexes() error
}

type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new MongoDB UserRepository.
func NewMongoUserRepo() UserRepository {
	return &MongoUserRepo{
		coll: database.DB().Collection("users"),
	}
}
