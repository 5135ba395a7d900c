// File: database/repository/review/interface.go
package reviewRepo

import (
	"context"
	"errors"

	"contour/database"
	"contour/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound indicates the referenced review does not exist.
var ErrNotFound = errors.New("review not found")

// ReviewRepository defines data access for expedition reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id string) (*models.Review, error)
	ListByExpedition(ctx context.Context, expeditionID string) ([]models.Review, error)
	ListAll(ctx context.Context) ([]models.Review, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*models.Review, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) (int64, error)
}

type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo constructs a new MongoDB ReviewRepository.
func NewMongoReviewRepo() ReviewRepository {
	return &MongoReviewRepo{
		coll: database.DB().Collection("reviews"),
	}
}
