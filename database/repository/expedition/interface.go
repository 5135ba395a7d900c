// File: database/repository/expedition/interface.go
package expeditionRepo

import (
	"context"
	"errors"

	"contour/database"
	"contour/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound indicates the referenced expedition does not exist.
var ErrNotFound = errors.New("expedition not found")

// ExpeditionRepository defines data access for expeditions.
type ExpeditionRepository interface {
	Create(ctx context.Context, exp *models.Expedition) error
	GetByID(ctx context.Context, id string) (*models.Expedition, error)
	GetBySlug(ctx context.Context, slug string) (*models.Expedition, error)
	GetAll(ctx context.Context) ([]models.Expedition, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*models.Expedition, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) (int64, error)
}

type MongoExpeditionRepo struct {
	coll *mongo.Collection
}

// NewMongoExpeditionRepo constructs a new MongoDB ExpeditionRepository.
func NewMongoExpeditionRepo() ExpeditionRepository {
	return &MongoExpeditionRepo{
		coll: database.DB().Collection("expeditions"),
	}
}
