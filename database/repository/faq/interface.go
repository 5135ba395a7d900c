// File: database/repository/faq/interface.go
package faqRepo

import (
	"context"
	"errors"

	"contour/database"
	"contour/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound indicates the referenced FAQ does not exist.
var ErrNotFound = errors.New("faq not found")

// FaqRepository defines data access for FAQ entries.
type FaqRepository interface {
	Create(ctx context.Context, faq *models.Faq) error
	GetByID(ctx context.Context, id string) (*models.Faq, error)
	ListByExpedition(ctx context.Context, expeditionID string) ([]models.Faq, error)
	ListAll(ctx context.Context) ([]models.Faq, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*models.Faq, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) (int64, error)

	// NextOrder returns max(order)+1 among the expedition's FAQs, or 1.
	NextOrder(ctx context.Context, expeditionID string) (int, error)

	// SwapOrder exchanges the order values of two FAQs inside one transaction,
	// so readers never observe a duplicate or sentinel intermediate state.
	SwapOrder(ctx context.Context, id1, id2 string) error

	// EnsureIndexes creates the indexes the collection relies on.
	EnsureIndexes() error
}

type MongoFaqRepo struct {
	coll *mongo.Collection
}

// NewMongoFaqRepo constructs a new MongoDB FaqRepository.
func NewMongoFaqRepo() FaqRepository {
	return &MongoFaqRepo{
		coll: database.DB().Collection("faqs"),
	}
}
