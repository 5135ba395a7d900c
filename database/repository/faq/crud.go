// File: database/repository/faq/crud.go
package faqRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"contour/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new FAQ document.
func (r *MongoFaqRepo) Create(ctx context.Context, faq *models.Faq) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	faq.CreatedAt = now
	faq.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, faq); err != nil {
		return fmt.Errorf("failed to create faq: %w", err)
	}
	return nil
}

// GetByID retrieves a FAQ by its business id.
func (r *MongoFaqRepo) GetByID(ctx context.Context, id string) (*models.Faq, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var faq models.Faq
	err := r.coll.FindOne(ctx, bson.M{"faqId": id}).Decode(&faq)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch faq %s: %w", id, err)
	}
	return &faq, nil
}

// ListByExpedition retrieves an expedition's FAQs in display order.
func (r *MongoFaqRepo) ListByExpedition(ctx context.Context, expeditionID string) ([]models.Faq, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"expedition": expeditionID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list faqs for expedition %s: %w", expeditionID, err)
	}
	defer cursor.Close(ctx)

	var faqs []models.Faq
	if err := cursor.All(ctx, &faqs); err != nil {
		return nil, err
	}
	return faqs, nil
}

// ListAll retrieves all FAQs, newest first.
func (r *MongoFaqRepo) ListAll(ctx context.Context) ([]models.Faq, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}
	defer cursor.Close(ctx)

	var faqs []models.Faq
	if err := cursor.All(ctx, &faqs); err != nil {
		return nil, err
	}
	return faqs, nil
}

// UpdateFields applies a partial update and returns the updated FAQ.
func (r *MongoFaqRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*models.Faq, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Faq
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"faqId": id}, bson.M{"$set": fields}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update faq %s: %w", id, err)
	}
	return &updated, nil
}

// Delete removes a FAQ document by its business id.
func (r *MongoFaqRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"faqId": id})
	if err != nil {
		return fmt.Errorf("failed to delete faq %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMany removes the FAQs whose business ids are listed.
func (r *MongoFaqRepo) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"faqId": bson.M{"$in": ids}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete faqs: %w", err)
	}
	return res.DeletedCount, nil
}

// NextOrder computes the next display order for an expedition's FAQ list.
func (r *MongoFaqRepo) NextOrder(ctx context.Context, expeditionID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "order", Value: -1}})
	var last models.Faq
	err := r.coll.FindOne(ctx, bson.M{"expedition": expeditionID}, opts).Decode(&last)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 1, nil
		}
		return 0, fmt.Errorf("failed to compute next faq order for expedition %s: %w", expeditionID, err)
	}
	return last.Order + 1, nil
}
