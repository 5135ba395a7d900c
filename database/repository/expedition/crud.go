// File: database/repository/expedition/crud.go
package expeditionRepo

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

func (r *MongoExpeditionRepo) Create(ctx context.Context, exp *models.Expedition) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	exp.CreatedAt = now
	exp.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, exp); err != nil {
		return fmt.Errorf("failed to create expedition: %w", err)
	}
	return nil
}

func (r *MongoExpeditionRepo) GetByID(ctx context.Context, id string) (*models.Expedition, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var exp models.Expedition
	err := r.coll.FindOne(ctx, bson.M{"expeditionId": id}).Decode(&exp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch expedition %s: %w", id, err)
	}
	return &exp, nil
}

func (r *MongoExpeditionRepo) GetBySlug(ctx context.Context, slug string) (*models.Expedition, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var exp models.Expedition
	err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&exp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch expedition by slug %s: %w", slug, err)
	}
	return &exp, nil
}

func (r *MongoExpeditionRepo) GetAll(ctx context.Context) ([]models.Expedition, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list expeditions: %w", err)
	}
	defer cursor.Close(ctx)

	var exps []models.Expedition
	if err := cursor.All(ctx, &exps); err != nil {
		return nil, err
	}
	return exps, nil
}

func (r *MongoExpeditionRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*models.Expedition, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Expedition
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"expeditionId": id}, bson.M{"$set": fields}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update expedition %s: %w", id, err)
	}
	return &updated, nil
}

func (r *MongoExpeditionRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"expeditionId": id})
	if err != nil {
		return fmt.Errorf("failed to delete expedition %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoExpeditionRepo) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"expeditionId": bson.M{"$in": ids}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete expeditions: %w", err)
	}
	return res.DeletedCount, nil
}
