// File: database/repository/departure/private_crud.go
package departureRepo

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

func (r *MongoPrivateDepartureRepo) Create(ctx context.Context, dep *models.PrivateDeparture) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	dep.CreatedAt = now
	dep.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, dep); err != nil {
		return fmt.Errorf("failed to create private departure: %w", err)
	}
	return nil
}

func (r *MongoPrivateDepartureRepo) GetByID(ctx context.Context, id string) (*models.PrivateDeparture, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var dep models.PrivateDeparture
	err := r.coll.FindOne(ctx, bson.M{"privateDepartureId": id}).Decode(&dep)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch private departure %s: %w", id, err)
	}
	return &dep, nil
}

func (r *MongoPrivateDepartureRepo) GetAll(ctx context.Context) ([]models.PrivateDeparture, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list private departures: %w", err)
	}
	defer cursor.Close(ctx)

	var deps []models.PrivateDeparture
	if err := cursor.All(ctx, &deps); err != nil {
		return nil, err
	}
	return deps, nil
}

func (r *MongoPrivateDepartureRepo) GetByExpedition(ctx context.Context, expeditionID string) ([]models.PrivateDeparture, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startDate", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"expedition": expeditionID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list private departures for expedition %s: %w", expeditionID, err)
	}
	defer cursor.Close(ctx)

	var deps []models.PrivateDeparture
	if err := cursor.All(ctx, &deps); err != nil {
		return nil, err
	}
	return deps, nil
}

func (r *MongoPrivateDepartureRepo) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.PrivateDeparture, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.PrivateDeparture
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"privateDepartureId": id}, bson.M{"$set": fields}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update private departure %s: %w", id, err)
	}
	return &updated, nil
}

func (r *MongoPrivateDepartureRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"privateDepartureId": id})
	if err != nil {
		return fmt.Errorf("failed to delete private departure %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoPrivateDepartureRepo) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"privateDepartureId": bson.M{"$in": ids}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete private departures: %w", err)
	}
	return res.DeletedCount, nil
}
