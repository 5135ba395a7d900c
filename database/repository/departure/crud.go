// File: database/repository/departure/crud.go
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

// Create inserts a new group departure document.
func (r *MongoGroupDepartureRepo) Create(ctx context.Context, dep *models.GroupDeparture) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	dep.CreatedAt = now
	dep.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, dep); err != nil {
		return fmt.Errorf("failed to create group departure: %w", err)
	}
	return nil
}

// GetByID retrieves a group departure by its business id.
func (r *MongoGroupDepartureRepo) GetByID(ctx context.Context, id string) (*models.GroupDeparture, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var dep models.GroupDeparture
	err := r.coll.FindOne(ctx, bson.M{"groupDepartureId": id}).Decode(&dep)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch group departure %s: %w", id, err)
	}
	return &dep, nil
}

// GetAll retrieves all group departures, newest first.
func (r *MongoGroupDepartureRepo) GetAll(ctx context.Context) ([]models.GroupDeparture, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list group departures: %w", err)
	}
	defer cursor.Close(ctx)

	var deps []models.GroupDeparture
	if err := cursor.All(ctx, &deps); err != nil {
		return nil, err
	}
	return deps, nil
}

// GetByExpedition retrieves group departures belonging to an expedition.
func (r *MongoGroupDepartureRepo) GetByExpedition(ctx context.Context, expeditionID string) ([]models.GroupDeparture, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startDate", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"expedition": expeditionID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list group departures for expedition %s: %w", expeditionID, err)
	}
	defer cursor.Close(ctx)

	var deps []models.GroupDeparture
	if err := cursor.All(ctx, &deps); err != nil {
		return nil, err
	}
	return deps, nil
}

// Update applies a partial update to a group departure. Counter fields are
// rejected here; seat accounting goes through ReserveSeats/ReleaseSeats only.
// Capacity edits are conditional: totalQuantity may never drop under the seats
// already sold, so the 0 <= soldQuantity <= totalQuantity invariant survives
// admin patches too.
func (r *MongoGroupDepartureRepo) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.GroupDeparture, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	delete(fields, "soldQuantity")
	fields["updatedAt"] = time.Now()

	filter := bson.M{"groupDepartureId": id}
	capacityEdit := false
	if raw, ok := fields["totalQuantity"]; ok {
		total, err := asSeatCount(raw)
		if err != nil {
			return nil, err
		}
		fields["totalQuantity"] = total
		filter["soldQuantity"] = bson.M{"$lte": total}
		capacityEdit = true
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.GroupDeparture
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": fields}, opts).Decode(&updated)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("failed to update group departure %s: %w", id, err)
		}
		if capacityEdit {
			// Predicate failed or the departure is missing; disambiguate.
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, ErrTotalBelowSold
		}
		return nil, ErrNotFound
	}
	return &updated, nil
}

// asSeatCount coerces the JSON-decoded totalQuantity value to an int.
func asSeatCount(raw interface{}) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("totalQuantity must be a number, got %T", raw)
	}
}

// Delete removes a group departure document by its business id.
func (r *MongoGroupDepartureRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"groupDepartureId": id})
	if err != nil {
		return fmt.Errorf("failed to delete group departure %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMany removes the group departures whose business ids are listed.
func (r *MongoGroupDepartureRepo) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"groupDepartureId": bson.M{"$in": ids}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete group departures: %w", err)
	}
	return res.DeletedCount, nil
}
