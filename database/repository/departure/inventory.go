// File: database/repository/departure/inventory.go
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

// ReserveSeats consumes n seats with a single conditional update. The $expr
// predicate makes check-and-increment one storage round trip, so two bookings
// racing for the last seats cannot both pass the capacity check.
func (r *MongoGroupDepartureRepo) ReserveSeats(ctx context.Context, id string, n int) (*models.GroupDeparture, error) {
	if n < 1 {
		return nil, fmt.Errorf("seat reservation requires a positive count, got %d", n)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"groupDepartureId": id,
		"$expr": bson.M{
			"$lte": bson.A{
				bson.M{"$add": bson.A{"$soldQuantity", n}},
				"$totalQuantity",
			},
		},
	}
	update := bson.M{
		"$inc": bson.M{"soldQuantity": n},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.GroupDeparture
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == nil {
		return &updated, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to reserve %d seats on departure %s: %w", n, id, err)
	}

	// Predicate failed or the departure is missing; disambiguate for the caller.
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, ErrNoSeats
}

// ReleaseSeats returns n seats to the pool. The conditional filter keeps the
// counter from going negative; a departure whose sold count is already below n
// is clamped to zero instead.
func (r *MongoGroupDepartureRepo) ReleaseSeats(ctx context.Context, id string, n int) (*models.GroupDeparture, error) {
	if n < 1 {
		return nil, fmt.Errorf("seat release requires a positive count, got %d", n)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"groupDepartureId": id,
		"soldQuantity":     bson.M{"$gte": n},
	}
	update := bson.M{
		"$inc": bson.M{"soldQuantity": -n},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.GroupDeparture
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == nil {
		return &updated, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to release %d seats on departure %s: %w", n, id, err)
	}

	// Fewer than n seats recorded as sold; clamp to zero.
	clampFilter := bson.M{"groupDepartureId": id}
	clampUpdate := bson.M{"$set": bson.M{"soldQuantity": 0, "updatedAt": time.Now()}}
	err = r.coll.FindOneAndUpdate(ctx, clampFilter, clampUpdate, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to clamp sold quantity on departure %s: %w", id, err)
	}
	return &updated, nil
}
