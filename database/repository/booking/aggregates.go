// File: database/repository/booking/aggregates.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"contour/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Overview groups all bookings in the window into a single aggregate row.
func (r *MongoBookingRepo) Overview(ctx context.Context, start, end time.Time) (*models.BookingOverview, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{
			"$match": bson.M{
				"createdAt": bson.M{"$gte": start, "$lte": end},
			},
		},
		{
			"$group": bson.M{
				"_id":                 nil,
				"totalBookings":       bson.M{"$sum": 1},
				"totalRevenueAmount":  bson.M{"$sum": "$totalAmount"},
				"totalTrekkers":       bson.M{"$sum": bson.M{"$add": bson.A{bson.M{"$ifNull": bson.A{"$adults", 0}}, bson.M{"$ifNull": bson.A{"$childrens", 0}}}}},
				"averageBookingValue": bson.M{"$avg": "$totalAmount"},
				"outstandingPayments": bson.M{"$sum": "$remainingAmount"},
			},
		},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate booking overview: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []models.BookingOverview
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &models.BookingOverview{}, nil
	}
	return &rows[0], nil
}

// PaymentTotals sums totalAmount for bookings with the given payment option.
func (r *MongoBookingRepo) PaymentTotals(ctx context.Context, start, end time.Time, paymentOption string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{
			"$match": bson.M{
				"createdAt":     bson.M{"$gte": start, "$lte": end},
				"paymentOption": paymentOption,
			},
		},
		{
			"$group": bson.M{
				"_id":   nil,
				"total": bson.M{"$sum": "$totalAmount"},
			},
		},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate payment totals: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

// ListDueDeposits finds deposit-option bookings whose trips start inside the window.
func (r *MongoBookingRepo) ListDueDeposits(ctx context.Context, from, until time.Time) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"paymentOption": models.PaymentOptionDeposit,
		"startDate":     bson.M{"$gte": from, "$lte": until},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list due deposit bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListOverdue finds bookings past their start date with money still outstanding.
func (r *MongoBookingRepo) ListOverdue(ctx context.Context, now time.Time) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"remainingAmount": bson.M{"$gt": 0},
		"startDate":       bson.M{"$lte": now},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
