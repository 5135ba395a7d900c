// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"
	"time"

	"contour/database"
	"contour/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound indicates the referenced booking does not exist.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines data access for bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, filter map[string]interface{}) ([]models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*models.Booking, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) (int64, error)

	// Overview aggregates booking figures for the reporting endpoints.
	Overview(ctx context.Context, start, end time.Time) (*models.BookingOverview, error)
	// PaymentTotals sums totalAmount for one payment option in a window.
	PaymentTotals(ctx context.Context, start, end time.Time, paymentOption string) (float64, error)

	// ListDueDeposits returns deposit-option bookings departing inside the window.
	ListDueDeposits(ctx context.Context, from, until time.Time) ([]models.Booking, error)
	// ListOverdue returns bookings past their start date with money outstanding.
	ListOverdue(ctx context.Context, now time.Time) ([]models.Booking, error)
}

type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	return &MongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}
