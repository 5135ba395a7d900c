package booking

import (
	"context"

	"contour/models"
)

// BookingService orchestrates booking records and the seat inventory they
// consume on group departures.
type BookingService interface {
	// Create validates the traveller list, reserves seats on the referenced
	// group departure and persists the booking. Seat consumption happens
	// exactly once, here; the payment-status transition never touches it.
	Create(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, filter map[string]interface{}) ([]models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Booking, error)
	UpdatePaymentStatus(ctx context.Context, id string, fields map[string]interface{}) (*models.Booking, error)
	Cancel(ctx context.Context, id string) (*models.Booking, error)
	SendInvoice(ctx context.Context, id string, pdfBase64 string) error
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) (int64, error)
}
