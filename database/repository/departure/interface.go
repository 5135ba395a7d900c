// File: database/repository/departure/interface.go
package departureRepo

import (
	"context"
	"errors"

	"contour/models"
)

// Sentinel errors surfaced to the service layer.
var (
	// ErrNotFound indicates the referenced departure does not exist.
	ErrNotFound = errors.New("group departure not found")
	// ErrNoSeats indicates a seat reservation failed its capacity predicate.
	ErrNoSeats = errors.New("insufficient seats remaining")
	// ErrTotalBelowSold indicates a capacity edit would drop totalQuantity
	// under the seats already sold.
	ErrTotalBelowSold = errors.New("totalQuantity cannot be lower than soldQuantity")
)

// GroupDepartureRepository defines data access for group departures.
//
// SoldQuantity is only ever mutated through ReserveSeats and ReleaseSeats, both
// of which are single conditional updates. There is no read-then-write path, so
// concurrent bookings against one departure serialize at the store and the
// invariant 0 <= soldQuantity <= totalQuantity holds at all times.
type GroupDepartureRepository interface {
	Create(ctx context.Context, dep *models.GroupDeparture) error
	GetByID(ctx context.Context, id string) (*models.GroupDeparture, error)
	GetAll(ctx context.Context) ([]models.GroupDeparture, error)
	GetByExpedition(ctx context.Context, expeditionID string) ([]models.GroupDeparture, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.GroupDeparture, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) (int64, error)

	// ReserveSeats atomically increments soldQuantity by n, but only while
	// soldQuantity + n <= totalQuantity. Returns the updated departure,
	// ErrNoSeats when the predicate fails, or ErrNotFound.
	ReserveSeats(ctx context.Context, id string, n int) (*models.GroupDeparture, error)

	// ReleaseSeats atomically decrements soldQuantity by n, flooring at zero.
	ReleaseSeats(ctx context.Context, id string, n int) (*models.GroupDeparture, error)

	// EnsureIndexes creates the indexes the collection relies on.
	EnsureIndexes() error
}

// PrivateDepartureRepository defines data access for private departures.
type PrivateDepartureRepository interface {
	Create(ctx context.Context, dep *models.PrivateDeparture) error
	GetByID(ctx context.Context, id string) (*models.PrivateDeparture, error)
	GetAll(ctx context.Context) ([]models.PrivateDeparture, error)
	GetByExpedition(ctx context.Context, expeditionID string) ([]models.PrivateDeparture, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.PrivateDeparture, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) (int64, error)
	EnsureIndexes() error
}
