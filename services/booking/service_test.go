package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	bookingRepo "contour/database/repository/booking"
	departureRepo "contour/database/repository/departure"
	"contour/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDepartureRepo is an in-memory GroupDepartureRepository whose seat
// operations are guarded the same way the real conditional updates are.
type fakeDepartureRepo struct {
	mu         sync.Mutex
	departures map[string]*models.GroupDeparture
}

func newFakeDepartureRepo(deps ...*models.GroupDeparture) *fakeDepartureRepo {
	r := &fakeDepartureRepo{departures: make(map[string]*models.GroupDeparture)}
	for _, d := range deps {
		r.departures[d.ID] = d
	}
	return r
}

func (r *fakeDepartureRepo) Create(ctx context.Context, dep *models.GroupDeparture) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.departures[dep.ID] = dep
	return nil
}

func (r *fakeDepartureRepo) GetByID(ctx context.Context, id string) (*models.GroupDeparture, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dep, ok := r.departures[id]
	if !ok {
		return nil, departureRepo.ErrNotFound
	}
	copied := *dep
	return &copied, nil
}

func (r *fakeDepartureRepo) GetAll(ctx context.Context) ([]models.GroupDeparture, error) {
	return nil, nil
}

func (r *fakeDepartureRepo) GetByExpedition(ctx context.Context, expeditionID string) ([]models.GroupDeparture, error) {
	return nil, nil
}

func (r *fakeDepartureRepo) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.GroupDeparture, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeDepartureRepo) Delete(ctx context.Context, id string) error { return nil }

func (r *fakeDepartureRepo) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	return 0, nil
}

func (r *fakeDepartureRepo) ReserveSeats(ctx context.Context, id string, n int) (*models.GroupDeparture, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dep, ok := r.departures[id]
	if !ok {
		return nil, departureRepo.ErrNotFound
	}
	if dep.SoldQuantity+n > dep.TotalQuantity {
		return nil, departureRepo.ErrNoSeats
	}
	dep.SoldQuantity += n
	copied := *dep
	return &copied, nil
}

func (r *fakeDepartureRepo) ReleaseSeats(ctx context.Context, id string, n int) (*models.GroupDeparture, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dep, ok := r.departures[id]
	if !ok {
		return nil, departureRepo.ErrNotFound
	}
	dep.SoldQuantity -= n
	if dep.SoldQuantity < 0 {
		dep.SoldQuantity = 0
	}
	copied := *dep
	return &copied, nil
}

func (r *fakeDepartureRepo) EnsureIndexes() error { return nil }

func (r *fakeDepartureRepo) sold(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.departures[id].SoldQuantity
}

// fakeBookingRepo is an in-memory BookingRepository. failCreate makes the next
// insert fail, which is how the compensating-release path is exercised.
type fakeBookingRepo struct {
	mu         sync.Mutex
	bookings   map[string]*models.Booking
	failCreate bool
	lastFields map[string]interface{}
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate {
		return errors.New("insert failed")
	}
	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) List(ctx context.Context, filter map[string]interface{}) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastFields = fields
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	if v, ok := fields["status"].(string); ok {
		b.Status = v
	}
	if v, ok := fields["paymentStatus"].(string); ok {
		b.PaymentStatus = v
	}
	if v, ok := fields["remainingAmount"].(float64); ok {
		b.RemainingAmount = v
	}
	if v, ok := fields["isSeen"].(bool); ok {
		b.IsSeen = v
	}
	if v, ok := fields["invoiceSent"].(bool); ok {
		b.InvoiceSent = v
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) Delete(ctx context.Context, id string) error { return nil }

func (r *fakeBookingRepo) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	return 0, nil
}

func (r *fakeBookingRepo) Overview(ctx context.Context, start, end time.Time) (*models.BookingOverview, error) {
	return &models.BookingOverview{}, nil
}

func (r *fakeBookingRepo) PaymentTotals(ctx context.Context, start, end time.Time, paymentOption string) (float64, error) {
	return 0, nil
}

func (r *fakeBookingRepo) ListDueDeposits(ctx context.Context, from, until time.Time) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) ListOverdue(ctx context.Context, now time.Time) ([]models.Booking, error) {
	return nil, nil
}

func travellers(n int) []models.Traveller {
	out := make([]models.Traveller, n)
	for i := range out {
		out[i] = models.Traveller{FullName: "Traveller", Email: "traveller@example.com"}
	}
	return out
}

func newService(bookings *fakeBookingRepo, departures *fakeDepartureRepo) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:          bookings,
		DepartureRepo: departures,
	}
}

func TestCreateReservesSeats(t *testing.T) {
	departures := newFakeDepartureRepo(&models.GroupDeparture{ID: "gdep_1", TotalQuantity: 10, SoldQuantity: 0})
	bookings := newFakeBookingRepo()
	svc := newService(bookings, departures)

	created, err := svc.Create(context.Background(), &models.Booking{
		Departure:  "gdep_1",
		Travellers: travellers(3),
	})
	require.NoError(t, err)

	assert.Equal(t, models.PaymentPending, created.PaymentStatus)
	assert.Equal(t, models.BookingStatusActive, created.Status)
	assert.Equal(t, 3, departures.sold("gdep_1"))

	stored, err := bookings.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Seats())
}

func TestCreateRejectsOverCapacity(t *testing.T) {
	departures := newFakeDepartureRepo(&models.GroupDeparture{ID: "gdep_1", TotalQuantity: 10, SoldQuantity: 8})
	svc := newService(newFakeBookingRepo(), departures)

	_, err := svc.Create(context.Background(), &models.Booking{
		Departure:  "gdep_1",
		Travellers: travellers(3),
	})

	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, "Only 2 seats remaining, cannot book 3 seats.", capErr.Error())
	// Rejection must leave the sold count untouched.
	assert.Equal(t, 8, departures.sold("gdep_1"))
}

func TestCreateExactlyFillsCapacity(t *testing.T) {
	departures := newFakeDepartureRepo(&models.GroupDeparture{ID: "gdep_1", TotalQuantity: 10, SoldQuantity: 8})
	svc := newService(newFakeBookingRepo(), departures)

	_, err := svc.Create(context.Background(), &models.Booking{
		Departure:  "gdep_1",
		Travellers: travellers(2),
	})
	require.NoError(t, err)
	assert.Equal(t, 10, departures.sold("gdep_1"))
}

func TestCreateSoldOutDeparture(t *testing.T) {
	departures := newFakeDepartureRepo(&models.GroupDeparture{ID: "gdep_1", TotalQuantity: 10, SoldQuantity: 10})
	svc := newService(newFakeBookingRepo(), departures)

	_, err := svc.Create(context.Background(), &models.Booking{
		Departure:  "gdep_1",
		Travellers: travellers(1),
	})

	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, "Only 0 seats remaining, cannot book 1 seats.", capErr.Error())
}

func TestCreateUnknownDeparture(t *testing.T) {
	svc := newService(newFakeBookingRepo(), newFakeDepartureRepo())

	_, err := svc.Create(context.Background(), &models.Booking{
		Departure:  "gdep_missing",
		Travellers: travellers(1),
	})
	assert.ErrorIs(t, err, departureRepo.ErrNotFound)
}

func TestCreateRequiresTravellers(t *testing.T) {
	svc := newService(newFakeBookingRepo(), newFakeDepartureRepo())

	_, err := svc.Create(context.Background(), &models.Booking{Departure: "gdep_1"})

	var valErr *ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestCreateReleasesSeatsOnInsertFailure(t *testing.T) {
	departures := newFakeDepartureRepo(&models.GroupDeparture{ID: "gdep_1", TotalQuantity: 10, SoldQuantity: 5})
	bookings := newFakeBookingRepo()
	bookings.failCreate = true
	svc := newService(bookings, departures)

	_, err := svc.Create(context.Background(), &models.Booking{
		Departure:  "gdep_1",
		Travellers: travellers(2),
	})
	require.Error(t, err)

	// The reservation succeeded but the insert failed; the compensating
	// release must bring the sold count back.
	assert.Equal(t, 5, departures.sold("gdep_1"))
}

func TestPaymentSuccessDoesNotConsumeSeatsAgain(t *testing.T) {
	departures := newFakeDepartureRepo(&models.GroupDeparture{ID: "gdep_1", TotalQuantity: 10, SoldQuantity: 0})
	bookings := newFakeBookingRepo()
	svc := newService(bookings, departures)

	created, err := svc.Create(context.Background(), &models.Booking{
		Departure:  "gdep_1",
		Travellers: travellers(4),
	})
	require.NoError(t, err)
	require.Equal(t, 4, departures.sold("gdep_1"))

	updated, err := svc.UpdatePaymentStatus(context.Background(), created.ID, map[string]interface{}{
		"paymentStatus": models.PaymentSucceeded,
	})
	require.NoError(t, err)

	assert.Equal(t, models.PaymentSucceeded, updated.PaymentStatus)
	assert.True(t, updated.IsSeen)
	// Seats are consumed exactly once, at creation.
	assert.Equal(t, 4, departures.sold("gdep_1"))
}

func TestConcurrentCreatesNeverOversell(t *testing.T) {
	departures := newFakeDepartureRepo(&models.GroupDeparture{ID: "gdep_1", TotalQuantity: 10, SoldQuantity: 0})
	svc := newService(newFakeBookingRepo(), departures)

	const attempts = 20
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(context.Background(), &models.Booking{
				Departure:  "gdep_1",
				Travellers: travellers(1),
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		}
	}

	assert.Equal(t, 10, succeeded)
	assert.Equal(t, 10, departures.sold("gdep_1"))
}

func TestCancelReleasesSeats(t *testing.T) {
	departures := newFakeDepartureRepo(&models.GroupDeparture{ID: "gdep_1", TotalQuantity: 10, SoldQuantity: 0})
	bookings := newFakeBookingRepo()
	svc := newService(bookings, departures)

	created, err := svc.Create(context.Background(), &models.Booking{
		Departure:  "gdep_1",
		Travellers: travellers(3),
	})
	require.NoError(t, err)
	require.Equal(t, 3, departures.sold("gdep_1"))

	canceled, err := svc.Cancel(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCanceled, canceled.Status)
	assert.Equal(t, 0, departures.sold("gdep_1"))

	// Cancelling again is a no-op and must not release twice.
	_, err = svc.Cancel(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, departures.sold("gdep_1"))
}

func TestUpdateDropsInventoryFields(t *testing.T) {
	departures := newFakeDepartureRepo(&models.GroupDeparture{ID: "gdep_1", TotalQuantity: 10, SoldQuantity: 0})
	bookings := newFakeBookingRepo()
	svc := newService(bookings, departures)

	created, err := svc.Create(context.Background(), &models.Booking{
		Departure:  "gdep_1",
		Travellers: travellers(2),
	})
	require.NoError(t, err)
	require.Equal(t, 2, departures.sold("gdep_1"))

	// A patch cannot rewrite the traveller list or move the booking to
	// another departure; those fields set the reserved seat count at
	// creation and a blind rewrite would desync it.
	_, err = svc.Update(context.Background(), created.ID, map[string]interface{}{
		"travellers":       travellers(6),
		"departure":        "gdep_2",
		"privateDeparture": "pdep_1",
		"remainingAmount":  150.0,
	})
	require.NoError(t, err)

	require.NotNil(t, bookings.lastFields)
	assert.NotContains(t, bookings.lastFields, "travellers")
	assert.NotContains(t, bookings.lastFields, "departure")
	assert.NotContains(t, bookings.lastFields, "privateDeparture")
	assert.Equal(t, 150.0, bookings.lastFields["remainingAmount"])
	assert.Equal(t, true, bookings.lastFields["isSeen"])

	assert.Equal(t, 2, departures.sold("gdep_1"))
}

func TestCreateWithoutDepartureSkipsInventory(t *testing.T) {
	bookings := newFakeBookingRepo()
	svc := newService(bookings, newFakeDepartureRepo())

	created, err := svc.Create(context.Background(), &models.Booking{
		PrivateDeparture: "pdep_1",
		Travellers:       travellers(2),
	})
	require.NoError(t, err)

	_, err = bookings.GetByID(context.Background(), created.ID)
	assert.NoError(t, err)
}
