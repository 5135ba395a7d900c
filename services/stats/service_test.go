package stats

import (
	"context"
	"testing"
	"time"

	"contour/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingAggregates serves canned figures keyed by payment option.
type fakeBookingAggregates struct {
	overview *models.BookingOverview
	totals   map[string]float64

	lastStart time.Time
	lastEnd   time.Time
}

func (r *fakeBookingAggregates) Create(ctx context.Context, booking *models.Booking) error {
	return nil
}

func (r *fakeBookingAggregates) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, nil
}

func (r *fakeBookingAggregates) List(ctx context.Context, filter map[string]interface{}) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeBookingAggregates) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeBookingAggregates) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*models.Booking, error) {
	return nil, nil
}

func (r *fakeBookingAggregates) Delete(ctx context.Context, id string) error { return nil }

func (r *fakeBookingAggregates) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	return 0, nil
}

func (r *fakeBookingAggregates) Overview(ctx context.Context, start, end time.Time) (*models.BookingOverview, error) {
	r.lastStart, r.lastEnd = start, end
	return r.overview, nil
}

func (r *fakeBookingAggregates) PaymentTotals(ctx context.Context, start, end time.Time, paymentOption string) (float64, error) {
	r.lastStart, r.lastEnd = start, end
	return r.totals[paymentOption], nil
}

func (r *fakeBookingAggregates) ListDueDeposits(ctx context.Context, from, until time.Time) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeBookingAggregates) ListOverdue(ctx context.Context, now time.Time) ([]models.Booking, error) {
	return nil, nil
}

func TestOverviewPassesWindowThrough(t *testing.T) {
	fixture := &models.BookingOverview{
		TotalBookings:       4,
		TotalRevenueAmount:  9800,
		TotalTrekkers:       11,
		AverageBookingValue: 2450,
		OutstandingPayments: 1200,
	}
	repo := &fakeBookingAggregates{overview: fixture}
	svc := &DefaultStatsService{Bookings: repo}

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	got, err := svc.Overview(context.Background(), start, end)
	require.NoError(t, err)
	assert.Equal(t, fixture, got)
	assert.Equal(t, start, repo.lastStart)
	assert.Equal(t, end, repo.lastEnd)
}

func TestOverviewDefaultsOpenEndToNow(t *testing.T) {
	repo := &fakeBookingAggregates{overview: &models.BookingOverview{}}
	svc := &DefaultStatsService{Bookings: repo}

	before := time.Now()
	_, err := svc.Overview(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.True(t, repo.lastStart.IsZero())
	assert.False(t, repo.lastEnd.Before(before))
}

func TestPaymentBreakdownSplitsByOption(t *testing.T) {
	repo := &fakeBookingAggregates{totals: map[string]float64{
		models.PaymentOptionFull:    5200,
		models.PaymentOptionDeposit: 1750,
	}}
	svc := &DefaultStatsService{Bookings: repo}

	got, err := svc.PaymentBreakdown(context.Background(), time.Time{}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 5200.0, got.FullPayments)
	assert.Equal(t, 1750.0, got.DepositPayments)
}
