package stats

import (
	"context"
	"time"

	bookingRepo "contour/database/repository/booking"
	"contour/models"
)

// StatsService exposes the reporting aggregates the dashboard renders.
type StatsService interface {
	Overview(ctx context.Context, start, end time.Time) (*models.BookingOverview, error)
	PaymentBreakdown(ctx context.Context, start, end time.Time) (*models.PaymentBreakdown, error)
}

// DefaultStatsService implements StatsService on top of the booking repository
// aggregation pipelines.
type DefaultStatsService struct {
	Bookings bookingRepo.BookingRepository
}

// Overview returns booking totals for the window. A zero end time means "now";
// a zero start time means "from the beginning".
func (s *DefaultStatsService) Overview(ctx context.Context, start, end time.Time) (*models.BookingOverview, error) {
	start, end = normalizeWindow(start, end)
	return s.Bookings.Overview(ctx, start, end)
}

// PaymentBreakdown sums revenue per payment option for the window.
func (s *DefaultStatsService) PaymentBreakdown(ctx context.Context, start, end time.Time) (*models.PaymentBreakdown, error) {
	start, end = normalizeWindow(start, end)

	full, err := s.Bookings.PaymentTotals(ctx, start, end, models.PaymentOptionFull)
	if err != nil {
		return nil, err
	}
	deposit, err := s.Bookings.PaymentTotals(ctx, start, end, models.PaymentOptionDeposit)
	if err != nil {
		return nil, err
	}

	return &models.PaymentBreakdown{
		FullPayments:    full,
		DepositPayments: deposit,
	}, nil
}

func normalizeWindow(start, end time.Time) (time.Time, time.Time) {
	if end.IsZero() {
		end = time.Now()
	}
	return start, end
}
