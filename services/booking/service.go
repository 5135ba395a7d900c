package booking

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

	bookingRepo "contour/database/repository/booking"
	departureRepo "contour/database/repository/departure"
	userRepo "contour/database/repository/user"
	"contour/models"
	"contour/services/mailer"
	"contour/services/tasks"
	"contour/utils"

	"go.uber.org/zap"
)

// depositReminderLead is how far ahead of departure the payment reminder fires.
const depositReminderLead = 7 * 24 * time.Hour

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo          bookingRepo.BookingRepository
	DepartureRepo departureRepo.GroupDepartureRepository
	UserRepo      userRepo.UserRepository
	Mailer        mailer.MailerService
	Scheduler     tasks.ReminderScheduler
}

// Create reserves seats and persists the booking.
//
// The reservation is a single conditional update on the departure document, so
// two requests racing for the last seats cannot both pass the capacity check.
// The booking insert runs after the reservation; if it fails the seats are
// released again, which is the only compensation this flow needs.
func (s *DefaultBookingService) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if len(booking.Travellers) == 0 {
		return nil, NewValidationError("at least one traveller is required")
	}

	booking.ID = utils.NewBusinessID("booking")
	booking.PaymentStatus = models.PaymentPending
	if booking.PaymentMethod == "" {
		booking.PaymentMethod = "card"
	}
	if booking.Status == "" {
		booking.Status = models.BookingStatusActive
	}

	seats := booking.Seats()
	reserved := false
	if booking.Departure != "" {
		_, err := s.DepartureRepo.ReserveSeats(ctx, booking.Departure, seats)
		if err != nil {
			if errors.Is(err, departureRepo.ErrNoSeats) {
				dep, getErr := s.DepartureRepo.GetByID(ctx, booking.Departure)
				if getErr != nil {
					return nil, getErr
				}
				return nil, &CapacityError{Available: dep.AvailableSeats(), Requested: seats}
			}
			return nil, err
		}
		reserved = true
	}

	if err := s.Repo.Create(ctx, booking); err != nil {
		if reserved {
			if _, relErr := s.DepartureRepo.ReleaseSeats(ctx, booking.Departure, seats); relErr != nil {
				utils.GetLogger().Error("Failed to release seats after booking insert failure",
					zap.String("departure", booking.Departure),
					zap.Int("seats", seats),
					zap.Error(relErr),
				)
			}
		}
		return nil, err
	}

	s.scheduleDepositReminder(ctx, booking)

	return booking, nil
}

// scheduleDepositReminder enqueues a payment nudge seven days before departure
// for deposit-option bookings. Scheduling failures are logged, not returned;
// the booking itself already succeeded.
func (s *DefaultBookingService) scheduleDepositReminder(ctx context.Context, booking *models.Booking) {
	if s.Scheduler == nil || booking.PaymentOption != models.PaymentOptionDeposit {
		return
	}
	fireAt := booking.StartDate.Add(-depositReminderLead)
	if booking.StartDate.IsZero() || fireAt.Before(time.Now()) {
		return
	}

	payload := models.ReminderPayload{
		BookingID:  booking.ID,
		Email:      s.contactEmail(ctx, booking),
		Expedition: booking.Expedition,
		Kind:       "deposit-due",
		FireDate:   fireAt.Format(time.RFC3339),
	}
	if payload.Email == "" {
		return
	}
	if err := s.Scheduler.Schedule(ctx, payload, fireAt); err != nil {
		utils.GetLogger().Warn("Failed to schedule deposit reminder",
			zap.String("booking", booking.ID),
			zap.Error(err),
		)
	}
}

// contactEmail resolves the best address for a booking: the account email when
// the booking belongs to a user, otherwise the lead traveller's.
func (s *DefaultBookingService) contactEmail(ctx context.Context, booking *models.Booking) string {
	if booking.User != "" && s.UserRepo != nil {
		if usr, err := s.UserRepo.GetByID(ctx, booking.User); err == nil && usr.Email != "" {
			return usr.Email
		}
	}
	for _, t := range booking.Travellers {
		if t.Email != "" {
			return t.Email
		}
	}
	return ""
}

func (s *DefaultBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultBookingService) List(ctx context.Context, filter map[string]interface{}) ([]models.Booking, error) {
	return s.Repo.List(ctx, filter)
}

func (s *DefaultBookingService) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Update applies a partial admin edit and marks the booking as seen. The
// traveller list and departure references are fixed at creation; changing them
// would desync the departure's sold count, so they are dropped from the patch.
func (s *DefaultBookingService) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Booking, error) {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	delete(fields, "travellers")
	delete(fields, "departure")
	delete(fields, "privateDeparture")
	fields["isSeen"] = true
	return s.Repo.UpdateFields(ctx, id, fields)
}

// UpdatePaymentStatus records a payment transition. Seats were consumed when
// the booking was created; marking a booking "succeeded" must not consume them
// again, so this path leaves the departure's sold count alone.
func (s *DefaultBookingService) UpdatePaymentStatus(ctx context.Context, id string, fields map[string]interface{}) (*models.Booking, error) {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	fields["isSeen"] = true
	return s.Repo.UpdateFields(ctx, id, fields)
}

// Cancel marks the booking canceled and returns its seats to the departure.
func (s *DefaultBookingService) Cancel(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status == models.BookingStatusCanceled {
		return booking, nil
	}

	updated, err := s.Repo.UpdateFields(ctx, id, map[string]interface{}{
		"status": models.BookingStatusCanceled,
	})
	if err != nil {
		return nil, err
	}

	if booking.Departure != "" && booking.Seats() > 0 {
		if _, relErr := s.DepartureRepo.ReleaseSeats(ctx, booking.Departure, booking.Seats()); relErr != nil {
			utils.GetLogger().Error("Failed to release seats on cancellation",
				zap.String("booking", id),
				zap.String("departure", booking.Departure),
				zap.Error(relErr),
			)
		}
	}
	return updated, nil
}

// SendInvoice mails the invoice PDF once per booking.
func (s *DefaultBookingService) SendInvoice(ctx context.Context, id string, pdfBase64 string) error {
	if pdfBase64 == "" {
		return NewValidationError("PDF data is required")
	}

	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if booking.InvoiceSent {
		return NewValidationError("invoice already sent for this booking")
	}

	email := s.contactEmail(ctx, booking)
	if email == "" {
		return NewValidationError("booking has no contact email")
	}

	pdf, err := base64.StdEncoding.DecodeString(pdfBase64)
	if err != nil {
		return NewValidationError("invalid PDF data")
	}

	if err := s.Mailer.SendInvoice(email, pdf); err != nil {
		return err
	}

	_, err = s.Repo.UpdateFields(ctx, id, map[string]interface{}{"invoiceSent": true})
	return err
}

func (s *DefaultBookingService) Delete(ctx context.Context, id string) error {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultBookingService) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	return s.Repo.DeleteMany(ctx, ids)
}
