package cron

import (
	"context"
	"log"
	"time"

	"contour/config"
	bookingRepo "contour/database/repository/booking"
	"contour/models"
	"contour/services/mailer"

	"github.com/robfig/cron/v3"
)

// depositWindow is how far ahead of departure the deposit-balance scan looks.
const depositWindow = 7 * 24 * time.Hour

// InitReminderScanner schedules the nightly sweep over bookings with money
// outstanding. The asynq worker covers reminders scheduled at booking time;
// this catches bookings created inside the reminder window and anything that
// slipped past its scheduled task.
func InitReminderScanner(bookings bookingRepo.BookingRepository, mailSvc mailer.MailerService) *cron.Cron {
	c := cron.New()

	spec := config.AppConfig.ReminderCronSpec
	if _, err := c.AddFunc(spec, func() {
		runReminderScan(bookings, mailSvc)
	}); err != nil {
		log.Fatalf("[ReminderScanner] ❌ Invalid cron spec %q: %v", spec, err)
	}

	c.Start()
	log.Printf("[ReminderScanner] 🚀 Nightly scan scheduled (%s)", spec)
	return c
}

func runReminderScan(bookings bookingRepo.BookingRepository, mailSvc mailer.MailerService) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	now := time.Now()

	due, err := bookings.ListDueDeposits(ctx, now, now.Add(depositWindow))
	if err != nil {
		log.Printf("[ReminderScanner] ❌ Due-deposit scan failed: %v", err)
	} else {
		for _, b := range due {
			email := contactEmail(&b)
			if email == "" {
				continue
			}
			if err := mailSvc.SendDepositReminder(email, b.Expedition); err != nil {
				log.Printf("[ReminderScanner] ❌ Deposit reminder for %s failed: %v", b.ID, err)
			}
		}
		log.Printf("[ReminderScanner] ⏰ Processed %d due-deposit bookings", len(due))
	}

	overdue, err := bookings.ListOverdue(ctx, now)
	if err != nil {
		log.Printf("[ReminderScanner] ❌ Overdue scan failed: %v", err)
		return
	}
	for _, b := range overdue {
		email := contactEmail(&b)
		if email == "" {
			continue
		}
		if err := mailSvc.SendOverdueNotice(email, b.RemainingAmount); err != nil {
			log.Printf("[ReminderScanner] ❌ Overdue notice for %s failed: %v", b.ID, err)
		}
	}
	log.Printf("[ReminderScanner] ⏰ Processed %d overdue bookings", len(overdue))
}

func contactEmail(b *models.Booking) string {
	for _, t := range b.Travellers {
		if t.Email != "" {
			return t.Email
		}
	}
	return ""
}
