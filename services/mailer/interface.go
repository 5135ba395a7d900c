package mailer

// MailerService delivers transactional mail for bookings.
type MailerService interface {
	// SendInvoice mails the booking invoice PDF as an attachment.
	SendInvoice(to string, pdf []byte) error
	// SendDepositReminder nudges a deposit-option booking ahead of departure.
	SendDepositReminder(to, expeditionName string) error
	// SendOverdueNotice chases a booking with money outstanding.
	SendOverdueNotice(to string, remainingAmount float64) error
}
