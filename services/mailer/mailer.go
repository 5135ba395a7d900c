package mailer

import (
	"bytes"
	"fmt"
	"io"

	"contour/config"
	"contour/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// SMTPMailer sends mail through the SMTP relay configured in AppConfig.
type SMTPMailer struct{}

// NewSMTPMailer constructs a MailerService backed by gomail.
func NewSMTPMailer() MailerService {
	return &SMTPMailer{}
}

func (m *SMTPMailer) dialer() *gomail.Dialer {
	cfg := config.AppConfig
	return gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
}

func (m *SMTPMailer) send(msg *gomail.Message) error {
	if err := m.dialer().DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}

func (m *SMTPMailer) SendInvoice(to string, pdf []byte) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", config.AppConfig.MailFrom)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your booking invoice")
	msg.SetBody("text/html", "Here is the attached invoice. Thank you for booking a trip with us.")
	msg.Attach("contour_booking_invoice.pdf", gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := io.Copy(w, bytes.NewReader(pdf))
		return err
	}))

	utils.GetLogger().Info("Sending invoice mail", zap.String("to", to))
	return m.send(msg)
}

func (m *SMTPMailer) SendDepositReminder(to, expeditionName string) error {
	body := fmt.Sprintf(
		"Hello, this is a gentle reminder that your departure for the trip %s is approaching. "+
			"While the payments have not been cleared yet, we request you to clear all payments to avoid any hassle.",
		expeditionName,
	)

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.AppConfig.MailFrom)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Regarding due payment")
	msg.SetBody("text/html", body)

	utils.GetLogger().Info("Sending deposit reminder", zap.String("to", to))
	return m.send(msg)
}

func (m *SMTPMailer) SendOverdueNotice(to string, remainingAmount float64) error {
	body := fmt.Sprintf(
		"Hello, this is a gentle reminder that you have overdue payments of %.2f. Please make a payment soon.",
		remainingAmount,
	)

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.AppConfig.MailFrom)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Regarding due payment")
	msg.SetBody("text/html", body)

	utils.GetLogger().Info("Sending overdue notice", zap.String("to", to))
	return m.send(msg)
}
