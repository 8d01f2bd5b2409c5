package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendTransactionAlert(toEmail, reference, status string, amount string) error
	SendFallbackAlert(toEmail, reason string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: senderEmail,
	}
}

// SendTransactionAlert notifies the operations inbox of a transaction status
// change picked up by the watcher.
func (s *emailService) SendTransactionAlert(toEmail, reference, status string, amount string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Transaction %s is now %s", reference, status))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Transaction Update</h2>
			<p>Reference: <strong>%s</strong></p>
			<p>Status: <strong>%s</strong></p>
			<p>Amount: <strong>%s</strong></p>
			<p>Review it in the back office dashboard.</p>
		</div>
	`, reference, status, amount)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send transaction alert to %s: %w", toEmail, err)
	}
	return nil
}

// SendFallbackAlert tells operations the service is running on fallback data
// because the database is unreachable.
func (s *emailService) SendFallbackAlert(toEmail, reason string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Back office running in degraded mode")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Degraded Mode</h2>
			<p>The admin service switched to fallback data:</p>
			<p><strong>%s</strong></p>
			<p>Writes are rejected until the database is reachable again.</p>
		</div>
	`, reason)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send fallback alert to %s: %w", toEmail, err)
	}
	return nil
}
