package utils

import "gopkg.in/gomail.v2"

// Mailer sends transactional storefront mail.
type Mailer interface {
	Send(to string, subject string, body string) error
}

// SMTPMailer delivers through a plain SMTP relay.
type SMTPMailer struct {
	sender string
	dialer *gomail.Dialer
}

func CreateSMTPMailer(host string, port int, sender string, password string) *SMTPMailer {
	return &SMTPMailer{
		sender: sender,
		dialer: gomail.NewDialer(host, port, sender, password),
	}
}

func (m *SMTPMailer) Send(to string, subject string, body string) error {
	message := gomail.NewMessage()
	message.SetHeader("From", m.sender)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/plain", body)

	return m.dialer.DialAndSend(message)
}
