package mailrepo

import (
	"gopkg.in/gomail.v2"

	"github.com/galzit0/api-livros/config"
)

// Mailer sends the rent/return confirmation mail. The path is wired but
// disabled by default (MAIL_ENABLED); it needs real SMTP credentials.
type Mailer interface {
	Send(to, subject, body string) error
}

type smtp struct {
	dialer *gomail.Dialer
	sender string
}

func New(cfg config.MailConfig) Mailer {
	return &smtp{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		sender: cfg.Sender,
	}
}

func (m *smtp) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}
