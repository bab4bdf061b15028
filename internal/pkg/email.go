package pkg

import (
	"context"
	"crypto/tls"
	"fmt"
	"html"
	"log/slog"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string // display sender, may equal Username
}

// Mailer delivers a single HTML message.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(_ context.Context, to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	d.TLSConfig = &tls.Config{ServerName: m.cfg.Host}
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

// LogMailer is used when no SMTP host is configured.
type LogMailer struct {
	Log *slog.Logger
}

func (m LogMailer) Send(_ context.Context, to, subject, _ string) error {
	m.Log.Info("mail not sent, smtp disabled", "to", to, "subject", subject)
	return nil
}

func ReplyHTML(name, originalSubject, reply string) string {
	return fmt.Sprintf(`<p>Hello %s,</p><p>Thank you for contacting us about <b>%s</b>.</p><p>%s</p><p>Kind regards,<br>The Executive Committee</p>`,
		html.EscapeString(name), html.EscapeString(originalSubject), html.EscapeString(reply))
}
