package infra

import (
	"fmt"
	"net/smtp"

	"inventory/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer sends plain-text notifications over SMTP.
type Mailer struct {
	host     string
	user     string
	password string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

// Configured reports whether an SMTP host was set.
func (m *Mailer) Configured() bool { return m.host != "" }

// SendStockAlert mails a low-stock notice.
func (m *Mailer) SendStockAlert(to, subject, body string) error {
	if !m.Configured() {
		return fmt.Errorf("mailer: SMTP_HOST not set")
	}
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.password, m.host)
	}
	if err := e.Send(m.addr, auth); err != nil {
		return fmt.Errorf("mailer: send: %w", err)
	}
	return nil
}
