// Package email sends transactional notifications over SMTP.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	sharedConfig "campusdesk/internal/shared/config"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/services/markdown"
)

// Notifier sends plain notification messages.
type Notifier interface {
	Notify(to, subject, body string) error
}

// SMTPNotifier delivers mail through a configured SMTP relay. Bodies are
// treated as markdown: the plain source is sent as text/plain with a rendered
// HTML alternative.
type SMTPNotifier struct {
	dialer   *gomail.Dialer
	from     string
	name     string
	renderer *markdown.Renderer
	logger   logger.Interface
}

func NewSMTPNotifier(cfg *sharedConfig.EmailConfig, log logger.Interface) *SMTPNotifier {
	return &SMTPNotifier{
		dialer:   gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:     cfg.FromAddress,
		name:     cfg.FromName,
		renderer: markdown.NewRenderer(),
		logger:   log,
	}
}

func (n *SMTPNotifier) Notify(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.from, n.name)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if htmlBody, err := n.renderer.Render(body); err != nil {
		n.logger.Warnw("failed to render html email part, sending plain text only", "error", err)
	} else {
		m.AddAlternative("text/html", htmlBody)
	}

	if err := n.dialer.DialAndSend(m); err != nil {
		n.logger.Errorw("failed to send email", "to", to, "subject", subject, "error", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	n.logger.Debugw("email sent", "to", to, "subject", subject)
	return nil
}

// LogNotifier records notifications instead of sending them. Used when email
// delivery is disabled.
type LogNotifier struct {
	logger logger.Interface
}

func NewLogNotifier(log logger.Interface) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) Notify(to, subject, body string) error {
	n.logger.Infow("email delivery disabled, skipping notification", "to", to, "subject", subject)
	return nil
}
