package mail

import (
	"context"

	"go-trainer-booking/config"
	"go-trainer-booking/internal/domain/gateway"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// SMTPMailer sends transactional mail over SMTP. When no host is configured
// it degrades to logging the message, so local environments work without a
// mail account.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	log    *logrus.Logger
}

func NewSMTPMailer(cfg config.MailConfig, log *logrus.Logger) gateway.Mailer {
	mailer := &SMTPMailer{
		from: cfg.From,
		log:  log,
	}
	if mailer.from == "" {
		mailer.from = "no-reply@localhost"
	}

	if cfg.Host != "" {
		mailer.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	} else {
		log.Warn("SMTP host not configured, outgoing mail will only be logged")
	}

	return mailer
}

func (m *SMTPMailer) Send(_ context.Context, to, subject, htmlBody string) error {
	if m.dialer == nil {
		m.log.WithFields(logrus.Fields{"to": to, "subject": subject}).Info("Mail delivery skipped (no SMTP host)")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	return m.dialer.DialAndSend(msg)
}
