package mail

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"
	"time"

	"umzug_backoffice/internal/config"
	"umzug_backoffice/internal/usecase/interfaces"

	"github.com/cenkalti/backoff/v4"
	"github.com/domodwyer/mailyak/v3"
	"go.uber.org/zap"
)

// SMTPMailer sends mail through a plain SMTP relay.
//
// Without SMTP_HOST the mailer runs in mock mode: sends are logged and
// reported as successful, so quote workflows keep working in local and test
// environments. Transient send failures are retried with a constant delay
// before the last error is returned.

type SMTPMailer struct {
	addr     string
	auth     smtp.Auth
	from     string
	attempts uint
	retry    backoff.BackOff
	mockMode bool
	log      *zap.Logger
}

var _ interfaces.IMailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg *config.Config, log *zap.Logger) *SMTPMailer {
	if log == nil {
		log = zap.NewNop()
	}

	attempts := cfg.MailRetryAttempts
	if attempts == 0 {
		attempts = 1
	}

	m := &SMTPMailer{
		from:     cfg.MailFrom,
		attempts: attempts,
		retry:    backoff.NewConstantBackOff(cfg.MailRetryDelay),
		log:      log,
	}

	if !cfg.MailConfigured() {
		m.mockMode = true
		log.Info("smtp not configured, mailer running in mock mode")
		return m
	}

	m.addr = fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort)
	if cfg.SMTPUser != "" {
		m.auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	}
	return m
}

func (m *SMTPMailer) Send(ctx context.Context, msg interfaces.MailMessage) error {
	if m.mockMode {
		m.log.Info("mock mail send",
			zap.Strings("to", msg.To),
			zap.String("subject", msg.Subject),
			zap.Int("attachments", len(msg.Attachments)))
		return nil
	}

	send := func() error {
		if err := ctx.Err(); err != nil {
			return backoff.Permanent(err)
		}
		return m.sendOnce(msg)
	}

	err := backoff.RetryNotify(send,
		backoff.WithContext(backoff.WithMaxRetries(m.retry, uint64(m.attempts-1)), ctx),
		func(err error, _ time.Duration) {
			m.log.Warn("mail send failed, retrying",
				zap.Strings("to", msg.To),
				zap.Error(err))
		},
	)
	if err != nil {
		return fmt.Errorf("sending mail to %v: %w", msg.To, err)
	}

	m.log.Info("mail sent",
		zap.Strings("to", msg.To),
		zap.String("subject", msg.Subject))
	return nil
}

func (m *SMTPMailer) sendOnce(msg interfaces.MailMessage) error {
	yak := mailyak.New(m.addr, m.auth)
	yak.From(m.from)
	yak.To(msg.To...)
	yak.Subject(msg.Subject)
	yak.Plain().Set(msg.Text)
	if msg.HTML != "" {
		yak.HTML().Set(msg.HTML)
	}
	for _, att := range msg.Attachments {
		yak.Attach(att.Filename, bytes.NewReader(att.Content))
	}
	return yak.Send()
}
