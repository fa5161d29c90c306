package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"clinic-booking/config"

	"gopkg.in/gomail.v2"
)

var (
	ErrDisabled       = errors.New("mail delivery is disabled")
	ErrMissingSender  = errors.New("mail sender address is not configured")
	ErrMissingAddress = errors.New("message has no recipient")
)

// Message is a plain-text email with an optional HTML alternative.
type Message struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

type Mailer interface {
	Send(ctx context.Context, m Message) error
}

// sender delivers a built message; swapped out in tests.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpMailer struct {
	cfg    config.MailConfig
	dialer sender
}

func NewSMTPMailer(cfg config.MailConfig) Mailer {
	return &smtpMailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (m *smtpMailer) Send(ctx context.Context, msg Message) error {
	if !m.cfg.Enabled {
		return ErrDisabled
	}

	built, err := buildMessage(m.cfg.From, msg)
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(built)
	}()

	wait := m.cfg.Timeout
	if wait <= 0 {
		wait = 10 * time.Second
	}
	if dl, ok := ctx.Deadline(); ok {
		if d := time.Until(dl); d > 0 && d < wait {
			wait = d
		}
	}

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return context.DeadlineExceeded
	}
}

func buildMessage(from string, m Message) (*gomail.Message, error) {
	from = strings.TrimSpace(from)
	if from == "" {
		return nil, ErrMissingSender
	}
	to := strings.TrimSpace(m.To)
	if to == "" {
		return nil, ErrMissingAddress
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", strings.TrimSpace(m.Subject))

	if m.HTMLBody != "" {
		msg.SetBody("text/plain", m.TextBody)
		msg.AddAlternative("text/html", m.HTMLBody)
	} else {
		msg.SetBody("text/plain", m.TextBody)
	}

	return msg, nil
}
