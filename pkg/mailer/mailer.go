// Package mailer delivers transactional email. The only message the platform
// sends today is the sign-up verification code.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/cron6502/plansmaisons-backend/pkg/config"
)

// Sender delivers verification emails.
type Sender interface {
	SendVerification(ctx context.Context, email, code, redirectURL string) error
}

// SMTPSender sends mail through a plain SMTP relay with optional AUTH.
type SMTPSender struct {
	cfg  config.SMTPConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPSender builds a sender from config. The From address and host are
// required, credentials are optional for relays that allow unauthenticated
// submission.
func NewSMTPSender(cfg config.SMTPConfig) (*SMTPSender, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("smtp from address is required")
	}
	return &SMTPSender{cfg: cfg, send: smtp.SendMail}, nil
}

// SendVerification emails the 6-digit code to the address that just signed up.
func (s *SMTPSender) SendVerification(ctx context.Context, email, code, redirectURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	msg := buildVerificationMessage(s.cfg.From, email, code, redirectURL)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	if err := s.send(addr, auth, s.cfg.From, []string{email}, msg); err != nil {
		return fmt.Errorf("sending verification email: %w", err)
	}
	return nil
}

func buildVerificationMessage(from, to, code, redirectURL string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	b.WriteString("Subject: Votre code de verification\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Votre code de verification est : %s\r\n", code)
	b.WriteString("\r\n")
	b.WriteString("Saisissez ce code pour activer votre compte.\r\n")
	if redirectURL != "" {
		fmt.Fprintf(&b, "\r\nContinuer : %s\r\n", redirectURL)
	}
	return []byte(b.String())
}
