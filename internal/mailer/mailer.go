// Package mailer delivers plain-text mail over SMTP.
package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"sync"
	"time"

	"go-hrm/internal/config"

	"go.uber.org/zap"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// New returns the SMTP transport, or a logging no-op when mail is disabled.
func New(cfg *config.Config, logger *zap.Logger) Mailer {
	if !cfg.SMTPEnabled || cfg.SMTPHost == "" {
		return NewNoop(logger)
	}
	return &smtpMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
		useTLS:   cfg.SMTPUseTLS,
		timeout:  10 * time.Second,
	}
}

// Noop records messages instead of sending them.
type Noop struct {
	mu     sync.Mutex
	sent   []Message
	logger *zap.Logger
}

func NewNoop(logger *zap.Logger) *Noop {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Noop{logger: logger.Named("mailer.noop")}
}

func (n *Noop) Send(ctx context.Context, msg Message) error {
	n.mu.Lock()
	n.sent = append(n.sent, msg)
	n.mu.Unlock()
	n.logger.Debug("mail suppressed", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}

func (n *Noop) Sent() []Message {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Message, len(n.sent))
	copy(out, n.sent)
	return out
}

type smtpMailer struct {
	host     string
	port     int
	user     string
	password string
	from     string
	useTLS   bool
	timeout  time.Duration
}

func (s *smtpMailer) Send(ctx context.Context, msg Message) error {
	if strings.TrimSpace(msg.To) == "" {
		return nil
	}
	addr := fmt.Sprintf("%s:%d", s.host, s.port)

	dialer := net.Dialer{Timeout: s.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return err
	}
	defer client.Close()

	if s.useTLS {
		if err := client.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return err
		}
	}

	if s.user != "" {
		if err := client.Auth(smtp.PlainAuth("", s.user, s.password, s.host)); err != nil {
			return err
		}
	}

	if err := client.Mail(s.from); err != nil {
		return err
	}
	if err := client.Rcpt(msg.To); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(BuildMessage(s.from, msg)); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func BuildMessage(from string, msg Message) []byte {
	headers := []string{
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", msg.To),
		fmt.Sprintf("Subject: %s", msg.Subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
	}
	return []byte(strings.Join(headers, "\r\n") + "\r\n" + msg.Body)
}
