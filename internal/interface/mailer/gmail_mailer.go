package mailer

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/AbdurRahman-05/wetreck-backend/internal/domain/repository"
	"github.com/AbdurRahman-05/wetreck-backend/pkg/logger"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailMailer sends transactional email through the Gmail API. Used when the
// deployment sends from a Workspace account instead of Resend.
type GmailMailer struct {
	gmailService *gmail.Service
	logger       logger.Logger
	from         string
	sendTimeout  time.Duration
}

// NewGmailMailer creates a new Gmail mailer
func NewGmailMailer(ctx context.Context, tokenSource oauth2.TokenSource, from string, sendTimeout time.Duration, logger logger.Logger) (repository.Mailer, error) {
	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}

	if sendTimeout <= 0 {
		sendTimeout = 30 * time.Second
	}

	return &GmailMailer{
		gmailService: service,
		logger:       logger,
		from:         from,
		sendTimeout:  sendTimeout,
	}, nil
}

// Send sends one email as a base64url-encoded RFC 2822 message
func (m *GmailMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	ctx, cancel := context.WithTimeout(ctx, m.sendTimeout)
	defer cancel()

	raw := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		m.from, to, subject, htmlBody)

	msg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(raw)),
	}

	sent, err := m.gmailService.Users.Messages.Send("me", msg).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to send via gmail: %w", err)
	}

	m.logger.Info("Email sent",
		"provider", "gmail",
		"to", to,
		"subject", subject,
		"messageId", sent.Id)

	return nil
}
