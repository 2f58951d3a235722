package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/AbdurRahman-05/wetreck-backend/internal/domain/repository"
	"github.com/AbdurRahman-05/wetreck-backend/pkg/logger"
)

// ResendMailer sends transactional email through the Resend REST API
type ResendMailer struct {
	logger  logger.Logger
	baseURL string
	apiKey  string
	from    string
	client  *http.Client
}

// NewResendMailer creates a new Resend mailer. sendTimeout bounds each send
// so a stalled provider cannot hold a request open indefinitely.
func NewResendMailer(apiKey, from string, sendTimeout time.Duration, logger logger.Logger) repository.Mailer {
	if sendTimeout <= 0 {
		sendTimeout = 30 * time.Second
	}

	return &ResendMailer{
		logger:  logger,
		baseURL: "https://api.resend.com",
		apiKey:  apiKey,
		from:    from,
		client:  &http.Client{Timeout: sendTimeout},
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send sends one email and returns the provider error on failure
func (m *ResendMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	body := resendRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		HTML:    htmlBody,
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal email request: %w", err)
	}

	url := fmt.Sprintf("%s/emails", m.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var errorBody map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errorBody)
		return fmt.Errorf("resend returned status %d: %v", resp.StatusCode, errorBody)
	}

	var response struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	m.logger.Info("Email sent",
		"provider", "resend",
		"to", to,
		"subject", subject,
		"messageId", response.ID)

	return nil
}
