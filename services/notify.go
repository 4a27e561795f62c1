package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lunaria-site/cms-backend/config"
)

// Notifier delivers a best-effort notification to a single address.
// Callers treat a failure as a logged warning, never as a request failure.
type Notifier interface {
	Send(to, subject, htmlBody string) error
}

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// ResendNotifier sends email through the Resend HTTP API.
type ResendNotifier struct {
	apiKey    string
	fromEmail string
	client    *http.Client
}

// NewNotifier builds a Notifier from config. When RESEND_API_KEY or
// RESEND_FROM_EMAIL is absent, notifications are a silent no-op rather
// than an error.
func NewNotifier(cfg map[string]string) Notifier {
	apiKey := config.GetString(cfg, "RESEND_API_KEY", "")
	fromEmail := config.GetString(cfg, "RESEND_FROM_EMAIL", "")

	if apiKey == "" || fromEmail == "" {
		log.Warn().Msg("Resend not configured, email notifications disabled")
		return noopNotifier{}
	}

	return &ResendNotifier{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Send delivers one email via the Resend API.
func (n *ResendNotifier) Send(to, subject, htmlBody string) error {
	payload := ResendEmailRequest{
		From:    n.fromEmail,
		To:      []string{to},
		Subject: subject,
		Html:    htmlBody,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		log.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		log.Info().Str("emailId", emailResponse.ID).Msg("Successfully sent email via Resend")
	}

	return nil
}

type noopNotifier struct{}

func (noopNotifier) Send(to, subject, htmlBody string) error {
	log.Debug().Str("to", to).Str("subject", subject).Msg("notifier not configured, skipping email")
	return nil
}
