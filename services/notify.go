package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mpecho/portfolio-backend/config"
	"github.com/mpecho/portfolio-backend/models"
)

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

// NotifyContact emails the site owner about a new contact-form submission
// via the Resend API. The contact record is already stored when this runs;
// callers treat a failure here as a warning, not a request failure.
//
// Requires environment variables:
//   - RESEND_API_KEY
//   - RESEND_FROM_EMAIL (e.g. "Portfolio <onboarding@resend.dev>")
//   - CONTACT_NOTIFY_EMAIL: where submissions are forwarded
func NotifyContact(cfg map[string]string, contact models.Contact) error {
	apiKey := config.GetString(cfg, "RESEND_API_KEY", "")
	if apiKey == "" {
		return fmt.Errorf("RESEND_API_KEY environment variable is required")
	}

	fromEmail := config.GetString(cfg, "RESEND_FROM_EMAIL", "")
	if fromEmail == "" {
		return fmt.Errorf("RESEND_FROM_EMAIL environment variable is required")
	}

	notifyEmail := config.GetString(cfg, "CONTACT_NOTIFY_EMAIL", "")
	if notifyEmail == "" {
		return fmt.Errorf("CONTACT_NOTIFY_EMAIL environment variable is required")
	}

	body := fmt.Sprintf(
		"<p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><p><strong>Message:</strong></p><p>%s</p>",
		html.EscapeString(contact.Name),
		html.EscapeString(contact.Email),
		strings.ReplaceAll(html.EscapeString(contact.Message), "\n", "<br>"),
	)

	payload := ResendEmailRequest{
		From:    fromEmail,
		To:      []string{notifyEmail},
		Subject: fmt.Sprintf("New contact form message from %s", contact.Name),
		Html:    body,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
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
		log.Info().Str("emailId", emailResponse.ID).Msg("Sent contact notification via Resend")
	}

	return nil
}
