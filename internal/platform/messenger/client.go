package messenger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"spinwheel-backend/internal/common/logger"
)

// Client posts text messages to the chat platform's send-message endpoint.
type Client struct {
	httpClient  *http.Client
	sendURL     string
	accessToken string
	logger      zerolog.Logger
}

// apiError is the error object the platform embeds in a response body.
type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
	Code    int    `json:"code,omitempty"`
}

func (e *apiError) Error() string {
	return e.Message
}

type sendResponse struct {
	RecipientID string    `json:"recipient_id,omitempty"`
	MessageID   string    `json:"message_id,omitempty"`
	Error       *apiError `json:"error,omitempty"`
}

func NewClient(sendURL, accessToken string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		sendURL:     sendURL,
		accessToken: accessToken,
		logger:      logger.With("messenger"),
	}
}

// SendText delivers a text message to the contact. A response body carrying
// an error object counts as a failure even on HTTP 200.
func (c *Client) SendText(ctx context.Context, contactID, text string) error {
	payload := struct {
		Recipient struct {
			ID string `json:"id"`
		} `json:"recipient"`
		Message struct {
			Text string `json:"text"`
		} `json:"message"`
	}{}
	payload.Recipient.ID = contactID
	payload.Message.Text = text

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	endpoint := fmt.Sprintf("%s?access_token=%s", c.sendURL, url.QueryEscape(c.accessToken))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call send API: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read send API response: %w", err)
	}

	var result sendResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return fmt.Errorf("failed to decode send API response (status %d): %w", resp.StatusCode, err)
	}

	if result.Error != nil {
		c.logger.Error().
			Str("contact_id", contactID).
			Int("status", resp.StatusCode).
			Str("api_error", result.Error.Message).
			Msg("Send API returned an error")
		return fmt.Errorf("send API error: %w", result.Error)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("send API returned status %d", resp.StatusCode)
	}

	c.logger.Debug().
		Str("contact_id", contactID).
		Str("message_id", result.MessageID).
		Msg("Message delivered")

	return nil
}
