package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

var ErrNotConfigured = errors.New("whatsapp credentials not configured")

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a Cloud API client. Every call is bounded by timeout.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// SendText sends a plain text message to phone. Missing credentials skip
// the call and return ErrNotConfigured.
func (c *Client) SendText(ctx context.Context, to, body string, creds Credentials) error {
	if !creds.Complete() {
		c.logger.Warn("whatsapp: missing credentials, message not sent", zap.String("to", to))
		return ErrNotConfigured
	}

	payload := sendTextRequest{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             textBody{Body: body},
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("whatsapp: marshal payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, creds.PhoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("whatsapp: build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+creds.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp: send: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	var result SendMessageResponse
	decodeErr := json.Unmarshal(respBody, &result)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr == nil && result.Error != nil {
			return fmt.Errorf("whatsapp api error %d: %s (code %d)", resp.StatusCode, result.Error.Message, result.Error.Code)
		}
		return fmt.Errorf("whatsapp api error %d: %s", resp.StatusCode, string(respBody))
	}

	messageID := ""
	if decodeErr == nil && len(result.Messages) > 0 {
		messageID = result.Messages[0].ID
	}

	c.logger.Info("whatsapp: message sent",
		zap.String("to", to),
		zap.Int("status", resp.StatusCode),
		zap.String("message_id", messageID),
	)
	return nil
}
