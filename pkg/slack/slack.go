// Package slack posts response notifications to an incoming webhook.
// Delivery is best effort: callers log failures and never fail the request
// because of them.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"outreach-backend/pkg/logger"
)

// Block is a Slack Block Kit element, passed through as-is.
type Block map[string]interface{}

// SectionBlock builds a plain mrkdwn section block.
func SectionBlock(text string) Block {
	return Block{
		"type": "section",
		"text": map[string]string{
			"type": "mrkdwn",
			"text": text,
		},
	}
}

type Client struct {
	webhookURL string
	httpClient *http.Client
}

func NewClient(webhookURL string) *Client {
	return &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// IsConfigured reports whether a webhook URL is set.
func (c *Client) IsConfigured() bool {
	return c.webhookURL != ""
}

// Send posts a message to the webhook. A missing webhook URL is not an
// error; the notification is simply skipped.
func (c *Client) Send(ctx context.Context, message string, blocks ...Block) error {
	if c.webhookURL == "" {
		logger.Log.Warn("Slack webhook not configured, skipping notification")
		return nil
	}

	payload := map[string]interface{}{"text": message}
	if len(blocks) > 0 {
		payload["blocks"] = blocks
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("slack: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("slack: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("slack: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		errText, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("slack: webhook returned %d: %s", resp.StatusCode, string(errText))
	}
	return nil
}
