package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/oakfieldhealth/reception/backend/internal/model/intake"
)

// Webhook notifies the receiving ward by posting the record as JSON.
type Webhook struct {
	url    string
	client *http.Client
}

// NewWebhook builds a notifier for the configured endpoint.
func NewWebhook(url string, timeout time.Duration) *Webhook {
	return &Webhook{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Send posts the record and treats any non-2xx response as a failure.
func (w *Webhook) Send(ctx context.Context, rec intake.Record) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("notify ward webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notify ward webhook: unexpected status %d", resp.StatusCode)
	}
	return nil
}
