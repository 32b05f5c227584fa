package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/oakfieldhealth/reception/backend/internal/model/intake"
)

// Supabase inserts intake records through the Supabase REST API.
type Supabase struct {
	baseURL string
	key     string
	table   string
	client  *http.Client
}

// NewSupabase builds a REST client for the given project and table. The
// timeout bounds every insert; a timed-out insert is an ordinary failure.
func NewSupabase(baseURL, key, table string, timeout time.Duration) *Supabase {
	return &Supabase{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
		table:   table,
		client:  &http.Client{Timeout: timeout},
	}
}

// Insert posts the record to /rest/v1/{table}. Supabase expects a JSON array
// of rows even for a single insert.
func (s *Supabase) Insert(ctx context.Context, rec intake.Record) error {
	body, err := json.Marshal([]intake.Record{rec})
	if err != nil {
		return fmt.Errorf("encode patient record: %w", err)
	}

	endpoint := s.baseURL + "/rest/v1/" + s.table
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build insert request: %w", err)
	}
	req.Header.Set("apikey", s.key)
	req.Header.Set("Authorization", "Bearer "+s.key)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("insert patient record: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("insert patient record: unexpected status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	return nil
}
