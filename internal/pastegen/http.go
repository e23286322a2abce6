package pastegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to a running hub instance.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an HTTP client for the hub at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// SubmitPaste posts the generated text to /import and decodes the summary.
func (c *Client) SubmitPaste(ctx context.Context, text string, dryRun bool) (ImportSummary, error) {
	var summary ImportSummary

	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return summary, fmt.Errorf("failed to encode import request: %w", err)
	}

	url := c.baseURL + "/import"
	if dryRun {
		url += "?dry_run=1"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return summary, fmt.Errorf("failed to build import request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return summary, fmt.Errorf("import request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(resp.Body)
		return summary, fmt.Errorf("import returned status %d: %s", resp.StatusCode, string(payload))
	}
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return summary, fmt.Errorf("failed to decode import summary: %w", err)
	}
	return summary, nil
}

// FetchDashboard reads the team aggregates for verification.
func (c *Client) FetchDashboard(ctx context.Context) (Dashboard, error) {
	var d Dashboard

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/dashboard", nil)
	if err != nil {
		return d, fmt.Errorf("failed to build dashboard request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return d, fmt.Errorf("dashboard request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return d, fmt.Errorf("dashboard returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&d); err != nil {
		return d, fmt.Errorf("failed to decode dashboard: %w", err)
	}
	return d, nil
}

// SessionCount reads the ledger size for verification.
func (c *Client) SessionCount(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/sessions", nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build sessions request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("sessions request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("sessions returned status %d", resp.StatusCode)
	}
	var records []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return 0, fmt.Errorf("failed to decode sessions: %w", err)
	}
	return len(records), nil
}
