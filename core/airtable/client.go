package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxErrorBody bounds how much of an error response is kept.
const maxErrorBody = 4 << 10

// ErrNotConfigured is returned when the API key, base or table is missing.
var ErrNotConfigured = errors.New("airtable not configured")

// Client creates records in an Airtable table.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a client. An unconfigured client is valid; its calls
// return ErrNotConfigured.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.airtable.com/v0"
	}
	if cfg.TitleField == "" {
		cfg.TitleField = "Name"
	}
	if cfg.DescriptionField == "" {
		cfg.DescriptionField = "Description"
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

type createRequest struct {
	Fields map[string]any `json:"fields"`
}

type createResponse struct {
	ID          string         `json:"id"`
	Fields      map[string]any `json:"fields"`
	CreatedTime string         `json:"createdTime"`
}

// CreateRecord creates a record with the title and, when non-empty, the
// description, and returns the new Airtable record id.
func (c *Client) CreateRecord(ctx context.Context, title, description string) (string, error) {
	if !c.cfg.IsConfigured() {
		return "", ErrNotConfigured
	}

	fields := map[string]any{c.cfg.TitleField: title}
	if description != "" {
		fields[c.cfg.DescriptionField] = description
	}

	body, err := json.Marshal(createRequest{Fields: fields})
	if err != nil {
		return "", fmt.Errorf("failed to encode airtable record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tableURL(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build airtable request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("airtable request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("airtable error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(text)))
	}

	var created createResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("failed to decode airtable response: %w", err)
	}
	if created.ID == "" {
		return "", errors.New("airtable response has no record id")
	}
	return created.ID, nil
}

func (c *Client) tableURL() string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + "/" + url.PathEscape(c.cfg.BaseID) + "/" + url.PathEscape(c.cfg.TableID)
}
