package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/yourusername/telegram-request-bot/internal/domain/entity"
)

const defaultTimeout = 15 * time.Second

// Options Jira client konfiguratsiyasi
type Options struct {
	BaseURL    string
	Email      string
	APIToken   string
	ProjectKey string
	Timeout    time.Duration
}

// Client tashqi issue tracker uchun REST client.
// One write operation: create issue, returns the backend-assigned key.
type Client struct {
	opts       Options
	httpClient *http.Client
}

// NewClient yangi Jira client yaratish
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	return &Client{
		opts:       opts,
		httpClient: &http.Client{Timeout: opts.Timeout},
	}
}

type createIssueRequest struct {
	Fields map[string]interface{} `json:"fields"`
}

type createIssueResponse struct {
	ID  string `json:"id"`
	Key string `json:"key"`
}

// Create bitta ticket yaratadi va tracker bergan identifikatorni qaytaradi
func (c *Client) Create(ctx context.Context, ticket entity.Ticket) (string, error) {
	fields := map[string]interface{}{
		"project":     map[string]string{"key": c.opts.ProjectKey},
		"issuetype":   map[string]string{"name": "Task"},
		"summary":     ticket.Summary,
		"description": ticket.Description,
	}
	for id, value := range ticket.Fields {
		fields[id] = value
	}

	body, err := json.Marshal(createIssueRequest{Fields: fields})
	if err != nil {
		return "", fmt.Errorf("marshal issue: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+"/rest/api/2/issue", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.opts.Email, c.opts.APIToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("create issue: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("create issue: status %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}

	var created createIssueResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("decode issue response: %w", err)
	}
	if created.Key == "" {
		return "", fmt.Errorf("issue response has no key")
	}
	return created.Key, nil
}
