package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultTimeout            = 5 * time.Second
	responseBodyReadLimit int64 = 1 << 20
)

var (
	errBaseURLRequired = errors.New("directory base url is required")

	// ErrUserNotFound covers every lookup outcome that is not a confirmed
	// user: 404s, non-2xx responses, malformed payloads, timeouts and
	// transport failures. Callers treat them all as "invalid user".
	ErrUserNotFound = errors.New("user not found")
)

// UserRecord is the subset of the directory payload the order workflow needs.
type UserRecord struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Client calls the user-directory service that owns buyer/receiver accounts.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient builds the directory client for the given base URL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errBaseURLRequired
	}

	client := &Client{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return client, nil
}

// FetchUserDetails resolves a user id against the directory. Every failure
// mode short of a decoded 2xx payload resolves to ErrUserNotFound so the
// caller never confuses lookup failure with a confirmed identity.
func (c *Client) FetchUserDetails(ctx context.Context, userID uint64) (*UserRecord, error) {
	url := fmt.Sprintf("%s/users/%d", c.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build directory request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUserNotFound, err)
	}
	defer func() {
		io.Copy(io.Discard, io.LimitReader(resp.Body, responseBodyReadLimit))
		resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: directory returned status %d", ErrUserNotFound, resp.StatusCode)
	}

	var record UserRecord
	if err := json.NewDecoder(io.LimitReader(resp.Body, responseBodyReadLimit)).Decode(&record); err != nil {
		return nil, fmt.Errorf("%w: decode directory response: %v", ErrUserNotFound, err)
	}
	if record.ID == 0 {
		return nil, fmt.Errorf("%w: directory returned empty record", ErrUserNotFound)
	}

	return &record, nil
}
