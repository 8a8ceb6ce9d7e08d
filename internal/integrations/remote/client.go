package remote

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

	"cardtext/internal/domain"
)

const generatePath = "/api/generate-text"

// generateRequest is the wire shape accepted by the generation endpoint.
type generateRequest struct {
	MessageType string         `json:"messageType"`
	Options     domain.Options `json:"options"`
}

// generateResponse is the minimal success shape returned by the endpoint.
type generateResponse struct {
	Success     bool   `json:"success"`
	Text        string `json:"text"`
	MessageType string `json:"messageType"`
	Timestamp   string `json:"timestamp"`
}

// HTTPStatusError captures non-2xx responses from the generation endpoint.
type HTTPStatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("remote: unexpected status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

func (e *HTTPStatusError) HTTPStatusCode() int {
	return e.StatusCode
}

// Client calls a remote text generation endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout replaces the HTTP client with one using timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: timeout}
	}
}

// NewClient creates a Client for the service rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("remote: base URL must not be empty")
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("remote: base URL %q must be http or https", baseURL)
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) resolvedHTTPClient() *http.Client {
	if c.httpClient != nil {
		return c.httpClient
	}
	return &http.Client{Timeout: 10 * time.Second}
}

// generateURL accepts a base that already ends in the endpoint path.
func generateURL(baseURL string) string {
	base := strings.TrimRight(baseURL, "/")
	if strings.HasSuffix(base, generatePath) {
		return base
	}
	if strings.HasSuffix(base, "/api") {
		return base + "/generate-text"
	}
	return base + generatePath
}

// Generate asks the remote service for a message. It makes exactly one attempt.
func (c *Client) Generate(ctx context.Context, category domain.Category, opts domain.Options) (string, error) {
	if strings.TrimSpace(string(category)) == "" {
		return "", errors.New("remote: category must not be empty")
	}

	body, err := json.Marshal(generateRequest{MessageType: string(category), Options: opts})
	if err != nil {
		return "", fmt.Errorf("remote: marshal request: %w", err)
	}

	url := generateURL(c.baseURL)

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if reqErr != nil {
		return "", fmt.Errorf("remote: create request: %w", reqErr)
	}
	req.Header.Set("Content-Type", "application/json")

	raw, err := c.doJSONRequest(req, url)
	if err != nil {
		return "", fmt.Errorf("remote: request failed: %w", err)
	}

	var payload generateResponse
	if decErr := json.Unmarshal(raw, &payload); decErr != nil {
		return "", fmt.Errorf("remote: decode response: %w", decErr)
	}
	if !payload.Success {
		return "", errors.New("remote: response not marked successful")
	}
	if strings.TrimSpace(payload.Text) == "" {
		return "", errors.New("remote: response text is empty")
	}
	return payload.Text, nil
}

func (c *Client) doJSONRequest(req *http.Request, url string) ([]byte, error) {
	res, doErr := c.resolvedHTTPClient().Do(req)
	if doErr != nil {
		return nil, doErr
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		buf, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return nil, &HTTPStatusError{
			StatusCode: res.StatusCode,
			URL:        url,
			Body:       string(buf),
		}
	}

	buf, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return buf, nil
}
