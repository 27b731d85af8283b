// Package studyapi talks to the StudyPal backend over HTTP.
package studyapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/csheth/studypal/internal/explain"
)

// DefaultBaseURL is where the backend listens unless an operator overrides it.
const DefaultBaseURL = "http://localhost:8000"

// Generations on a local model often take well over a minute.
const defaultHTTPTimeout = 3 * time.Minute

// maxErrorBody bounds how much of a failed response is kept for diagnostics.
const maxErrorBody = 4096

// Config describes how to build a Client.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client calls the explanation and summarization endpoints.
type Client struct {
	base   string
	client *http.Client
}

var _ explain.Service = (*Client)(nil)

// New builds a client, falling back to DefaultBaseURL.
func New(cfg Config) *Client {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		base:   base,
		client: pickHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

func pickHTTPClient(custom *http.Client, timeout time.Duration) *http.Client {
	if custom != nil {
		return custom
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

// BaseURL reports the origin requests are sent to.
func (c *Client) BaseURL() string { return c.base }

// StatusError is returned for any response outside the 2xx range.
type StatusError struct {
	Code   int
	Status string
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("studypal API error: %s (%s)", e.Status, e.Detail)
	}
	return fmt.Sprintf("studypal API error: %s", e.Status)
}

func (e *StatusError) StatusCode() int { return e.Code }

// DecodeError is returned when a 2xx body cannot be parsed.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s response: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == explain.ErrMalformedResponse }

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, newStatusError(resp, body)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", req.URL.Path, err)
	}
	return body, nil
}

// newStatusError pulls FastAPI's "detail" field when the body carries one.
func newStatusError(resp *http.Response, body []byte) *StatusError {
	detail := ""
	if gjson.ValidBytes(body) {
		if d := gjson.GetBytes(body, "detail"); d.Exists() {
			if d.Type == gjson.String {
				detail = d.String()
			} else {
				detail = d.Raw
			}
		}
	} else {
		detail = strings.TrimSpace(string(body))
	}
	return &StatusError{Code: resp.StatusCode, Status: resp.Status, Detail: detail}
}

// Health checks that the backend answers on /health.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/health", nil)
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}
