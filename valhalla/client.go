// Package valhalla is a typed HTTP client for Valhalla-compatible routing,
// matrix, map-matching and elevation services.
package valhalla

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

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// defaultTimeout bounds a single service call.
	defaultTimeout = 10 * time.Second

	// httpMaxIdleConns is the keep-alive pool size for the default transport.
	httpMaxIdleConns = 10

	// httpIdleConnTimeout is how long an idle connection stays pooled. Kept
	// short so server-side keep-alive limits never bite first.
	httpIdleConnTimeout = 30 * time.Second

	// retryInitialInterval seeds the exponential backoff between attempts.
	retryInitialInterval = 250 * time.Millisecond
)

// Client talks to one Valhalla-compatible service instance. The zero value is
// not usable; construct with NewClient. A Client is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
	maxRetries uint64
}

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sends the key as the access_token query parameter on every call.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithTimeout overrides the per-call timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client entirely.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger attaches a logger for request/response diagnostics.
// Without it the client stays silent.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithRetry enables up to n retries with exponential backoff on transport
// errors and 5xx responses. 4xx responses are never retried.
func WithRetry(n uint64) Option {
	return func(c *Client) { c.maxRetries = n }
}

// NewClient creates a client for the service at baseURL,
// e.g. "https://valhalla.example.com".
func NewClient(baseURL string, opts ...Option) *Client {
	transport := &http.Transport{
		MaxIdleConns:        httpMaxIdleConns,
		MaxIdleConnsPerHost: httpMaxIdleConns,
		IdleConnTimeout:     httpIdleConnTimeout,
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  zap.NewNop(),
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: transport,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ensureRequestID fills in a request id so responses can be correlated; the
// server echoes it back verbatim.
func (c *Client) ensureRequestID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// do runs one API call, retrying per the client's retry policy. body is
// marshaled as the JSON request payload (POST) and out receives the decoded
// response.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("valhalla: marshal %s request: %w", path, err)
		}
	}

	operation := func() error {
		return c.doOnce(ctx, method, path, payload, out)
	}

	if c.maxRetries == 0 {
		err := operation()
		var perm *backoff.PermanentError
		if errors.As(err, &perm) {
			return perm.Unwrap()
		}
		return err
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = retryInitialInterval
	return backoff.Retry(
		operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, c.maxRetries), ctx),
	)
}

func (c *Client) doOnce(ctx context.Context, method, path string, payload []byte, out any) error {
	endpoint := c.baseURL + path
	if c.apiKey != "" {
		q := url.Values{}
		q.Set("access_token", c.apiKey)
		endpoint += "?" + q.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return backoff.Permanent(fmt.Errorf("valhalla: create %s request: %w", path, err))
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("path", path),
			zap.Error(err),
		)
		return fmt.Errorf("valhalla: %s: %w", path, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("valhalla: read %s response: %w", path, err)
	}

	c.logger.Debug("request completed",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{}
		if jsonErr := json.Unmarshal(respBytes, apiErr); jsonErr != nil || apiErr.Message == "" {
			apiErr = &APIError{
				Message:    strings.TrimSpace(string(respBytes)),
				StatusCode: resp.StatusCode,
				Status:     http.StatusText(resp.StatusCode),
			}
		}
		if apiErr.StatusCode == 0 {
			apiErr.StatusCode = resp.StatusCode
		}
		if apiErr.Temporary() {
			return apiErr
		}
		return backoff.Permanent(apiErr)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBytes, out); err != nil {
		return backoff.Permanent(fmt.Errorf("valhalla: unmarshal %s response: %w", path, err))
	}
	return nil
}
