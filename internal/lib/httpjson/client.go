// Package httpjson performs authenticated JSON GET requests against the
// upstream SaaS APIs, retrying throttled and failing calls with backoff.
package httpjson

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"productivity-tracker/internal/apperrors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultRetries      = 2
	defaultInitialDelay = 300 * time.Millisecond
	maxErrorBody        = 512
)

type Client struct {
	baseURL      string
	http         *http.Client
	headers      http.Header
	user, pass   string
	retries      uint64
	initialDelay time.Duration
}

type Option func(*Client)

func WithBasicAuth(user, pass string) Option {
	return func(c *Client) {
		c.user = user
		c.pass = pass
	}
}

func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

// WithRetries sets how many times a failed request is retried.
func WithRetries(n uint64) Option {
	return func(c *Client) {
		c.retries = n
	}
}

func WithInitialDelay(d time.Duration) Option {
	return func(c *Client) {
		c.initialDelay = d
	}
}

func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		http:         &http.Client{Timeout: timeout},
		headers:      make(http.Header),
		retries:      defaultRetries,
		initialDelay: defaultInitialDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get fetches path relative to the base URL and decodes the JSON body into out.
// 429 and 5xx responses and transport errors are retried; other non-2xx
// statuses fail immediately with apperrors.ErrUpstreamStatus.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	const op = "httpjson.Get"

	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.initialDelay
	b := backoff.WithContext(backoff.WithMaxRetries(policy, c.retries), ctx)

	err := backoff.Retry(func() error {
		return c.do(ctx, u, out)
	}, b)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Client) do(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return backoff.Permanent(err)
	}
	req.Header.Set("Accept", "application/json")
	for k, vs := range c.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if c.user != "" || c.pass != "" {
		req.SetBasicAuth(c.user, c.pass)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return backoff.Permanent(err)
		}
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		statusErr := fmt.Errorf("%w: status=%d body=%s", apperrors.ErrUpstreamStatus, resp.StatusCode, strings.TrimSpace(string(body)))
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return statusErr
		}
		return backoff.Permanent(statusErr)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return backoff.Permanent(fmt.Errorf("decode response: %w", err))
	}

	return nil
}
