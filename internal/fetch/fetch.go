// Package fetch is the HTTP boundary of the harvester: detail pages and
// attachment bodies come through Get, content-type probes through Head.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// StatusError reports a non-2xx response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d for %s", e.StatusCode, e.URL)
}

// Client wraps http.Client and provides timeouts and limited retry on
// transient errors.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	// MaxAttempts includes the initial attempt. Minimum 1.
	MaxAttempts int
	// PerRequestTimeout bounds each request.
	PerRequestTimeout time.Duration
	// RedirectMaxHops caps redirect following to avoid loops. Zero means default (5).
	RedirectMaxHops int
	// MaxConcurrent limits concurrent in-flight requests per client instance.
	// Zero means unlimited.
	MaxConcurrent int

	// internal limiter initialized on first use when MaxConcurrent > 0
	limiter     chan struct{}
	limiterOnce sync.Once
}

// Get issues a GET with context, user-agent, and bounded retry for transient
// errors. It returns the body and the declared Content-Type.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, string, error) {
	var body []byte
	var contentType string
	err := c.withRetry(ctx, func() error {
		var err error
		body, contentType, err = c.doGet(ctx, rawURL)
		return err
	})
	if err != nil {
		return nil, "", err
	}
	return body, contentType, nil
}

// Head issues a HEAD request and returns the declared Content-Type. The
// response header, not the link's extension, decides how the body will be
// extracted.
func (c *Client) Head(ctx context.Context, rawURL string) (string, error) {
	var contentType string
	err := c.withRetry(ctx, func() error {
		req, err := c.newRequest(ctx, http.MethodHead, rawURL)
		if err != nil {
			return err
		}
		resp, err := c.getHTTPClient().Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return &StatusError{URL: rawURL, StatusCode: resp.StatusCode}
		}
		contentType = resp.Header.Get("Content-Type")
		return nil
	})
	if err != nil {
		return "", err
	}
	return contentType, nil
}

func (c *Client) withRetry(ctx context.Context, attempt func() error) error {
	attempts := c.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		err := attempt()
		if err == nil {
			return nil
		}
		if !isTransient(err) || i == attempts-1 {
			return err
		}
		lastErr = err
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(i+1) * 200 * time.Millisecond):
		}
	}
	if lastErr == nil {
		lastErr = errors.New("unknown error")
	}
	return lastErr
}

func (c *Client) doGet(ctx context.Context, rawURL string) ([]byte, string, error) {
	c.acquire()
	defer c.release()

	req, err := c.newRequest(ctx, http.MethodGet, rawURL)
	if err != nil {
		return nil, "", err
	}
	resp, err := c.getHTTPClient().Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &StatusError{URL: rawURL, StatusCode: resp.StatusCode}
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read body: %w", err)
	}
	return b, resp.Header.Get("Content-Type"), nil
}

func (c *Client) newRequest(ctx context.Context, method, rawURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	if req.URL == nil || !isHTTPScheme(req.URL) {
		return nil, fmt.Errorf("unsupported URL scheme: %q", rawURL)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	return req, nil
}

func (c *Client) getHTTPClient() *http.Client {
	if c.HTTPClient != nil {
		// Clone to attach our redirect policy without mutating caller's client
		base := *c.HTTPClient
		base.CheckRedirect = c.checkRedirectFunc()
		if base.Timeout == 0 {
			base.Timeout = c.PerRequestTimeout
		}
		return &base
	}
	return &http.Client{Timeout: c.PerRequestTimeout, CheckRedirect: c.checkRedirectFunc()}
}

func (c *Client) checkRedirectFunc() func(req *http.Request, via []*http.Request) error {
	max := c.RedirectMaxHops
	if max <= 0 {
		max = 5
	}
	return func(req *http.Request, via []*http.Request) error {
		if len(via) >= max {
			return errors.New("too many redirects")
		}
		// Only allow http/https during redirects
		if req.URL == nil || !isHTTPScheme(req.URL) {
			return errors.New("redirect to unsupported scheme")
		}
		return nil
	}
}

func isTransient(err error) bool {
	// HTTP 5xx and deadline expiry are worth another attempt.
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode >= 500 && se.StatusCode <= 599
}

func isHTTPScheme(u *url.URL) bool {
	if u == nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}

func (c *Client) acquire() {
	if c.MaxConcurrent <= 0 {
		return
	}
	c.limiterOnce.Do(func() {
		c.limiter = make(chan struct{}, c.MaxConcurrent)
	})
	c.limiter <- struct{}{}
}

func (c *Client) release() {
	if c.MaxConcurrent <= 0 || c.limiter == nil {
		return
	}
	select {
	case <-c.limiter:
	default:
		// should not happen, but avoid blocking
	}
}
