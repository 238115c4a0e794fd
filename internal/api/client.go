// ABOUTME: HTTP client for the Q&A chat server: autocomplete, chat, upload and clear endpoints
// ABOUTME: Retries idempotent GETs on 429/5xx with backoff; POSTs are sent exactly once

package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mailru/easyjson"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"

	qhttp "github.com/mauromedda/qnachat/internal/http"
	"github.com/mauromedda/qnachat/internal/log"
)

const (
	maxRetries    = 3
	baseBackoffMs = 250
	maxBackoffMs  = 4000

	maxBodyBytes = 32 << 20
)

// ErrNotSuccessful is wrapped by clear operations whose status is not "success".
var ErrNotSuccessful = errors.New("server did not report success")

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("server returned %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Body)
}

// ServerError carries the "error" field of an upload response verbatim.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string { return e.Message }

// Options tunes a Client. Zero values select defaults.
type Options struct {
	// Timeout bounds a whole exchange; 0 means no client-side limit.
	Timeout time.Duration
	// AutocompleteRate caps autocomplete requests per second; 0 disables.
	AutocompleteRate float64
	// Transport overrides the default transport (tests).
	Transport http.RoundTripper
}

// Client talks to one chat server. Session affinity is kept with a cookie
// jar because the server keys conversations by its session cookie.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

// New creates a client for baseURL (scheme://host[:port][/prefix]).
func New(baseURL string, opts Options) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid server url %q", baseURL)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	transport := opts.Transport
	if transport == nil {
		transport = qhttp.SecureTransport()
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.AutocompleteRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.AutocompleteRate), max(1, int(opts.AutocompleteRate)))
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
			Jar:       jar,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		limiter: limiter,
	}, nil
}

// BaseURL returns the server URL this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Autocomplete returns up to limit suggestions for query.
func (c *Client) Autocomplete(ctx context.Context, query string, limit int) ([]Suggestion, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("autocomplete rate limit: %w", err)
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))

	resp, err := c.doRetry(ctx, http.MethodGet, "/autocomplete?"+q.Encode())
	if err != nil {
		return nil, err
	}
	var out AutocompleteResponse
	if err := decode(resp, &out); err != nil {
		return nil, fmt.Errorf("autocomplete: %w", err)
	}
	return out.Suggestions, nil
}

// Chat sends one message. It is never retried: a retry would append the
// message to the server-side history twice.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	body, err := easyjson.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding chat request: %w", err)
	}
	resp, err := c.do(ctx, http.MethodPost, "/chat", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	var out ChatResponse
	if err := decode(resp, &out); err != nil {
		return nil, fmt.Errorf("chat: %w", err)
	}
	return &out, nil
}

// ClearChat asks the server to forget the conversation.
func (c *Client) ClearChat(ctx context.Context) (*StatusResponse, error) {
	return c.postStatus(ctx, "/clear_chat")
}

// ClearAll asks the server to forget the conversation, the uploaded
// document and the session.
func (c *Client) ClearAll(ctx context.Context) (*StatusResponse, error) {
	return c.postStatus(ctx, "/clear_all")
}

func (c *Client) postStatus(ctx context.Context, path string) (*StatusResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, path, "application/json", strings.NewReader("{}"))
	if err != nil {
		return nil, err
	}
	var out StatusResponse
	if err := decode(resp, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if !out.OK() {
		return &out, fmt.Errorf("%s: status %q: %w", path, out.Status, ErrNotSuccessful)
	}
	return &out, nil
}

// do sends a single request.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Response, error) {
	req, err := c.buildRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	log.Debug("api: %s %s", method, path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	return resp, nil
}

// doRetry sends a bodiless request, retrying on 429 and 5xx.
func (c *Client) doRetry(ctx context.Context, method, path string) (*http.Response, error) {
	for attempt := range maxRetries {
		resp, err := c.do(ctx, method, path, "", nil)
		if err != nil {
			return nil, err
		}
		if !isRetryable(resp.StatusCode) || attempt == maxRetries-1 {
			return resp, nil
		}
		resp.Body.Close()
		log.Debug("api: %s %s returned %d, retrying", method, path, resp.StatusCode)
		if err := sleepWithContext(ctx, backoff(attempt)); err != nil {
			return nil, fmt.Errorf("context cancelled during retry backoff: %w", err)
		}
	}
	return nil, fmt.Errorf("%s %s: retries exhausted", method, path)
}

func (c *Client) buildRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// decode reads and closes resp, returning a *StatusError for non-2xx codes.
func decode(resp *http.Response, v easyjson.Unmarshaler) error {
	defer resp.Body.Close()
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(truncate(string(data), 200))}
	}
	if err := easyjson.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// isRetryable returns true for status codes that warrant a retry.
func isRetryable(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= 500
}

// backoff returns the backoff duration for the given attempt using exponential backoff.
func backoff(attempt int) time.Duration {
	ms := float64(baseBackoffMs) * math.Pow(2, float64(attempt))
	if ms > maxBackoffMs {
		ms = maxBackoffMs
	}
	return time.Duration(ms) * time.Millisecond
}

// sleepWithContext waits for the given duration or until the context is cancelled.
func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
