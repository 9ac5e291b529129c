// Package upstream is the outbound HTTP client shared by every provider adapter.
// A request is attempted exactly once: the client waits on a per-provider
// limiter, runs the call through a circuit breaker and records metrics.
package upstream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout   = 12 * time.Second
	defaultUserAgent = "reliva/1.0"
	maxBodyBytes     = 10 << 20
	logBodyBytes     = 512
)

// ErrCircuitOpen is returned without a network call while the provider's breaker is open.
var ErrCircuitOpen = errors.New("upstream: circuit open")

// Payload is a decoded JSON object as returned by a provider.
type Payload = map[string]any

// StatusError is returned by GetJSON and PostJSON for non-2xx responses.
type StatusError struct {
	Provider   string
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d from %s", e.Provider, e.StatusCode, e.URL)
}

// Response is a fully read upstream response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

type Options struct {
	Provider   string
	Timeout    time.Duration
	RPS        int
	UserAgent  string
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

type Client struct {
	provider   string
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[*Response]
	logger     zerolog.Logger
}

// serverStatusError marks a 5xx so the breaker counts it; Do still returns the response.
type serverStatusError struct{ status int }

func (e serverStatusError) Error() string { return fmt.Sprintf("server status %d", e.status) }

func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	limit := rate.Inf
	if opts.RPS > 0 {
		limit = rate.Every(time.Second / time.Duration(opts.RPS))
	}

	logger := opts.Logger.With().Str("provider", opts.Provider).Logger()

	c := &Client{
		provider:   opts.Provider,
		httpClient: httpClient,
		userAgent:  userAgent,
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger,
	}
	c.breaker = gobreaker.NewCircuitBreaker[*Response](gobreaker.Settings{
		Name:        opts.Provider,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
			breakerState.WithLabelValues(name).Set(stateValue(to))
		},
	})
	breakerState.WithLabelValues(opts.Provider).Set(0)
	return c
}

// Provider returns the label the client was built with.
func (c *Client) Provider() string { return c.provider }

// Do sends req once. It returns a Response for every HTTP status; an error
// means the request never produced one (transport failure, timeout, open breaker).
func (c *Client) Do(ctx context.Context, req *http.Request) (*Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.breaker.Execute(func() (*Response, error) {
		httpResp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, redactError(err)
		}
		defer httpResp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxBodyBytes))
		if err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}
		out := &Response{StatusCode: httpResp.StatusCode, Header: httpResp.Header, Body: body}
		if httpResp.StatusCode >= 500 {
			return out, serverStatusError{status: httpResp.StatusCode}
		}
		return out, nil
	})
	requestDuration.WithLabelValues(c.provider).Observe(time.Since(start).Seconds())

	var serverErr serverStatusError
	switch {
	case err == nil:
		requestsTotal.WithLabelValues(c.provider, outcomeFor(resp.StatusCode)).Inc()
		return resp, nil
	case errors.As(err, &serverErr):
		requestsTotal.WithLabelValues(c.provider, "server_error").Inc()
		return resp, nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		requestsTotal.WithLabelValues(c.provider, "rejected").Inc()
		return nil, ErrCircuitOpen
	default:
		requestsTotal.WithLabelValues(c.provider, "transport_error").Inc()
		c.logger.Warn().Err(err).Str("url", RedactURL(req.URL.String())).Msg("upstream request failed")
		return nil, err
	}
}

// GetJSON fetches rawURL and decodes a JSON object body.
func (c *Client) GetJSON(ctx context.Context, rawURL string, header http.Header) (Payload, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	copyHeader(req.Header, header)
	return c.doJSON(ctx, req)
}

// PostJSON posts body encoded as JSON and decodes a JSON object response.
func (c *Client) PostJSON(ctx context.Context, rawURL string, header http.Header, body any) (Payload, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode body: %w", err)
	}
	req, err := http.NewRequest(http.MethodPost, rawURL, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	copyHeader(req.Header, header)
	req.Header.Set("Content-Type", "application/json")
	return c.doJSON(ctx, req)
}

func (c *Client) doJSON(ctx context.Context, req *http.Request) (Payload, error) {
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	redacted := RedactURL(req.URL.String())
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn().
			Int("status", resp.StatusCode).
			Str("url", redacted).
			Str("body", truncate(resp.Body, logBodyBytes)).
			Msg("upstream returned non-2xx")
		return nil, &StatusError{Provider: c.provider, StatusCode: resp.StatusCode, URL: redacted}
	}

	var payload Payload
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		c.logger.Warn().Err(err).Str("url", redacted).Str("body", truncate(resp.Body, logBodyBytes)).Msg("upstream returned invalid json")
		return nil, fmt.Errorf("%s: decode response: %w", c.provider, err)
	}
	if payload == nil {
		payload = Payload{}
	}
	return payload, nil
}

func copyHeader(dst, src http.Header) {
	for k, vs := range src {
		for _, v := range vs {
			dst.Add(k, v)
		}
	}
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

func outcomeFor(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "success"
	case status == http.StatusNotFound:
		return "not_found"
	default:
		return "client_error"
	}
}

// redactError strips secrets from the URL that net/http embeds in transport errors.
func redactError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &url.Error{Op: urlErr.Op, URL: RedactURL(urlErr.URL), Err: urlErr.Err}
	}
	return err
}

// IsTransient reports whether err came from the transport rather than a
// decoded response. Callers use it to decide between "try next" and "not found".
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= 500
	}
	return true
}
