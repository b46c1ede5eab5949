// Package client wraps the resty HTTP client all backend calls go
// through. It owns base-URL configuration, JSON codec selection and the
// single request hook that attaches the bearer credential.
package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"

	"github.com/servinow/servinow-go/otel"
)

// TokenProvider supplies the current bearer credential at request time.
// Returning "" means no Authorization header is attached. The pull model
// means the hook never has to be re-registered when the credential
// changes.
type TokenProvider interface {
	Token() string
}

// Config holds the configuration for the backend HTTP client.
type Config struct {
	// BaseURL is the backend API root, e.g. "http://localhost:8001/api".
	BaseURL string `validate:"required,url"`
	// Timeout bounds each request. Zero keeps resty's default (none).
	Timeout time.Duration
	// ServiceName names this client in trace spans.
	ServiceName string
	// EnableTracing turns on span creation and trace-header propagation
	// for every outbound request.
	EnableTracing bool
	// Debug enables resty's request/response dump logging.
	Debug bool
}

func (c *Config) Validate() error {
	return validator.New(validator.WithRequiredStructEnabled()).Struct(c)
}

type Client struct {
	rest        *resty.Client
	serviceName string
	tracing     bool

	mu     sync.RWMutex
	tokens TokenProvider
}

// New creates a configured client. The credential hook is installed once
// here and reads the token provider's current value on every request.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client configuration: %w", err)
	}

	rest := resty.New().SetBaseURL(cfg.BaseURL)
	if cfg.Timeout > 0 {
		rest.SetTimeout(cfg.Timeout)
	}
	rest.SetDebug(cfg.Debug)
	rest.JSONMarshal = json.Marshal
	rest.JSONUnmarshal = json.Unmarshal

	c := &Client{
		rest:        rest,
		serviceName: cfg.ServiceName,
		tracing:     cfg.EnableTracing,
	}

	rest.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if token := c.currentToken(); token != "" {
			r.SetHeader("Authorization", "Bearer "+token)
		}
		return nil
	})
	if cfg.EnableTracing {
		rest.OnBeforeRequest(otel.WithTraceHeaders)
	}

	return c, nil
}

// SetTokenProvider registers the source of the bearer credential.
func (c *Client) SetTokenProvider(tp TokenProvider) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = tp
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	tp := c.tokens
	c.mu.RUnlock()
	if tp == nil {
		return ""
	}
	return tp.Token()
}

// BaseURL returns the configured backend API root.
func (c *Client) BaseURL() string {
	return c.rest.BaseURL
}

// RequestOption customizes a single request before it is sent.
type RequestOption func(*resty.Request)

// WithQuery sets a query parameter, replacing any previous value.
func WithQuery(key, value string) RequestOption {
	return func(r *resty.Request) { r.SetQueryParam(key, value) }
}

// WithQueryAdd appends a query parameter, allowing repeated keys.
func WithQueryAdd(key, value string) RequestOption {
	return func(r *resty.Request) { r.QueryParam.Add(key, value) }
}

// WithHeader sets a request header.
func WithHeader(key, value string) RequestOption {
	return func(r *resty.Request) { r.SetHeader(key, value) }
}

// Get issues a GET and unmarshals a 2xx body into out (when non-nil).
// The operation name labels the trace span.
func (c *Client) Get(ctx context.Context, operation, path string, out any, opts ...RequestOption) error {
	return c.do(ctx, operation, resty.MethodGet, path, nil, out, opts)
}

// Post issues a POST with a JSON body and unmarshals a 2xx response into
// out (when non-nil).
func (c *Client) Post(ctx context.Context, operation, path string, body, out any, opts ...RequestOption) error {
	return c.do(ctx, operation, resty.MethodPost, path, body, out, opts)
}

func (c *Client) do(ctx context.Context, operation, method, path string, body, out any, opts []RequestOption) error {
	finish := func(int, error) {}
	if c.tracing {
		ctx, finish = otel.StartHTTPSpan(ctx, c.serviceName, operation, method, c.rest.BaseURL, path)
	}

	r := c.rest.R().SetContext(ctx)
	if body != nil {
		r.SetBody(body)
	}
	if out != nil {
		r.SetResult(out)
	}
	for _, opt := range opts {
		opt(r)
	}

	resp, err := r.Execute(method, path)
	if err != nil {
		finish(0, err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		apiErr := newAPIError(resp)
		finish(resp.StatusCode(), apiErr)
		return apiErr
	}
	finish(resp.StatusCode(), nil)
	return nil
}
