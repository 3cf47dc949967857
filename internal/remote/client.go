// Package remote talks to the spreadsheet-backed inventory store over HTTP.
//
// The store exposes one endpoint: GET lists every record, GET with
// action=export returns CSV, and POST dispatches on the "action" field of a
// JSON body. The client checks only the HTTP status of mutations.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"gudang/internal/inventory"
)

// DefaultTimeout bounds each request unless overridden with WithTimeout.
const DefaultTimeout = 30 * time.Second

// RequestIDHeader carries a per-request UUID for correlating logs.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody caps how much of a failed response is kept in StatusError.
const maxErrorBody = 512

// StatusError is returned when the remote store answers with a non-2xx status.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s failed: HTTP %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s failed: HTTP %d: %s", e.Op, e.StatusCode, e.Body)
}

// Client sends requests to the remote store.
type Client struct {
	endpoint *url.URL
	http     *http.Client
	timeout  *time.Duration
	tracer   oteltrace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. nil keeps the default.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout; 0 disables it. It applies to
// whichever http.Client the client ends up with, regardless of option order.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = &d }
}

// WithTracer sets the tracer used for request spans.
func WithTracer(t oteltrace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// NewClient creates a client for the given endpoint URL.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(endpoint))
	if err != nil {
		return nil, fmt.Errorf("remote endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("remote endpoint %q: must be an http(s) URL", endpoint)
	}
	c := &Client{
		endpoint: u,
		http:     &http.Client{Timeout: DefaultTimeout},
		tracer:   noop.NewTracerProvider().Tracer(""),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: DefaultTimeout}
	}
	if c.timeout != nil {
		// Copy so a caller-supplied client is not mutated.
		hc := *c.http
		hc.Timeout = *c.timeout
		c.http = &hc
	}
	return c, nil
}

// Endpoint returns the configured endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// List fetches the full catalog.
func (c *Client) List(ctx context.Context) ([]inventory.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("remote list: %w", err)
	}
	body, err := c.send(ctx, "list", req)
	if err != nil {
		return nil, err
	}
	items, err := inventory.DecodeItems(body)
	if err != nil {
		return nil, fmt.Errorf("remote list: %w", err)
	}
	return items, nil
}

// Export fetches the catalog as CSV text produced by the remote store.
func (c *Client) Export(ctx context.Context) ([]byte, error) {
	u := *c.endpoint
	q := u.Query()
	q.Set("action", string(ActionExport))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("remote export: %w", err)
	}
	return c.send(ctx, string(ActionExport), req)
}

// Do posts a mutation. Only the HTTP status is checked; the response body
// is discarded.
func (c *Client) Do(ctx context.Context, m Mutation) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("remote %s: encode: %w", m.Action, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("remote %s: %w", m.Action, err)
	}
	req.Header.Set("Content-Type", "application/json")
	_, err = c.send(ctx, string(m.Action), req, attribute.String("gudang.item.id", m.ItemID))
	return err
}

// send executes req inside a span and returns the body of a 2xx response.
func (c *Client) send(ctx context.Context, op string, req *http.Request, attrs ...attribute.KeyValue) ([]byte, error) {
	ctx, span := c.tracer.Start(ctx, "gudang.remote."+op,
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(append(attrs,
			attribute.String("gudang.action", op),
			attribute.String("http.method", req.Method),
		)...),
	)
	defer span.End()

	reqID := uuid.NewString()
	req = req.WithContext(ctx)
	req.Header.Set(RequestIDHeader, reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Printf("remote.%s: request %s failed: %v", op, reqID, err)
		return nil, fmt.Errorf("remote %s: %w", op, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("remote %s: read body: %w", op, err)
	}
	log.Printf("remote.%s: request %s -> %d in %s (%d bytes)", op, reqID, resp.StatusCode, time.Since(start).Round(time.Millisecond), len(body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt := strings.TrimSpace(string(body))
		if len(excerpt) > maxErrorBody {
			excerpt = excerpt[:maxErrorBody] + "..."
		}
		serr := &StatusError{Op: "remote " + op, StatusCode: resp.StatusCode, Body: excerpt}
		span.SetStatus(codes.Error, serr.Error())
		return nil, serr
	}
	return body, nil
}
