package sealapi

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

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// DefaultBaseURL is where the seal backend listens in local development.
const DefaultBaseURL = "http://localhost:8082"

const (
	defaultTimeout  = 10 * time.Second
	maxResponseSize = 1 << 20
	maxErrorDetail  = 512
	tracerName      = "github.com/louisbranch/crypto-seal/internal/sealapi"
)

// Client issues JSON requests to the seal backend.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	tracer     trace.Tracer
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout, Transport: c.httpClient.Transport}
		}
	}
}

// NewClient builds a client for the backend rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("seal api base url is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse seal api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("seal api base url must be http or https, got %q", baseURL)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("seal api base url has no host: %q", baseURL)
	}
	parsed.Path = strings.TrimRight(parsed.Path, "/")

	c := &Client{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: defaultTimeout},
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// BaseURL returns the backend root this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Seal submits text to be sealed.
func (c *Client) Seal(ctx context.Context, text string) (SealResponse, error) {
	var out SealResponse
	err := c.do(ctx, call{op: "seal", method: http.MethodPost, path: "/seal", body: SealRequest{Text: text}}, &out)
	return out, err
}

// Verify checks whether text was sealed before.
func (c *Client) Verify(ctx context.Context, text string) (VerifyResponse, error) {
	var out VerifyResponse
	err := c.do(ctx, call{op: "verify", method: http.MethodPost, path: "/verify", body: SealRequest{Text: text}, missOK: true}, &out)
	return out, err
}

// Resolve looks up a sealed record by hash.
func (c *Client) Resolve(ctx context.Context, hash string) (ResolveResponse, error) {
	var out ResolveResponse
	err := c.do(ctx, call{op: "resolve", method: http.MethodPost, path: "/resolve", body: ResolveRequest{Hash: hash}, missOK: true}, &out)
	return out, err
}

// List returns every sealed record known to the backend.
func (c *Client) List(ctx context.Context) (ListResponse, error) {
	var out ListResponse
	err := c.do(ctx, call{op: "list", method: http.MethodGet, path: "/list"}, &out)
	if out.Records == nil {
		out.Records = []SealRecord{}
	}
	return out, err
}

type call struct {
	op     string
	method string
	path   string
	body   any
	// missOK accepts a 404 whose body decodes into the response shape.
	missOK bool
}

func (c *Client) do(ctx context.Context, in call, out any) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := c.tracer.Start(ctx, "sealapi."+in.op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", in.method),
			attribute.String("url.path", in.path),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var body io.Reader
	if in.body != nil {
		payload, err := json.Marshal(in.body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", in.op, err)
		}
		body = bytes.NewReader(payload)
	}

	target := *c.baseURL
	target.Path = c.baseURL.Path + in.path
	req, err := http.NewRequestWithContext(ctx, in.method, target.String(), body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", in.op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConnection, in.op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	limited := io.LimitReader(resp.Body, maxResponseSize)
	accepted := resp.StatusCode >= 200 && resp.StatusCode < 300
	if !accepted && !(in.missOK && resp.StatusCode == http.StatusNotFound) {
		detail, _ := io.ReadAll(io.LimitReader(limited, maxErrorDetail))
		return &StatusError{Op: in.op, StatusCode: resp.StatusCode, Detail: strings.TrimSpace(string(detail))}
	}
	if err := json.NewDecoder(limited).Decode(out); err != nil {
		return &StatusError{Op: in.op, StatusCode: resp.StatusCode, Detail: "decode response: " + err.Error()}
	}
	return nil
}
