package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// DefaultTimeout bounds every gateway call
const DefaultTimeout = 30 * time.Second

// maxResponseBytes caps what is read from a gateway response
const maxResponseBytes = 1 << 20

// SettingsLoader supplies the gateway credentials stored in the settings store
type SettingsLoader interface {
	Load(ctx context.Context) (*entity.PaymentSettings, error)
}

// NewHTTPClient returns a client whose transport is traced with OpenTelemetry
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout: timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport,
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return "gateway " + r.Method + " " + r.URL.Path
			}),
		),
	}
}

// Request describes one JSON call to a gateway API
type Request struct {
	Operation string
	Method    string
	URL       string
	Headers   map[string]string
	Body      any    // encoded as JSON when Form is nil
	Form      []byte // sent verbatim as application/x-www-form-urlencoded
}

// JSONClient performs gateway calls and reports every failure as a GatewayError
type JSONClient struct {
	gateway entity.Gateway
	http    *http.Client
}

// NewJSONClient creates a JSONClient for one gateway
func NewJSONClient(gateway entity.Gateway, client *http.Client) *JSONClient {
	if client == nil {
		client = NewHTTPClient(DefaultTimeout)
	}
	return &JSONClient{gateway: gateway, http: client}
}

// Do sends the request, decodes a 2xx body into out when out is non-nil and returns the raw body
func (c *JSONClient) Do(ctx context.Context, req Request, out any) ([]byte, error) {
	var body io.Reader
	contentType := "application/json"
	switch {
	case req.Form != nil:
		body = bytes.NewReader(req.Form)
		contentType = "application/x-www-form-urlencoded"
	case req.Body != nil:
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, c.fail(req.Operation, 0, fmt.Errorf("encode request: %w", err))
		}
		body = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, c.fail(req.Operation, 0, fmt.Errorf("build request: %w", err))
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", contentType)
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, c.fail(req.Operation, 0, classifyTransportError(err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, c.fail(req.Operation, resp.StatusCode, fmt.Errorf("read response: %w", classifyTransportError(err)))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return raw, c.fail(req.Operation, resp.StatusCode, fmt.Errorf("unexpected response: %s", truncate(raw, 256)))
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return raw, c.fail(req.Operation, resp.StatusCode, fmt.Errorf("decode response: %w", err))
		}
	}
	return raw, nil
}

func (c *JSONClient) fail(operation string, status int, err error) error {
	return errs.NewGatewayError(string(c.gateway), operation, status, err)
}

// classifyTransportError marks deadline failures so they unwrap to ErrGatewayTimeout
func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %v", errs.ErrGatewayTimeout, err)
	}
	return err
}

func truncate(raw []byte, limit int) string {
	if len(raw) <= limit {
		return string(raw)
	}
	return string(raw[:limit]) + "..."
}

// WithReference appends the transaction reference to a browser redirect target
func WithReference(target, reference string) string {
	if target == "" {
		return ""
	}
	u, err := url.Parse(target)
	if err != nil {
		return target
	}
	q := u.Query()
	q.Set("reference", reference)
	u.RawQuery = q.Encode()
	return u.String()
}
