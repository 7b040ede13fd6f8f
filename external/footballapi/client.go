package footballapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-analytics/internal/platform/id"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
	"github.com/riskibarqy/football-analytics/internal/platform/resilience"
	"github.com/riskibarqy/football-analytics/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultBaseURL   = "http://localhost:8000"
	maxResponseBytes = 6 << 20
	requestIDHeader  = "X-Request-ID"
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	IDGenerator    id.Generator
}

// Client reads the football analytics backend. It never retries; failures
// are returned to the caller which decides how to degrade.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight[[]byte]
	ids            id.Generator
	validate       *validator.Validate
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 10 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	ids := cfg.IDGenerator
	if ids == nil {
		ids = id.NewRandomGenerator()
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)
	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		logger:         logger.Named("footballapi"),
		breaker:        resilience.NewCircuitBreaker(breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
		ids:            ids,
		validate:       validator.New(),
	}
}

// BaseURL returns the backend root every request is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) getJSON(ctx context.Context, target string, out any) error {
	return c.doJSON(ctx, http.MethodGet, target, nil, out)
}

func (c *Client) doJSON(ctx context.Context, method, target string, body any, out any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "football api circuit breaker rejected request", "state", c.breaker.State(), "path", target)
			return fmt.Errorf("%w: football api is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	var payload []byte
	if body != nil {
		encoded, err := sonic.Marshal(body)
		if err != nil {
			return crerr.Wrapf(err, "encode %s %s body", method, target)
		}
		payload = encoded
	}

	call := func(ctx context.Context) ([]byte, error) {
		raw, err := c.executeRequest(ctx, method, target, payload)
		if c.circuitEnabled {
			c.breaker.Record(err, isBreakerFailure)
		}
		return raw, err
	}

	var (
		raw []byte
		err error
	)
	if method == http.MethodGet {
		raw, err = c.sharedGet(ctx, target, call)
	} else {
		raw, err = call(ctx)
	}
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := sonic.Unmarshal(raw, out); err != nil {
		return &DecodeError{Path: target, Err: err}
	}
	return nil
}

// sharedGet runs one request for all concurrent callers of target. The
// request is detached from any single caller's cancellation and bounded by
// the client timeout; each caller still stops waiting when its own ctx ends.
func (c *Client) sharedGet(ctx context.Context, target string, call func(context.Context) ([]byte, error)) ([]byte, error) {
	type result struct {
		raw []byte
		err error
	}

	shared := context.WithoutCancel(ctx)
	done := make(chan result, 1)
	go func() {
		raw, err, _ := c.flight.Do(http.MethodGet+" "+target, func() ([]byte, error) {
			return call(shared)
		})
		done <- result{raw: raw, err: err}
	}()

	select {
	case res := <-done:
		return res.raw, res.err
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %s %s: %w", ErrTransport, http.MethodGet, target, ctx.Err())
	}
}

func (c *Client) executeRequest(ctx context.Context, method, target string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+target, reqBody)
	if err != nil {
		return nil, crerr.Wrapf(err, "build request %s %s", method, target)
	}
	req.Header.Set("accept", "application/json")
	if payload != nil {
		req.Header.Set("content-type", "application/json")
	}
	if requestID, idErr := c.ids.NewID(); idErr == nil {
		req.Header.Set(requestIDHeader, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "football api request failed", "method", method, "path", target, "error", err)
		return nil, fmt.Errorf("%w: %s %s: %w", ErrTransport, method, target, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s %s response: %w", ErrTransport, method, target, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.WarnContext(ctx, "football api returned error status",
			"method", method,
			"path", target,
			"status", resp.StatusCode,
			"body", abbreviateBody(raw),
		)
		return nil, &StatusError{Method: method, Path: target, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	return raw, nil
}

// validateAll checks every decoded item against its struct tags.
func validateAll[T any](v *validator.Validate, target string, items []T) error {
	for i := range items {
		if err := v.Struct(items[i]); err != nil {
			return &DecodeError{Path: target, Err: fmt.Errorf("item %d: %w", i, err)}
		}
	}
	return nil
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
