package halo

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
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/uktrade/help-desk-api/internal/observability"
	apperrors "github.com/uktrade/help-desk-api/pkg/util/errorutil"
)

const defaultTokenLifetime = 50 * time.Minute

// Doer is the narrow capability the orchestrator depends on. Tests substitute
// a scripted implementation; production uses Client.
type Doer interface {
	Get(ctx context.Context, path string, params url.Values, out any) error
	Post(ctx context.Context, path string, payload any, out any) error
}

// Client calls the Halo REST API on behalf of exactly one tenant. A fresh
// instance is built per request from that tenant's credentials and must not
// be shared across tenants.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	tokens       TokenCache
	logger       *zap.Logger
	metrics      *observability.Metrics

	mu     sync.Mutex
	bearer string
	expiry time.Time
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithTokenCache attaches a shared token cache.
func WithTokenCache(cache TokenCache) Option {
	return func(c *Client) { c.tokens = cache }
}

// WithMetrics records backend round trips.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(c *Client) { c.metrics = metrics }
}

// NewClient builds a tenant-scoped client.
func NewClient(baseURL, clientID, clientSecret string, logger *zap.Logger, opts ...Option) *Client {
	client := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		tokens:       NopTokenCache{},
		logger:       logger,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Get issues a GET against a resource path. Params are appended to any query
// already embedded in the path.
func (c *Client) Get(ctx context.Context, path string, params url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, params, nil, out)
}

// Post issues a POST with a JSON payload. Halo's bulk convention means most
// payloads are single-element arrays; callers build them that way.
func (c *Client) Post(ctx context.Context, path string, payload any, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, payload, out)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, payload, out any) error {
	body, err := encodePayload(payload)
	if err != nil {
		return apperrors.NewBackendError("encode payload", err)
	}
	c.metrics.RecordBackendCall(path)

	resp, err := c.send(ctx, method, path, params, body, false)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.NewRecordNotFound(path)
	case resp.StatusCode >= 400:
		// Raw backend bodies are logged for diagnosis but never echoed to
		// the caller.
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("halo request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw),
		)
		return apperrors.NewBackendError(fmt.Sprintf("halo returned %d for %s", resp.StatusCode, path), nil)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewBackendError("decode halo response", err)
	}
	return nil
}

// send performs one attempt plus a single transparent re-auth on 401.
func (c *Client) send(ctx context.Context, method, path string, params url.Values, body []byte, retried bool) (*http.Response, error) {
	bearer, err := c.token(ctx, retried)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.resourceURL(path, params), bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.NewBackendError("build request", err)
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}

	if resp.StatusCode == http.StatusUnauthorized && !retried {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		resp.Body.Close()
		c.invalidateToken()
		return c.send(ctx, method, path, params, body, true)
	}
	return resp, nil
}

// token returns a bearer for the tenant, preferring in-flight state, then the
// shared cache, then a fresh grant. force skips both caches.
func (c *Client) token(ctx context.Context, force bool) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !force {
		if c.bearer != "" && time.Now().Before(c.expiry) {
			return c.bearer, nil
		}
		if cached, ok := c.tokens.Get(ctx, c.clientID); ok {
			c.bearer = cached
			c.expiry = time.Now().Add(time.Minute)
			return cached, nil
		}
	}

	bearer, ttl, err := c.authenticate(ctx)
	if err != nil {
		return "", err
	}
	c.bearer = bearer
	c.expiry = time.Now().Add(ttl - 30*time.Second)
	c.tokens.Set(ctx, c.clientID, bearer, ttl-30*time.Second)
	return bearer, nil
}

func (c *Client) invalidateToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bearer = ""
	c.expiry = time.Time{}
	c.tokens.Set(context.Background(), c.clientID, "", 0)
}

// resourceURL joins base, API prefix, resource path and query parameters.
// Paths may already embed a query string, matching how callers address
// filtered listings such as "Actions?ticket_id=1".
func (c *Client) resourceURL(path string, params url.Values) string {
	full := c.baseURL + "/api/" + strings.TrimLeft(path, "/")
	if len(params) == 0 {
		return full
	}
	separator := "?"
	if strings.Contains(full, "?") {
		separator = "&"
	}
	return full + separator + params.Encode()
}

func encodePayload(payload any) ([]byte, error) {
	if payload == nil {
		return nil, nil
	}
	return json.Marshal(payload)
}

// classifyTransportError separates caller-initiated deadline aborts from
// other transport failures.
func classifyTransportError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return apperrors.NewBackendTimeout(ctx.Err())
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperrors.NewBackendTimeout(err)
	}
	return apperrors.NewBackendError("halo request failed", err)
}
