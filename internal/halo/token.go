package halo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"

	apperrors "github.com/uktrade/help-desk-api/pkg/util/errorutil"
)

// TokenCache stores bearer tokens between requests so a tenant does not
// re-authenticate on every call. Only tokens are cached, never entity data.
type TokenCache interface {
	Get(ctx context.Context, clientID string) (string, bool)
	Set(ctx context.Context, clientID, token string, ttl time.Duration)
}

// NopTokenCache never hits. Used in tests and when Redis is not configured.
type NopTokenCache struct{}

func (NopTokenCache) Get(context.Context, string) (string, bool) { return "", false }

func (NopTokenCache) Set(context.Context, string, string, time.Duration) {}

// RedisTokenCache keeps tokens in Redis keyed by tenant client id.
type RedisTokenCache struct {
	client *redis.Client
}

// NewRedisTokenCache wraps an existing Redis client.
func NewRedisTokenCache(client *redis.Client) *RedisTokenCache {
	return &RedisTokenCache{client: client}
}

func (c *RedisTokenCache) key(clientID string) string {
	return "halo:token:" + clientID
}

func (c *RedisTokenCache) Get(ctx context.Context, clientID string) (string, bool) {
	if c == nil || c.client == nil {
		return "", false
	}
	token, err := c.client.Get(ctx, c.key(clientID)).Result()
	if err != nil {
		return "", false
	}
	return token, true
}

func (c *RedisTokenCache) Set(ctx context.Context, clientID, token string, ttl time.Duration) {
	if c == nil || c.client == nil || ttl <= 0 {
		return
	}
	_ = c.client.Set(ctx, c.key(clientID), token, ttl).Err()
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// authenticate performs the client_credentials grant and returns the bearer
// token with its lifetime.
func (c *Client) authenticate(ctx context.Context) (string, time.Duration, error) {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
		"scope":         {"all"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, apperrors.NewBackendError("build token request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, classifyTransportError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", 0, apperrors.NewBackendError(fmt.Sprintf("token endpoint returned %d", resp.StatusCode), nil)
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", 0, apperrors.NewBackendError("decode token response", err)
	}
	if token.AccessToken == "" {
		return "", 0, apperrors.NewBackendError("token endpoint returned no access_token", nil)
	}

	ttl := time.Duration(token.ExpiresIn) * time.Second
	if ttl <= 0 {
		ttl = bearerLifetime(token.AccessToken)
	}
	return token.AccessToken, ttl, nil
}

// bearerLifetime recovers a lifetime from the token itself when the token
// response omits expires_in. Halo access tokens are JWTs, so the exp claim is
// readable without verifying the signature (the IdP already vouched for it
// over TLS).
func bearerLifetime(token string) time.Duration {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return defaultTokenLifetime
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return defaultTokenLifetime
	}
	remaining := time.Until(exp.Time)
	if remaining <= 0 {
		return defaultTokenLifetime
	}
	return remaining
}
