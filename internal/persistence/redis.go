package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/uktrade/help-desk-api/internal/config"
)

// Redis holds the go-redis client behind the Halo bearer-token cache. Only
// tokens are stored here, never tickets or users.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects the token cache. An unreachable Redis is not fatal: the
// Halo client just re-authenticates per request until the cache comes back.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("token cache unreachable; Halo tokens will be re-issued per request", zap.Error(err))
	} else {
		logger.Info("token cache connected", zap.String("addr", cfg.Addr))
	}

	return &Redis{Client: client}
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies token cache connectivity for the readiness probe.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("token cache not configured")
	}
	return r.Client.Ping(ctx).Err()
}
