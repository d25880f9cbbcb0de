package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	// GetMany returns the raw values of the keys that exist.
	GetMany(ctx context.Context, keys []string) (map[string]string, error)
}
