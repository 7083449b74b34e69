package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-remittance/internal/logger"
	"github.com/shopspring/decimal"
)

// ErrRateNotCached is returned on a cache miss.
var ErrRateNotCached = errors.New("rate not cached")

// RateCacheRepository caches pair rates in Redis as decimal strings.
type RateCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewRateCacheRepository creates a cache whose entries live for expiration.
func NewRateCacheRepository(client *redis.Client, expiration time.Duration) *RateCacheRepository {
	return &RateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func rateKey(from, to string) string {
	return fmt.Sprintf("remittance_rate:%s:%s", from, to)
}

// GetRate returns the cached from->to rate or ErrRateNotCached.
func (r *RateCacheRepository) GetRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	key := rateKey(from, to)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return decimal.Zero, fmt.Errorf("%w: %s->%s", ErrRateNotCached, from, to)
		}
		return decimal.Zero, err
	}

	rate, err := decimal.NewFromString(val)

	logger.Log.Infow(
		"key", key,
		"value", val,
		"result", rate,
		"error", err,
	)

	if err != nil {
		return decimal.Zero, err
	}
	return rate, nil
}

// SetRate stores the from->to rate with the repository TTL.
func (r *RateCacheRepository) SetRate(ctx context.Context, from, to string, rate decimal.Decimal) error {
	key := rateKey(from, to)
	err := r.client.Set(ctx, key, rate.String(), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"rate", rate,
		"error", err,
	)

	return err
}
