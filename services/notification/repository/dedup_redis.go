package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/schoolroute/bustrack/internal/pkg/constants"
	"github.com/schoolroute/bustrack/internal/pkg/database"
	"github.com/schoolroute/bustrack/services/notification"
)

// RedisDedupStore implements DedupStore on Redis. The cooldown hold is a
// SET NX EX on the (recipient, vehicle, kind) key: the first writer in a
// window wins, everyone else is suppressed until the key expires.
type RedisDedupStore struct {
	redisClient *database.RedisClient
}

// NewRedisDedupStore creates a Redis-backed dedup store
func NewRedisDedupStore(redisClient *database.RedisClient) notification.DedupStore {
	return &RedisDedupStore{
		redisClient: redisClient,
	}
}

func cooldownKey(recipientID, vehicleID, kind string) string {
	return fmt.Sprintf(constants.KeyNotifyCooldown, recipientID, vehicleID, kind)
}

// Acquire atomically claims the cooldown window for the key
func (s *RedisDedupStore) Acquire(ctx context.Context, recipientID, vehicleID, kind string, cooldown time.Duration, now time.Time) (bool, error) {
	key := cooldownKey(recipientID, vehicleID, kind)
	ok, err := s.redisClient.SetNX(ctx, key, strconv.FormatInt(now.Unix(), 10), cooldown)
	if err != nil {
		return false, fmt.Errorf("failed to acquire cooldown key: %w", err)
	}
	return ok, nil
}

// Release drops the cooldown hold for the key
func (s *RedisDedupStore) Release(ctx context.Context, recipientID, vehicleID, kind string) error {
	if err := s.redisClient.Delete(ctx, cooldownKey(recipientID, vehicleID, kind)); err != nil {
		return fmt.Errorf("failed to release cooldown key: %w", err)
	}
	return nil
}
