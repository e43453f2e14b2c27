package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/schoolroute/bustrack/internal/pkg/database"
	"github.com/schoolroute/bustrack/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisDedup(t *testing.T) (*miniredis.Miniredis, *RedisDedupStore) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := &database.RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
	return mr, &RedisDedupStore{redisClient: client}
}

func TestRedisDedupStore_AcquireOncePerWindow(t *testing.T) {
	mr, store := setupRedisDedup(t)
	ctx := context.Background()
	now := models.Now()

	ok, err := store.Acquire(ctx, "guardian-1", "bus-1", models.NotificationKindNearby, 5*time.Minute, now)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Acquire(ctx, "guardian-1", "bus-1", models.NotificationKindNearby, 5*time.Minute, now.Add(1*time.Minute))
	require.NoError(t, err)
	assert.False(t, ok)

	// Let the cooldown key expire
	mr.FastForward(6 * time.Minute)

	ok, err = store.Acquire(ctx, "guardian-1", "bus-1", models.NotificationKindNearby, 5*time.Minute, now.Add(6*time.Minute))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisDedupStore_KindsDoNotShareBuckets(t *testing.T) {
	_, store := setupRedisDedup(t)
	ctx := context.Background()
	now := models.Now()

	ok, err := store.Acquire(ctx, "guardian-1", "bus-1", models.NotificationKindNearby, 5*time.Minute, now)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = store.Acquire(ctx, "guardian-1", "bus-1", models.NotificationKindAbsence, 10*time.Minute, now)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisDedupStore_Release(t *testing.T) {
	_, store := setupRedisDedup(t)
	ctx := context.Background()
	now := models.Now()

	ok, err := store.Acquire(ctx, "guardian-1", "bus-1", models.NotificationKindNearby, 5*time.Minute, now)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, store.Release(ctx, "guardian-1", "bus-1", models.NotificationKindNearby))

	ok, err = store.Acquire(ctx, "guardian-1", "bus-1", models.NotificationKindNearby, 5*time.Minute, now.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, ok)
}
