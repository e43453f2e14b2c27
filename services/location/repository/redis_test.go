package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/schoolroute/bustrack/internal/pkg/database"
	pkgerrors "github.com/schoolroute/bustrack/internal/pkg/errors"
	"github.com/schoolroute/bustrack/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLocationCache(t *testing.T) *RedisLocationCache {
	t.Helper()

	mr := miniredis.RunT(t)
	client := &database.RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
	return &RedisLocationCache{redisClient: client}
}

func TestLiveLocation_RoundTrip(t *testing.T) {
	cache := setupLocationCache(t)
	ctx := context.Background()

	heading := 270.0
	fix := &models.LocationFix{
		ID:         uuid.New(),
		VehicleID:  "bus-1",
		Latitude:   33.8886,
		Longitude:  35.4955,
		SpeedKmh:   42,
		Heading:    &heading,
		Geohash:    "sv8wrp",
		RecordedAt: models.Now().Truncate(time.Second),
	}

	require.NoError(t, cache.SetLiveLocation(ctx, fix))

	loc, err := cache.GetLiveLocation(ctx, "bus-1")
	require.NoError(t, err)

	assert.Equal(t, "bus-1", loc.VehicleID)
	assert.Equal(t, fix.Latitude, loc.Latitude)
	assert.Equal(t, fix.Longitude, loc.Longitude)
	assert.Equal(t, fix.SpeedKmh, loc.SpeedKmh)
	require.NotNil(t, loc.Heading)
	assert.Equal(t, heading, *loc.Heading)
	assert.True(t, loc.LastUpdateAt.Equal(fix.RecordedAt))
}

func TestLiveLocation_NewerFixOverwrites(t *testing.T) {
	cache := setupLocationCache(t)
	ctx := context.Background()

	first := &models.LocationFix{
		ID: uuid.New(), VehicleID: "bus-1",
		Latitude: 33.8886, Longitude: 35.4955, SpeedKmh: 42,
		RecordedAt: models.Now().Truncate(time.Second),
	}
	require.NoError(t, cache.SetLiveLocation(ctx, first))

	second := &models.LocationFix{
		ID: uuid.New(), VehicleID: "bus-1",
		Latitude: 33.8900, Longitude: 35.4970, SpeedKmh: 35,
		RecordedAt: first.RecordedAt.Add(10 * time.Second),
	}
	require.NoError(t, cache.SetLiveLocation(ctx, second))

	loc, err := cache.GetLiveLocation(ctx, "bus-1")
	require.NoError(t, err)
	assert.Equal(t, second.Latitude, loc.Latitude)
	assert.Equal(t, second.SpeedKmh, loc.SpeedKmh)
}

func TestGetLiveLocation_Miss(t *testing.T) {
	cache := setupLocationCache(t)

	_, err := cache.GetLiveLocation(context.Background(), "bus-unknown")

	assert.ErrorIs(t, err, pkgerrors.ErrNotFound)
}

func TestNearbyVehicleIDs(t *testing.T) {
	cache := setupLocationCache(t)
	ctx := context.Background()

	near := &models.LocationFix{
		ID: uuid.New(), VehicleID: "bus-near",
		Latitude: 33.8890, Longitude: 35.4950,
		RecordedAt: models.Now(),
	}
	far := &models.LocationFix{
		ID: uuid.New(), VehicleID: "bus-far",
		Latitude: 34.5000, Longitude: 36.2000,
		RecordedAt: models.Now(),
	}
	require.NoError(t, cache.SetLiveLocation(ctx, near))
	require.NoError(t, cache.SetLiveLocation(ctx, far))

	ids, err := cache.NearbyVehicleIDs(ctx, 33.8886, 35.4955, 1.0)

	require.NoError(t, err)
	assert.Equal(t, []string{"bus-near"}, ids)
}
