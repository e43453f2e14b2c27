package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
	"github.com/schoolroute/bustrack/internal/pkg/constants"
	"github.com/schoolroute/bustrack/internal/pkg/database"
	pkgerrors "github.com/schoolroute/bustrack/internal/pkg/errors"
	"github.com/schoolroute/bustrack/internal/pkg/models"
	"github.com/schoolroute/bustrack/services/location"
)

// RedisLocationCache implements the LocationCache interface. It keeps
// one hash per vehicle plus a shared geo set for radius queries. The
// Postgres store stays authoritative; a cache miss falls through to it.
type RedisLocationCache struct {
	redisClient *database.RedisClient
}

// NewRedisLocationCache creates a new live location cache
func NewRedisLocationCache(client *database.RedisClient) location.LocationCache {
	return &RedisLocationCache{
		redisClient: client,
	}
}

// SetLiveLocation overwrites the cached location and geo index entry
func (c *RedisLocationCache) SetLiveLocation(ctx context.Context, fix *models.LocationFix) error {
	key := fmt.Sprintf(constants.KeyVehicleLocation, fix.VehicleID)

	fields := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(fix.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(fix.Longitude, 'f', -1, 64),
		constants.FieldSpeed:     strconv.FormatFloat(fix.SpeedKmh, 'f', -1, 64),
		constants.FieldTimestamp: models.FormatTime(fix.RecordedAt),
	}
	if fix.Heading != nil {
		fields[constants.FieldHeading] = strconv.FormatFloat(*fix.Heading, 'f', -1, 64)
	}

	if err := c.redisClient.HMSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to cache live location: %w", err)
	}

	if err := c.redisClient.GeoAdd(ctx, constants.KeyVehicleGeo, fix.Longitude, fix.Latitude, fix.VehicleID); err != nil {
		return fmt.Errorf("failed to update geo index: %w", err)
	}

	return nil
}

// GetLiveLocation returns the cached location for a vehicle
func (c *RedisLocationCache) GetLiveLocation(ctx context.Context, vehicleID string) (*models.VehicleLocation, error) {
	key := fmt.Sprintf(constants.KeyVehicleLocation, vehicleID)

	vals, err := c.redisClient.HMGet(ctx, key,
		constants.FieldLatitude,
		constants.FieldLongitude,
		constants.FieldSpeed,
		constants.FieldHeading,
		constants.FieldTimestamp,
	)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to read live location: %w", err)
	}
	if len(vals) < 5 || vals[0] == "" || vals[1] == "" {
		return nil, fmt.Errorf("no cached location for vehicle %s: %w", vehicleID, pkgerrors.ErrNotFound)
	}

	lat, err := strconv.ParseFloat(vals[0], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt cached latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(vals[1], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt cached longitude: %w", err)
	}

	loc := &models.VehicleLocation{
		VehicleID: vehicleID,
		Latitude:  lat,
		Longitude: lon,
	}

	if vals[2] != "" {
		if speed, err := strconv.ParseFloat(vals[2], 64); err == nil {
			loc.SpeedKmh = speed
		}
	}
	if vals[3] != "" {
		if heading, err := strconv.ParseFloat(vals[3], 64); err == nil {
			loc.Heading = &heading
		}
	}
	if vals[4] != "" {
		if ts, err := models.ParseTime(vals[4]); err == nil {
			loc.LastUpdateAt = ts
		}
	}

	return loc, nil
}

// NearbyVehicleIDs returns vehicle IDs within radiusKm of the point
func (c *RedisLocationCache) NearbyVehicleIDs(ctx context.Context, lat, lon, radiusKm float64) ([]string, error) {
	locations, err := c.redisClient.GeoRadius(ctx, constants.KeyVehicleGeo, lon, lat, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query geo index: %w", err)
	}

	ids := make([]string, 0, len(locations))
	for _, loc := range locations {
		ids = append(ids, loc.Name)
	}
	return ids, nil
}
