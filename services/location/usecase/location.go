package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/schoolroute/bustrack/internal/pkg/errors"
	"github.com/schoolroute/bustrack/internal/pkg/logger"
	"github.com/schoolroute/bustrack/internal/pkg/models"
	"github.com/schoolroute/bustrack/internal/utils"
	"github.com/schoolroute/bustrack/services/location"
	"github.com/schoolroute/bustrack/services/location/engine"
	"github.com/schoolroute/bustrack/services/notification"
)

// LocationUC implements the location usecase
type LocationUC struct {
	cfg        *models.Config
	repo       location.LocationRepo
	cache      location.LocationCache
	rosterGW   location.RosterGW
	dispatcher notification.Dispatcher
}

// NewLocationUC creates a new location usecase
func NewLocationUC(
	cfg *models.Config,
	repo location.LocationRepo,
	cache location.LocationCache,
	rosterGW location.RosterGW,
	dispatcher notification.Dispatcher,
) *LocationUC {
	return &LocationUC{
		cfg:        cfg,
		repo:       repo,
		cache:      cache,
		rosterGW:   rosterGW,
		dispatcher: dispatcher,
	}
}

// IngestFix validates and persists one GPS fix, then runs the alert
// evaluations on it. Alerting and cache failures are logged but never
// fail the ingestion; the fix is already durable at that point.
func (uc *LocationUC) IngestFix(ctx context.Context, req *models.FixRequest) (*models.LocationFix, error) {
	if !utils.ValidCoordinates(req.Latitude, req.Longitude) {
		return nil, fmt.Errorf("fix for vehicle %s: %w", req.VehicleID, pkgerrors.ErrInvalidCoordinate)
	}

	speed := 0.0
	if req.SpeedKmh != nil {
		speed = *req.SpeedKmh
	}

	fix := &models.LocationFix{
		ID:        uuid.New(),
		VehicleID: req.VehicleID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		SpeedKmh:  speed,
		Heading:   req.Heading,
		Geohash: utils.EncodePoint(utils.GeoPoint{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		}, utils.GeohashPrecision),
		RecordedAt: models.Now(),
	}

	writeCtx, cancel := context.WithTimeout(ctx, time.Duration(uc.cfg.Telemetry.IngestTimeoutMs)*time.Millisecond)
	defer cancel()

	applied, err := uc.repo.RecordFix(writeCtx, fix)
	if err != nil {
		return nil, err
	}

	if applied {
		if err := uc.cache.SetLiveLocation(ctx, fix); err != nil {
			logger.WarnCtx(ctx, "Failed to refresh live location cache",
				logger.String("vehicle_id", fix.VehicleID),
				logger.Err(err))
		}
	}

	// A fix that did not advance the snapshot is stale; alerting on it
	// would fire off old positions.
	if applied {
		uc.evaluateAlerts(ctx, fix)
	}

	return fix, nil
}

// evaluateAlerts runs the proximity and speed evaluations and hands the
// resulting intents to the notification dispatcher
func (uc *LocationUC) evaluateAlerts(ctx context.Context, fix *models.LocationFix) {
	var intents []models.NotificationIntent

	stops, err := uc.rosterGW.StopsForVehicle(ctx, fix.VehicleID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load stops for proximity evaluation",
			logger.String("vehicle_id", fix.VehicleID),
			logger.Err(err))
	} else {
		intents = append(intents, engine.EvaluateProximity(fix, stops, uc.cfg.Alerts.ProximityRadiusKm)...)
	}

	if fix.SpeedKmh > uc.cfg.Alerts.SpeedLimitKmh {
		recipients, err := uc.rosterGW.RecipientsForVehicle(ctx, fix.VehicleID)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to load recipients for speed evaluation",
				logger.String("vehicle_id", fix.VehicleID),
				logger.Err(err))
		} else {
			intents = append(intents, engine.EvaluateSpeed(fix, recipients, uc.cfg.Alerts.SpeedLimitKmh)...)
		}
	}

	if len(intents) == 0 {
		return
	}

	if err := uc.dispatcher.Dispatch(ctx, intents); err != nil {
		logger.ErrorCtx(ctx, "Failed to dispatch alerts for fix",
			logger.String("vehicle_id", fix.VehicleID),
			logger.Int("intents", len(intents)),
			logger.Err(err))
	}
}

// LiveLocations returns the latest location of every vehicle the caller
// may see. Cache hits come from Redis; misses fall back to the vehicle
// snapshots in Postgres.
func (uc *LocationUC) LiveLocations(ctx context.Context, callerID, callerRole string) ([]models.VehicleLocation, error) {
	vehicleIDs, err := uc.rosterGW.AccessibleVehicles(ctx, callerID, callerRole)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve accessible vehicles: %w", err)
	}
	if len(vehicleIDs) == 0 {
		return []models.VehicleLocation{}, nil
	}

	locations := make([]models.VehicleLocation, 0, len(vehicleIDs))
	var misses []string
	for _, vehicleID := range vehicleIDs {
		loc, err := uc.cache.GetLiveLocation(ctx, vehicleID)
		if err != nil {
			misses = append(misses, vehicleID)
			continue
		}
		locations = append(locations, *loc)
	}

	if len(misses) > 0 {
		vehicles, err := uc.repo.GetVehicles(ctx, misses)
		if err != nil {
			return nil, err
		}
		for _, v := range vehicles {
			if loc := snapshotToLocation(&v); loc != nil {
				locations = append(locations, *loc)
			}
		}
	}

	return locations, nil
}

// CurrentLocation returns the latest location of one vehicle
func (uc *LocationUC) CurrentLocation(ctx context.Context, vehicleID string) (*models.VehicleLocation, error) {
	if loc, err := uc.cache.GetLiveLocation(ctx, vehicleID); err == nil {
		return loc, nil
	}

	vehicle, err := uc.repo.GetVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	loc := snapshotToLocation(vehicle)
	if loc == nil {
		return nil, fmt.Errorf("vehicle %s has no fix yet: %w", vehicleID, pkgerrors.ErrNotFound)
	}
	return loc, nil
}

// History returns historical fixes for a vehicle, newest first. A zero
// time range defaults to the last 24 hours.
func (uc *LocationUC) History(ctx context.Context, vehicleID string, from, to time.Time, limit int) ([]models.LocationFix, error) {
	if to.IsZero() {
		to = models.Now()
	}
	if from.IsZero() {
		from = to.Add(-24 * time.Hour)
	}
	if from.After(to) {
		return []models.LocationFix{}, nil
	}

	return uc.repo.GetLocationHistory(ctx, vehicleID, from, to, limit)
}

// NearbyVehicles returns vehicles within radiusKm of the point
func (uc *LocationUC) NearbyVehicles(ctx context.Context, lat, lon, radiusKm float64) ([]models.VehicleLocation, error) {
	if !utils.ValidCoordinates(lat, lon) {
		return nil, pkgerrors.ErrInvalidCoordinate
	}
	if radiusKm <= 0 {
		radiusKm = uc.cfg.Alerts.ProximityRadiusKm
	}

	vehicleIDs, err := uc.cache.NearbyVehicleIDs(ctx, lat, lon, radiusKm)
	if err != nil {
		return nil, err
	}

	locations := make([]models.VehicleLocation, 0, len(vehicleIDs))
	for _, vehicleID := range vehicleIDs {
		loc, err := uc.cache.GetLiveLocation(ctx, vehicleID)
		if err != nil {
			continue
		}
		locations = append(locations, *loc)
	}
	return locations, nil
}

// snapshotToLocation projects a vehicle snapshot into the live-view
// shape; nil when the vehicle has never reported a fix
func snapshotToLocation(v *models.Vehicle) *models.VehicleLocation {
	if v.Latitude == nil || v.Longitude == nil || v.LastFixAt == nil {
		return nil
	}

	loc := &models.VehicleLocation{
		VehicleID:    v.ID,
		Latitude:     *v.Latitude,
		Longitude:    *v.Longitude,
		Heading:      v.Heading,
		LastUpdateAt: *v.LastFixAt,
	}
	if v.SpeedKmh != nil {
		loc.SpeedKmh = *v.SpeedKmh
	}
	return loc
}
