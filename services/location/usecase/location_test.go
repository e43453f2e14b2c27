package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	pkgerrors "github.com/schoolroute/bustrack/internal/pkg/errors"
	"github.com/schoolroute/bustrack/internal/pkg/models"
	"github.com/schoolroute/bustrack/internal/utils"
	"github.com/schoolroute/bustrack/services/location/mocks"
	notificationmocks "github.com/schoolroute/bustrack/services/notification/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *models.Config {
	return &models.Config{
		Telemetry: models.TelemetryConfig{IngestTimeoutMs: 800},
		Alerts: models.AlertsConfig{
			ProximityRadiusKm:      0.5,
			SpeedLimitKmh:          60,
			NearbyCooldownMinutes:  5,
			SpeedCooldownMinutes:   10,
			AbsenceCooldownMinutes: 10,
		},
	}
}

type locationMocks struct {
	repo       *mocks.MockLocationRepo
	cache      *mocks.MockLocationCache
	roster     *mocks.MockRosterGW
	dispatcher *notificationmocks.MockDispatcher
}

func setupLocationUC(t *testing.T) (*LocationUC, locationMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	m := locationMocks{
		repo:       mocks.NewMockLocationRepo(ctrl),
		cache:      mocks.NewMockLocationCache(ctrl),
		roster:     mocks.NewMockRosterGW(ctrl),
		dispatcher: notificationmocks.NewMockDispatcher(ctrl),
	}
	uc := NewLocationUC(testConfig(), m.repo, m.cache, m.roster, m.dispatcher)
	return uc, m, ctrl
}

func TestIngestFix_NearbyStopDispatchesAlert(t *testing.T) {
	uc, m, ctrl := setupLocationUC(t)
	defer ctrl.Finish()

	speed := 20.0
	req := &models.FixRequest{
		VehicleID: "bus-1",
		Latitude:  33.8886,
		Longitude: 35.4955,
		SpeedKmh:  &speed,
	}

	m.repo.EXPECT().
		RecordFix(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fix *models.LocationFix) (bool, error) {
			assert.Equal(t, "bus-1", fix.VehicleID)
			assert.Equal(t, 20.0, fix.SpeedKmh)
			assert.Len(t, fix.Geohash, utils.GeohashPrecision)
			assert.False(t, fix.RecordedAt.IsZero())
			return true, nil
		})
	m.cache.EXPECT().
		SetLiveLocation(gomock.Any(), gomock.Any()).
		Return(nil)
	m.roster.EXPECT().
		StopsForVehicle(gomock.Any(), "bus-1").
		Return([]models.Stop{
			{
				ID:           "stop-1",
				Name:         "Main Gate",
				Latitude:     33.8890,
				Longitude:    35.4950,
				RecipientIDs: []string{"guardian-1"},
			},
		}, nil)
	m.dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, intents []models.NotificationIntent) error {
			require.Len(t, intents, 1)
			assert.Equal(t, models.NotificationKindNearby, intents[0].Kind)
			assert.Equal(t, "guardian-1", intents[0].RecipientID)
			return nil
		})

	fix, err := uc.IngestFix(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "bus-1", fix.VehicleID)
}

func TestIngestFix_InvalidCoordinates(t *testing.T) {
	uc, _, ctrl := setupLocationUC(t)
	defer ctrl.Finish()

	req := &models.FixRequest{
		VehicleID: "bus-1",
		Latitude:  91.0,
		Longitude: 35.4955,
	}

	// No repository, cache or roster calls for a rejected fix
	_, err := uc.IngestFix(context.Background(), req)

	assert.ErrorIs(t, err, pkgerrors.ErrInvalidCoordinate)
}

func TestIngestFix_MissingSpeedTreatedAsZero(t *testing.T) {
	uc, m, ctrl := setupLocationUC(t)
	defer ctrl.Finish()

	req := &models.FixRequest{
		VehicleID: "bus-1",
		Latitude:  33.8886,
		Longitude: 35.4955,
	}

	m.repo.EXPECT().
		RecordFix(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fix *models.LocationFix) (bool, error) {
			assert.Equal(t, 0.0, fix.SpeedKmh)
			return true, nil
		})
	m.cache.EXPECT().SetLiveLocation(gomock.Any(), gomock.Any()).Return(nil)
	m.roster.EXPECT().StopsForVehicle(gomock.Any(), "bus-1").Return(nil, nil)

	_, err := uc.IngestFix(context.Background(), req)

	assert.NoError(t, err)
}

func TestIngestFix_StaleFixSkipsCacheAndAlerts(t *testing.T) {
	uc, m, ctrl := setupLocationUC(t)
	defer ctrl.Finish()

	req := &models.FixRequest{
		VehicleID: "bus-1",
		Latitude:  33.8886,
		Longitude: 35.4955,
	}

	// Snapshot not advanced: no cache refresh, no evaluations
	m.repo.EXPECT().
		RecordFix(gomock.Any(), gomock.Any()).
		Return(false, nil)

	fix, err := uc.IngestFix(context.Background(), req)

	require.NoError(t, err)
	assert.NotNil(t, fix)
}

func TestIngestFix_SpeedingDispatchesWarnings(t *testing.T) {
	uc, m, ctrl := setupLocationUC(t)
	defer ctrl.Finish()

	speed := 75.0
	req := &models.FixRequest{
		VehicleID: "bus-1",
		Latitude:  33.8886,
		Longitude: 35.4955,
		SpeedKmh:  &speed,
	}

	m.repo.EXPECT().RecordFix(gomock.Any(), gomock.Any()).Return(true, nil)
	m.cache.EXPECT().SetLiveLocation(gomock.Any(), gomock.Any()).Return(nil)
	m.roster.EXPECT().StopsForVehicle(gomock.Any(), "bus-1").Return(nil, nil)
	m.roster.EXPECT().
		RecipientsForVehicle(gomock.Any(), "bus-1").
		Return([]string{"guardian-1", "guardian-2"}, nil)
	m.dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, intents []models.NotificationIntent) error {
			require.Len(t, intents, 2)
			for _, intent := range intents {
				assert.Equal(t, models.NotificationKindSpeedWarning, intent.Kind)
			}
			return nil
		})

	_, err := uc.IngestFix(context.Background(), req)

	assert.NoError(t, err)
}

func TestIngestFix_UnknownVehicle(t *testing.T) {
	uc, m, ctrl := setupLocationUC(t)
	defer ctrl.Finish()

	req := &models.FixRequest{
		VehicleID: "bus-404",
		Latitude:  33.8886,
		Longitude: 35.4955,
	}

	m.repo.EXPECT().
		RecordFix(gomock.Any(), gomock.Any()).
		Return(false, pkgerrors.ErrNotFound)

	_, err := uc.IngestFix(context.Background(), req)

	assert.ErrorIs(t, err, pkgerrors.ErrNotFound)
}

func TestLiveLocations_CacheMissFallsBackToSnapshots(t *testing.T) {
	uc, m, ctrl := setupLocationUC(t)
	defer ctrl.Finish()

	now := models.Now()
	lat, lon, spd := 33.8900, 35.4970, 18.0

	m.roster.EXPECT().
		AccessibleVehicles(gomock.Any(), "guardian-1", "guardian").
		Return([]string{"bus-1", "bus-2"}, nil)
	m.cache.EXPECT().
		GetLiveLocation(gomock.Any(), "bus-1").
		Return(&models.VehicleLocation{VehicleID: "bus-1", Latitude: 33.8886, Longitude: 35.4955, LastUpdateAt: now}, nil)
	m.cache.EXPECT().
		GetLiveLocation(gomock.Any(), "bus-2").
		Return(nil, pkgerrors.ErrNotFound)
	m.repo.EXPECT().
		GetVehicles(gomock.Any(), []string{"bus-2"}).
		Return([]models.Vehicle{
			{ID: "bus-2", Latitude: &lat, Longitude: &lon, SpeedKmh: &spd, LastFixAt: &now},
		}, nil)

	locations, err := uc.LiveLocations(context.Background(), "guardian-1", "guardian")

	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, "bus-1", locations[0].VehicleID)
	assert.Equal(t, "bus-2", locations[1].VehicleID)
	assert.Equal(t, spd, locations[1].SpeedKmh)
}

func TestLiveLocations_NoAccessibleVehicles(t *testing.T) {
	uc, m, ctrl := setupLocationUC(t)
	defer ctrl.Finish()

	m.roster.EXPECT().
		AccessibleVehicles(gomock.Any(), "guardian-1", "guardian").
		Return(nil, nil)

	locations, err := uc.LiveLocations(context.Background(), "guardian-1", "guardian")

	require.NoError(t, err)
	assert.Empty(t, locations)
}

func TestCurrentLocation_FallsBackToSnapshot(t *testing.T) {
	uc, m, ctrl := setupLocationUC(t)
	defer ctrl.Finish()

	now := models.Now()
	lat, lon := 33.8886, 35.4955

	m.cache.EXPECT().
		GetLiveLocation(gomock.Any(), "bus-1").
		Return(nil, pkgerrors.ErrNotFound)
	m.repo.EXPECT().
		GetVehicle(gomock.Any(), "bus-1").
		Return(&models.Vehicle{ID: "bus-1", Latitude: &lat, Longitude: &lon, LastFixAt: &now}, nil)

	loc, err := uc.CurrentLocation(context.Background(), "bus-1")

	require.NoError(t, err)
	assert.Equal(t, lat, loc.Latitude)
}

func TestCurrentLocation_VehicleWithoutFix(t *testing.T) {
	uc, m, ctrl := setupLocationUC(t)
	defer ctrl.Finish()

	m.cache.EXPECT().
		GetLiveLocation(gomock.Any(), "bus-1").
		Return(nil, pkgerrors.ErrNotFound)
	m.repo.EXPECT().
		GetVehicle(gomock.Any(), "bus-1").
		Return(&models.Vehicle{ID: "bus-1", Status: models.VehicleStatusActive}, nil)

	_, err := uc.CurrentLocation(context.Background(), "bus-1")

	assert.ErrorIs(t, err, pkgerrors.ErrNotFound)
}

func TestHistory_DefaultsToLast24Hours(t *testing.T) {
	uc, m, ctrl := setupLocationUC(t)
	defer ctrl.Finish()

	m.repo.EXPECT().
		GetLocationHistory(gomock.Any(), "bus-1", gomock.Any(), gomock.Any(), 100).
		DoAndReturn(func(_ context.Context, _ string, from, to time.Time, _ int) ([]models.LocationFix, error) {
			assert.InDelta(t, 24*time.Hour, to.Sub(from), float64(time.Second))
			return []models.LocationFix{}, nil
		})

	_, err := uc.History(context.Background(), "bus-1", time.Time{}, time.Time{}, 100)

	assert.NoError(t, err)
}

func TestHistory_InvertedRange(t *testing.T) {
	uc, _, ctrl := setupLocationUC(t)
	defer ctrl.Finish()

	now := models.Now()

	fixes, err := uc.History(context.Background(), "bus-1", now, now.Add(-time.Hour), 100)

	require.NoError(t, err)
	assert.Empty(t, fixes)
}

func TestNearbyVehicles(t *testing.T) {
	uc, m, ctrl := setupLocationUC(t)
	defer ctrl.Finish()

	m.cache.EXPECT().
		NearbyVehicleIDs(gomock.Any(), 33.8886, 35.4955, 1.0).
		Return([]string{"bus-1", "bus-gone"}, nil)
	m.cache.EXPECT().
		GetLiveLocation(gomock.Any(), "bus-1").
		Return(&models.VehicleLocation{VehicleID: "bus-1"}, nil)
	m.cache.EXPECT().
		GetLiveLocation(gomock.Any(), "bus-gone").
		Return(nil, errors.New("expired"))

	locations, err := uc.NearbyVehicles(context.Background(), 33.8886, 35.4955, 1.0)

	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "bus-1", locations[0].VehicleID)
}
