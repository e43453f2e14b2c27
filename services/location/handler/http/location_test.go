package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	pkgerrors "github.com/schoolroute/bustrack/internal/pkg/errors"
	"github.com/schoolroute/bustrack/internal/pkg/middleware"
	"github.com/schoolroute/bustrack/internal/pkg/models"
	"github.com/schoolroute/bustrack/services/location/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixContext(e *echo.Echo, vehicleID, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/v1/vehicles/"+vehicleID+"/fixes", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetPath("/vehicles/:id/fixes")
	c.SetParamNames("id")
	c.SetParamValues(vehicleID)
	return c, rec
}

func TestIngestFix_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	h := NewLocationHandler(mockUC)
	e := echo.New()

	c, rec := newFixContext(e, "bus-1", `{"latitude": 33.8886, "longitude": 35.4955, "speed_kmh": 42}`)
	c.Set(middleware.ContextUserID, "driver-1")
	c.Set(middleware.ContextRole, RoleDriver)
	c.Set(middleware.ContextVehicleID, "bus-1")

	mockUC.EXPECT().
		IngestFix(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.FixRequest) (*models.LocationFix, error) {
			assert.Equal(t, "bus-1", req.VehicleID)
			assert.Equal(t, 33.8886, req.Latitude)
			require.NotNil(t, req.SpeedKmh)
			assert.Equal(t, 42.0, *req.SpeedKmh)
			return &models.LocationFix{VehicleID: "bus-1"}, nil
		})

	require.NoError(t, h.IngestFix(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestIngestFix_DriverForOtherVehicle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	h := NewLocationHandler(mockUC)
	e := echo.New()

	c, rec := newFixContext(e, "bus-2", `{"latitude": 33.8886, "longitude": 35.4955}`)
	c.Set(middleware.ContextUserID, "driver-1")
	c.Set(middleware.ContextRole, RoleDriver)
	c.Set(middleware.ContextVehicleID, "bus-1")

	// The usecase is never reached
	require.NoError(t, h.IngestFix(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestIngestFix_InvalidCoordinate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	h := NewLocationHandler(mockUC)
	e := echo.New()

	c, rec := newFixContext(e, "bus-1", `{"latitude": 95.0, "longitude": 35.4955}`)
	c.Set(middleware.ContextRole, "ops")

	mockUC.EXPECT().
		IngestFix(gomock.Any(), gomock.Any()).
		Return(nil, pkgerrors.ErrInvalidCoordinate)

	require.NoError(t, h.IngestFix(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIngestFix_UnknownVehicle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	h := NewLocationHandler(mockUC)
	e := echo.New()

	c, rec := newFixContext(e, "bus-404", `{"latitude": 33.8886, "longitude": 35.4955}`)
	c.Set(middleware.ContextRole, "ops")

	mockUC.EXPECT().
		IngestFix(gomock.Any(), gomock.Any()).
		Return(nil, pkgerrors.ErrNotFound)

	require.NoError(t, h.IngestFix(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLiveLocations_RequiresCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	h := NewLocationHandler(mockUC)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/v1/locations/live", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.LiveLocations(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLiveLocations_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	h := NewLocationHandler(mockUC)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/v1/locations/live", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserID, "guardian-1")
	c.Set(middleware.ContextRole, "guardian")

	mockUC.EXPECT().
		LiveLocations(gomock.Any(), "guardian-1", "guardian").
		Return([]models.VehicleLocation{{VehicleID: "bus-1"}}, nil)

	require.NoError(t, h.LiveLocations(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool                     `json:"success"`
		Data    []models.VehicleLocation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "bus-1", resp.Data[0].VehicleID)
}

func TestHistory_RejectsBadTimestamps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	h := NewLocationHandler(mockUC)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/v1/vehicles/bus-1/history?from=yesterday", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("bus-1")

	require.NoError(t, h.History(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNearbyVehicles_RequiresCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	h := NewLocationHandler(mockUC)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/v1/locations/nearby", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.NearbyVehicles(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
