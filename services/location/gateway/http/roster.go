package http

import (
	"context"
	"fmt"
	"net/url"
	"time"

	pkgerrors "github.com/schoolroute/bustrack/internal/pkg/errors"
	pkghttp "github.com/schoolroute/bustrack/internal/pkg/http"
	"github.com/schoolroute/bustrack/internal/pkg/models"
	"github.com/schoolroute/bustrack/services/location"
)

// RosterGW calls the external roster service over HTTP
type RosterGW struct {
	client *pkghttp.Client
}

// NewRosterGW creates a new roster gateway
func NewRosterGW(cfg *models.RosterConfig, apiKey string) location.RosterGW {
	return &RosterGW{
		client: pkghttp.NewClientWithAPIKey(cfg.BaseURL, apiKey, time.Duration(cfg.TimeoutSeconds)*time.Second),
	}
}

// StopsForVehicle returns the stops on the vehicle's active routes
func (g *RosterGW) StopsForVehicle(ctx context.Context, vehicleID string) ([]models.Stop, error) {
	var resp struct {
		Stops []models.Stop `json:"stops"`
	}

	endpoint := fmt.Sprintf("/v1/vehicles/%s/stops", url.PathEscape(vehicleID))
	if err := g.client.GetJSON(ctx, endpoint, &resp); err != nil {
		if pkgerrors.Is(err, pkghttp.ErrNotFound) {
			return nil, fmt.Errorf("vehicle %s: %w", vehicleID, pkgerrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch stops: %w", err)
	}

	return resp.Stops, nil
}

// RecipientsForVehicle returns the guardian IDs for the vehicle's students
func (g *RosterGW) RecipientsForVehicle(ctx context.Context, vehicleID string) ([]string, error) {
	var resp struct {
		RecipientIDs []string `json:"recipient_ids"`
	}

	endpoint := fmt.Sprintf("/v1/vehicles/%s/recipients", url.PathEscape(vehicleID))
	if err := g.client.GetJSON(ctx, endpoint, &resp); err != nil {
		if pkgerrors.Is(err, pkghttp.ErrNotFound) {
			return nil, fmt.Errorf("vehicle %s: %w", vehicleID, pkgerrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch recipients: %w", err)
	}

	return resp.RecipientIDs, nil
}

// AccessibleVehicles returns the vehicle IDs visible to the caller
func (g *RosterGW) AccessibleVehicles(ctx context.Context, callerID, callerRole string) ([]string, error) {
	var resp struct {
		VehicleIDs []string `json:"vehicle_ids"`
	}

	endpoint := fmt.Sprintf("/v1/access/vehicles?user_id=%s&role=%s",
		url.QueryEscape(callerID), url.QueryEscape(callerRole))
	if err := g.client.GetJSON(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("failed to resolve accessible vehicles: %w", err)
	}

	return resp.VehicleIDs, nil
}
