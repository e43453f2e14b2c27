package http

import (
	"context"
	"fmt"
	"net/url"
	"time"

	pkgerrors "github.com/schoolroute/bustrack/internal/pkg/errors"
	pkghttp "github.com/schoolroute/bustrack/internal/pkg/http"
	"github.com/schoolroute/bustrack/internal/pkg/models"
	"github.com/schoolroute/bustrack/services/attendance"
)

// RosterGW calls the external roster service over HTTP
type RosterGW struct {
	client *pkghttp.Client
}

// NewRosterGW creates a new roster gateway
func NewRosterGW(cfg *models.RosterConfig, apiKey string) attendance.RosterGW {
	return &RosterGW{
		client: pkghttp.NewClientWithAPIKey(cfg.BaseURL, apiKey, time.Duration(cfg.TimeoutSeconds)*time.Second),
	}
}

// ResolveAssignment verifies the (student, vehicle, route) triple on
// the roster
func (g *RosterGW) ResolveAssignment(ctx context.Context, studentID, vehicleID, routeID string) error {
	query := url.Values{}
	query.Set("student_id", studentID)
	query.Set("vehicle_id", vehicleID)
	query.Set("route_id", routeID)

	endpoint := "/v1/assignments/resolve?" + query.Encode()
	if err := g.client.GetJSON(ctx, endpoint, nil); err != nil {
		if pkgerrors.Is(err, pkghttp.ErrNotFound) {
			return fmt.Errorf("assignment %s/%s/%s: %w", studentID, vehicleID, routeID, pkgerrors.ErrNotFound)
		}
		return fmt.Errorf("failed to resolve assignment: %w", err)
	}

	return nil
}

// StudentGuardians returns the guardian IDs of a student
func (g *RosterGW) StudentGuardians(ctx context.Context, studentID string) ([]string, error) {
	var resp struct {
		GuardianIDs []string `json:"guardian_ids"`
	}

	endpoint := fmt.Sprintf("/v1/students/%s/guardians", url.PathEscape(studentID))
	if err := g.client.GetJSON(ctx, endpoint, &resp); err != nil {
		if pkgerrors.Is(err, pkghttp.ErrNotFound) {
			return nil, fmt.Errorf("student %s: %w", studentID, pkgerrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch guardians: %w", err)
	}

	return resp.GuardianIDs, nil
}
