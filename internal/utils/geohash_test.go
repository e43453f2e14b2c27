package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDistance_SamePoint(t *testing.T) {
	p := GeoPoint{Latitude: 33.8890, Longitude: 35.4950}

	assert.Equal(t, 0.0, CalculateDistance(p, p))
}

func TestCalculateDistance_Symmetric(t *testing.T) {
	a := GeoPoint{Latitude: 33.8890, Longitude: 35.4950}
	b := GeoPoint{Latitude: 33.8886, Longitude: 35.4955}

	assert.InDelta(t, CalculateDistance(a, b), CalculateDistance(b, a), 1e-12)
}

func TestCalculateDistance_NearbyStop(t *testing.T) {
	stop := GeoPoint{Latitude: 33.8890, Longitude: 35.4950}
	fix := GeoPoint{Latitude: 33.8886, Longitude: 35.4955}

	// Roughly 60 meters apart
	distance := CalculateDistance(stop, fix)
	assert.Greater(t, distance, 0.04)
	assert.Less(t, distance, 0.09)
}

func TestCalculateDistance_KnownCities(t *testing.T) {
	jakarta := GeoPoint{Latitude: -6.2088, Longitude: 106.8456}
	bandung := GeoPoint{Latitude: -6.9175, Longitude: 107.6191}

	// Jakarta to Bandung is about 118 km great-circle
	distance := CalculateDistance(jakarta, bandung)
	assert.InDelta(t, 118.0, distance, 5.0)
}

func TestInSameOrNeighborCell(t *testing.T) {
	stop := GeoPoint{Latitude: 33.8890, Longitude: 35.4950}

	t.Run("close points pass", func(t *testing.T) {
		fix := GeoPoint{Latitude: 33.8886, Longitude: 35.4955}
		assert.True(t, InSameOrNeighborCell(fix, stop, GeohashPrecision))
	})

	t.Run("distant points filtered", func(t *testing.T) {
		fix := GeoPoint{Latitude: 34.1000, Longitude: 35.9000}
		assert.False(t, InSameOrNeighborCell(fix, stop, GeohashPrecision))
	})

	t.Run("coarser precision widens the block", func(t *testing.T) {
		// About 1.5km north: outside the precision 6 neighborhood but
		// well inside precision 5 cells
		fix := GeoPoint{Latitude: 33.9021, Longitude: 35.4950}
		assert.False(t, InSameOrNeighborCell(fix, stop, 6))
		assert.True(t, InSameOrNeighborCell(fix, stop, 5))
	})
}

func TestPrecisionForRadius(t *testing.T) {
	tests := []struct {
		name     string
		radiusKm float64
		lat      float64
		want     uint
	}{
		{"default radius mid latitude", 0.5, 33.9, 6},
		{"wide radius mid latitude", 2.0, 33.9, 5},
		{"default radius far north", 0.5, 75.0, 5},
		{"tight radius equator", 0.05, 0.0, 7},
		{"regional radius", 500.0, 0.0, 2},
		{"larger than any cell", 1000.0, 0.0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrecisionForRadius(tt.radiusKm, tt.lat))
		})
	}
}

func TestEncodePoint_RoundTrip(t *testing.T) {
	p := GeoPoint{Latitude: 33.8890, Longitude: 35.4950}

	hash := EncodePoint(p, GeohashPrecision)
	assert.Len(t, hash, GeohashPrecision)

	lat, lon := DecodeGeohash(hash)
	assert.InDelta(t, p.Latitude, lat, 0.01)
	assert.InDelta(t, p.Longitude, lon, 0.01)
}

func TestValidCoordinates(t *testing.T) {
	tests := []struct {
		name  string
		lat   float64
		lon   float64
		valid bool
	}{
		{"valid", 33.8890, 35.4950, true},
		{"lat boundary", 90, 180, true},
		{"negative boundary", -90, -180, true},
		{"lat too high", 90.0001, 0, false},
		{"lat too low", -91, 0, false},
		{"lon too high", 0, 180.5, false},
		{"lon too low", 0, -181, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidCoordinates(tt.lat, tt.lon))
		})
	}
}
