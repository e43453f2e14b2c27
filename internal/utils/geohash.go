package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// GeohashPrecision is the cell precision used for fix tagging.
// Precision 6 cells are roughly 1.2km x 0.6km.
const GeohashPrecision = 6

// maxPrefilterPrecision bounds the precision search in
// PrecisionForRadius. Finer than 8 (~19m cells) is never useful for
// proximity radii.
const maxPrefilterPrecision = 8

const kmPerDegree = 111.19

// EncodePoint converts a point to a geohash string
func EncodePoint(point GeoPoint, precision uint) string {
	return geohash.EncodeWithPrecision(point.Latitude, point.Longitude, precision)
}

// DecodeGeohash converts a geohash string to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// GetNeighbors returns the neighboring geohashes of a given geohash
func GetNeighbors(hash string) []string {
	return geohash.Neighbors(hash)
}

// PrecisionForRadius returns the finest geohash precision whose cell
// plus its eight neighbors are still guaranteed to cover radiusKm
// around any point at the given latitude. Longitude cell width shrinks
// with cos(lat), so the same radius needs coarser cells near the poles.
func PrecisionForRadius(radiusKm, lat float64) uint {
	cosLat := math.Cos(lat * math.Pi / 180)
	if cosLat < 0.01 {
		cosLat = 0.01
	}

	for p := maxPrefilterPrecision; p > 1; p-- {
		// A precision-p geohash has ceil(5p/2) longitude bits and
		// floor(5p/2) latitude bits.
		lonBits := (5*p + 1) / 2
		latBits := 5 * p / 2
		widthKm := 360 / math.Exp2(float64(lonBits)) * kmPerDegree * cosLat
		heightKm := 180 / math.Exp2(float64(latBits)) * kmPerDegree
		if math.Min(widthKm, heightKm) >= radiusKm {
			return uint(p)
		}
	}
	return 1
}

// InSameOrNeighborCell reports whether two points fall into the same
// geohash cell or adjacent cells at the given precision. Used as a
// cheap prefilter before the exact haversine distance; the precision
// must come from PrecisionForRadius so the 3x3 block covers the whole
// search radius.
func InSameOrNeighborCell(a, b GeoPoint, precision uint) bool {
	cellA := EncodePoint(a, precision)
	cellB := EncodePoint(b, precision)
	if cellA == cellB {
		return true
	}
	for _, n := range geohash.Neighbors(cellA) {
		if n == cellB {
			return true
		}
	}
	return false
}

// CalculateDistance calculates the distance between two points in
// kilometers using the Haversine formula
func CalculateDistance(point1, point2 GeoPoint) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	// Convert latitude and longitude from degrees to radians
	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	// Haversine formula
	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	distance := earthRadius * c

	return distance
}

// ValidCoordinates reports whether lat/lon are within range
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
