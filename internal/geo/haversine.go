package geo

import (
	"fmt"
	"math"
)

// Earth's mean radius in kilometers.
const earthRadiusKm = 6371.0

// InvalidCoordinateError reports a latitude or longitude outside its valid
// range. It identifies the offending point, axis, value, and bounds so
// upstream data contract violations are easy to trace.
type InvalidCoordinateError struct {
	Label string // which point, e.g. "starting point"
	Axis  string // "latitude" or "longitude"
	Value float64
	Min   float64
	Max   float64
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("%s %s %.4f is out of range [%g, %g]", e.Label, e.Axis, e.Value, e.Min, e.Max)
}

// DistanceKm computes the great-circle distance in kilometers between two
// points using the haversine formula. Pure and safe for concurrent callers.
//
// The result is always >= 0, symmetric under swapping the two points, and
// 0 exactly when the points are identical.
func DistanceKm(lat1, lon1, lat2, lon2 float64) (float64, error) {
	if err := validateCoordinates(lat1, lon1, "starting point"); err != nil {
		return 0, err
	}
	if err := validateCoordinates(lat2, lon2, "ending point"); err != nil {
		return 0, err
	}

	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLon := lon2Rad - lon1Rad

	// a = sin²(Δφ/2) + cos(φ1)·cos(φ2)·sin²(Δλ/2)
	sinDeltaLat := math.Sin(deltaLat / 2)
	sinDeltaLon := math.Sin(deltaLon / 2)
	a := sinDeltaLat*sinDeltaLat + math.Cos(lat1Rad)*math.Cos(lat2Rad)*sinDeltaLon*sinDeltaLon

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}

// DistanceMeters is DistanceKm scaled to meters.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) (float64, error) {
	km, err := DistanceKm(lat1, lon1, lat2, lon2)
	if err != nil {
		return 0, err
	}
	return km * 1000.0, nil
}

// IsWithinDistance reports whether the two points are at most thresholdKm apart.
func IsWithinDistance(lat1, lon1, lat2, lon2, thresholdKm float64) (bool, error) {
	km, err := DistanceKm(lat1, lon1, lat2, lon2)
	if err != nil {
		return false, err
	}
	return km <= thresholdKm, nil
}

// FormatKm renders a distance the way plan responses report it, e.g. "17.85 km".
func FormatKm(km float64) string {
	return fmt.Sprintf("%.2f km", km)
}

func validateCoordinates(lat, lon float64, label string) error {
	if lat < -90 || lat > 90 {
		return &InvalidCoordinateError{Label: label, Axis: "latitude", Value: lat, Min: -90, Max: 90}
	}
	if lon < -180 || lon > 180 {
		return &InvalidCoordinateError{Label: label, Axis: "longitude", Value: lon, Min: -180, Max: 180}
	}
	return nil
}
