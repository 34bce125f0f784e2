package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	MinRadiusKm     = 1
	MaxRadiusKm     = 3500
	DefaultRadiusKm = 50

	earthRadiusMeters = 6371000.0
)

var (
	ErrPermissionDenied = errors.New("location permission denied")
	ErrRadiusOutOfRange = errors.New("radius out of range")
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DistanceMeters returns the great-circle distance between a and b.
func DistanceMeters(a, b Location) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(h)))
}

// MovedFrom reports whether l differs from prev enough to warrant a refetch.
// A zero threshold compares coordinates exactly.
func (l Location) MovedFrom(prev Location, thresholdMeters float64) bool {
	if thresholdMeters <= 0 {
		return l != prev
	}
	return DistanceMeters(prev, l) >= thresholdMeters
}

func ValidRadius(km int) bool {
	return km >= MinRadiusKm && km <= MaxRadiusKm
}

func ClampRadius(km int) int {
	switch {
	case km < MinRadiusKm:
		return MinRadiusKm
	case km > MaxRadiusKm:
		return MaxRadiusKm
	default:
		return km
	}
}

// ParseRadius reads a radius typed by the user. An empty value falls back to
// the minimum and values above the maximum are capped.
func ParseRadius(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return MinRadiusKm, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: %q", ErrRadiusOutOfRange, value)
	}
	if f <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrRadiusOutOfRange, value)
	}
	if f > MaxRadiusKm {
		return MaxRadiusKm, nil
	}
	return ClampRadius(int(math.Round(f))), nil
}
