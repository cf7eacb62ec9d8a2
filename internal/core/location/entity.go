package location

import (
	"fmt"
	"math"
	"time"

	"uvdash.app/internal/ports"
)

// FallbackTolerance is the distance in degrees within which a coordinate counts as the fallback
const FallbackTolerance = 1e-4

// DefaultTimeout bounds a position lookup when none is configured
const DefaultTimeout = 5 * time.Second

// Resolution sources that do not come from a PositionSource
const (
	SourceFallback = "fallback"
	SourceManual   = "manual"
)

// DefaultFallback is the reference city used when no position can be obtained
var DefaultFallback = ports.Coordinate{Latitude: 59.3293, Longitude: 18.0686, Label: "Stockholm"}

// Resolution is a resolved coordinate together with where it came from
type Resolution struct {
	Coordinate ports.Coordinate
	Source     string
	IsFallback bool
	ResolvedAt time.Time
}

// IsNear reports whether two coordinates match within FallbackTolerance
func IsNear(a, b ports.Coordinate) bool {
	return math.Abs(a.Latitude-b.Latitude) <= FallbackTolerance &&
		math.Abs(a.Longitude-b.Longitude) <= FallbackTolerance
}

// ValidateCoordinate checks latitude and longitude ranges
func ValidateCoordinate(coord ports.Coordinate) error {
	if math.IsNaN(coord.Latitude) || coord.Latitude < -90 || coord.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", coord.Latitude)
	}
	if math.IsNaN(coord.Longitude) || coord.Longitude < -180 || coord.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", coord.Longitude)
	}
	return nil
}
