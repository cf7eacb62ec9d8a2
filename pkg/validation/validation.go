package validation

import (
	"math"
	"strings"
)

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidLatitude reports whether lat is a finite value in [-90, 90]
func IsValidLatitude(lat float64) bool {
	return !math.IsNaN(lat) && lat >= -90 && lat <= 90
}

// IsValidLongitude reports whether lon is a finite value in [-180, 180]
func IsValidLongitude(lon float64) bool {
	return !math.IsNaN(lon) && lon >= -180 && lon <= 180
}

// IsValidProviderName validates a UV data source name
func IsValidProviderName(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "openuv", "openmeteo", "meteomatics":
		return true
	default:
		return false
	}
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}
