package validation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidLatitude(t *testing.T) {
	assert.True(t, IsValidLatitude(59.3293))
	assert.True(t, IsValidLatitude(-90))
	assert.True(t, IsValidLatitude(90))
	assert.False(t, IsValidLatitude(90.0001))
	assert.False(t, IsValidLatitude(math.NaN()))
}

func TestIsValidLongitude(t *testing.T) {
	assert.True(t, IsValidLongitude(18.0686))
	assert.True(t, IsValidLongitude(-180))
	assert.False(t, IsValidLongitude(180.5))
	assert.False(t, IsValidLongitude(math.NaN()))
}

func TestIsValidProviderName(t *testing.T) {
	assert.True(t, IsValidProviderName("openuv"))
	assert.True(t, IsValidProviderName(" OpenMeteo "))
	assert.True(t, IsValidProviderName("meteomatics"))
	assert.False(t, IsValidProviderName("weatherapi"))
	assert.False(t, IsValidProviderName(""))
}

func TestTrimAndValidate(t *testing.T) {
	value, ok := TrimAndValidate("  Stockholm ")
	assert.True(t, ok)
	assert.Equal(t, "Stockholm", value)

	_, ok = TrimAndValidate("   ")
	assert.False(t, ok)
}
