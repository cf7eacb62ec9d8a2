package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"uvdash.app/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		os.Clearenv()

		config, err := LoadConfig()

		require.NoError(t, err)
		require.NotNil(t, config)
		assert.Equal(t, 8080, config.Server.Port)
		assert.Equal(t, "./public", config.Server.StaticDir)
		assert.Equal(t, "info", config.Log.Level)
		assert.Equal(t, "json", config.Log.Format)
		assert.Equal(t, "openmeteo", config.UV.Provider)
		assert.Equal(t, "https://api.openuv.io/api/v1", config.UV.OpenUVBaseURL)
		assert.Equal(t, "https://air-quality-api.open-meteo.com/v1", config.UV.OpenMeteoBaseURL)
		assert.Equal(t, "https://api.meteomatics.com", config.UV.MeteomaticsBaseURL)
		assert.Equal(t, 24, config.UV.ForecastHours)
		assert.True(t, config.UV.EnableCache)
		assert.Equal(t, 5, config.UV.CacheTTLMinutes)
		assert.Equal(t, 10, config.UV.HTTPTimeoutSeconds)
		assert.True(t, config.UV.EnableCircuitBreaker)
		assert.Equal(t, LocationSourceIPAPI, config.Location.Source)
		assert.Equal(t, 5000, config.Location.TimeoutMillis)
		assert.InDelta(t, 59.3293, config.Location.FallbackLatitude, 1e-9)
		assert.InDelta(t, 18.0686, config.Location.FallbackLongitude, 1e-9)
		assert.Equal(t, "Stockholm", config.Location.FallbackLabel)
		assert.Equal(t, CacheTypeMemory, config.Cache.Type)
		assert.Equal(t, 60, config.Cache.SweepIntervalSeconds)
		assert.Equal(t, "localhost:6379", config.Cache.Redis.Addr)
		assert.Equal(t, "uvdash", config.Cache.Valkey.Prefix)
	})

	t.Run("CustomValues", func(t *testing.T) {
		os.Clearenv()

		require.NoError(t, os.Setenv("SERVER_PORT", "9090"))
		require.NoError(t, os.Setenv("LOG_FORMAT", "text"))
		require.NoError(t, os.Setenv("LOG_LEVEL", "debug"))
		require.NoError(t, os.Setenv("UV_PROVIDER", "openuv"))
		require.NoError(t, os.Setenv("OPENUV_API_KEY", "openuv-key"))
		require.NoError(t, os.Setenv("UV_FORECAST_HOURS", "12"))
		require.NoError(t, os.Setenv("UV_CACHE_TTL_MINUTES", "10"))
		require.NoError(t, os.Setenv("LOCATION_SOURCE", "static"))
		require.NoError(t, os.Setenv("LOCATION_STATIC_LAT", "51.5072"))
		require.NoError(t, os.Setenv("LOCATION_STATIC_LON", "-0.1276"))
		require.NoError(t, os.Setenv("LOCATION_STATIC_LABEL", "London"))
		require.NoError(t, os.Setenv("CACHE_TYPE", "valkey"))
		require.NoError(t, os.Setenv("VALKEY_ADDR", "valkey:6379"))

		config, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 9090, config.Server.Port)
		assert.Equal(t, "text", config.Log.Format)
		assert.Equal(t, "openuv", config.UV.Provider)
		assert.Equal(t, "openuv-key", config.UV.OpenUVKey)
		assert.Equal(t, 12, config.UV.ForecastHours)
		assert.Equal(t, 10, config.UV.CacheTTLMinutes)
		assert.Equal(t, LocationSourceStatic, config.Location.Source)
		assert.InDelta(t, 51.5072, config.Location.StaticLatitude, 1e-9)
		assert.InDelta(t, -0.1276, config.Location.StaticLongitude, 1e-9)
		assert.Equal(t, "London", config.Location.StaticLabel)
		assert.Equal(t, CacheTypeValkey, config.Cache.Type)
		assert.Equal(t, "valkey:6379", config.Cache.Valkey.Addr)
	})

	t.Run("SelectedProviderWithoutCredentials", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("UV_PROVIDER", "meteomatics"))

		config, err := LoadConfig()

		assert.Nil(t, config)
		require.Error(t, err)
		assert.True(t, errors.IsConfigurationError(err))
		assert.Contains(t, err.Error(), "meteomatics")
	})

	t.Run("InvalidCacheType", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("CACHE_TYPE", "memcached"))

		config, err := LoadConfig()

		assert.Nil(t, config)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CACHE_TYPE")
	})

	t.Run("InvalidLocationSource", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("LOCATION_SOURCE", "gps"))

		config, err := LoadConfig()

		assert.Nil(t, config)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LOCATION_SOURCE")
	})

	t.Run("InvalidPortType", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("SERVER_PORT", "not-a-number"))

		config, err := LoadConfig()

		assert.Nil(t, config)
		require.Error(t, err)
		assert.True(t, errors.IsConfigurationError(err))
	})
}

func TestUVConfig_Validate(t *testing.T) {
	valid := func() UVConfig {
		return UVConfig{
			Provider:               "openmeteo",
			OpenUVBaseURL:          "https://api.openuv.io/api/v1",
			OpenMeteoBaseURL:       "https://air-quality-api.open-meteo.com/v1",
			MeteomaticsBaseURL:     "https://api.meteomatics.com",
			ForecastHours:          24,
			CacheTTLMinutes:        5,
			HTTPTimeoutSeconds:     10,
			EnableCircuitBreaker:   true,
			BreakerMaxFailures:     5,
			BreakerCooldownSeconds: 60,
		}
	}

	tests := []struct {
		name        string
		mutate      func(c *UVConfig)
		expectedErr string
	}{
		{name: "Valid", mutate: func(c *UVConfig) {}},
		{
			name:        "UnknownProvider",
			mutate:      func(c *UVConfig) { c.Provider = "weatherapi" },
			expectedErr: "invalid UV provider",
		},
		{
			name:        "BadBaseURL",
			mutate:      func(c *UVConfig) { c.OpenMeteoBaseURL = "ftp://example.com" },
			expectedErr: "OPENMETEO_API_BASE_URL",
		},
		{
			name:        "HalfMeteomaticsCredentials",
			mutate:      func(c *UVConfig) { c.MeteomaticsUsername = "user" },
			expectedErr: "METEOMATICS_USERNAME and METEOMATICS_PASSWORD",
		},
		{
			name:        "ForecastHoursTooLarge",
			mutate:      func(c *UVConfig) { c.ForecastHours = 48 },
			expectedErr: "UV_FORECAST_HOURS",
		},
		{
			name:        "ZeroTTL",
			mutate:      func(c *UVConfig) { c.CacheTTLMinutes = 0 },
			expectedErr: "UV_CACHE_TTL_MINUTES",
		},
		{
			name:        "BreakerWithoutThreshold",
			mutate:      func(c *UVConfig) { c.BreakerMaxFailures = 0 },
			expectedErr: "UV_CIRCUIT_BREAKER_MAX_FAILURES",
		},
		{
			name: "BreakerDisabledIgnoresThreshold",
			mutate: func(c *UVConfig) {
				c.EnableCircuitBreaker = false
				c.BreakerMaxFailures = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.expectedErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}

func TestUVConfig_IsProviderConfigured(t *testing.T) {
	cfg := UVConfig{OpenUVKey: "key"}

	assert.True(t, cfg.IsProviderConfigured("openuv"))
	assert.True(t, cfg.IsProviderConfigured(" OpenMeteo "))
	assert.False(t, cfg.IsProviderConfigured("meteomatics"))
	assert.False(t, cfg.IsProviderConfigured("unknown"))

	cfg.MeteomaticsUsername = "user"
	cfg.MeteomaticsPassword = "secret"
	assert.True(t, cfg.IsProviderConfigured("meteomatics"))
}

func TestCacheType(t *testing.T) {
	tests := []struct {
		input    string
		expected CacheType
		valid    bool
	}{
		{"memory", CacheTypeMemory, true},
		{"redis", CacheTypeRedis, true},
		{"valkey", CacheTypeValkey, true},
		{"memcached", CacheTypeUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var ct CacheType
			require.NoError(t, ct.UnmarshalText([]byte(tt.input)))
			assert.Equal(t, tt.expected, ct)
			assert.Equal(t, tt.valid, ct.IsValid())
		})
	}

	text, err := CacheTypeValkey.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "valkey", string(text))
}

func TestLocationSourceFromString(t *testing.T) {
	assert.Equal(t, LocationSourceIPAPI, LocationSourceFromString("IPAPI"))
	assert.Equal(t, LocationSourceStatic, LocationSourceFromString(" static "))
	assert.Equal(t, LocationSourceNone, LocationSourceFromString("none"))
	assert.Equal(t, LocationSourceUnknown, LocationSourceFromString("gps"))
	assert.Equal(t, "unknown", LocationSourceUnknown.String())
}

func TestLocationConfig_Validate(t *testing.T) {
	cfg := LocationConfig{
		Source:            LocationSourceStatic,
		TimeoutMillis:     5000,
		FallbackLatitude:  59.3293,
		FallbackLongitude: 18.0686,
		StaticLatitude:    95,
		StaticLongitude:   10,
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOCATION_STATIC_LAT/LON")

	cfg.StaticLatitude = 45
	assert.NoError(t, cfg.Validate())

	cfg.TimeoutMillis = 0
	assert.Error(t, cfg.Validate())
}
