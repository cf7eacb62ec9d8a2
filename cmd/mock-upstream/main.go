// Command mock-upstream serves canned OpenUV, Open-Meteo, Meteomatics and
// ip-api responses for local runs and manual testing.
package main

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"uvdash.app/pkg/logger"
)

const (
	openMeteoLayout   = "2006-01-02T15:04"
	meteomaticsLayout = "2006-01-02T15:04:05Z"
	forecastHours     = 24

	// Requests for this latitude answer with a server error
	failingLatitude = "-89"
)

// diurnalUV is a clear-sky curve peaking at 11 around 12:00 UTC
func diurnalUV(t time.Time) float64 {
	hour := float64(t.Hour()) + float64(t.Minute())/60
	v := 11 * math.Sin(math.Pi*(hour-6)/12)
	if v < 0 {
		return 0
	}
	return math.Round(v*10) / 10
}

func hourlySeries(now time.Time) []time.Time {
	start := now.UTC().Truncate(time.Hour)
	series := make([]time.Time, forecastHours)
	for i := range series {
		series[i] = start.Add(time.Duration(i) * time.Hour)
	}
	return series
}

func main() {
	logger.NewFromOptions(os.Stdout, "info", "json").SetDefault()

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	openuv := r.Group("/openuv", requireHeader("x-access-token"), failOn("lat"))
	openuv.GET("/uv", openUVCurrent)
	openuv.GET("/forecast", openUVForecast)

	r.GET("/openmeteo/air-quality", failOn("latitude"), openMeteo)
	r.GET("/meteomatics/*query", requireBasicAuth(), meteomatics)
	r.GET("/ipapi", ipAPI)

	port := os.Getenv("MOCK_UPSTREAM_PORT")
	if port == "" {
		port = "8081"
	}

	slog.Info("Mock upstream server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

func requireHeader(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(name) == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "API key required"})
			return
		}
		c.Next()
	}
}

func requireBasicAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, _, ok := c.Request.BasicAuth(); !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}

func failOn(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query(param) == failingLatitude {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.Next()
	}
}

func openUVCurrent(c *gin.Context) {
	now := time.Now().UTC()
	peak := now.Truncate(24 * time.Hour).Add(12 * time.Hour)
	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"uv":          diurnalUV(now),
			"uv_time":     now.Format(time.RFC3339Nano),
			"uv_max":      diurnalUV(peak),
			"uv_max_time": peak.Format(time.RFC3339Nano),
		},
	})
}

func openUVForecast(c *gin.Context) {
	series := hourlySeries(time.Now())
	result := make([]gin.H, 0, len(series))
	for _, t := range series {
		result = append(result, gin.H{"uv": diurnalUV(t), "uv_time": t.Format(time.RFC3339Nano)})
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

func openMeteo(c *gin.Context) {
	now := time.Now().UTC()
	series := hourlySeries(now)
	times := make([]string, 0, len(series))
	values := make([]float64, 0, len(series))
	for _, t := range series {
		times = append(times, t.Format(openMeteoLayout))
		values = append(values, diurnalUV(t))
	}
	c.JSON(http.StatusOK, gin.H{
		"latitude":  c.Query("latitude"),
		"longitude": c.Query("longitude"),
		"current":   gin.H{"time": now.Truncate(15 * time.Minute).Format(openMeteoLayout), "uv_index": diurnalUV(now)},
		"hourly":    gin.H{"time": times, "uv_index": values},
	})
}

// meteomatics serves /now/uv:idx/<lat,lon>/json and /<start>--<end>:PT1H/uv:idx/<lat,lon>/json
func meteomatics(c *gin.Context) {
	parts := strings.Split(strings.Trim(c.Param("query"), "/"), "/")
	if len(parts) != 4 || parts[1] != "uv:idx" || parts[3] != "json" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "ERROR", "message": "unsupported query"})
		return
	}
	if strings.HasPrefix(parts[2], failingLatitude+",") {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "ERROR"})
		return
	}

	var times []time.Time
	if parts[0] == "now" {
		times = []time.Time{time.Now().UTC()}
	} else {
		var err error
		if times, err = meteomaticsWindow(parts[0]); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "ERROR", "message": err.Error()})
			return
		}
	}

	dates := make([]gin.H, 0, len(times))
	for _, t := range times {
		dates = append(dates, gin.H{"date": t.Format(meteomaticsLayout), "value": diurnalUV(t)})
	}
	c.JSON(http.StatusOK, gin.H{
		"version": "3.0",
		"status":  "OK",
		"data": []gin.H{{
			"parameter":   "uv:idx",
			"coordinates": []gin.H{{"dates": dates}},
		}},
	})
}

func meteomaticsWindow(query string) ([]time.Time, error) {
	window, ok := strings.CutSuffix(query, ":PT1H")
	if !ok {
		return nil, fmt.Errorf("unsupported step in %q", query)
	}
	from, to, ok := strings.Cut(window, "--")
	if !ok {
		return nil, fmt.Errorf("missing range in %q", query)
	}
	start, err := time.Parse(meteomaticsLayout, from)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(meteomaticsLayout, to)
	if err != nil {
		return nil, err
	}

	var times []time.Time
	for t := start; !t.After(end) && len(times) < forecastHours*2; t = t.Add(time.Hour) {
		times = append(times, t)
	}
	return times, nil
}

func ipAPI(c *gin.Context) {
	lat, lon := 51.5072, -0.1276
	if v, err := strconv.ParseFloat(os.Getenv("MOCK_IPAPI_LAT"), 64); err == nil {
		lat = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("MOCK_IPAPI_LON"), 64); err == nil {
		lon = v
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"lat":     lat,
		"lon":     lon,
		"city":    "London",
		"country": "United Kingdom",
	})
}
