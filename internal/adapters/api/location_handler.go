package api

import (
	"net/http"
	"strings"
	"time"

	"log/slog"

	"github.com/gin-gonic/gin"
	"uvdash.app/internal/core/location"
	"uvdash.app/internal/ports"
	"uvdash.app/pkg/errors"
)

// SelectLocationRequest is the body of PUT /api/location: either a city or a coordinate
type SelectLocationRequest struct {
	City      string   `json:"city"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
	Label     string   `json:"label"`
}

// LocationResponse represents a resolved location
type LocationResponse struct {
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	Label             string    `json:"label,omitempty"`
	Source            string    `json:"source"`
	IsDefaultLocation bool      `json:"isDefaultLocation"`
	ResolvedAt        time.Time `json:"resolvedAt"`
}

func newLocationResponse(res location.Resolution) LocationResponse {
	return LocationResponse{
		Latitude:          res.Coordinate.Latitude,
		Longitude:         res.Coordinate.Longitude,
		Label:             res.Coordinate.Label,
		Source:            res.Source,
		IsDefaultLocation: res.IsFallback,
		ResolvedAt:        res.ResolvedAt,
	}
}

// getLocation handles GET /api/location requests
func (s *HTTPServerAdapter) getLocation(c *gin.Context) {
	res := s.locationResolver.Resolve(c.Request.Context())
	c.JSON(http.StatusOK, newLocationResponse(res))
}

// refreshLocation handles POST /api/location/refresh requests
func (s *HTTPServerAdapter) refreshLocation(c *gin.Context) {
	res := s.locationResolver.Refresh(c.Request.Context())
	slog.Debug("Location refreshed", "source", res.Source, "fallback", res.IsFallback)
	c.JSON(http.StatusOK, newLocationResponse(res))
}

// selectLocation handles PUT /api/location requests
func (s *HTTPServerAdapter) selectLocation(c *gin.Context) {
	var req SelectLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Debug("Location request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	var res location.Resolution
	var err error
	switch {
	case strings.TrimSpace(req.City) != "":
		res, err = s.locationResolver.SelectCity(req.City)
	case req.Latitude != nil && req.Longitude != nil:
		res, err = s.locationResolver.Select(ports.Coordinate{
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
			Label:     strings.TrimSpace(req.Label),
		})
	default:
		err = errors.NewValidationError("either city or latitude and longitude are required")
	}
	if err != nil {
		slog.Error("Location selection error", "error", err, "city", req.City)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newLocationResponse(res))
}

// getCities handles GET /api/cities requests
func (s *HTTPServerAdapter) getCities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cities": s.locationResolver.Cities()})
}

// getProviders handles GET /api/providers requests
func (s *HTTPServerAdapter) getProviders(c *gin.Context) {
	c.JSON(http.StatusOK, s.uvUseCase.GetProviderInfo(c.Request.Context()))
}
