package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"uvdash.app/internal/core/uv"
	"uvdash.app/internal/ports"
	"uvdash.app/pkg/errors"
)

// LocationSourceQuery marks a snapshot requested for explicit query coordinates
const LocationSourceQuery = "query"

// UVQuery represents the query parameters of GET /api/uv
type UVQuery struct {
	Provider  string   `form:"provider" binding:"omitempty,uvprovider"`
	Latitude  *float64 `form:"lat" binding:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `form:"lon" binding:"omitempty,gte=-180,lte=180"`
}

// ReadingResponse is a UV reading annotated with its severity
type ReadingResponse struct {
	Value      float64   `json:"value"`
	ObservedAt time.Time `json:"observedAt"`
	Severity   string    `json:"severity"`
	Color      string    `json:"color"`
}

// UVResponse represents the HTTP response for a UV snapshot
type UVResponse struct {
	Current           ReadingResponse   `json:"current"`
	DailyMax          *ReadingResponse  `json:"dailyMax,omitempty"`
	Forecast          []ReadingResponse `json:"forecast"`
	SourceLabel       string            `json:"sourceLabel"`
	Coordinate        ports.Coordinate  `json:"coordinate"`
	IsDefaultLocation bool              `json:"isDefaultLocation"`
	LocationSource    string            `json:"locationSource"`
}

// getUV handles GET /api/uv requests
func (s *HTTPServerAdapter) getUV(c *gin.Context) {
	var query UVQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		slog.Debug("UV query binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid query parameters"))
		return
	}
	if (query.Latitude == nil) != (query.Longitude == nil) {
		s.handleError(c, errors.NewValidationError("lat and lon must be provided together"))
		return
	}

	var coord ports.Coordinate
	var isDefault bool
	var source string
	if query.Latitude != nil {
		coord = ports.Coordinate{Latitude: *query.Latitude, Longitude: *query.Longitude}
		isDefault = s.locationResolver.IsFallback(coord)
		source = LocationSourceQuery
	} else {
		res := s.locationResolver.Resolve(c.Request.Context())
		coord = res.Coordinate
		isDefault = res.IsFallback
		source = res.Source
	}

	slog.Debug("Getting UV snapshot", "provider", query.Provider, "latitude", coord.Latitude, "longitude", coord.Longitude)

	snapshot, err := s.uvUseCase.GetSnapshot(c.Request.Context(), uv.SnapshotRequest{
		Provider:   query.Provider,
		Coordinate: coord,
	})
	if err != nil {
		slog.Error("UV use case error", "error", err, "provider", query.Provider)
		s.handleError(c, err)
		return
	}

	response := newUVResponse(snapshot)
	response.IsDefaultLocation = isDefault
	response.LocationSource = source
	response.Coordinate = coord

	c.JSON(http.StatusOK, response)
}

func newUVResponse(snapshot *uv.Snapshot) UVResponse {
	response := UVResponse{
		Current:     newReadingResponse(snapshot.Current),
		Forecast:    make([]ReadingResponse, 0, len(snapshot.Forecast)),
		SourceLabel: snapshot.SourceLabel,
		Coordinate:  snapshot.Coordinate,
	}
	if snapshot.DailyMax != nil {
		dailyMax := newReadingResponse(*snapshot.DailyMax)
		response.DailyMax = &dailyMax
	}
	for _, r := range snapshot.Forecast {
		response.Forecast = append(response.Forecast, newReadingResponse(r))
	}
	return response
}

func newReadingResponse(r uv.Reading) ReadingResponse {
	severity := uv.ClassifySeverity(r.Value)
	return ReadingResponse{
		Value:      r.Value,
		ObservedAt: r.ObservedAt,
		Severity:   severity.String(),
		Color:      severity.Color(),
	}
}
