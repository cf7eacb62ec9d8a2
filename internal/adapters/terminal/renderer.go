// Package terminal renders UV snapshots for a terminal
package terminal

import (
	"fmt"
	"math"
	"strings"
	"time"

	"uvdash.app/internal/core/location"
	"uvdash.app/internal/core/uv"
)

const (
	defaultWidth = 60
	minWidth     = 40

	// scaleMax is the UV value that fills a whole forecast bar
	scaleMax = 12.0
)

// View is everything one render needs
type View struct {
	Snapshot *uv.Snapshot
	Location location.Resolution
}

// Renderer formats a View as a bordered pane
type Renderer struct {
	width int
	loc   *time.Location
}

// NewRenderer creates a renderer for the given terminal width; times are shown in loc
func NewRenderer(width int, loc *time.Location) *Renderer {
	if width <= 0 {
		width = defaultWidth
	}
	if width < minWidth {
		width = minWidth
	}
	if loc == nil {
		loc = time.Local
	}
	return &Renderer{width: width, loc: loc}
}

// Render returns the pane for view
func (r *Renderer) Render(view View) string {
	var content strings.Builder

	title := "UV Index"
	if label := locationLabel(view); label != "" {
		title += " · " + label
	}
	content.WriteString(titleStyle.Render(title))
	content.WriteString("\n")

	if view.Location.IsFallback {
		content.WriteString(noticeStyle.Render("Using default location"))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	if view.Snapshot == nil {
		content.WriteString(mutedStyle.Render("No UV data available"))
		return paneStyle.Width(r.width).Render(content.String())
	}
	snapshot := view.Snapshot

	content.WriteString(labelStyle.Render("Now: "))
	content.WriteString(r.renderReading(snapshot.Current))
	content.WriteString("\n")

	if snapshot.DailyMax != nil {
		content.WriteString(labelStyle.Render("Today's max: "))
		content.WriteString(r.renderReading(*snapshot.DailyMax))
		content.WriteString("\n")
	}

	if snapshot.HasForecast() {
		content.WriteString("\n")
		content.WriteString(labelStyle.Render("Forecast"))
		content.WriteString("\n")
		barWidth := r.width - 30
		for _, reading := range snapshot.Forecast {
			content.WriteString(r.renderBar(reading, barWidth))
			content.WriteString("\n")
		}
	} else {
		content.WriteString("\n")
		content.WriteString(mutedStyle.Render("Hourly forecast unavailable"))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(mutedStyle.Render("Source: " + snapshot.SourceLabel))

	return paneStyle.Width(r.width).Render(content.String())
}

func (r *Renderer) renderReading(reading uv.Reading) string {
	severity := uv.ClassifySeverity(reading.Value)
	text := fmt.Sprintf("%.1f %s", reading.Value, severity)
	return severityStyle(severity).Render(text) +
		mutedStyle.Render(" at "+reading.ObservedAt.In(r.loc).Format("15:04"))
}

func (r *Renderer) renderBar(reading uv.Reading, width int) string {
	severity := uv.ClassifySeverity(reading.Value)
	return fmt.Sprintf("%s %s %s",
		mutedStyle.Render(reading.ObservedAt.In(r.loc).Format("15:04")),
		severityStyle(severity).Render(Bar(reading.Value, width)),
		severityStyle(severity).Render(fmt.Sprintf("%4.1f", reading.Value)))
}

// Bar draws value on a 0..12 scale using width cells
func Bar(value float64, width int) string {
	if width < 1 {
		width = 1
	}
	filled := int(math.Round(math.Min(value, scaleMax) / scaleMax * float64(width)))
	if filled < 0 {
		filled = 0
	}
	if value > 0 && filled == 0 {
		filled = 1
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func locationLabel(view View) string {
	if view.Location.Coordinate.Label != "" {
		return view.Location.Coordinate.Label
	}
	if view.Snapshot != nil && view.Snapshot.Coordinate.Label != "" {
		return view.Snapshot.Coordinate.Label
	}
	coord := view.Location.Coordinate
	if view.Snapshot != nil {
		coord = view.Snapshot.Coordinate
	}
	if coord.Latitude == 0 && coord.Longitude == 0 {
		return ""
	}
	return fmt.Sprintf("%.4f, %.4f", coord.Latitude, coord.Longitude)
}
