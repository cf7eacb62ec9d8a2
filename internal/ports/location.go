package ports

import (
	"context"
	"time"
)

// Coordinate is an immutable geographic position
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Label     string  `json:"label,omitempty"`
}

// PositionOptions carries hints for a position lookup
type PositionOptions struct {
	Timeout      time.Duration
	MaximumAge   time.Duration
	HighAccuracy bool
}

// PositionSource obtains the current device position
type PositionSource interface {
	CurrentPosition(ctx context.Context, opts PositionOptions) (Coordinate, error)
	Name() string
}

// City is an entry of the manual selection catalog
type City struct {
	Name      string  `json:"name" yaml:"name"`
	Country   string  `json:"country" yaml:"country"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// Coordinate returns the city position labelled with its name
func (c City) Coordinate() Coordinate {
	return Coordinate{Latitude: c.Latitude, Longitude: c.Longitude, Label: c.Name}
}

// CityCatalog defines the contract for the manual selection city list
type CityCatalog interface {
	List() []City
	Find(name string) (City, bool)
}
