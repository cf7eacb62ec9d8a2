package infrastructure

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	"uvdash.app/internal/core/location"
	"uvdash.app/internal/ports"
	"uvdash.app/pkg/errors"
)

//go:embed cities.yaml
var defaultCities []byte

type cityFile struct {
	Cities []ports.City `yaml:"cities"`
}

// CityCatalogAdapter implements the CityCatalog port over a YAML city list
type CityCatalogAdapter struct {
	cities []ports.City
	index  map[string]int
}

// NewCityCatalogAdapter loads the catalog from path, or the built-in list when path is empty
func NewCityCatalogAdapter(path string) (*CityCatalogAdapter, error) {
	data := defaultCities
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.NewConfigurationError("read city catalog "+path, err)
		}
		data = fileData
	}
	return ParseCityCatalog(data)
}

// ParseCityCatalog builds a catalog from YAML with a top-level cities list
func ParseCityCatalog(data []byte) (*CityCatalogAdapter, error) {
	var file cityFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.NewConfigurationError("parse city catalog", err)
	}
	if len(file.Cities) == 0 {
		return nil, errors.NewConfigurationError("city catalog is empty", nil)
	}

	catalog := &CityCatalogAdapter{
		cities: make([]ports.City, 0, len(file.Cities)),
		index:  make(map[string]int, len(file.Cities)),
	}
	for i, city := range file.Cities {
		city.Name = strings.TrimSpace(city.Name)
		if city.Name == "" {
			return nil, errors.NewConfigurationError(fmt.Sprintf("city %d has no name", i), nil)
		}
		if err := location.ValidateCoordinate(city.Coordinate()); err != nil {
			return nil, errors.NewConfigurationError("invalid coordinate for "+city.Name, err)
		}

		key := strings.ToLower(city.Name)
		if _, dup := catalog.index[key]; dup {
			return nil, errors.NewConfigurationError("duplicate city "+city.Name, nil)
		}
		catalog.index[key] = len(catalog.cities)
		catalog.cities = append(catalog.cities, city)
	}

	return catalog, nil
}

// List returns the cities in file order
func (c *CityCatalogAdapter) List() []ports.City {
	cities := make([]ports.City, len(c.cities))
	copy(cities, c.cities)
	return cities
}

// Find looks a city up by name, ignoring case and surrounding spaces
func (c *CityCatalogAdapter) Find(name string) (ports.City, bool) {
	i, ok := c.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ports.City{}, false
	}
	return c.cities[i], true
}
