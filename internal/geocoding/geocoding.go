package geocoding

import (
	"context"
	"errors"
	"net/http"
)

// Result is a successful forward-geocoding lookup.
type Result struct {
	Latitude    float64
	Longitude   float64
	DisplayName string
}

// IPLocation is an approximate position derived from an IP address.
type IPLocation struct {
	Latitude  float64
	Longitude float64
	City      string
	Region    string
	Country   string
	// Location is the assembled "City, Region, Country" string.
	Location string
}

// ErrNotFound is returned when the lookup produced no usable result.
var ErrNotFound = errors.New("geocoding: no result for query")

// Geocoder converts between addresses and coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*Result, error)
	ReverseGeocode(ctx context.Context, lat, lon float64) (string, error)
}

// IPLocator resolves an approximate position from a client IP address.
type IPLocator interface {
	LocateIP(ctx context.Context, ip string) (*IPLocation, error)
}

// HTTPClient is the subset of http.Client the lookups need.
// It allows mocking HTTP responses in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
