package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// NominatimClient implements Geocoder using OpenStreetMap's Nominatim API.
// Nominatim is free but rate-limited (1 request/second fair use) and requires
// a descriptive User-Agent: https://operations.osmfoundation.org/policies/nominatim/
type NominatimClient struct {
	client    HTTPClient
	baseURL   string
	userAgent string
	logger    *logrus.Logger
}

// searchResponse is one entry of the /search JSON array. Coordinates arrive as strings.
type searchResponse struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// reverseResponse is the /reverse JSON object.
type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		State   string `json:"state"`
		Country string `json:"country"`
	} `json:"address"`
}

// NewNominatimClient creates a Nominatim client against the given base URL
// (e.g. "https://nominatim.openstreetmap.org").
func NewNominatimClient(baseURL, userAgent string, timeout time.Duration, logger *logrus.Logger) *NominatimClient {
	return &NominatimClient{
		client:    &http.Client{Timeout: timeout},
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		userAgent: userAgent,
		logger:    logger,
	}
}

// NewNominatimClientWithHTTP creates a Nominatim client with a custom HTTP client.
// Used by tests to mock responses.
func NewNominatimClientWithHTTP(client HTTPClient, baseURL, userAgent string, logger *logrus.Logger) *NominatimClient {
	return &NominatimClient{
		client:    client,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		userAgent: userAgent,
		logger:    logger,
	}
}

// Geocode converts an address to coordinates using /search, taking the top match.
func (n *NominatimClient) Geocode(ctx context.Context, address string) (*Result, error) {
	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")
	query.Set("addressdetails", "1")

	body, err := n.get(ctx, "/search", query)
	if err != nil {
		return nil, err
	}

	var results []searchResponse
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to decode nominatim search response: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("nominatim returned invalid latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("nominatim returned invalid longitude %q: %w", results[0].Lon, err)
	}

	displayName := results[0].DisplayName
	if displayName == "" {
		displayName = address
	}

	n.logger.WithFields(logrus.Fields{
		"address": address,
		"lat":     lat,
		"lon":     lon,
	}).Debug("Geocoded address via Nominatim")

	return &Result{Latitude: lat, Longitude: lon, DisplayName: displayName}, nil
}

// ReverseGeocode converts coordinates to a readable "City, State, Country"
// address using /reverse, falling back to the full display name.
func (n *NominatimClient) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("format", "json")
	query.Set("addressdetails", "1")

	body, err := n.get(ctx, "/reverse", query)
	if err != nil {
		return "", err
	}

	var result reverseResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode nominatim reverse response: %w", err)
	}

	parts := make([]string, 0, 3)
	switch {
	case result.Address.City != "":
		parts = append(parts, result.Address.City)
	case result.Address.Town != "":
		parts = append(parts, result.Address.Town)
	}
	if result.Address.State != "" {
		parts = append(parts, result.Address.State)
	}
	if result.Address.Country != "" {
		parts = append(parts, result.Address.Country)
	}

	if len(parts) > 0 {
		return strings.Join(parts, ", "), nil
	}
	if result.DisplayName != "" {
		return result.DisplayName, nil
	}
	return "", ErrNotFound
}

// get performs a GET against the given Nominatim path and returns the raw body.
func (n *NominatimClient) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	reqURL := fmt.Sprintf("%s%s?%s", n.baseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create nominatim request: %w", err)
	}
	req.Header.Set("User-Agent", n.userAgent)

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute nominatim request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		n.logger.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(body),
		}).Error("Nominatim API error")
		return nil, fmt.Errorf("nominatim API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read nominatim response body: %w", err)
	}
	return body, nil
}
