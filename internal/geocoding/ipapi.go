package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// IPAPIClient implements IPLocator using ip-api.com (free tier, no API key,
// 45 requests/minute). Accuracy is city-level at best; callers use it only
// as a fallback when the client supplied no coordinates.
type IPAPIClient struct {
	client  HTTPClient
	baseURL string
	logger  *logrus.Logger
}

// ipAPIResponse is the ip-api.com JSON payload.
type ipAPIResponse struct {
	Status     string  `json:"status"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	City       string  `json:"city"`
	RegionName string  `json:"regionName"`
	Country    string  `json:"country"`
}

// NewIPAPIClient creates an ip-api.com client against the given base URL
// (e.g. "http://ip-api.com/json").
func NewIPAPIClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *IPAPIClient {
	return &IPAPIClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger,
	}
}

// NewIPAPIClientWithHTTP creates an ip-api.com client with a custom HTTP client.
func NewIPAPIClientWithHTTP(client HTTPClient, baseURL string, logger *logrus.Logger) *IPAPIClient {
	return &IPAPIClient{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger,
	}
}

// LocateIP resolves an approximate position for the given IP address.
func (c *IPAPIClient) LocateIP(ctx context.Context, ip string) (*IPLocation, error) {
	reqURL := fmt.Sprintf("%s/%s", c.baseURL, ip)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create ip-api request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute ip-api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ip-api returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read ip-api response body: %w", err)
	}

	var result ipAPIResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode ip-api response: %w", err)
	}

	// ip-api signals lookup failure in-band with status != "success".
	if result.Status != "success" {
		return nil, ErrNotFound
	}

	c.logger.WithFields(logrus.Fields{
		"ip":   ip,
		"city": result.City,
	}).Debug("Resolved location from IP")

	return &IPLocation{
		Latitude:  result.Lat,
		Longitude: result.Lon,
		City:      result.City,
		Region:    result.RegionName,
		Country:   result.Country,
		Location:  fmt.Sprintf("%s, %s, %s", result.City, result.RegionName, result.Country),
	}, nil
}
