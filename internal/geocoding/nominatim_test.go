package geocoding

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubHTTPClient returns a canned response and records the request.
type stubHTTPClient struct {
	status  int
	body    string
	err     error
	lastReq *http.Request
}

func (s *stubHTTPClient) Do(req *http.Request) (*http.Response, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &http.Response{
		StatusCode: s.status,
		Body:       io.NopCloser(bytes.NewBufferString(s.body)),
	}, nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestNominatim_Geocode_Success(t *testing.T) {
	stub := &stubHTTPClient{
		status: http.StatusOK,
		body:   `[{"lat":"40.712776","lon":"-74.005974","display_name":"New York, United States"}]`,
	}
	client := NewNominatimClientWithHTTP(stub, "https://nominatim.example.org", "PetNextDoorApp/1.0", testLogger())

	result, err := client.Geocode(context.Background(), "New York, NY")
	require.NoError(t, err)
	assert.InDelta(t, 40.712776, result.Latitude, 1e-9)
	assert.InDelta(t, -74.005974, result.Longitude, 1e-9)
	assert.Equal(t, "New York, United States", result.DisplayName)

	require.NotNil(t, stub.lastReq)
	assert.Equal(t, "PetNextDoorApp/1.0", stub.lastReq.Header.Get("User-Agent"))
	assert.Equal(t, "/search", stub.lastReq.URL.Path)
	assert.Equal(t, "New York, NY", stub.lastReq.URL.Query().Get("q"))
}

func TestNominatim_Geocode_EmptyResultIsNotFound(t *testing.T) {
	stub := &stubHTTPClient{status: http.StatusOK, body: `[]`}
	client := NewNominatimClientWithHTTP(stub, "https://nominatim.example.org", "ua", testLogger())

	_, err := client.Geocode(context.Background(), "nowhere at all")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNominatim_Geocode_InvalidCoordinates(t *testing.T) {
	stub := &stubHTTPClient{status: http.StatusOK, body: `[{"lat":"not-a-number","lon":"1"}]`}
	client := NewNominatimClientWithHTTP(stub, "https://nominatim.example.org", "ua", testLogger())

	_, err := client.Geocode(context.Background(), "somewhere")
	assert.ErrorContains(t, err, "invalid latitude")
}

func TestNominatim_Geocode_HTTPError(t *testing.T) {
	stub := &stubHTTPClient{status: http.StatusTooManyRequests, body: `rate limited`}
	client := NewNominatimClientWithHTTP(stub, "https://nominatim.example.org", "ua", testLogger())

	_, err := client.Geocode(context.Background(), "somewhere")
	assert.ErrorContains(t, err, "status 429")
}

func TestNominatim_ReverseGeocode_AssemblesReadableAddress(t *testing.T) {
	stub := &stubHTTPClient{
		status: http.StatusOK,
		body:   `{"display_name":"long form","address":{"city":"Brooklyn","state":"New York","country":"United States"}}`,
	}
	client := NewNominatimClientWithHTTP(stub, "https://nominatim.example.org", "ua", testLogger())

	address, err := client.ReverseGeocode(context.Background(), 40.65, -73.95)
	require.NoError(t, err)
	assert.Equal(t, "Brooklyn, New York, United States", address)
	assert.Equal(t, "/reverse", stub.lastReq.URL.Path)
}

func TestNominatim_ReverseGeocode_TownFallsBackForCity(t *testing.T) {
	stub := &stubHTTPClient{
		status: http.StatusOK,
		body:   `{"address":{"town":"Rhinebeck","state":"New York","country":"United States"}}`,
	}
	client := NewNominatimClientWithHTTP(stub, "https://nominatim.example.org", "ua", testLogger())

	address, err := client.ReverseGeocode(context.Background(), 41.92, -73.91)
	require.NoError(t, err)
	assert.Equal(t, "Rhinebeck, New York, United States", address)
}

func TestNominatim_ReverseGeocode_UsesDisplayNameWhenAddressEmpty(t *testing.T) {
	stub := &stubHTTPClient{status: http.StatusOK, body: `{"display_name":"Somewhere remote"}`}
	client := NewNominatimClientWithHTTP(stub, "https://nominatim.example.org", "ua", testLogger())

	address, err := client.ReverseGeocode(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "Somewhere remote", address)
}

func TestIPAPI_LocateIP_Success(t *testing.T) {
	stub := &stubHTTPClient{
		status: http.StatusOK,
		body:   `{"status":"success","lat":40.7128,"lon":-74.006,"city":"New York","regionName":"New York","country":"United States"}`,
	}
	client := NewIPAPIClientWithHTTP(stub, "http://ip-api.example.org/json", testLogger())

	loc, err := client.LocateIP(context.Background(), "203.0.113.7")
	require.NoError(t, err)
	assert.InDelta(t, 40.7128, loc.Latitude, 1e-9)
	assert.Equal(t, "New York, New York, United States", loc.Location)
	assert.Equal(t, "/json/203.0.113.7", stub.lastReq.URL.Path)
}

func TestIPAPI_LocateIP_FailureStatusIsNotFound(t *testing.T) {
	stub := &stubHTTPClient{status: http.StatusOK, body: `{"status":"fail","message":"private range"}`}
	client := NewIPAPIClientWithHTTP(stub, "http://ip-api.example.org/json", testLogger())

	_, err := client.LocateIP(context.Background(), "10.0.0.1")
	assert.ErrorIs(t, err, ErrNotFound)
}
