package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"campus-delivery/internal/apperr"
	"campus-delivery/internal/domain"
	"campus-delivery/internal/logx"
)

// Config stores routing provider settings.
type Config struct {
	BaseURL string
	APIKey  string
	Focus   domain.Coordinate
}

// Client talks to an OpenRouteService-compatible routing/geocoding provider.
// Every call is independent: no caching, no automatic retries.
type Client struct {
	httpc  *http.Client
	cfg    Config
	logger logx.Logger
}

// NewClient creates a routing Client. The http.Client's timeout bounds every
// provider call; callers must not hold row locks across these calls.
func NewClient(httpc *http.Client, cfg Config, logger logx.Logger) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{httpc: httpc, cfg: cfg, logger: logger}
}

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"` // [lng, lat]
		} `json:"geometry"`
	} `json:"features"`
}

// Geocode resolves a free-text address to a coordinate, biased toward the
// configured focus point and rounded to 6 decimal places. Zero results or any
// provider error surface as apperr.ErrGeocode.
func (c *Client) Geocode(ctx context.Context, address string) (domain.Coordinate, error) {
	q := url.Values{}
	q.Set("api_key", c.cfg.APIKey)
	q.Set("text", address)
	q.Set("focus.point.lat", strconv.FormatFloat(c.cfg.Focus.Lat, 'f', -1, 64))
	q.Set("focus.point.lon", strconv.FormatFloat(c.cfg.Focus.Lng, 'f', -1, 64))
	q.Set("size", "1")

	reqURL := c.cfg.BaseURL + "/geocode/search?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("build geocode request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: %v: %w", address, err, apperr.ErrGeocode)
	}
	defer drainClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: provider status %d: %w", address, resp.StatusCode, apperr.ErrGeocode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: decode response: %w", address, apperr.ErrGeocode)
	}
	if len(body.Features) == 0 || len(body.Features[0].Geometry.Coordinates) < 2 {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: no results: %w", address, apperr.ErrGeocode)
	}

	coords := body.Features[0].Geometry.Coordinates
	resolved := domain.Coordinate{Lat: coords[1], Lng: coords[0]}.Round6()

	c.logger.Debug("address geocoded",
		logx.String("address", address),
		logx.Float64("lat", resolved.Lat),
		logx.Float64("lng", resolved.Lng),
	)
	return resolved, nil
}

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Routes []struct {
		Summary struct {
			Distance float64 `json:"distance"` // meters
		} `json:"summary"`
	} `json:"routes"`
}

// Distance returns the driving distance in km between origin and dest.
// A not-found/unroutable answer falls back to the great-circle distance, a
// degraded success. Other failures surface as apperr.ErrUpstream.
func (c *Client) Distance(ctx context.Context, origin, dest domain.Coordinate) (float64, error) {
	payload, err := json.Marshal(directionsRequest{
		Coordinates: [][]float64{{origin.Lng, origin.Lat}, {dest.Lng, dest.Lat}},
	})
	if err != nil {
		return 0, fmt.Errorf("encode directions request: %w", err)
	}

	reqURL := c.cfg.BaseURL + "/v2/directions/driving-car"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("build directions request: %w", err)
	}
	req.Header.Set("Authorization", c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, fmt.Errorf("directions call: %v: %w", err, apperr.ErrUpstream)
	}
	defer drainClose(resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		km := Haversine(origin, dest)
		c.logger.Warn("routing provider could not route pair, using great-circle fallback",
			logx.Float64("distance_km", km),
		)
		return km, nil
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("directions call: provider status %d: %w", resp.StatusCode, apperr.ErrUpstream)
	}

	var body directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("directions call: decode response: %w", apperr.ErrUpstream)
	}
	if len(body.Routes) == 0 {
		km := Haversine(origin, dest)
		c.logger.Warn("routing provider returned no routes, using great-circle fallback",
			logx.Float64("distance_km", km),
		)
		return km, nil
	}

	return body.Routes[0].Summary.Distance / 1000.0, nil
}

func drainClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
