// Package geocoding resolves free-text addresses to coordinates through an
// OpenStreetMap Nominatim compatible search endpoint.
package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/pkg/errors"
)

const serviceName = "geocoding"

// Config configures the Nominatim client. MinInterval enforces the provider's
// usage policy of at most one request per second.
type Config struct {
	BaseURL      string
	UserAgent    string
	CountryCodes string
	Timeout      time.Duration
	MinInterval  time.Duration
}

type nominatimResponse struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NominatimClient implements ports.GeocodingClient.
type NominatimClient struct {
	baseURL      string
	userAgent    string
	countryCodes string
	httpClient   *http.Client
	rateLimiter  *time.Ticker
	logger       *slog.Logger
}

func NewNominatimClient(cfg Config, logger *slog.Logger) *NominatimClient {
	if cfg.MinInterval <= 0 {
		cfg.MinInterval = time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &NominatimClient{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:    cfg.UserAgent,
		countryCodes: cfg.CountryCodes,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		rateLimiter:  time.NewTicker(cfg.MinInterval),
		logger:       logger.With("component", "nominatim_client"),
	}
}

// Resolve returns the first match for address, or nil when the provider has none.
func (c *NominatimClient) Resolve(ctx context.Context, address string) (*kernel.GeoPoint, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, errs.NewValueIsRequiredError("address")
	}

	select {
	case <-c.rateLimiter.C:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	params := url.Values{}
	params.Set("q", address)
	params.Set("format", "json")
	params.Set("limit", "1")
	if c.countryCodes != "" {
		params.Set("countrycodes", c.countryCodes)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewExternalUnavailableError(serviceName, errors.WithStack(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errs.NewExternalUnavailableError(serviceName,
			errors.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var results []nominatimResponse
	if err = json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, errs.NewExternalUnavailableError(serviceName, errors.Wrap(err, "decode response"))
	}

	if len(results) == 0 {
		c.logger.InfoContext(ctx, "no geocoding match", slog.String("address", address))
		return nil, nil
	}

	point, err := parsePoint(results[0])
	if err != nil {
		return nil, errs.NewExternalUnavailableError(serviceName, err)
	}

	c.logger.DebugContext(ctx, "address geocoded",
		slog.String("address", address),
		slog.String("display_name", results[0].DisplayName),
		slog.String("point", point.String()),
	)
	return &point, nil
}

// Close stops the rate limiter.
func (c *NominatimClient) Close() {
	c.rateLimiter.Stop()
}

func parsePoint(r nominatimResponse) (kernel.GeoPoint, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return kernel.GeoPoint{}, errors.Wrapf(err, "invalid latitude %q", r.Lat)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return kernel.GeoPoint{}, errors.Wrapf(err, "invalid longitude %q", r.Lon)
	}

	point, err := kernel.NewGeoPoint(lat, lon)
	if err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("provider returned %s,%s: %w", r.Lat, r.Lon, err)
	}
	return point, nil
}
