// Package geocoding implements the external geocoding fallback.
package geocoding

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"locator/config"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/service"
	"locator/internal/errors"
)

const (
	defaultBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"

	maxErrorBodyBytes = 512
)

// googleGeocoder queries the Google Geocoding JSON API.
type googleGeocoder struct {
	baseURL    string
	apiKey     string
	country    string
	httpClient *http.Client
	logger     *slog.Logger
}

// geocodeResponse is the subset of the Geocoding API response we read.
type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// NewGoogleGeocoder creates a Geocoder with a bounded request timeout.
func NewGoogleGeocoder(cfg *config.GeocoderConfig, logger *slog.Logger) service.Geocoder {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	country := cfg.Country
	if country == "" {
		country = config.DefaultGeocoderCountry
	}

	return &googleGeocoder{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		country: country,
		httpClient: &http.Client{
			Timeout: config.ClampGeocoderTimeout(cfg.Timeout),
		},
		logger: logger,
	}
}

// NewGeocoder returns the configured Geocoder, or nil when external geocoding is disabled.
func NewGeocoder(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	if cfg.Geocoder == nil || !cfg.Geocoder.Enabled {
		logger.Info("External geocoding disabled")

		return nil
	}
	if cfg.Geocoder.APIKey == "" {
		logger.Warn("External geocoding enabled without an API key; requests will likely be rejected")
	}

	return NewGoogleGeocoder(cfg.Geocoder, logger)
}

// Name identifies the provider in logs.
func (g *googleGeocoder) Name() string {
	return "google"
}

// Geocode resolves "city, state, country" and returns the first result.
func (g *googleGeocoder) Geocode(ctx context.Context, city string, state entity.State) (entity.Coordinate, error) {
	reqURL, err := g.buildURL(city, state)
	if err != nil {
		return entity.Coordinate{}, domainerrors.ErrGeocodeFailed.WithDetails(err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return entity.Coordinate{}, domainerrors.ErrGeocodeFailed.WithDetails(err.Error())
	}

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return entity.Coordinate{}, errors.Wrap(domainerrors.ErrGeocodeFailed.WithDetails(err.Error()), "geocoding request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return entity.Coordinate{}, domainerrors.ErrGeocodeFailed.WithDetails(
			"provider returned status " + resp.Status + ": " + strings.TrimSpace(string(body)),
		)
	}

	var payload geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return entity.Coordinate{}, domainerrors.ErrGeocodeFailed.WithDetails("invalid provider response: " + err.Error())
	}

	g.logger.Debug("Geocoding request completed",
		slog.String("city", city),
		slog.String("state", string(state)),
		slog.String("status", payload.Status),
		slog.Duration("elapsed", time.Since(start)),
	)

	switch payload.Status {
	case statusOK, "":
	case statusZeroResults:
		return entity.Coordinate{}, domainerrors.ErrLocationNotFound
	default:
		return entity.Coordinate{}, domainerrors.ErrGeocodeFailed.WithDetails(payload.Status + " " + payload.ErrorMessage)
	}

	if len(payload.Results) == 0 {
		return entity.Coordinate{}, domainerrors.ErrLocationNotFound
	}

	loc := payload.Results[0].Geometry.Location
	coord := entity.NewCoordinate(loc.Lat, loc.Lng)
	if !coord.IsValid() {
		return entity.Coordinate{}, domainerrors.ErrGeocodeFailed.WithDetails("provider returned an invalid coordinate")
	}

	return coord, nil
}

func (g *googleGeocoder) buildURL(city string, state entity.State) (string, error) {
	u, err := url.Parse(g.baseURL)
	if err != nil {
		return "", errors.Wrap(err, "invalid geocoder base URL")
	}

	q := u.Query()
	q.Set("address", strings.TrimSpace(city)+", "+string(state)+", "+g.country)
	q.Set("components", "administrative_area:"+string(state)+"|country:BR")
	q.Set("key", g.apiKey)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
