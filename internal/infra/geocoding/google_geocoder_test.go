package geocoding

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"locator/config"
	domainerrors "locator/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestGeocoder(t *testing.T, handler http.HandlerFunc) *googleGeocoder {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	g := NewGoogleGeocoder(&config.GeocoderConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	}, discardLogger())

	return g.(*googleGeocoder)
}

func TestGoogleGeocoder_ReturnsFirstResult(t *testing.T) {
	var gotQuery map[string]string
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"address":    r.URL.Query().Get("address"),
			"components": r.URL.Query().Get("components"),
			"key":        r.URL.Query().Get("key"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","results":[
			{"geometry":{"location":{"lat":-20.4697,"lng":-54.6201}}},
			{"geometry":{"location":{"lat":1,"lng":1}}}
		]}`))
	})

	coord, err := g.Geocode(context.Background(), "Campo Grande", "MS")
	require.NoError(t, err)
	assert.InDelta(t, -20.4697, coord.Lat, 1e-9)
	assert.InDelta(t, -54.6201, coord.Lng, 1e-9)

	assert.Equal(t, "Campo Grande, MS, Brazil", gotQuery["address"])
	assert.Equal(t, "administrative_area:MS|country:BR", gotQuery["components"])
	assert.Equal(t, "test-key", gotQuery["key"])
}

func TestGoogleGeocoder_ZeroResultsIsNotFound(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	})

	_, err := g.Geocode(context.Background(), "Atlantida", "SP")
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
}

func TestGoogleGeocoder_EmptyResultsIsNotFound(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	})

	_, err := g.Geocode(context.Background(), "Atlantida", "SP")
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
}

func TestGoogleGeocoder_NonSuccessStatusIsGeocodeError(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := g.Geocode(context.Background(), "Natal", "RN")
	assert.ErrorIs(t, err, domainerrors.ErrGeocodeFailed)
	assert.NotErrorIs(t, err, domainerrors.ErrLocationNotFound)
}

func TestGoogleGeocoder_DeniedRequestIsGeocodeError(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"bad key","results":[]}`))
	})

	_, err := g.Geocode(context.Background(), "Natal", "RN")
	require.ErrorIs(t, err, domainerrors.ErrGeocodeFailed)
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
}

func TestGoogleGeocoder_TimeoutIsGeocodeError(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := g.Geocode(ctx, "Natal", "RN")
	assert.ErrorIs(t, err, domainerrors.ErrGeocodeFailed)
}

func TestNewGeocoder_DisabledReturnsNil(t *testing.T) {
	cfg := &config.Config{Geocoder: &config.GeocoderConfig{Enabled: false}}

	assert.Nil(t, NewGeocoder(cfg, discardLogger()))
}

func TestNewGoogleGeocoder_ClampsTimeout(t *testing.T) {
	g := NewGoogleGeocoder(&config.GeocoderConfig{Timeout: time.Minute}, discardLogger()).(*googleGeocoder)

	assert.Equal(t, config.MaxGeocoderTimeout, g.httpClient.Timeout)
	assert.Equal(t, defaultBaseURL, g.baseURL)
	assert.Equal(t, config.DefaultGeocoderCountry, g.country)
}
