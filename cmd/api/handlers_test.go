package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"medi-weather/internal/config"
	"medi-weather/internal/location"
	"medi-weather/internal/providers/nws"
	"medi-weather/internal/types"
	"medi-weather/internal/weather"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLocationService struct {
	point *types.ForecastPoint
	err   error
}

func (m *mockLocationService) GetForecastPoint(ctx context.Context, latitude, longitude float64) (*types.ForecastPoint, error) {
	return m.point, m.err
}

type mockWeatherService struct {
	result       *weather.WeatherResult
	err          error
	coords       *types.Coords
	needForecast bool
	called       bool
}

func (m *mockWeatherService) GetWeather(ctx context.Context, coords *types.Coords, needForecast bool) (*weather.WeatherResult, error) {
	m.called = true
	m.coords = coords
	m.needForecast = needForecast
	return m.result, m.err
}

func newTestApp(locationSvc location.Service, weatherSvc weather.Service) *App {
	cfg := &config.Config{Server: config.ServerConfig{GinMode: "test"}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newApp(cfg, logger, locationSvc, weatherSvc)
}

func serve(app *App, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	app.router.ServeHTTP(rec, req)
	return rec
}

func sampleResult() *weather.WeatherResult {
	return &weather.WeatherResult{
		Location: "Aspen, CO",
		Timezone: "America/Denver",
		Units:    types.Metric,
		CurrentWeather: weather.WeatherMoment{
			Icon:           weather.IconRain{IsNight: true},
			Weather:        "Rain",
			WeatherVerbose: "Light Rain",
			Temp:           4.5,
			Humidity:       90,
		},
	}
}

func TestHandlePing(t *testing.T) {
	app := newTestApp(&mockLocationService{}, &mockWeatherService{})

	rec := serve(app, "/ping")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"pong"}`, rec.Body.String())
}

func TestHandleGetWeather(t *testing.T) {
	tests := []struct {
		name             string
		target           string
		err              error
		wantStatus       int
		wantCalled       bool
		wantCoords       *types.Coords
		wantNeedForecast bool
	}{
		{
			name:             "coordinates with default forecast",
			target:           "/weather?latitude=39.1911&longitude=-106.8175",
			wantStatus:       http.StatusOK,
			wantCalled:       true,
			wantCoords:       &types.Coords{Latitude: 39.1911, Longitude: -106.8175},
			wantNeedForecast: true,
		},
		{
			name:             "configured location without forecast",
			target:           "/weather?forecast=false",
			wantStatus:       http.StatusOK,
			wantCalled:       true,
			wantNeedForecast: false,
		},
		{
			name:       "latitude without longitude",
			target:     "/weather?latitude=39.1911",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "latitude out of range",
			target:     "/weather?latitude=91&longitude=0",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed forecast flag",
			target:     "/weather?forecast=maybe",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:             "no location available",
			target:           "/weather",
			err:              weather.ErrNoLocation,
			wantStatus:       http.StatusBadRequest,
			wantCalled:       true,
			wantNeedForecast: true,
		},
		{
			name:             "provider circuit open",
			target:           "/weather",
			err:              fmt.Errorf("failed to get forecast: %w", nws.ErrCircuitOpen),
			wantStatus:       http.StatusServiceUnavailable,
			wantCalled:       true,
			wantNeedForecast: true,
		},
		{
			name:             "location outside forecast coverage",
			target:           "/weather?latitude=51.5&longitude=-0.1",
			err:              fmt.Errorf("failed to resolve location: %w", nws.ErrPointNotFound),
			wantStatus:       http.StatusNotFound,
			wantCalled:       true,
			wantCoords:       &types.Coords{Latitude: 51.5, Longitude: -0.1},
			wantNeedForecast: true,
		},
		{
			name:             "unexpected failure",
			target:           "/weather",
			err:              errors.New("boom"),
			wantStatus:       http.StatusInternalServerError,
			wantCalled:       true,
			wantNeedForecast: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weatherSvc := &mockWeatherService{err: tt.err}
			if tt.err == nil {
				weatherSvc.result = sampleResult()
			}
			app := newTestApp(&mockLocationService{}, weatherSvc)

			rec := serve(app, tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Equal(t, tt.wantCalled, weatherSvc.called)
			if !tt.wantCalled {
				return
			}
			assert.Equal(t, tt.wantCoords, weatherSvc.coords)
			assert.Equal(t, tt.wantNeedForecast, weatherSvc.needForecast)
		})
	}
}

func TestHandleGetWeather_ResponseBody(t *testing.T) {
	app := newTestApp(&mockLocationService{}, &mockWeatherService{result: sampleResult()})

	rec := serve(app, "/weather?forecast=false")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "Aspen, CO", body["location"])
	assert.Equal(t, "America/Denver", body["timezone"])
	assert.Equal(t, "metric", body["units"])
	assert.NotContains(t, body, "forecast")

	current, ok := body["current_weather"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"name": "rain", "is_night": true}, current["icon"])
	assert.Equal(t, "Light Rain", current["weather_verbose"])
}

func TestHandleGetForecastPoint(t *testing.T) {
	point := &types.ForecastPoint{
		Coordinates:       types.NewCoords(39.1154, -107.6584),
		Location:          types.LocationInfo{City: "Paonia", State: "CO"},
		Timezone:          "America/Denver",
		Office:            "GJT",
		GridX:             128,
		GridY:             86,
		ForecastHourlyURL: "https://api.weather.gov/gridpoints/GJT/128,86/forecast/hourly",
	}

	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
	}{
		{
			name:       "valid coordinates",
			target:     "/location/forecast-point?latitude=39.1154&longitude=-107.6584",
			wantStatus: http.StatusOK,
		},
		{
			name:       "equator and prime meridian",
			target:     "/location/forecast-point?latitude=0&longitude=0",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing longitude",
			target:     "/location/forecast-point?latitude=39.1154",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid latitude",
			target:     "/location/forecast-point?latitude=100&longitude=0",
			err:        location.ErrInvalidLatitude,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "circuit open",
			target:     "/location/forecast-point?latitude=39.1154&longitude=-107.6584",
			err:        fmt.Errorf("point: %w", nws.ErrCircuitOpen),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "outside forecast coverage",
			target:     "/location/forecast-point?latitude=51.5&longitude=-0.1",
			err:        fmt.Errorf("failed to get point: %w", nws.ErrPointNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "provider failure",
			target:     "/location/forecast-point?latitude=39.1154&longitude=-107.6584",
			err:        errors.New("points unavailable"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locationSvc := &mockLocationService{err: tt.err}
			if tt.err == nil {
				locationSvc.point = point
			}
			app := newTestApp(locationSvc, &mockWeatherService{})

			rec := serve(app, tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus == http.StatusOK {
				var got types.ForecastPoint
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, *point, got)
			}
		})
	}
}

func TestSwaggerRedirect(t *testing.T) {
	app := newTestApp(&mockLocationService{}, &mockWeatherService{})

	rec := serve(app, "/swagger/")

	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/swagger/index.html", rec.Header().Get("Location"))
}
