package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"medi-weather/internal/config"
	"medi-weather/internal/providers/nws"
	"medi-weather/internal/types"
)

var ErrNoLocation = errors.New("no location given and no default location configured")

type ForecastProvider interface {
	// GetHourlyForecast fetches hourly periods from a forecast URL in the given unit system
	GetHourlyForecast(ctx context.Context, forecastURL string, units types.UnitSystem) (*nws.ForecastAPIResponse, error)
}

type LocationProvider interface {
	GetForecastPoint(ctx context.Context, latitude, longitude float64) (*types.ForecastPoint, error)
}

type Service interface {
	// GetWeather returns current conditions for coords, or the configured
	// location when coords is nil. The forecast window is only computed when
	// needForecast is set.
	GetWeather(ctx context.Context, coords *types.Coords, needForecast bool) (*WeatherResult, error)
}

type weatherService struct {
	forecastProvider ForecastProvider
	locationProvider LocationProvider
	cfg              *config.Config
	logger           *slog.Logger
}

func NewWeatherService(
	cfg *config.Config,
	forecastProvider ForecastProvider,
	locationProvider LocationProvider,
	logger *slog.Logger,
) Service {
	return &weatherService{
		forecastProvider: forecastProvider,
		locationProvider: locationProvider,
		cfg:              cfg,
		logger:           logger.With("component", "weather-service"),
	}
}

func (s *weatherService) GetWeather(ctx context.Context, coords *types.Coords, needForecast bool) (*WeatherResult, error) {
	if coords == nil {
		coords = s.cfg.DefaultCoords()
	}
	if coords == nil {
		return nil, ErrNoLocation
	}

	units := s.cfg.Units()

	point, err := s.locationProvider.GetForecastPoint(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Error("failed to resolve forecast point",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to resolve location: %w", err)
	}

	apiResponse, err := s.forecastProvider.GetHourlyForecast(ctx, point.ForecastHourlyURL, units)
	if err != nil {
		s.logger.Error("failed to get hourly forecast from provider",
			"url", point.ForecastHourlyURL,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	samples := mapPeriodsToSamples(apiResponse.Properties.Periods)

	if undirected := countUndirected(samples); undirected > 0 {
		s.logger.Debug("samples without a resolvable wind direction",
			"count", undirected,
			"total", len(samples),
		)
	}

	result, err := Summarize(point.Location.Label(), samples, units, s.cfg.App.ForecastHours, needForecast)
	if err != nil {
		return nil, err
	}
	result.Timezone = point.Timezone

	attrs := []any{
		"location", result.Location,
		"samples", len(samples),
		"forecast", needForecast,
	}
	if result.Forecast != nil && result.Forecast.Avg.WindDirection != nil {
		attrs = append(attrs, "avg_wind_bearing", types.DegreesToBearing(*result.Forecast.Avg.WindDirection))
	}
	s.logger.Debug("weather summarized", attrs...)

	return result, nil
}

func mapPeriodsToSamples(periods []nws.ForecastPeriod) []ForecastSample {
	samples := make([]ForecastSample, 0, len(periods))
	for _, p := range periods {
		// Missing values are rejected by the client
		temp, _ := p.Temperature.Float()
		humidity, _ := p.RelativeHumidity.Float()
		wind, _ := p.WindSpeed.Float()

		samples = append(samples, ForecastSample{
			IsDaytime:        p.IsDaytime,
			Temperature:      types.NewMeasurement(temp, p.Temperature.UnitCode),
			RelativeHumidity: humidity,
			WindSpeed:        types.NewMeasurement(wind, p.WindSpeed.UnitCode),
			WindDirection:    p.WindDirection,
			ShortForecast:    p.ShortForecast,
		})
	}
	return samples
}

func countUndirected(samples []ForecastSample) int {
	count := 0
	for _, s := range samples {
		if s.windDegrees() == nil {
			count++
		}
	}
	return count
}
