package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"medi-weather/internal/providers/nws"
	"medi-weather/internal/timezone"
	"medi-weather/internal/types"
)

var (
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
)

// Service provides location data for weather forecasting
type Service interface {
	// GetForecastPoint resolves a coordinate to its forecast grid, label and timezone
	GetForecastPoint(ctx context.Context, latitude, longitude float64) (*types.ForecastPoint, error)
}

// PointProvider resolves coordinates to a forecast office grid point
type PointProvider interface {
	GetPoint(ctx context.Context, latitude, longitude float64) (*nws.PointAPIResponse, error)
}

// locationService implements the Service interface
type locationService struct {
	pointProvider   PointProvider
	timezoneService timezone.Service
	logger          *slog.Logger
}

// NewLocationService creates a new location service
func NewLocationService(pointProvider PointProvider, timezoneService timezone.Service, logger *slog.Logger) Service {
	return &locationService{
		pointProvider:   pointProvider,
		timezoneService: timezoneService,
		logger:          logger.With("component", "location-service"),
	}
}

// GetForecastPoint calls the point provider and the timezone finder in parallel
func (s *locationService) GetForecastPoint(ctx context.Context, latitude, longitude float64) (*types.ForecastPoint, error) {
	if latitude < -90 || latitude > 90 {
		return nil, ErrInvalidLatitude
	}
	if longitude < -180 || longitude > 180 {
		return nil, ErrInvalidLongitude
	}

	var (
		wg          sync.WaitGroup
		pointResp   *nws.PointAPIResponse
		tz          string
		pointErr    error
		timezoneErr error
	)

	wg.Add(2)

	// Get forecast grid point
	go func() {
		defer wg.Done()
		pointResp, pointErr = s.pointProvider.GetPoint(ctx, latitude, longitude)
		if pointErr != nil {
			pointErr = fmt.Errorf("failed to get point: %w", pointErr)
		}
	}()

	// Get timezone
	go func() {
		defer wg.Done()
		tz, timezoneErr = s.timezoneService.GetTimezone(latitude, longitude)
		if timezoneErr != nil {
			timezoneErr = fmt.Errorf("failed to get timezone: %w", timezoneErr)
		}
	}()

	wg.Wait()

	if pointErr != nil && timezoneErr != nil {
		return nil, fmt.Errorf("multiple errors: point: %w; timezone: %w", pointErr, timezoneErr)
	}
	if pointErr != nil {
		return nil, pointErr
	}

	point, err := s.translatePoint(latitude, longitude, pointResp)
	if err != nil {
		return nil, err
	}

	// The local finder is authoritative; the grid's own zone is the fallback
	if timezoneErr != nil {
		s.logger.Debug("falling back to point timezone",
			"latitude", latitude,
			"longitude", longitude,
			"timezone", point.Timezone,
			"error", timezoneErr,
		)
	} else {
		point.Timezone = tz
	}

	return point, nil
}

// translatePoint converts an NWS points response to the domain ForecastPoint type
func (s *locationService) translatePoint(latitude, longitude float64, resp *nws.PointAPIResponse) (*types.ForecastPoint, error) {
	if resp == nil {
		return nil, fmt.Errorf("point response is nil")
	}

	props := resp.Properties
	return &types.ForecastPoint{
		Coordinates: types.NewCoords(latitude, longitude),
		Location: types.LocationInfo{
			City:  props.RelativeLocation.Properties.City,
			State: props.RelativeLocation.Properties.State,
		},
		Timezone:          props.TimeZone,
		Office:            props.GridId,
		GridX:             props.GridX,
		GridY:             props.GridY,
		ForecastHourlyURL: props.ForecastHourly,
	}, nil
}
