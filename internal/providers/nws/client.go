package nws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"medi-weather/internal/types"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// API Docs: https://www.weather.gov/documentation/services-web-api
// Sample requests:
// - https://api.weather.gov/points/39.1154,-107.6584
// - https://api.weather.gov/gridpoints/GJT/128,86/forecast/hourly?units=si
const (
	baseURL = "https://api.weather.gov"

	// Returns temperature and wind speed as {value, unitCode} instead of
	// formatted strings.
	featureFlags = "forecast_wind_speed_qv,forecast_temperature_qv"
)

var (
	ErrCircuitOpen   = errors.New("nws circuit breaker open")
	ErrMissingField  = errors.New("nws forecast period missing field")
	ErrPointNotFound = errors.New("nws has no forecast for point")
)

// StatusError is a non-200 response from the API
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch returned status %d: %s", e.StatusCode, e.Body)
}

// isBreakerSuccess reports whether a request outcome should count against the
// breaker. Client errors and caller cancellations say nothing about the health
// of the API; 429 does.
func isBreakerSuccess(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= 400 && statusErr.StatusCode < 500 &&
			statusErr.StatusCode != http.StatusTooManyRequests
	}
	return false
}

type Config struct {
	BaseURL            string
	UserAgent          string
	Timeout            time.Duration
	RequestsPerSecond  float64
	Burst              int
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		BaseURL:            baseURL,
		UserAgent:          "medi-weather (support@example.com)",
		Timeout:            10 * time.Second,
		RequestsPerSecond:  2,
		Burst:              1,
		BreakerMaxFailures: 5,
		BreakerOpenTimeout: 30 * time.Second,
	}
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	logger = logger.With("component", "nws-client")
	maxFailures := cfg.BreakerMaxFailures

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "nws",
		Timeout: cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return maxFailures > 0 && counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: isBreakerSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		breaker:    breaker,
		logger:     logger,
	}
}

// GetPoint resolves coordinates to the forecast office grid and hourly forecast URL
func (c *Client) GetPoint(ctx context.Context, latitude, longitude float64) (*PointAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = fmt.Sprintf("/points/%.4f,%.4f", latitude, longitude)

	var apiResp PointAPIResponse
	if err := c.get(ctx, u.String(), nil, &apiResp); err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w %.4f,%.4f: %w", ErrPointNotFound, latitude, longitude, err)
		}
		return nil, err
	}

	if apiResp.Properties.ForecastHourly == "" {
		return nil, fmt.Errorf("point %.4f,%.4f has no hourly forecast", latitude, longitude)
	}

	return &apiResp, nil
}

// GetHourlyForecast fetches the hourly forecast periods, soonest first
func (c *Client) GetHourlyForecast(ctx context.Context, forecastURL string, units types.UnitSystem) (*ForecastAPIResponse, error) {
	u, err := url.Parse(forecastURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse forecast URL: %w", err)
	}

	q := u.Query()
	q.Set("units", units.QueryValue())
	u.RawQuery = q.Encode()

	headers := map[string]string{
		"Feature-Flags": featureFlags,
	}

	var apiResp ForecastAPIResponse
	if err := c.get(ctx, u.String(), headers, &apiResp); err != nil {
		return nil, err
	}

	if err := validatePeriods(apiResp.Properties.Periods); err != nil {
		return nil, err
	}

	return &apiResp, nil
}

func (c *Client) get(ctx context.Context, rawURL string, headers map[string]string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait canceled: %w", err)
	}

	c.logger.Debug("requesting", "url", rawURL)

	result, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", "application/geo+json")
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch: %w", err)
		}
		defer func(Body io.ReadCloser) {
			_ = Body.Close()
		}(resp.Body)

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
		}

		return body, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%w: %v", ErrCircuitOpen, err)
		}
		return err
	}

	body, ok := result.([]byte)
	if !ok {
		return fmt.Errorf("unexpected result type %T from circuit breaker", result)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func validatePeriods(periods []ForecastPeriod) error {
	for _, p := range periods {
		if _, ok := p.Temperature.Float(); !ok {
			return fmt.Errorf("%w: period %d temperature", ErrMissingField, p.Number)
		}
		if _, ok := p.RelativeHumidity.Float(); !ok {
			return fmt.Errorf("%w: period %d relativeHumidity", ErrMissingField, p.Number)
		}
		if _, ok := p.WindSpeed.Float(); !ok {
			return fmt.Errorf("%w: period %d windSpeed", ErrMissingField, p.Number)
		}
	}
	return nil
}
