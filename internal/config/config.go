package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"medi-weather/internal/types"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Log    LogConfig
	App    AppConfig
	NWS    NWSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Units         string // metric, imperial
	ForecastHours int    // Number of hourly periods in the forecast window

	// Default location used when a request does not supply coordinates
	Latitude  *float64
	Longitude *float64
}

// NWSConfig holds settings for the National Weather Service client
type NWSConfig struct {
	BaseURL            string
	UserAgent          string
	Timeout            time.Duration
	RequestsPerSecond  float64
	Burst              int
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
}

// Load reads configuration from .env, config file and environment variables
func Load() (*Config, error) {
	v := viper.New()
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	// A missing .env is fine, variables may come from the environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.medi-weather")

	setDefaults(v)

	// Read from environment variables, e.g. MEDI_WEATHER_APP_UNITS
	v.SetEnvPrefix("MEDI_WEATHER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// No defaults for the location, bind explicitly so Unmarshal sees them
	for _, key := range []string{"app.latitude", "app.longitude"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("app.units", string(types.Metric))
	v.SetDefault("app.forecastHours", 12)
	v.SetDefault("nws.baseURL", "https://api.weather.gov")
	v.SetDefault("nws.userAgent", "medi-weather (support@example.com)")
	v.SetDefault("nws.timeout", 10*time.Second)
	v.SetDefault("nws.requestsPerSecond", 2.0)
	v.SetDefault("nws.burst", 1)
	v.SetDefault("nws.breakerMaxFailures", 5)
	v.SetDefault("nws.breakerOpenTimeout", 30*time.Second)
}

// Validate checks values that have no sensible fallback
func (c *Config) Validate() error {
	if _, err := types.ParseUnitSystem(c.App.Units); err != nil {
		return err
	}
	if c.App.ForecastHours < 0 {
		return fmt.Errorf("forecast hours must not be negative, got %d", c.App.ForecastHours)
	}
	if (c.App.Latitude == nil) != (c.App.Longitude == nil) {
		return errors.New("latitude and longitude must be set together")
	}
	if c.App.Latitude != nil && (*c.App.Latitude < -90 || *c.App.Latitude > 90) {
		return fmt.Errorf("latitude %f out of range", *c.App.Latitude)
	}
	if c.App.Longitude != nil && (*c.App.Longitude < -180 || *c.App.Longitude > 180) {
		return fmt.Errorf("longitude %f out of range", *c.App.Longitude)
	}
	if c.NWS.RequestsPerSecond <= 0 || c.NWS.Burst <= 0 {
		return errors.New("nws rate limit must be positive")
	}
	return nil
}

// Units returns the configured unit system
func (c *Config) Units() types.UnitSystem {
	units, err := types.ParseUnitSystem(c.App.Units)
	if err != nil {
		return types.Metric
	}
	return units
}

// DefaultCoords returns the configured location, or nil if none is set
func (c *Config) DefaultCoords() *types.Coords {
	if c.App.Latitude == nil || c.App.Longitude == nil {
		return nil
	}
	coords := types.NewCoords(*c.App.Latitude, *c.App.Longitude)
	return &coords
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
