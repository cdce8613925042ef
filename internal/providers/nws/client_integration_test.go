//go:build integration

package nws

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"medi-weather/internal/types"
)

func TestClient_HourlyForecast_Integration(t *testing.T) {
	// Test coordinates: Aspen, CO area
	lat := 39.11539
	lon := -107.65840

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	client := NewClient(DefaultConfig(), logger)

	point, err := client.GetPoint(context.Background(), lat, lon)
	if err != nil {
		t.Fatalf("Failed to get point data: %v", err)
	}

	t.Logf("Point Details:")
	t.Logf("  Grid: %s %d,%d", point.Properties.GridId, point.Properties.GridX, point.Properties.GridY)
	t.Logf("  Location: %s, %s", point.Properties.RelativeLocation.Properties.City, point.Properties.RelativeLocation.Properties.State)
	t.Logf("  Hourly: %s", point.Properties.ForecastHourly)

	forecast, err := client.GetHourlyForecast(context.Background(), point.Properties.ForecastHourly, types.Metric)
	if err != nil {
		t.Fatalf("Failed to get hourly forecast: %v", err)
	}

	if len(forecast.Properties.Periods) == 0 {
		t.Fatal("Hourly forecast has no periods")
	}

	first := forecast.Properties.Periods[0]
	t.Logf("First period: %s, %v %s, wind %v %s %s",
		first.ShortForecast,
		*first.Temperature.Value, first.Temperature.UnitCode,
		*first.WindSpeed.Value, first.WindSpeed.UnitCode, first.WindDirection,
	)

	if first.Temperature.UnitCode != "wmoUnit:degC" {
		t.Errorf("Temperature unit = %s, want wmoUnit:degC", first.Temperature.UnitCode)
	}
}
