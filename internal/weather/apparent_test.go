package weather

import (
	"math"
	"testing"

	"medi-weather/internal/types"
)

func TestApparentTemperature(t *testing.T) {
	tests := []struct {
		name     string
		tempC    float64
		humidity float64
		windMs   float64
		expected float64
	}{
		{"warm and calm", 25, 50, 0, 26.211188815897508},
		{"hot and humid", 30, 80, 2, 35.76381061885188},
		{"freezing and windy", 0, 100, 10, -8.98535},
		{"cold", -10, 50, 5, -17.028179094923637},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApparentTemperature(tt.tempC, tt.humidity, tt.windMs)
			if math.Abs(got-tt.expected) > 1e-9*math.Max(1, math.Abs(tt.expected)) {
				t.Errorf("ApparentTemperature(%v, %v, %v) = %v, want %v", tt.tempC, tt.humidity, tt.windMs, got, tt.expected)
			}
		})
	}
}

func TestApparentTemperature_Deterministic(t *testing.T) {
	first := ApparentTemperature(17.3, 64, 3.2)
	for i := 0; i < 10; i++ {
		if got := ApparentTemperature(17.3, 64, 3.2); got != first {
			t.Fatalf("ApparentTemperature() = %v, want %v", got, first)
		}
	}
}

func TestApparentTemperature_WindCools(t *testing.T) {
	calm := ApparentTemperature(10, 50, 0)
	windy := ApparentTemperature(10, 50, 8)
	if windy >= calm {
		t.Errorf("windy %v should feel colder than calm %v", windy, calm)
	}
}

func TestForecastSample_ApparentTempImperial(t *testing.T) {
	sample := ForecastSample{
		Temperature:      types.NewMeasurement(50, "wmoUnit:degF"),
		RelativeHumidity: 60,
		WindSpeed:        types.NewMeasurement(10, "wmoUnit:mi_h-1"),
	}

	if got := sample.apparentTemp(types.Imperial); math.Abs(got-41.53667501160166) > 1e-9 {
		t.Errorf("apparentTemp(Imperial) = %v, want 41.53667501160166", got)
	}
	if got := sample.apparentTemp(types.Metric); math.Abs(got-5.298152784223143) > 1e-9 {
		t.Errorf("apparentTemp(Metric) = %v, want 5.298152784223143", got)
	}
}
