package weather

import (
	"errors"

	"medi-weather/internal/types"
)

var ErrNoCurrentData = errors.New("no current weather")

// Summarize turns one response worth of samples into the current moment and,
// when needForecast is set, the aggregate over the first forecastHours
// samples plus the moment at the end of that window.
func Summarize(location string, samples []ForecastSample, units types.UnitSystem, forecastHours int, needForecast bool) (*WeatherResult, error) {
	if len(samples) == 0 {
		return nil, ErrNoCurrentData
	}

	result := &WeatherResult{
		Location:       location,
		Units:          units,
		CurrentWeather: samples[0].toMoment(units),
	}

	if !needForecast {
		return result, nil
	}

	forecastHours = max(forecastHours, 0)
	window := samples[:min(forecastHours, len(samples))]

	data := make([]ForecastAggregate, 0, len(window))
	for _, s := range window {
		data = append(data, s.toAggregate(units))
	}

	fin := samples[min(forecastHours, len(samples)-1)].toMoment(units)

	forecast, err := CombineForecasts(data, fin)
	if err != nil {
		return nil, err
	}
	result.Forecast = forecast

	return result, nil
}
