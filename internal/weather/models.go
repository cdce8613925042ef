package weather

import (
	"medi-weather/internal/types"
)

// ForecastSample is one decoded forecast period. Samples arrive in
// chronological order with index 0 being the current hour.
type ForecastSample struct {
	IsDaytime        bool
	Temperature      types.Measurement
	RelativeHumidity float64
	WindSpeed        types.Measurement
	WindDirection    string
	ShortForecast    string
}

// ForecastAggregate is a sample normalized into the caller's unit system.
// It is also the shape of the avg/min/max records of a Forecast.
type ForecastAggregate struct {
	Temp          float64  `json:"temp"`
	Apparent      float64  `json:"apparent"`
	Humidity      float64  `json:"humidity"`
	Wind          float64  `json:"wind"`
	WindKmh       float64  `json:"wind_kmh"`
	WindDirection *float64 `json:"wind_direction,omitempty"`
}

// WeatherMoment describes conditions at a single instant
type WeatherMoment struct {
	Icon           WeatherIcon `json:"icon"`
	Weather        string      `json:"weather"`
	WeatherVerbose string      `json:"weather_verbose"`
	Temp           float64     `json:"temp"`
	Apparent       float64     `json:"apparent"`
	Humidity       float64     `json:"humidity"`
	Wind           float64     `json:"wind"`
	WindKmh        float64     `json:"wind_kmh"`
	WindDirection  *float64    `json:"wind_direction,omitempty"`
}

// Forecast summarizes the aggregate window. Fin is the moment at the end of
// the window.
type Forecast struct {
	Avg ForecastAggregate `json:"avg"`
	Min ForecastAggregate `json:"min"`
	Max ForecastAggregate `json:"max"`
	Fin WeatherMoment     `json:"fin"`
}

type WeatherResult struct {
	Location       string           `json:"location"`
	Timezone       string           `json:"timezone,omitempty"`
	Units          types.UnitSystem `json:"units"`
	CurrentWeather WeatherMoment    `json:"current_weather"`
	Forecast       *Forecast        `json:"forecast,omitempty"`
}

// windDegrees resolves the sample's compass bearing. nil means the bearing is
// missing or not one of the 16 points.
func (s ForecastSample) windDegrees() *float64 {
	degrees, ok := types.BearingToDegrees(s.WindDirection)
	if !ok {
		return nil
	}
	return &degrees
}

// apparentTemp computes the feels-like temperature in Celsius and reports it
// in the unit system's temperature unit.
func (s ForecastSample) apparentTemp(units types.UnitSystem) float64 {
	temp := types.NewTemperature(s.Temperature)
	wind := types.NewWindSpeed(s.WindSpeed, units)
	apparent := ApparentTemperature(temp.Celsius, s.RelativeHumidity, wind.Ms())
	return types.NewTemperatureFromCelsius(apparent).In(units)
}

func (s ForecastSample) toMoment(units types.UnitSystem) WeatherMoment {
	icon := ClassifyIcon(s.ShortForecast, !s.IsDaytime)
	wind := types.NewWindSpeed(s.WindSpeed, units)
	return WeatherMoment{
		Icon:           icon,
		Weather:        icon.Word(),
		WeatherVerbose: s.ShortForecast,
		Temp:           types.NewTemperature(s.Temperature).In(units),
		Apparent:       s.apparentTemp(units),
		Humidity:       s.RelativeHumidity,
		Wind:           wind.Local,
		WindKmh:        wind.Kph,
		WindDirection:  s.windDegrees(),
	}
}

func (s ForecastSample) toAggregate(units types.UnitSystem) ForecastAggregate {
	wind := types.NewWindSpeed(s.WindSpeed, units)
	return ForecastAggregate{
		Temp:          types.NewTemperature(s.Temperature).In(units),
		Apparent:      s.apparentTemp(units),
		Humidity:      s.RelativeHumidity,
		Wind:          wind.Local,
		WindKmh:       wind.Kph,
		WindDirection: s.windDegrees(),
	}
}
