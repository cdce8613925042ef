package nws

import "time"

type PointAPIResponse struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Geometry struct {
		Type        string    `json:"type"`
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
	Properties struct {
		Cwa              string `json:"cwa"`
		ForecastOffice   string `json:"forecastOffice"`
		GridId           string `json:"gridId"`
		GridX            int    `json:"gridX"`
		GridY            int    `json:"gridY"`
		Forecast         string `json:"forecast"`
		ForecastHourly   string `json:"forecastHourly"`
		TimeZone         string `json:"timeZone"`
		RelativeLocation struct {
			Properties struct {
				City  string `json:"city"`
				State string `json:"state"`
			} `json:"properties"`
		} `json:"relativeLocation"`
	} `json:"properties"`
}

// QuantitativeValue is the NWS {value, unitCode} pair. Wind speed may come
// back as a range with only min/max populated.
type QuantitativeValue struct {
	Value    *float64 `json:"value"`
	MinValue *float64 `json:"minValue,omitempty"`
	MaxValue *float64 `json:"maxValue,omitempty"`
	UnitCode string   `json:"unitCode"`
}

// Float returns the value, falling back to the top of a range
func (q QuantitativeValue) Float() (float64, bool) {
	if q.Value != nil {
		return *q.Value, true
	}
	if q.MaxValue != nil {
		return *q.MaxValue, true
	}
	return 0, false
}

type ForecastPeriod struct {
	Number           int               `json:"number"`
	Name             string            `json:"name"`
	StartTime        time.Time         `json:"startTime"`
	EndTime          time.Time         `json:"endTime"`
	IsDaytime        bool              `json:"isDaytime"`
	Temperature      QuantitativeValue `json:"temperature"`
	RelativeHumidity QuantitativeValue `json:"relativeHumidity"`
	WindSpeed        QuantitativeValue `json:"windSpeed"`
	WindDirection    string            `json:"windDirection"`
	ShortForecast    string            `json:"shortForecast"`
	Icon             string            `json:"icon"`
}

type ForecastAPIResponse struct {
	Type       string `json:"type"`
	Properties struct {
		Units       string           `json:"units"`
		GeneratedAt time.Time        `json:"generatedAt"`
		UpdateTime  time.Time        `json:"updateTime"`
		ValidTimes  string           `json:"validTimes"`
		Periods     []ForecastPeriod `json:"periods"`
	} `json:"properties"`
}
