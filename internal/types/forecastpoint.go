package types

// ForecastPoint represents a geographic location with metadata
// used for weather forecasting
type ForecastPoint struct {
	Coordinates Coords       `json:"coordinates"`
	Location    LocationInfo `json:"location"`
	Timezone    string       `json:"timezone"`

	// NWS grid the point resolves to
	Office            string `json:"office"`
	GridX             int    `json:"grid_x"`
	GridY             int    `json:"grid_y"`
	ForecastHourlyURL string `json:"forecast_hourly_url"`
}
