package main

import (
	"errors"
	"net/http"

	"medi-weather/internal/location"
	"medi-weather/internal/providers/nws"
	"medi-weather/internal/types"
	"medi-weather/internal/weather"

	"github.com/gin-gonic/gin"
)

// GetWeatherInput defines the query parameters for the weather endpoint.
// Coordinates are optional but must be given together.
type GetWeatherInput struct {
	Latitude  *float64 `form:"latitude" binding:"required_with=Longitude,omitempty,gte=-90,lte=90"`
	Longitude *float64 `form:"longitude" binding:"required_with=Latitude,omitempty,gte=-180,lte=180"`
	Forecast  *bool    `form:"forecast"`
}

func (in GetWeatherInput) coords() *types.Coords {
	if in.Latitude == nil || in.Longitude == nil {
		return nil
	}
	coords := types.NewCoords(*in.Latitude, *in.Longitude)
	return &coords
}

func (in GetWeatherInput) needForecast() bool {
	return in.Forecast == nil || *in.Forecast
}

// handleGetWeather godoc
// @Summary Get current weather and forecast
// @Description Current conditions plus the average, minimum, maximum and final conditions over the configured forecast window. Falls back to the configured location when no coordinates are given.
// @Tags weather
// @Produce json
// @Param latitude query number false "Latitude in decimal degrees" minimum(-90) maximum(90) example(39.19110)
// @Param longitude query number false "Longitude in decimal degrees" minimum(-180) maximum(180) example(-106.81750)
// @Param forecast query boolean false "Include the forecast window" default(true)
// @Success 200 {object} weather.WeatherResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /weather [get]
func (app *App) handleGetWeather(c *gin.Context) {
	var input GetWeatherInput

	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := app.weatherService.GetWeather(c.Request.Context(), input.coords(), input.needForecast())
	if err != nil {
		switch {
		case errors.Is(err, weather.ErrNoLocation),
			errors.Is(err, location.ErrInvalidLatitude),
			errors.Is(err, location.ErrInvalidLongitude):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, nws.ErrPointNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "no forecast available for this location"})
		case errors.Is(err, nws.ErrCircuitOpen):
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "forecast provider unavailable"})
		default:
			app.logger.Error("failed to get weather",
				"latitude", input.Latitude,
				"longitude", input.Longitude,
				"forecast", input.needForecast(),
				"error", err,
			)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get weather"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
