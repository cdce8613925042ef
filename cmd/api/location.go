package main

import (
	"errors"
	"net/http"

	"medi-weather/internal/location"
	"medi-weather/internal/providers/nws"
	_ "medi-weather/internal/types" // imported for swagger type definitions

	"github.com/gin-gonic/gin"
)

// GetForecastPointInput defines the query parameters for the forecast point endpoint
type GetForecastPointInput struct {
	Latitude  *float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude *float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
}

// handleGetForecastPoint godoc
// @Summary Get forecast point data
// @Description Resolve a latitude and longitude into the NWS hourly forecast URL, the nearest "City, State" and the IANA timezone
// @Tags location
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(39.11539)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(-107.65840)
// @Success 200 {object} types.ForecastPoint
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /location/forecast-point [get]
func (app *App) handleGetForecastPoint(c *gin.Context) {
	var input GetForecastPointInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	// Delegate to business layer
	forecastPoint, err := app.locationService.GetForecastPoint(c.Request.Context(), *input.Latitude, *input.Longitude)
	if err != nil {
		switch {
		case errors.Is(err, location.ErrInvalidLatitude), errors.Is(err, location.ErrInvalidLongitude):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, nws.ErrPointNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "no forecast available for this location"})
		case errors.Is(err, nws.ErrCircuitOpen):
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "forecast provider unavailable"})
		default:
			app.logger.Error("failed to get forecast point",
				"latitude", *input.Latitude,
				"longitude", *input.Longitude,
				"error", err,
			)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get forecast point"})
		}
		return
	}

	c.JSON(http.StatusOK, forecastPoint)
}
