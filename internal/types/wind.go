package types

import (
	"math"
	"strings"
)

const (
	MphToKph = 1.609344
	KphToMs  = 1 / 3.6

	unitKph = "km_h-1"
)

// WindSpeed carries a wind reading in the caller's display unit and in km/h.
// Local is km/h for metric and mph for imperial.
type WindSpeed struct {
	Local float64
	Kph   float64
}

// NewWindSpeed normalizes a tagged wind reading. Anything not tagged km_h-1
// is treated as mph.
func NewWindSpeed(m Measurement, units UnitSystem) WindSpeed {
	kph := m.Value
	if !m.IsUnit(unitKph) {
		kph = m.Value * MphToKph
	}
	return WindSpeed{
		Local: KphToLocal(kph, units),
		Kph:   kph,
	}
}

// Ms returns the speed in meters per second
func (w WindSpeed) Ms() float64 {
	return w.Kph * KphToMs
}

func KphToLocal(kph float64, units UnitSystem) float64 {
	if units == Imperial {
		return kph / MphToKph
	}
	return kph
}

var cardinalDirections = []string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
}

// BearingToDegrees maps a 16-point compass bearing to degrees clockwise from
// north. ok is false for anything outside the 16 points.
func BearingToDegrees(bearing string) (degrees float64, ok bool) {
	bearing = strings.ToUpper(strings.TrimSpace(bearing))
	for i, cardinal := range cardinalDirections {
		if bearing == cardinal {
			return float64(i) * 22.5, true
		}
	}
	return 0, false
}

// DegreesToBearing rounds degrees to the nearest 16-point compass bearing
func DegreesToBearing(degrees float64) string {
	degrees = math.Mod(degrees, 360)
	if degrees < 0 {
		degrees += 360
	}
	direction := (degrees / 22.5) + .5 // .5 for rounding
	index := int(direction) % 16
	return cardinalDirections[index]
}
