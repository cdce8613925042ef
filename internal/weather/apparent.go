package weather

import "math"

// ApparentTemperature is the Australian Bureau of Meteorology approximation of
// how warm it feels, from dry-bulb temperature in °C, relative humidity in
// percent and wind speed in m/s. The result is in °C.
//
// http://www.bom.gov.au/info/thermal_stress/#atapproximation
func ApparentTemperature(tempC, humidity, windSpeedMs float64) float64 {
	vaporPressure := humidity / 100 * 6.105 * math.Exp(17.27*tempC/(237.7+tempC))
	return tempC + 0.33*vaporPressure - 0.70*windSpeedMs - 4.00
}
