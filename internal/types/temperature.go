package types

const (
	unitCelsius = "degC"
)

type Temperature struct {
	Celsius    float64
	Fahrenheit float64
}

func NewTemperatureFromFahrenheit(fahrenheit float64) Temperature {
	return Temperature{
		Celsius:    FahrenheitToCelsius(fahrenheit),
		Fahrenheit: fahrenheit,
	}
}

func NewTemperatureFromCelsius(celsius float64) Temperature {
	return Temperature{
		Celsius:    celsius,
		Fahrenheit: CelsiusToFahrenheit(celsius),
	}
}

// NewTemperature normalizes a tagged reading. Anything not tagged degC is
// treated as Fahrenheit.
func NewTemperature(m Measurement) Temperature {
	if m.IsUnit(unitCelsius) {
		return NewTemperatureFromCelsius(m.Value)
	}
	return NewTemperatureFromFahrenheit(m.Value)
}

// In returns the temperature in the unit system's display unit
func (t Temperature) In(units UnitSystem) float64 {
	if units == Imperial {
		return t.Fahrenheit
	}
	return t.Celsius
}

func FahrenheitToCelsius(fahrenheit float64) float64 {
	return (fahrenheit - 32) * 5 / 9
}

func CelsiusToFahrenheit(celsius float64) float64 {
	return celsius*9/5 + 32
}
