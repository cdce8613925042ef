package types

import (
	"fmt"
	"strings"
)

// UnitSystem selects the units values are reported in
type UnitSystem string

const (
	Metric   UnitSystem = "metric"
	Imperial UnitSystem = "imperial"
)

// ParseUnitSystem accepts "metric" or "imperial" in any case
func ParseUnitSystem(value string) (UnitSystem, error) {
	switch UnitSystem(strings.ToLower(strings.TrimSpace(value))) {
	case Metric:
		return Metric, nil
	case Imperial:
		return Imperial, nil
	default:
		return "", fmt.Errorf("unknown unit system %q", value)
	}
}

// QueryValue returns the NWS "units" query parameter for the system
func (u UnitSystem) QueryValue() string {
	if u == Imperial {
		return "us"
	}
	return "si"
}

// Measurement is a raw reading tagged with a WMO unit code such as
// "wmoUnit:degC" or "wmoUnit:km_h-1".
type Measurement struct {
	Value    float64
	UnitCode string
}

func NewMeasurement(value float64, unitCode string) Measurement {
	return Measurement{
		Value:    value,
		UnitCode: unitCode,
	}
}

// IsUnit reports whether the unit code names the given unit, with or without
// the "wmoUnit:" namespace prefix.
func (m Measurement) IsUnit(unit string) bool {
	return strings.HasSuffix(m.UnitCode, unit)
}
