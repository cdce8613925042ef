package weather

import (
	"errors"
	"math"
)

var ErrEmptyWindow = errors.New("no forecast samples to aggregate")

// windAccumulator sums wind as north/east vectors. Only samples with a
// resolvable direction are counted.
type windAccumulator struct {
	north, east       float64
	northKmh, eastKmh float64
	count             int
}

func (w *windAccumulator) add(speed, speedKmh float64, degrees *float64) {
	if degrees == nil {
		return
	}
	sin, cos := math.Sincos(*degrees * math.Pi / 180)
	w.north += speed * cos
	w.east += speed * sin
	w.northKmh += speedKmh * cos
	w.eastKmh += speedKmh * sin
	w.count++
}

// mean returns the vector mean speed in both units and the mean direction
// normalized to [0, 360). With no directed samples everything is zero and the
// direction is nil.
func (w *windAccumulator) mean() (speed, speedKmh float64, degrees *float64) {
	if w.count == 0 {
		return 0, 0, nil
	}
	n := float64(w.count)
	direction := math.Atan2(w.east, w.north) * 180 / math.Pi
	direction = math.Mod(direction+360, 360)
	return math.Hypot(w.east, w.north) / n, math.Hypot(w.eastKmh, w.northKmh) / n, &direction
}

// CombineForecasts reduces the window into average, minimum and maximum
// records. The wind of each extreme keeps the direction of the sample that
// produced it.
func CombineForecasts(data []ForecastAggregate, fin WeatherMoment) (*Forecast, error) {
	if len(data) == 0 {
		return nil, ErrEmptyWindow
	}

	var (
		temp     float64
		apparent float64
		humidity float64
		wind     windAccumulator
	)
	maximum := data[0]
	minimum := data[0]

	for _, val := range data {
		// Summations for averaging
		temp += val.Temp
		apparent += val.Apparent
		humidity += val.Humidity
		wind.add(val.Wind, val.WindKmh, val.WindDirection)

		maximum.Temp = math.Max(maximum.Temp, val.Temp)
		maximum.Apparent = math.Max(maximum.Apparent, val.Apparent)
		maximum.Humidity = math.Max(maximum.Humidity, val.Humidity)
		if val.Wind > maximum.Wind {
			maximum.Wind = val.Wind
			maximum.WindKmh = val.WindKmh
			maximum.WindDirection = val.WindDirection
		}

		minimum.Temp = math.Min(minimum.Temp, val.Temp)
		minimum.Apparent = math.Min(minimum.Apparent, val.Apparent)
		minimum.Humidity = math.Min(minimum.Humidity, val.Humidity)
		if val.Wind < minimum.Wind {
			minimum.Wind = val.Wind
			minimum.WindKmh = val.WindKmh
			minimum.WindDirection = val.WindDirection
		}
	}

	count := float64(len(data))
	avgWind, avgWindKmh, avgDirection := wind.mean()

	avg := ForecastAggregate{
		Temp:          temp / count,
		Apparent:      apparent / count,
		Humidity:      humidity / count,
		Wind:          avgWind,
		WindKmh:       avgWindKmh,
		WindDirection: avgDirection,
	}

	return &Forecast{
		Avg: avg,
		Min: minimum,
		Max: maximum,
		Fin: fin,
	}, nil
}
