package geoutil

import (
	"math"

	"github.com/paulmach/orb"
)

const EarthRadiusKm = 6371.0

// Haversine returns the great-circle distance in kilometres between two
// WGS84 points. Points follow the orb convention: (lng, lat).
func Haversine(a, b orb.Point) float64 {
	phi1 := a.Lat() * math.Pi / 180
	phi2 := b.Lat() * math.Pi / 180
	dPhi := (b.Lat() - a.Lat()) * math.Pi / 180
	dLambda := (b.Lon() - a.Lon()) * math.Pi / 180

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

// Normalize min-max scales values into [0,1]. A degenerate distribution
// (all values equal within tolerance) maps to 0.5 everywhere so downstream
// weighting neither rewards nor punishes it.
func Normalize(values []float64) []float64 {
	if len(values) == 0 {
		return []float64{}
	}
	vmin, vmax := values[0], values[0]
	for _, v := range values[1:] {
		if v < vmin {
			vmin = v
		}
		if v > vmax {
			vmax = v
		}
	}
	out := make([]float64, len(values))
	if math.Abs(vmax-vmin) < 1e-9 {
		for i := range out {
			out[i] = 0.5
		}
		return out
	}
	for i, v := range values {
		out[i] = (v - vmin) / (vmax - vmin)
	}
	return out
}

// SpeedForHour returns a km/h heuristic for Mumbai road traffic.
func SpeedForHour(hour int) float64 {
	switch {
	case hour >= 7 && hour < 10:
		return 22
	case hour >= 10 && hour < 16:
		return 28
	case hour >= 16 && hour < 20:
		return 18
	default:
		return 30
	}
}

// DurationMinutes estimates driving minutes for a distance at the given
// hour of day, with a 5 km/h floor on the speed model.
func DurationMinutes(distanceKm float64, hour int) float64 {
	speed := SpeedForHour(hour)
	if speed < 5 {
		speed = 5
	}
	return distanceKm / speed * 60
}
