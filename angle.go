package wad

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Radians converts the thing's facing angle.
func (t Thing) Radians() float64 {
	return degreesToRadians(t.Angle)
}

// Radians converts the seg's binary angle.
func (s Seg) Radians() float64 {
	return bamToRadians(s.Angle)
}

// degreesToRadians
func degreesToRadians[T constraints.Integer | constraints.Float](n T) float64 {
	return float64(n) * (math.Pi / 180)
}

const halfScale = 1 << 15

// bamToRadians converts a binary angle measurement, where a full circle is 1<<16.
func bamToRadians[T constraints.Unsigned](n T) float64 {
	return float64(n) * math.Pi / halfScale
}
