package world

import "math"

// Cell is an integer grid coordinate.
type Cell struct {
	X, Y, Z int
}

// InBounds reports whether (x,y,z) addresses a cell of the grid.
func InBounds(x, y, z int) bool {
	return x >= 0 && x < Size &&
		y >= 0 && y < Size &&
		z >= 0 && z < Size
}

// In reports whether c lies inside the grid.
func (c Cell) In() bool {
	return InBounds(c.X, c.Y, c.Z)
}

// ClampAxis clamps v into [lo, Size-1].
func ClampAxis(v, lo int) int {
	if v < lo {
		return lo
	}
	if v > Size-1 {
		return Size - 1
	}
	return v
}

// Clamp forces c into the grid on every axis.
func Clamp(c Cell) Cell {
	return Cell{ClampAxis(c.X, 0), ClampAxis(c.Y, 0), ClampAxis(c.Z, 0)}
}

// Round converts a world coordinate to the nearest cell index, rounding
// halves away from zero. Values beyond the int range saturate.
func Round(v float64) int {
	r := math.Round(v)
	switch {
	case math.IsNaN(r):
		return 0
	case r > math.MaxInt32:
		return math.MaxInt32
	case r < math.MinInt32:
		return math.MinInt32
	}
	return int(r)
}
