package musou

import (
	"math"

	"github.com/vovakirdan/musou/internal/core"
)

// Dir is one of the eight facing directions. Each component is -1, 0 or +1
// with screen y growing downwards; the zero Dir means "no movement".
type Dir struct {
	DX, DY int
}

// DirRight is the initial facing of the player.
var DirRight = Dir{DX: 1, DY: 0}

// IsZero reports whether d carries no direction.
func (d Dir) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// Valid reports whether d is one of the eight facing directions.
func (d Dir) Valid() bool {
	inRange := func(v int) bool { return v >= -1 && v <= 1 }
	return inRange(d.DX) && inRange(d.DY) && !d.IsZero()
}

// Angle returns the counter-clockwise angle of d in degrees, 0 = right.
func (d Dir) Angle() float64 {
	return math.Atan2(float64(-d.DY), float64(d.DX)) * 180 / math.Pi
}

// heading converts an angle in degrees into a unit vector in screen space.
func heading(angle float64) core.Vec {
	rad := angle * math.Pi / 180
	return core.Vec{X: math.Cos(rad), Y: -math.Sin(rad)}
}

// rotatedExtent returns the axis-aligned size of a w×h rectangle rotated by
// angle degrees.
func rotatedExtent(w, h, angle float64) (float64, float64) {
	rad := angle * math.Pi / 180
	c, s := math.Abs(math.Cos(rad)), math.Abs(math.Sin(rad))
	return w*c + h*s, w*s + h*c
}
