package physics

import (
	"zeecraft/internal/profiling"
	"zeecraft/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Grounded reports whether the cell under the feet is solid. The caller
// supplies the foot cell so it can be computed before edits are applied.
func Grounded(g *world.Grid, foot world.Cell) bool {
	return !g.IsEmpty(foot.X, foot.Y, foot.Z)
}

// CanMoveTo reports whether a proposed position is enterable horizontally.
// The probe cell sits one below the tracked position. A solid probe gets a
// single step-up retry one cell higher; both axes are accepted or rejected
// together.
func CanMoveTo(g *world.Grid, pos mgl32.Vec3) bool {
	defer profiling.Track("physics.CanMoveTo")()

	probe := world.Cell{
		X: world.Round(float64(pos[0])),
		Y: world.Round(float64(pos[1])) - 1,
		Z: world.Round(float64(pos[2])),
	}
	if !probe.In() {
		return false
	}
	if g.IsEmpty(probe.X, probe.Y, probe.Z) {
		return true
	}

	probe.Y = world.ClampAxis(probe.Y+1, 0)
	return g.IsEmpty(probe.X, probe.Y, probe.Z)
}
