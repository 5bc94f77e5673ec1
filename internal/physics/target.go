package physics

import (
	"zeecraft/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// TargetReach scales the halved, negated view vector that offsets the
	// target from the eye.
	TargetReach = 4.0

	// FootOffset is how far below the tracked position the feet are.
	FootOffset = 2
)

// targetFloor is the lowest y a target may take per axis; the floor plane
// can never be edited.
var targetFloor = [3]int{0, 1, 0}

// ResolveTarget picks the cell the avatar would edit. It is not a ray cast:
// each axis is offset, rounded and clamped independently, so the target may
// lie behind solid blocks.
func ResolveTarget(pos, viewDir mgl32.Vec3) world.Cell {
	var c [3]int
	for a := 0; a < 3; a++ {
		v := float64(pos[a]) + TargetReach*-(float64(viewDir[a])/2.0)
		c[a] = world.ClampAxis(world.Round(v), targetFloor[a])
	}
	return world.Cell{X: c[0], Y: c[1], Z: c[2]}
}

// FootCell returns the clamped cell directly under the avatar's feet.
func FootCell(pos mgl32.Vec3) world.Cell {
	return world.Clamp(world.Cell{
		X: world.Round(float64(pos[0])),
		Y: world.Round(float64(pos[1])) - FootOffset,
		Z: world.Round(float64(pos[2])),
	})
}
