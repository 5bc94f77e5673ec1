package player

import (
	"zeecraft/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Spawn is where a fresh avatar stands: centre of the box, on the floor.
var Spawn = mgl32.Vec3{8, 2, 8}

// Avatar is the single first-person entity.
type Avatar struct {
	Position mgl32.Vec3

	// Rotation holds pitch and yaw in degrees. The third component is never
	// read by the simulation; it is kept so saves round-trip unchanged.
	Rotation mgl32.Vec3

	Jumping bool
	Moving  bool

	// Selected is the hotbar variant placed by edits. BlockEmpty disables
	// editing.
	Selected world.BlockID

	// ViewDir is the backward axis of the camera, refreshed every tick from
	// the orientation held at the start of that tick.
	ViewDir mgl32.Vec3
}

// New returns an avatar at Spawn with editing enabled for the first
// hotbar variant.
func New() *Avatar {
	a := &Avatar{
		Position: Spawn,
		Selected: world.BlockStone,
	}
	a.RefreshViewDir()
	return a
}

func (a *Avatar) Pitch() float32 { return a.Rotation[0] }
func (a *Avatar) Yaw() float32   { return a.Rotation[1] }

// EditEnabled reports whether a hotbar variant is selected.
func (a *Avatar) EditEnabled() bool {
	return a.Selected != world.BlockEmpty
}

// Speed converts a frame delta in milliseconds to the movement scale.
func Speed(dtMs float64) float32 {
	return float32(dtMs * 0.05)
}
