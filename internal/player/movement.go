package player

import (
	"zeecraft/internal/input"
	"zeecraft/internal/physics"
	"zeecraft/internal/profiling"
	"zeecraft/internal/world"
)

const (
	// FallRate is the per-millisecond drop while unsupported.
	FallRate = 0.005

	// WalkRate scales the view vector for one unit of frame speed.
	WalkRate = 0.2

	// StandHeight is the distance from the supporting cell to the tracked
	// position after landing.
	StandHeight = 2.0
)

// Settle resolves ground contact against the precomputed foot cell. An
// empty foot cell drops the avatar and marks it airborne; a solid one ends
// a fall by snapping onto the cell.
func (a *Avatar) Settle(g *world.Grid, foot world.Cell, dtMs float64) {
	defer profiling.Track("player.Settle")()

	if !physics.Grounded(g, foot) {
		a.Position[1] -= FallRate * float32(dtMs)
		a.Jumping = true
		return
	}
	if a.Jumping {
		a.Position[1] = float32(foot.Y) + StandHeight
		a.Jumping = false
	}
}

// Move proposes a horizontal step from the held direction keys and commits
// it when the destination is enterable. W beats S and A beats D; a strafe
// proposal replaces a forward one rather than adding to it. It reports
// whether the position changed.
func (a *Avatar) Move(g *world.Grid, in input.Snapshot, dtMs float64) bool {
	defer profiling.Track("player.Move")()

	speed := Speed(dtMs)
	vd := a.ViewDir
	next := a.Position

	a.Moving = false

	if in.Down(input.KeyW) {
		next[0] = a.Position[0] + -WalkRate*vd[0]*speed
		next[2] = a.Position[2] + -WalkRate*vd[2]*speed
		a.Moving = true
	} else if in.Down(input.KeyS) {
		next[0] = a.Position[0] + WalkRate*vd[0]*speed
		next[2] = a.Position[2] + WalkRate*vd[2]*speed
		a.Moving = true
	}

	if in.Down(input.KeyA) {
		next[0] = a.Position[0] + -WalkRate*vd[2]*speed
		next[2] = a.Position[2] + WalkRate*vd[0]*speed
		a.Moving = true
	} else if in.Down(input.KeyD) {
		next[0] = a.Position[0] + WalkRate*vd[2]*speed
		next[2] = a.Position[2] + -WalkRate*vd[0]*speed
		a.Moving = true
	}

	if !a.Moving {
		return false
	}
	if !physics.CanMoveTo(g, next) {
		return false
	}

	a.Position[0] = next[0]
	a.Position[2] = next[2]
	return true
}
