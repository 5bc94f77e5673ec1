package player

import (
	"zeecraft/internal/input"
	"zeecraft/internal/profiling"
	"zeecraft/internal/world"
)

// JumpBoost is the instantaneous vertical lift of a jump.
const JumpBoost = 2.0

// Outcome says which branch of the per-tick decision list fired.
type Outcome int

const (
	// OutcomeAdvance means none of the short-circuit branches fired and the
	// tick continues with targeting, ground contact and movement.
	OutcomeAdvance Outcome = iota
	OutcomeQuit
	OutcomeSelect
	OutcomeJump
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdvance:
		return "advance"
	case OutcomeQuit:
		return "quit"
	case OutcomeSelect:
		return "select"
	case OutcomeJump:
		return "jump"
	default:
		return "unknown"
	}
}

// hotbar lists the selection keys in the order they are checked.
var hotbar = [...]struct {
	key   input.Key
	block world.BlockID
}{
	{input.Key1, world.BlockStone},
	{input.Key2, world.BlockCobble},
	{input.Key3, world.BlockBrick},
	{input.Key4, world.BlockPlank},
	{input.Key5, world.BlockSand},
	{input.Key6, world.BlockGlass},
	{input.Key7, world.BlockLog},
	{input.Key0, world.BlockEmpty},
}

// Begin evaluates the head of the tick in priority order: quit, hotbar,
// jump, then orientation. Anything but OutcomeAdvance ends the tick; a held
// hotbar key therefore freezes movement and look for as long as it is down.
func (a *Avatar) Begin(in input.Snapshot, dtMs float64) Outcome {
	defer profiling.Track("player.Begin")()

	if in.Down(input.KeyEscape) {
		return OutcomeQuit
	}

	for _, h := range hotbar {
		if in.Down(h.key) {
			a.Selected = h.block
			return OutcomeSelect
		}
	}

	if in.Down(input.KeySpace) && !a.Jumping {
		a.Position[1] += JumpBoost
		a.Jumping = true
		return OutcomeJump
	}

	// The view direction is taken before this tick's look deltas apply.
	a.RefreshViewDir()

	dx := float64(in.DX)
	if in.Down(input.KeyQ) {
		dx = -TurnRate
	} else if in.Down(input.KeyE) {
		dx = TurnRate
	}
	a.Look(dx, float64(in.DY), Speed(dtMs))

	return OutcomeAdvance
}
