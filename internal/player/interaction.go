package player

import (
	"zeecraft/internal/input"
	"zeecraft/internal/world"
)

// EditResult describes what an edit did to the grid.
type EditResult int

const (
	EditNone EditResult = iota
	EditPlaced
	EditRemoved
	// EditBlocked is a place request on an occupied cell.
	EditBlocked
)

func (r EditResult) String() string {
	switch r {
	case EditPlaced:
		return "placed"
	case EditRemoved:
		return "removed"
	case EditBlocked:
		return "blocked"
	default:
		return "none"
	}
}

// ApplyEdit places or removes the block at target. Right button places
// selected into an empty cell and is checked first, so it wins when both
// buttons are down. Left button empties the cell unconditionally, boundary
// walls included.
func ApplyEdit(g *world.Grid, target world.Cell, buttons input.Button, selected world.BlockID) EditResult {
	if selected == world.BlockEmpty || !target.In() {
		return EditNone
	}

	switch {
	case buttons.Has(input.ButtonRight):
		if !selected.Placeable() {
			return EditNone
		}
		if !g.IsEmpty(target.X, target.Y, target.Z) {
			return EditBlocked
		}
		g.SetCell(target, selected)
		return EditPlaced
	case buttons.Has(input.ButtonLeft):
		g.SetCell(target, world.BlockEmpty)
		return EditRemoved
	}
	return EditNone
}
