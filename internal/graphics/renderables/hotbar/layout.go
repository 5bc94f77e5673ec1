package hotbar

import (
	"zeecraft/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	slotSize  = 44
	slotGap   = 6
	border    = 4
	bottomPad = 12
)

// Rect is a screen-space rectangle in pixels, origin at the top left.
type Rect struct {
	X, Y, W, H float32
}

// NDC converts r to normalized device coordinates as (x0, y0, x1, y1).
func (r Rect) NDC(width, height int) mgl32.Vec4 {
	w, h := float32(width), float32(height)
	return mgl32.Vec4{
		r.X/w*2 - 1,
		1 - (r.Y+r.H)/h*2,
		(r.X+r.W)/w*2 - 1,
		1 - r.Y/h*2,
	}
}

// Slot is one hotbar cell.
type Slot struct {
	Block    world.BlockID
	Rect     Rect
	Selected bool
}

// Layout places one slot per placeable variant, centred along the bottom
// edge of a width×height viewport.
func Layout(width, height int, selected world.BlockID) []Slot {
	total := float32(world.PlaceableCount*slotSize + (world.PlaceableCount-1)*slotGap)
	x := (float32(width) - total) / 2
	y := float32(height) - slotSize - bottomPad

	slots := make([]Slot, world.PlaceableCount)
	for i := range slots {
		b := world.BlockID(i)
		slots[i] = Slot{
			Block:    b,
			Rect:     Rect{X: x + float32(i*(slotSize+slotGap)), Y: y, W: slotSize, H: slotSize},
			Selected: b == selected,
		}
	}
	return slots
}

// Outer grows r by the selection border.
func (r Rect) Outer() Rect {
	return Rect{X: r.X - border, Y: r.Y - border, W: r.W + 2*border, H: r.H + 2*border}
}
