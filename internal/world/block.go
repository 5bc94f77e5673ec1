package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// BlockID identifies the material stored in a grid cell.
type BlockID int32

const (
	BlockEmpty BlockID = -1

	BlockStone BlockID = iota - 1
	BlockCobble
	BlockBrick
	BlockPlank
	BlockSand
	BlockGlass
	BlockLog

	// BlockOutline is the selection marker visual. It never appears in the grid.
	BlockOutline
)

// PlaceableCount is the number of variants the hotbar can select.
const PlaceableCount = 7

// VariantCount includes the outline visual.
const VariantCount = PlaceableCount + 1

type variant struct {
	name  string
	color mgl32.Vec3
}

var variants = [VariantCount]variant{
	BlockStone:   {"stone", mgl32.Vec3{0.55, 0.55, 0.55}},
	BlockCobble:  {"cobble", mgl32.Vec3{0.42, 0.42, 0.45}},
	BlockBrick:   {"brick", mgl32.Vec3{0.63, 0.28, 0.22}},
	BlockPlank:   {"plank", mgl32.Vec3{0.72, 0.56, 0.33}},
	BlockSand:    {"sand", mgl32.Vec3{0.86, 0.81, 0.58}},
	BlockGlass:   {"glass", mgl32.Vec3{0.70, 0.86, 0.92}},
	BlockLog:     {"log", mgl32.Vec3{0.40, 0.30, 0.18}},
	BlockOutline: {"outline", mgl32.Vec3{0.05, 0.05, 0.05}},
}

// IsEmpty reports whether b is air.
func (b BlockID) IsEmpty() bool {
	return b == BlockEmpty
}

// Placeable reports whether b may be written into the grid by an edit.
func (b BlockID) Placeable() bool {
	return b >= BlockStone && b < BlockOutline
}

// Valid reports whether b is a value the grid may hold.
func (b BlockID) Valid() bool {
	return b == BlockEmpty || b.Placeable()
}

func (b BlockID) String() string {
	if b == BlockEmpty {
		return "empty"
	}
	if b >= 0 && int(b) < VariantCount {
		return variants[b].name
	}
	return fmt.Sprintf("block(%d)", int32(b))
}

// Color returns the flat shading color for a visual variant. Unknown ids
// (possible in a loaded save) fall back to magenta.
func (b BlockID) Color() mgl32.Vec3 {
	if b >= 0 && int(b) < VariantCount {
		return variants[b].color
	}
	return mgl32.Vec3{1, 0, 1}
}
