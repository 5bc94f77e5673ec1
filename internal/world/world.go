package world

import "fmt"

// Size is the extent of the grid along every axis.
const Size = 16

// CellCount is the number of cells in the grid.
const CellCount = Size * Size * Size

// Grid is the fixed 16³ block store. Cells are laid out y-major, then x,
// then z, which is also the order they are persisted in.
type Grid struct {
	cells [CellCount]BlockID
}

// New returns a grid with every cell empty.
func New() *Grid {
	g := &Grid{}
	g.Fill(BlockEmpty)
	return g
}

// NewDefault returns the closed starter box.
func NewDefault() *Grid {
	g := &Grid{}
	g.DefaultFill()
	return g
}

func index(x, y, z int) int {
	if !InBounds(x, y, z) {
		panic(fmt.Sprintf("world: cell (%d,%d,%d) outside grid", x, y, z))
	}
	return (y*Size+x)*Size + z
}

// Get returns the block at (x,y,z). Coordinates must already be clamped;
// an out-of-range cell panics.
func (g *Grid) Get(x, y, z int) BlockID {
	return g.cells[index(x, y, z)]
}

// Set writes b at (x,y,z). Same coordinate contract as Get.
func (g *Grid) Set(x, y, z int, b BlockID) {
	g.cells[index(x, y, z)] = b
}

// IsEmpty reports whether the cell at (x,y,z) is air.
func (g *Grid) IsEmpty(x, y, z int) bool {
	return g.Get(x, y, z) == BlockEmpty
}

// GetCell and SetCell are the Cell-typed forms of Get and Set.
func (g *Grid) GetCell(c Cell) BlockID {
	return g.Get(c.X, c.Y, c.Z)
}

func (g *Grid) SetCell(c Cell, b BlockID) {
	g.Set(c.X, c.Y, c.Z, b)
}

// Fill sets every cell to b.
func (g *Grid) Fill(b BlockID) {
	for i := range g.cells {
		g.cells[i] = b
	}
}

// DefaultFill empties the grid and then lines every boundary cell with
// stone, producing a closed box.
func (g *Grid) DefaultFill() {
	g.Fill(BlockEmpty)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			for z := 0; z < Size; z++ {
				if onBoundary(x, y, z) {
					g.Set(x, y, z, BlockStone)
				}
			}
		}
	}
}

func onBoundary(x, y, z int) bool {
	return x == 0 || y == 0 || z == 0 ||
		x == Size-1 || y == Size-1 || z == Size-1
}

// Raw exposes the backing cells in storage order. The persistence codec
// reads and writes through it.
func (g *Grid) Raw() *[CellCount]BlockID {
	return &g.cells
}

// Each calls fn for every cell in storage order (y, then x, then z).
func (g *Grid) Each(fn func(x, y, z int, b BlockID)) {
	i := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			for z := 0; z < Size; z++ {
				fn(x, y, z, g.cells[i])
				i++
			}
		}
	}
}

// Count returns how many cells hold b.
func (g *Grid) Count(b BlockID) int {
	n := 0
	for _, c := range g.cells {
		if c == b {
			n++
		}
	}
	return n
}

// Solid returns the number of non-empty cells.
func (g *Grid) Solid() int {
	return CellCount - g.Count(BlockEmpty)
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := *g
	return &c
}
