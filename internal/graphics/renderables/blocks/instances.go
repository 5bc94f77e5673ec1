package blocks

import "zeecraft/internal/world"

// instanceStride is offset (3) plus color (3).
const instanceStride = 6

// neighbours are the six face-adjacent offsets.
var neighbours = [6]world.Cell{
	{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
}

// BuildInstances appends one instance per visible solid cell to dst and
// returns it. A cell is hidden when all six neighbours are solid cells of the
// grid; cells outside the grid count as empty.
func BuildInstances(g *world.Grid, dst []float32) []float32 {
	dst = dst[:0]
	g.Each(func(x, y, z int, b world.BlockID) {
		if b.IsEmpty() || enclosed(g, x, y, z) {
			return
		}
		c := b.Color()
		dst = append(dst, float32(x), float32(y), float32(z), c[0], c[1], c[2])
	})
	return dst
}

func enclosed(g *world.Grid, x, y, z int) bool {
	for _, n := range neighbours {
		nx, ny, nz := x+n.X, y+n.Y, z+n.Z
		if !world.InBounds(nx, ny, nz) || g.IsEmpty(nx, ny, nz) {
			return false
		}
	}
	return true
}
