package blocks

import (
	"testing"

	"zeecraft/internal/world"
)

func TestBuildInstancesDefaultBox(t *testing.T) {
	g := world.NewDefault()
	got := BuildInstances(g, nil)

	// Every boundary cell touches the outside, so none is culled.
	want := world.CellCount - 14*14*14
	if n := len(got) / instanceStride; n != want {
		t.Fatalf("instances = %d, want %d", n, want)
	}

	stone := world.BlockStone.Color()
	for i := 0; i < len(got); i += instanceStride {
		if got[i+3] != stone[0] || got[i+4] != stone[1] || got[i+5] != stone[2] {
			t.Fatalf("instance %d color = %v", i/instanceStride, got[i+3:i+6])
		}
	}
}

func TestBuildInstancesCullsEnclosed(t *testing.T) {
	g := world.New()
	for y := 4; y <= 6; y++ {
		for x := 4; x <= 6; x++ {
			for z := 4; z <= 6; z++ {
				g.Set(x, y, z, world.BlockBrick)
			}
		}
	}

	got := BuildInstances(g, nil)
	if n := len(got) / instanceStride; n != 26 {
		t.Fatalf("instances = %d, want 26", n)
	}
	for i := 0; i < len(got); i += instanceStride {
		if got[i] == 5 && got[i+1] == 5 && got[i+2] == 5 {
			t.Fatal("centre cell was not culled")
		}
	}
}

func TestBuildInstancesReusesBuffer(t *testing.T) {
	g := world.New()
	g.Set(1, 2, 3, world.BlockSand)

	buf := make([]float32, 0, 64)
	got := BuildInstances(g, buf)
	if len(got) != instanceStride || &got[:1][0] != &buf[:1][0] {
		t.Fatalf("got %v", got)
	}
	if got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("offset = %v", got[:3])
	}

	g.Set(1, 2, 3, world.BlockEmpty)
	if got = BuildInstances(g, got); len(got) != 0 {
		t.Errorf("empty grid produced %d floats", len(got))
	}
}
