package player

import (
	"testing"

	"zeecraft/internal/input"
	"zeecraft/internal/physics"
	"zeecraft/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const frameMs = 20 // Speed(20) == 1

// vecNear compares with an absolute tolerance. mgl32's ApproxEqual switches
// to eps² when either side is zero, which float32 trig noise never meets.
func vecNear(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < 1e-5
}

func TestNewAvatar(t *testing.T) {
	a := New()
	if a.Position != Spawn {
		t.Errorf("Position = %v, want %v", a.Position, Spawn)
	}
	if a.Selected != world.BlockStone || !a.EditEnabled() {
		t.Errorf("Selected = %v, want stone with editing on", a.Selected)
	}
	if a.Jumping || a.Moving {
		t.Error("fresh avatar should be idle")
	}
}

func TestBeginHotbar(t *testing.T) {
	tests := []struct {
		key  input.Key
		want world.BlockID
	}{
		{input.Key1, world.BlockStone},
		{input.Key4, world.BlockPlank},
		{input.Key7, world.BlockLog},
		{input.Key0, world.BlockEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			a := New()
			a.Selected = world.BlockSand
			before := *a

			in := input.Snapshot{DX: 40, DY: 40}.With(tt.key, input.KeyW, input.KeySpace)
			if got := a.Begin(in, frameMs); got != OutcomeSelect {
				t.Fatalf("Begin = %v, want select", got)
			}
			if a.Selected != tt.want {
				t.Errorf("Selected = %v, want %v", a.Selected, tt.want)
			}
			if a.Position != before.Position || a.Rotation != before.Rotation || a.Jumping {
				t.Error("hotbar tick must not touch pose or jump state")
			}
		})
	}
}

func TestBeginPriority(t *testing.T) {
	a := New()
	if got := a.Begin(input.Snapshot{}.With(input.KeyEscape, input.Key3), frameMs); got != OutcomeQuit {
		t.Fatalf("Begin = %v, want quit", got)
	}
	if a.Selected != world.BlockStone {
		t.Error("quit tick changed the selection")
	}

	// Lower digits are checked first; 0 comes last.
	if got := a.Begin(input.Snapshot{}.With(input.Key0, input.Key2), frameMs); got != OutcomeSelect {
		t.Fatalf("Begin = %v, want select", got)
	}
	if a.Selected != world.BlockCobble {
		t.Errorf("Selected = %v, want cobble", a.Selected)
	}
}

func TestBeginJump(t *testing.T) {
	a := New()
	space := input.Snapshot{}.With(input.KeySpace)

	if got := a.Begin(space, frameMs); got != OutcomeJump {
		t.Fatalf("first Begin = %v, want jump", got)
	}
	if a.Position[1] != Spawn[1]+JumpBoost || !a.Jumping {
		t.Fatalf("after jump y=%v jumping=%v", a.Position[1], a.Jumping)
	}

	if got := a.Begin(space, frameMs); got != OutcomeAdvance {
		t.Errorf("jump while airborne = %v, want advance", got)
	}
	if a.Position[1] != Spawn[1]+JumpBoost {
		t.Error("second jump added height")
	}
}

func TestBeginOrientation(t *testing.T) {
	tests := []struct {
		name      string
		start     mgl32.Vec3
		in        input.Snapshot
		wantPitch float32
		wantYaw   float32
	}{
		{"mouse look", mgl32.Vec3{}, input.Snapshot{DX: 10, DY: -4}, -2, 5},
		{"yaw wraps past 360", mgl32.Vec3{0, 359, 0}, input.Snapshot{}.With(input.KeyE), 0, 1.5},
		{"yaw wraps below 0", mgl32.Vec3{}, input.Snapshot{}.With(input.KeyQ), 0, 357.5},
		{"Q overrides mouse", mgl32.Vec3{}, input.Snapshot{DX: 100}.With(input.KeyQ), 0, 357.5},
		{"Q beats E", mgl32.Vec3{}, input.Snapshot{}.With(input.KeyQ, input.KeyE), 0, 357.5},
		{"pitch clamps high", mgl32.Vec3{80, 0, 0}, input.Snapshot{DY: 1000}, 90, 0},
		{"pitch clamps low", mgl32.Vec3{-80, 0, 0}, input.Snapshot{DY: -1000}, -90, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New()
			a.Rotation = tt.start
			if got := a.Begin(tt.in, frameMs); got != OutcomeAdvance {
				t.Fatalf("Begin = %v, want advance", got)
			}
			if !mgl32.FloatEqualThreshold(a.Pitch(), tt.wantPitch, 1e-4) {
				t.Errorf("pitch = %v, want %v", a.Pitch(), tt.wantPitch)
			}
			if !mgl32.FloatEqualThreshold(a.Yaw(), tt.wantYaw, 1e-4) {
				t.Errorf("yaw = %v, want %v", a.Yaw(), tt.wantYaw)
			}
		})
	}
}

func TestViewDirUsesPreLookOrientation(t *testing.T) {
	a := New()
	a.Begin(input.Snapshot{DX: 180}, frameMs) // yaw 0 -> 90

	if !vecNear(a.ViewDir, mgl32.Vec3{0, 0, 1}) {
		t.Errorf("ViewDir = %v, want the yaw-0 vector", a.ViewDir)
	}
	if !mgl32.FloatEqualThreshold(a.Yaw(), 90, 1e-4) {
		t.Fatalf("yaw = %v, want 90", a.Yaw())
	}

	a.Begin(input.Snapshot{}, frameMs)
	if !vecNear(a.ViewDir, mgl32.Vec3{-1, 0, 0}) {
		t.Errorf("ViewDir = %v, want yaw-90 vector", a.ViewDir)
	}
}

func TestViewDirection(t *testing.T) {
	tests := []struct {
		pitch, yaw float32
		want       mgl32.Vec3
	}{
		{0, 0, mgl32.Vec3{0, 0, 1}},
		{0, 90, mgl32.Vec3{-1, 0, 0}},
		{0, 180, mgl32.Vec3{0, 0, -1}},
		{90, 0, mgl32.Vec3{0, 1, 0}},
	}
	for _, tt := range tests {
		if got := ViewDirection(tt.pitch, tt.yaw); !vecNear(got, tt.want) {
			t.Errorf("ViewDirection(%v, %v) = %v, want %v", tt.pitch, tt.yaw, got, tt.want)
		}
	}
}

func TestVecNearToleratesTrigNoise(t *testing.T) {
	got := ViewDirection(0, 90) // z carries cos(90°) noise in float32
	if !vecNear(got, mgl32.Vec3{-1, 0, 0}) {
		t.Errorf("vecNear rejected %v", got)
	}
	if vecNear(got, mgl32.Vec3{-1, 0, 1e-3}) {
		t.Error("vecNear accepted a real difference")
	}
}

func TestWrapYaw(t *testing.T) {
	tests := []struct{ in, want float32 }{
		{0, 0},
		{360, 0},
		{725, 5},
		{-90, 270},
		{-1e-9, 0},
	}
	for _, tt := range tests {
		got := WrapYaw(tt.in)
		if got < 0 || got >= 360 {
			t.Errorf("WrapYaw(%v) = %v outside [0,360)", tt.in, got)
		}
		if !mgl32.FloatEqualThreshold(got, tt.want, 1e-4) {
			t.Errorf("WrapYaw(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSettleFallsAndLands(t *testing.T) {
	g := world.NewDefault()
	a := New()
	a.Position = mgl32.Vec3{8, 6.3, 8}

	ticks := 0
	for ; ticks < 10000; ticks++ {
		a.Settle(g, physics.FootCell(a.Position), 16)
		if !a.Jumping && ticks > 0 {
			break
		}
	}
	if a.Jumping {
		t.Fatal("avatar never landed")
	}
	if a.Position[1] != 2.0 {
		t.Errorf("landed at y=%v, want exactly 2", a.Position[1])
	}

	// Standing still stays put.
	for i := 0; i < 10; i++ {
		a.Settle(g, physics.FootCell(a.Position), 16)
	}
	if a.Position[1] != 2.0 || a.Jumping {
		t.Errorf("resting avatar drifted to y=%v jumping=%v", a.Position[1], a.Jumping)
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name string
		keys []input.Key
		want mgl32.Vec3
	}{
		{"forward", []input.Key{input.KeyW}, mgl32.Vec3{8, 2, 7.8}},
		{"back", []input.Key{input.KeyS}, mgl32.Vec3{8, 2, 8.2}},
		{"left", []input.Key{input.KeyA}, mgl32.Vec3{7.8, 2, 8}},
		{"right", []input.Key{input.KeyD}, mgl32.Vec3{8.2, 2, 8}},
		{"W beats S", []input.Key{input.KeyW, input.KeyS}, mgl32.Vec3{8, 2, 7.8}},
		{"strafe replaces forward", []input.Key{input.KeyW, input.KeyA}, mgl32.Vec3{7.8, 2, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := world.NewDefault()
			a := New()
			if !a.Move(g, input.Snapshot{}.With(tt.keys...), frameMs) {
				t.Fatal("Move reported no change")
			}
			if !a.Moving {
				t.Error("Moving not set")
			}
			if !vecNear(a.Position, tt.want) {
				t.Errorf("Position = %v, want %v", a.Position, tt.want)
			}
		})
	}
}

func TestMoveIdle(t *testing.T) {
	a := New()
	a.Moving = true
	if a.Move(world.NewDefault(), input.Snapshot{}, frameMs) {
		t.Error("Move without keys changed position")
	}
	if a.Moving || a.Position != Spawn {
		t.Error("idle tick should clear Moving and keep position")
	}
}

func TestMoveRejectedAsAWhole(t *testing.T) {
	g := world.NewDefault()
	g.Set(7, 1, 7, world.BlockBrick)
	g.Set(7, 2, 7, world.BlockBrick)

	a := New()
	a.Position = mgl32.Vec3{6.4, 2, 7.6}
	a.Rotation[1] = 45
	a.RefreshViewDir()

	// Forward at yaw 45 steps +x and -z into the walled column at (7,7).
	if a.Move(g, input.Snapshot{}.With(input.KeyW), frameMs) {
		t.Fatal("move into a two-high wall was accepted")
	}
	if a.Position != (mgl32.Vec3{6.4, 2, 7.6}) {
		t.Errorf("Position changed to %v", a.Position)
	}
	if !a.Moving {
		t.Error("Moving should be set even when the move is rejected")
	}
}

func TestMoveOntoStepKeepsHeight(t *testing.T) {
	g := world.NewDefault()
	g.Set(8, 1, 7, world.BlockBrick) // knee-high
	g.Set(9, 2, 8, world.BlockBrick) // head-high, nothing below

	a := New()
	if !a.Move(g, input.Snapshot{}.With(input.KeyW), 100) {
		t.Fatal("step onto knee-high block rejected")
	}
	if a.Position[1] != Spawn[1] || !vecNear(a.Position, mgl32.Vec3{8, 2, 7}) {
		t.Errorf("Position = %v, want (8, 2, 7) with no lift", a.Position)
	}

	a = New()
	if !a.Move(g, input.Snapshot{}.With(input.KeyD), 100) {
		t.Fatal("move under head-high block rejected")
	}
	if !vecNear(a.Position, mgl32.Vec3{9, 2, 8}) {
		t.Errorf("Position = %v, want (9, 2, 8)", a.Position)
	}
}

func TestApplyEdit(t *testing.T) {
	target := world.Cell{X: 8, Y: 3, Z: 6}

	t.Run("place then remove", func(t *testing.T) {
		g := world.NewDefault()
		if r := ApplyEdit(g, target, input.ButtonRight, world.BlockBrick); r != EditPlaced {
			t.Fatalf("place = %v", r)
		}
		if g.GetCell(target) != world.BlockBrick {
			t.Fatal("block not placed")
		}
		if r := ApplyEdit(g, target, input.ButtonLeft, world.BlockBrick); r != EditRemoved {
			t.Fatalf("remove = %v", r)
		}
		if !g.IsEmpty(target.X, target.Y, target.Z) {
			t.Error("cell not emptied")
		}
	})

	t.Run("place on occupied is a no-op", func(t *testing.T) {
		g := world.NewDefault()
		g.SetCell(target, world.BlockSand)
		before := g.Clone()
		if r := ApplyEdit(g, target, input.ButtonRight, world.BlockBrick); r != EditBlocked {
			t.Fatalf("place = %v, want blocked", r)
		}
		if *g != *before {
			t.Error("grid changed")
		}
	})

	t.Run("right wins over left", func(t *testing.T) {
		g := world.NewDefault()
		g.SetCell(target, world.BlockSand)
		if r := ApplyEdit(g, target, input.ButtonLeft|input.ButtonRight, world.BlockBrick); r != EditBlocked {
			t.Fatalf("both buttons = %v, want blocked", r)
		}
		if g.GetCell(target) != world.BlockSand {
			t.Error("both buttons removed the block")
		}
	})

	t.Run("boundary can be breached", func(t *testing.T) {
		g := world.NewDefault()
		wall := world.Cell{X: 0, Y: 4, Z: 4}
		if r := ApplyEdit(g, wall, input.ButtonLeft, world.BlockStone); r != EditRemoved {
			t.Fatalf("remove = %v", r)
		}
		if !g.IsEmpty(0, 4, 4) {
			t.Error("wall cell still solid")
		}
	})

	t.Run("editing disabled", func(t *testing.T) {
		g := world.NewDefault()
		if r := ApplyEdit(g, target, input.ButtonRight, world.BlockEmpty); r != EditNone {
			t.Errorf("disabled edit = %v", r)
		}
		if r := ApplyEdit(g, world.Cell{X: 8, Y: 0, Z: 8}, input.ButtonLeft, world.BlockEmpty); r != EditNone || g.IsEmpty(8, 0, 8) {
			t.Errorf("disabled removal = %v", r)
		}
	})

	t.Run("outline is never placed", func(t *testing.T) {
		g := world.NewDefault()
		if r := ApplyEdit(g, target, input.ButtonRight, world.BlockOutline); r != EditNone {
			t.Errorf("outline place = %v", r)
		}
	})
}
