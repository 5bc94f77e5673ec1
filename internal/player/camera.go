package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MaxPitch = 90.0

	// TurnRate replaces the mouse yaw delta while Q or E is held.
	TurnRate = 5.0

	// LookScale multiplies mouse deltas before the frame speed is applied.
	LookScale = 0.5
)

// Orientation returns the camera rotation Rx(pitch)·Ry(yaw).
func Orientation(pitch, yaw float32) mgl32.Mat4 {
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(pitch))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(yaw))
	return rx.Mul4(ry)
}

// ViewDirection returns the third row of the camera rotation, i.e. the
// world-space direction the camera's +Z axis points. Forward motion is the
// negation of this vector.
func ViewDirection(pitch, yaw float32) mgl32.Vec3 {
	m := Orientation(pitch, yaw)
	return mgl32.Vec3{m.At(2, 0), m.At(2, 1), m.At(2, 2)}
}

// RefreshViewDir recomputes ViewDir from the current rotation.
func (a *Avatar) RefreshViewDir() {
	a.ViewDir = ViewDirection(a.Pitch(), a.Yaw())
}

// Look applies pitch and yaw deltas scaled by the frame speed, then clamps
// pitch and wraps yaw.
func (a *Avatar) Look(dx, dy float64, speed float32) {
	pitch := float64(a.Rotation[0]) + dy*LookScale*float64(speed)
	yaw := float64(a.Rotation[1]) + dx*LookScale*float64(speed)

	a.Rotation[0] = ClampPitch(float32(pitch))
	a.Rotation[1] = WrapYaw(float32(yaw))
}

// ClampPitch limits pitch to [-90, 90].
func ClampPitch(p float32) float32 {
	if p < -MaxPitch {
		return -MaxPitch
	}
	if p > MaxPitch {
		return MaxPitch
	}
	return p
}

// WrapYaw maps any angle into [0, 360).
func WrapYaw(y float32) float32 {
	w := math.Mod(float64(y), 360)
	if w < 0 {
		w += 360
	}
	out := float32(w)
	if out >= 360 {
		out = 0
	}
	return out
}

// ViewMatrix is the full camera transform Rx(pitch)·Ry(yaw)·T(-pos).
func (a *Avatar) ViewMatrix() mgl32.Mat4 {
	t := mgl32.Translate3D(-a.Position[0], -a.Position[1], -a.Position[2])
	return Orientation(a.Pitch(), a.Yaw()).Mul4(t)
}
