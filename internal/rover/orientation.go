package rover

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/rover-playground/internal/core"
)

// bodyBasis returns the rotation whose up axis is the terrain normal and whose
// forward axis is the heading projected onto the surface. Model space faces -Z.
func bodyBasis(yaw float64, normal core.Vec3) mgl64.Quat {
	hx, hz := heading(yaw)
	forward := mgl64.Vec3{hx, 0, hz}
	up := mgl64.Vec3{normal.X, normal.Y, normal.Z}.Normalize()

	right := forward.Cross(up).Normalize()
	back := up.Cross(right).Mul(-1)

	m := mgl64.Mat3FromCols(right, up, back)
	return mgl64.Mat4ToQuat(m.Mat4()).Normalize()
}

// tilt moves the body orientation a fraction t of the way toward target.
func tilt(current, target mgl64.Quat, t float64) mgl64.Quat {
	if t >= 1 {
		return target
	}
	return mgl64.QuatSlerp(current, target, t).Normalize()
}

// BodyUp returns the body's up axis in world space.
func (s State) BodyUp() core.Vec3 {
	u := s.Orientation.Rotate(mgl64.Vec3{0, 1, 0})
	return core.Vec3{X: u.X(), Y: u.Y(), Z: u.Z()}
}

// BodyForward returns the body's forward axis in world space.
func (s State) BodyForward() core.Vec3 {
	f := s.Orientation.Rotate(mgl64.Vec3{0, 0, -1})
	return core.Vec3{X: f.X(), Y: f.Y(), Z: f.Z()}
}

// Pitch returns the nose-up angle of the body in radians.
func (s State) Pitch() float64 {
	f := s.BodyForward()
	return math.Asin(core.ClampF(f.Y, -1, 1))
}

// Roll returns the right-side-down lean of the body in radians.
func (s State) Roll() float64 {
	r := s.Orientation.Rotate(mgl64.Vec3{1, 0, 0})
	return -math.Asin(core.ClampF(r.Y(), -1, 1))
}
