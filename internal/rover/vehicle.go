// Package rover implements terrain-following vehicle kinematics.
//
// There is no physics engine: each frame the vehicle turns, accelerates,
// proposes a planar move, resolves it against the rock field and the world
// edge, then settles onto (or falls toward) the height field and leans to
// match the slope.
package rover

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/rover-playground/internal/config"
	"github.com/vovakirdan/rover-playground/internal/core"
	"github.com/vovakirdan/rover-playground/internal/obstacles"
	"github.com/vovakirdan/rover-playground/internal/terrain"
)

// Body and world constants.
const (
	RoverRadius        = 1.3  // collision circle in the XZ plane
	RideHeight         = 0.55 // body center above the ground
	AirborneMargin     = 0.05 // lift above the ground that counts as airborne
	WorldLimit         = 90.0 // |x| and |z| are clamped to this
	SlopeThreshold     = 0.4  // steepness above which slopes sap speed
	SlopeDrag          = 0.5
	BounceFactor       = -0.15
	ReverseFraction    = 0.5 // reverse top speed as a fraction of forward
	WheelSpinRate      = 3.0
	DisplaySpeedFactor = 3.6 // m/s to km/h
)

// Input is the set of directional flags read once per frame.
type Input struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Obstacles is the read-only rock field the vehicle collides with.
type Obstacles interface {
	Len() int
	Rock(i int) obstacles.Rock
	Near(x, z, reach float64) []int
}

// Params configures a vehicle.
type Params struct {
	Tuning    config.Tuning
	Ground    terrain.Ground
	Obstacles Obstacles // nil means open ground
	Start     core.Vec3 // only X and Z are used; Y comes from the ground
	Yaw       float64
	Radius    float64 // collision radius; 0 means RoverRadius
}

// State is the vehicle's dynamic state, owned by the Vehicle.
type State struct {
	Yaw              float64 // radians, 0 faces -Z
	Speed            float64 // signed, m/s
	Position         core.Vec3
	VerticalVelocity float64
	Grounded         bool
	WheelPhase       float64
	Initialized      bool
	Orientation      mgl64.Quat
}

// Heading returns the unit forward direction in the XZ plane.
func (s State) Heading() core.Vec2 {
	hx, hz := heading(s.Yaw)
	return core.Vec2{X: hx, Z: hz}
}

// DisplaySpeed returns |speed| converted to km/h.
func (s State) DisplaySpeed() float64 {
	return math.Abs(s.Speed) * DisplaySpeedFactor
}

// Frame describes what happened during one Step.
type Frame struct {
	State
	Collided  bool
	Rock      int // index of the rock hit, -1 if none
	Normal    core.Vec3
	Steepness float64
}

// Vehicle integrates one rover over the terrain.
type Vehicle struct {
	params Params
	radius float64
	state  State
}

// New creates a vehicle. The state is seeded lazily on the first Step.
func New(p Params) *Vehicle {
	if p.Ground == nil {
		p.Ground = terrain.Flat{}
	}
	r := p.Radius
	if r <= 0 {
		r = RoverRadius
	}
	return &Vehicle{params: p, radius: r}
}

// State returns a copy of the current state.
func (v *Vehicle) State() State {
	return v.state
}

// Radius returns the collision radius.
func (v *Vehicle) Radius() float64 {
	return v.radius
}

// Tuning returns the physics row the vehicle runs with.
func (v *Vehicle) Tuning() config.Tuning {
	return v.params.Tuning
}

func (v *Vehicle) init() {
	if v.state.Initialized {
		return
	}
	x, z := v.params.Start.X, v.params.Start.Z
	n := v.params.Ground.NormalAt(x, z)

	v.state = State{
		Yaw:         v.params.Yaw,
		Position:    core.Vec3{X: x, Y: v.groundY(x, z), Z: z},
		Grounded:    true,
		Initialized: true,
		Orientation: bodyBasis(v.params.Yaw, n),
	}
}

func (v *Vehicle) groundY(x, z float64) float64 {
	return v.params.Ground.HeightAt(x, z) + RideHeight
}

// Step advances the vehicle by dt seconds. dt is used as given; callers bound it.
func (v *Vehicle) Step(in Input, dt float64) Frame {
	v.init()
	if dt < 0 {
		dt = 0
	}
	t := v.params.Tuning
	s := &v.state

	// Turning. Both flags cancel.
	if in.Left {
		s.Yaw += t.TurnSpeed * dt
	}
	if in.Right {
		s.Yaw -= t.TurnSpeed * dt
	}

	// Longitudinal speed.
	if in.Forward || in.Backward {
		if in.Forward {
			s.Speed += t.Acceleration * dt
		}
		if in.Backward {
			s.Speed -= t.Acceleration * dt
		}
	} else {
		s.Speed = coast(s.Speed, t.Friction*dt)
	}
	s.Speed = core.ClampF(s.Speed, -t.MaxSpeed*ReverseFraction, t.MaxSpeed)

	// Planar displacement.
	hx, hz := heading(s.Yaw)
	x := s.Position.X + hx*s.Speed*dt
	z := s.Position.Z + hz*s.Speed*dt

	frame := Frame{Rock: -1}
	x, z, frame.Rock = v.collide(x, z, hx, hz)
	frame.Collided = frame.Rock >= 0

	x = core.ClampF(x, -WorldLimit, WorldLimit)
	z = core.ClampF(z, -WorldLimit, WorldLimit)
	s.Position.X, s.Position.Z = x, z

	v.settle(dt)

	// Slope drag.
	n := v.params.Ground.NormalAt(x, z)
	steep := terrain.Steepness(n)
	if steep > SlopeThreshold {
		s.Speed *= 1 - steep*SlopeDrag
	}

	// Lean into the slope.
	target := bodyBasis(s.Yaw, n)
	s.Orientation = tilt(s.Orientation, target, math.Min(1, t.TiltSmooth*dt))

	s.WheelPhase += s.Speed * dt * WheelSpinRate

	frame.State = *s
	frame.Normal = n
	frame.Steepness = steep
	return frame
}

// coast moves speed toward zero by step without crossing it.
func coast(speed, step float64) float64 {
	switch {
	case speed > 0:
		return math.Max(0, speed-step)
	case speed < 0:
		return math.Min(0, speed+step)
	default:
		return 0
	}
}

// collide pushes (x, z) out of the first overlapping rock. Later rocks are not
// checked once one contact is resolved.
func (v *Vehicle) collide(x, z, hx, hz float64) (float64, float64, int) {
	obs := v.params.Obstacles
	if obs == nil || obs.Len() == 0 {
		return x, z, -1
	}

	for _, i := range obs.Near(x, z, v.radius) {
		r := obs.Rock(i)
		dx, dz := x-r.X, z-r.Z
		dist := math.Hypot(dx, dz)
		minDist := v.radius + r.Radius
		if dist >= minDist {
			continue
		}
		if dist == 0 {
			// Dead center: back straight out the way we came.
			dist = 1
			dx, dz = -hx, -hz
		}

		x = r.X + dx/dist*minDist
		z = r.Z + dz/dist*minDist
		v.state.Speed *= BounceFactor
		return x, z, i
	}
	return x, z, -1
}

// settle runs the grounded/airborne state machine at the current XZ.
func (v *Vehicle) settle(dt float64) {
	s := &v.state
	ground := v.groundY(s.Position.X, s.Position.Z)

	if s.Grounded && s.Position.Y > ground+AirborneMargin {
		s.Grounded = false
		s.VerticalVelocity = 0
	}

	if !s.Grounded {
		s.VerticalVelocity -= v.params.Tuning.Gravity * dt
		s.Position.Y += s.VerticalVelocity * dt
		if s.Position.Y <= ground {
			s.Position.Y = ground
			s.VerticalVelocity = 0
			s.Grounded = true
		}
		return
	}

	s.Position.Y += (ground - s.Position.Y) * math.Min(1, v.params.Tuning.HeightSmooth*dt)
}

// heading returns the forward unit vector for a yaw; yaw 0 faces -Z.
func heading(yaw float64) (float64, float64) {
	return -math.Sin(yaw), -math.Cos(yaw)
}
