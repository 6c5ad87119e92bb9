package rover

import "github.com/vovakirdan/rover-playground/internal/core"

// Readout is what the vehicle publishes after each frame.
type Readout struct {
	Position     core.Vec3
	Yaw          float64
	DisplaySpeed float64 // km/h
	Grounded     bool
	Steepness    float64
	Collided     bool
	Travelled    float64 // planar distance covered this frame
}

// Channel connects a vehicle to its session: inputs in, telemetry out.
type Channel interface {
	ReadInput() Input
	WriteTelemetry(Readout)
}

// Drive reads input from ch, steps the vehicle and publishes the result.
func (v *Vehicle) Drive(ch Channel, dt float64) Frame {
	v.init()
	before := v.state.Position
	frame := v.Step(ch.ReadInput(), dt)

	ch.WriteTelemetry(Readout{
		Position:     frame.Position,
		Yaw:          frame.Yaw,
		DisplaySpeed: frame.DisplaySpeed(),
		Grounded:     frame.Grounded,
		Steepness:    frame.Steepness,
		Collided:     frame.Collided,
		Travelled:    core.PlanarDistance(before, frame.Position),
	})
	return frame
}
