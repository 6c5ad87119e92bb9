package sim

import "github.com/vovakirdan/rover-playground/internal/core"

// Telemetry is the per-frame readout consumed by the HUD and renderer.
type Telemetry struct {
	Speed            float64 // km/h, always >= 0
	Position         core.Vec3
	Yaw              float64
	DistanceToTarget float64 // XZ plane
	TargetReached    bool    // latched
	HazardWarning    bool
	InHazard         bool
	Grounded         bool
	Tick             uint64
	Odometer         float64 // metres driven
}
