// Package sim runs one rover simulation session.
//
// A Session owns the input flags written by controls, the telemetry read by
// displays, and the vehicle stepped once per frame. Displays may poll
// Telemetry from any goroutine; Advance must be driven from a single one.
package sim

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rover-playground/internal/config"
	"github.com/vovakirdan/rover-playground/internal/core"
	"github.com/vovakirdan/rover-playground/internal/obstacles"
	"github.com/vovakirdan/rover-playground/internal/rover"
	"github.com/vovakirdan/rover-playground/internal/terrain"
)

// Session is one active simulation.
type Session struct {
	desc    core.Descriptor
	tuning  config.Tuning
	limits  config.Limits
	ground  terrain.Ground
	rocks   *obstacles.Set
	logger  *log.Logger
	mission *Mission

	inputMu sync.Mutex
	inputs  [sourceCount]Input

	telemetry atomic.Pointer[Telemetry]
	elapsed   atomic.Int64 // simulated time, ns
	finished  atomic.Int64 // simulated time at completion, ns
	done      atomic.Bool
	closed    atomic.Bool

	// Owned by the goroutine calling Advance.
	vehicle  *rover.Vehicle
	tick     uint64
	odometer float64
	reached  bool
}

type options struct {
	physics  config.PhysicsConfig
	registry *obstacles.Registry
	logger   *log.Logger
}

// Option configures a Session.
type Option func(*options)

// WithPhysics overrides the default tuning table.
func WithPhysics(cfg config.PhysicsConfig) Option {
	return func(o *options) { o.physics = cfg }
}

// WithObstacles draws rocks from r instead of the shared registry.
func WithObstacles(r *obstacles.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// NewSession prepares a session for d. The vehicle is placed on the first frame.
func NewSession(d core.Descriptor, opts ...Option) *Session {
	o := options{physics: config.DefaultPhysicsConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	s := &Session{
		desc:    d,
		tuning:  o.physics.TuningFor(d.ID),
		limits:  o.physics.Limits,
		ground:  terrain.ForDescriptor(d),
		logger:  o.logger.With("planet", d.ID),
		mission: NewMission(d.Objectives),
	}
	if d.Terrain && d.RockCount > 0 {
		if o.registry != nil {
			s.rocks = o.registry.Generate(d.ID, d.RockCount)
		} else {
			s.rocks = obstacles.Generate(d.ID, d.RockCount)
		}
	}

	s.telemetry.Store(&Telemetry{
		Position:         d.Start,
		DistanceToTarget: core.PlanarDistance(d.Start, d.Target),
	})
	return s
}

// Descriptor returns the descriptor the session runs.
func (s *Session) Descriptor() core.Descriptor {
	return s.desc
}

// Ground returns the surface the vehicle drives on.
func (s *Session) Ground() terrain.Ground {
	return s.ground
}

// Rocks returns the session's obstacle set, or nil on open ground.
func (s *Session) Rocks() *obstacles.Set {
	return s.rocks
}

// Tuning returns the physics row in use.
func (s *Session) Tuning() config.Tuning {
	return s.tuning
}

// Press marks a direction held by src.
func (s *Session) Press(src Source, a core.Action) {
	s.setFlag(src, a, true)
}

// Release clears a direction held by src.
func (s *Session) Release(src Source, a core.Action) {
	s.setFlag(src, a, false)
}

func (s *Session) setFlag(src Source, a core.Action, down bool) {
	if !src.valid() || !a.IsDirection() {
		return
	}
	s.inputMu.Lock()
	s.inputs[src] = apply(s.inputs[src], a, down)
	s.inputMu.Unlock()
}

// SetInput replaces every flag owned by src.
func (s *Session) SetInput(src Source, in Input) {
	if !src.valid() {
		return
	}
	s.inputMu.Lock()
	s.inputs[src] = in
	s.inputMu.Unlock()
}

// ReleaseAll clears the flags of every source.
func (s *Session) ReleaseAll() {
	s.inputMu.Lock()
	s.inputs = [sourceCount]Input{}
	s.inputMu.Unlock()
}

// ReadInput returns the union of all sources' flags.
func (s *Session) ReadInput() Input {
	s.inputMu.Lock()
	defer s.inputMu.Unlock()

	var in Input
	for _, src := range s.inputs {
		in = merge(in, src)
	}
	return in
}

// Telemetry returns the most recently published readout.
func (s *Session) Telemetry() Telemetry {
	return *s.telemetry.Load()
}

// WriteTelemetry publishes a vehicle readout. It is called by the vehicle
// once per frame from within Advance.
func (s *Session) WriteTelemetry(r rover.Readout) {
	s.odometer += r.Travelled

	dist := core.PlanarDistance(r.Position, s.desc.Target)
	if !s.reached && dist < s.limits.TargetRadius {
		s.reached = true
		s.logger.Info("target reached", "tick", s.tick, "odometer", s.odometer)
	}

	inHazard := false
	if s.desc.Terrain {
		_, inHazard = terrain.InHazard(r.Position.X, r.Position.Z, s.desc.ID)
	}

	t := &Telemetry{
		Speed:            r.DisplaySpeed,
		Position:         r.Position,
		Yaw:              r.Yaw,
		DistanceToTarget: dist,
		TargetReached:    s.reached,
		HazardWarning:    inHazard || r.Steepness > rover.SlopeThreshold,
		InHazard:         inHazard,
		Grounded:         r.Grounded,
		Tick:             s.tick,
		Odometer:         s.odometer,
	}
	s.telemetry.Store(t)

	for _, i := range s.mission.Update(*t, s.limits.TargetRadius) {
		s.logger.Debug("objective done", "task", s.mission.Objectives()[i].Task)
	}
}

// Advance steps the simulation by the wall time elapsed since the previous
// frame. Large gaps are clamped to the configured maximum step.
func (s *Session) Advance(elapsed time.Duration) Telemetry {
	if s.closed.Load() {
		return s.Telemetry()
	}

	dt := elapsed.Seconds()
	if dt < 0 {
		dt = 0
	}
	if dt > s.limits.MaxStep {
		dt = s.limits.MaxStep
	}

	if s.vehicle == nil {
		s.vehicle = rover.New(rover.Params{
			Tuning:    s.tuning,
			Ground:    s.ground,
			Obstacles: s.obstacles(),
			Start:     s.desc.Start,
		})
		rocks := 0
		if s.rocks != nil {
			rocks = s.rocks.Len()
		}
		s.logger.Info("session started", "rocks", rocks, "start", s.desc.Start)
	}

	s.tick++
	s.vehicle.Drive(s, dt)
	now := s.elapsed.Add(int64(dt * float64(time.Second)))

	if !s.done.Load() && s.Complete() {
		s.finished.Store(now)
		s.done.Store(true)
		s.logger.Info("mission complete", "time", time.Duration(now))
	}
	return s.Telemetry()
}

func (s *Session) obstacles() rover.Obstacles {
	if s.rocks == nil {
		return nil
	}
	return s.rocks
}

// Vehicle returns the vehicle state, or false before the first frame.
func (s *Session) Vehicle() (rover.State, bool) {
	if s.vehicle == nil {
		return rover.State{}, false
	}
	return s.vehicle.State(), true
}

// Objectives returns a snapshot of objective progress.
func (s *Session) Objectives() []core.Objective {
	return s.mission.Objectives()
}

// Progress returns completed and total objective counts.
func (s *Session) Progress() (done, total int) {
	return s.mission.Progress()
}

// Complete reports whether the mission is accomplished: every objective is
// done, or the target is reached when there are no objectives.
func (s *Session) Complete() bool {
	if _, total := s.mission.Progress(); total == 0 {
		return s.Telemetry().TargetReached
	}
	return s.mission.Complete()
}

// Elapsed returns the simulated time driven so far.
func (s *Session) Elapsed() time.Duration {
	return time.Duration(s.elapsed.Load())
}

// Finished returns the simulated time at which the mission completed.
func (s *Session) Finished() (time.Duration, bool) {
	if !s.done.Load() {
		return 0, false
	}
	return time.Duration(s.finished.Load()), true
}

// Close ends the session. Later calls to Advance are no-ops.
func (s *Session) Close() {
	if s.closed.Swap(true) {
		return
	}
	s.logger.Info("session closed", "elapsed", s.Elapsed())
}

// Closed reports whether Close was called.
func (s *Session) Closed() bool {
	return s.closed.Load()
}
