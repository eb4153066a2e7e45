package pawn

import (
	"go.uber.org/zap"

	"github.com/Faultbox/mover-pawn/internal/input"
	"github.com/Faultbox/mover-pawn/internal/mover"
	"github.com/Faultbox/mover-pawn/pkg/math"
)

// InputProducer supplies movement input for each simulation tick.
type InputProducer interface {
	// ProduceInput returns the command for the tick at simTimeMs.
	// ok is false when the previous command should be reused.
	ProduceInput(simTimeMs int32) (cmd InputCommand, ok bool)
}

// Config holds pawn construction parameters.
type Config struct {
	Name       string
	Settings   Settings
	LocalRole  NetRole
	RemoteRole NetRole
	Mover      mover.Query // may be nil
	Logger     *zap.Logger // nil disables logging
}

// Pawn is a player-controllable character that produces mover input.
//
// Pawn is not safe for concurrent use. Input handlers and ProduceInput are
// expected to run on the same loop.
type Pawn struct {
	name string
	log  *zap.Logger

	settings   Settings
	localRole  NetRole
	remoteRole NetRole

	controller Controller
	mover      mover.Query

	raw    RawInputState
	memory OrientationMemory
}

// New creates an unpossessed pawn.
func New(cfg Config) *Pawn {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Pawn{
		name:       cfg.Name,
		log:        log.With(zap.String("pawn", cfg.Name)),
		settings:   cfg.Settings,
		localRole:  cfg.LocalRole,
		remoteRole: cfg.RemoteRole,
		mover:      cfg.Mover,
	}
}

// Name returns the pawn name.
func (p *Pawn) Name() string {
	return p.name
}

// ProduceInput implements InputProducer.
func (p *Pawn) ProduceInput(simTimeMs int32) (InputCommand, bool) {
	tick := Tick{
		SimTimeMs:  simTimeMs,
		LocalRole:  p.localRole,
		RemoteRole: p.remoteRole,
	}

	cmd, ok := Resolve(tick, p.controller, p.mover, &p.raw, &p.memory, p.settings)
	if p.controller == nil {
		if ok {
			p.log.Debug("unpossessed, producing do-nothing input", zap.Int32("sim_time_ms", simTimeMs))
		} else {
			p.log.Debug("unpossessed, reusing previous input", zap.Int32("sim_time_ms", simTimeMs))
		}
	}
	return cmd, ok
}

// Possess attaches a controller. A nil controller unpossesses.
func (p *Pawn) Possess(c Controller) {
	if c == nil {
		p.Unpossess()
		return
	}
	p.controller = c
	p.log.Info("possessed", zap.String("controller", c.Name()))
}

// Unpossess detaches the current controller, if any.
func (p *Pawn) Unpossess() {
	if p.controller == nil {
		return
	}
	p.log.Info("unpossessed", zap.String("controller", p.controller.Name()))
	p.controller = nil
}

// Controller returns the possessing controller, or nil.
func (p *Pawn) Controller() Controller {
	return p.controller
}

// SetMover sets the movement simulation the pawn queries. nil is allowed.
func (p *Pawn) SetMover(mv mover.Query) {
	p.mover = mv
}

// Mover returns the movement simulation reference.
func (p *Pawn) Mover() mover.Query {
	return p.mover
}

// SetRoles updates the pawn's network roles.
func (p *Pawn) SetRoles(local, remote NetRole) {
	p.localRole = local
	p.remoteRole = remote
	p.log.Info("roles changed",
		zap.Stringer("local", local),
		zap.Stringer("remote", remote),
	)
}

// Roles returns the local and remote network roles.
func (p *Pawn) Roles() (local, remote NetRole) {
	return p.localRole, p.remoteRole
}

// Settings returns the current policies.
func (p *Pawn) Settings() Settings {
	return p.settings
}

// SetSettings replaces the policies.
func (p *Pawn) SetSettings(s Settings) {
	p.settings = s
}

// SetMoveVelocity sets a velocity that overrides directional intent while non-zero.
func (p *Pawn) SetMoveVelocity(v math.Vec3) {
	p.raw.MoveVelocity = v
}

// RawInput returns a copy of the cached input state.
func (p *Pawn) RawInput() RawInputState {
	return p.raw
}

// LastAffirmativeMoveInput returns the move input of the last tick that had one.
func (p *Pawn) LastAffirmativeMoveInput() math.Vec3 {
	return p.memory.LastAffirmativeMoveInput
}

// OnMoveTriggered caches the move value with each axis clamped to [-1, 1].
func (p *Pawn) OnMoveTriggered(v math.Vec3) {
	p.raw.MoveIntent = v.Clamp(-1, 1)
}

// OnMoveCompleted clears the move intent.
func (p *Pawn) OnMoveCompleted() {
	p.raw.MoveIntent = math.Vec3{}
}

// OnJumpStarted records a jump press. The edge flag is only set if jump was not already held.
func (p *Pawn) OnJumpStarted() {
	p.raw.JumpJustPressed = !p.raw.JumpPressed
	p.raw.JumpPressed = true
}

// OnJumpReleased clears both jump flags.
func (p *Pawn) OnJumpReleased() {
	p.raw.JumpPressed = false
	p.raw.JumpJustPressed = false
}

// BindInput registers the pawn's input handlers on m.
func (p *Pawn) BindInput(m *input.ActionMap, move, jump input.Action) {
	m.Bind(move, input.TriggerTriggered, p.OnMoveTriggered)
	m.Bind(move, input.TriggerCompleted, func(input.Value) { p.OnMoveCompleted() })
	m.Bind(jump, input.TriggerStarted, func(input.Value) { p.OnJumpStarted() })
	m.Bind(jump, input.TriggerCompleted, func(input.Value) { p.OnJumpReleased() })
}
