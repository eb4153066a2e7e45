package pawn

import (
	"github.com/Faultbox/mover-pawn/internal/mover"
	"github.com/Faultbox/mover-pawn/pkg/math"
)

// AffirmativeInputThreshold is the smallest move input magnitude that counts
// as the player asking to move.
const AffirmativeInputThreshold = 1e-3

// Tick identifies the simulation step being produced and the pawn's roles.
type Tick struct {
	SimTimeMs  int32
	LocalRole  NetRole
	RemoteRole NetRole
}

// Resolve builds the input command for one tick.
//
// ok is false when no command was produced and the caller should reuse the
// previous one. That happens for an unpossessed pawn unless this end is the
// authority for a simulated proxy, which gets an explicit do-nothing command.
//
// mv may be nil. The ground projection and base-relative steps are then
// skipped and the command is authored in world space.
//
// Resolve clears raw.JumpJustPressed and may update mem.
func Resolve(tick Tick, ctl Controller, mv mover.Query, raw *RawInputState, mem *OrientationMemory, s Settings) (cmd InputCommand, ok bool) {
	if ctl == nil {
		if tick.LocalRole == RoleAuthority && tick.RemoteRole == RoleSimulatedProxy {
			return InputCommand{}, true
		}
		// Proxies extrapolate from their previous input.
		return InputCommand{}, false
	}

	if rp, isPlayer := ctl.(RotationProvider); isPlayer {
		cmd.ControlRotation = rp.ControlRotation()
	}

	// Velocity input wins over directional intent.
	usingIntent := raw.MoveVelocity.IsZero()
	if usingIntent {
		rot := cmd.ControlRotation
		if mv != nil && (mv.IsOnGround() || mv.IsFalling()) {
			flat := rot.Vector().ProjectOnPlane(mv.UpDirection()).SafeNormal()
			rot = math.RotatorFromVector(flat)
		}
		cmd.MoveInputKind = MoveInputDirectionalIntent
		cmd.MoveInput = rot.RotateVector(raw.MoveIntent)
	} else {
		cmd.MoveInputKind = MoveInputVelocity
		cmd.MoveInput = raw.MoveVelocity
	}

	affirmative := cmd.MoveInput.Length() >= AffirmativeInputThreshold

	switch {
	case usingIntent && affirmative:
		if s.OrientRotationToMovement {
			cmd.OrientationIntent = cmd.MoveInput
		} else {
			cmd.OrientationIntent = cmd.ControlRotation.Vector()
		}
		mem.LastAffirmativeMoveInput = cmd.MoveInput
	case s.MaintainLastInputOrientation:
		cmd.OrientationIntent = mem.LastAffirmativeMoveInput
	}

	if s.ShouldRemainVertical {
		cmd.OrientationIntent = cmd.OrientationIntent.SafeNormal2D()
	}

	cmd.JumpPressed = raw.JumpPressed
	cmd.JumpJustPressed = raw.JumpJustPressed

	if s.UseBaseRelativeMovement && mv != nil {
		if base, attachID, based := mv.MovementBase(); based {
			cmd.MoveInput = mover.TransformWorldDirectionToBased(base, attachID, cmd.MoveInput)
			cmd.OrientationIntent = mover.TransformWorldDirectionToBased(base, attachID, cmd.OrientationIntent)
			cmd.UsingMovementBase = true
			cmd.MovementBase = base
			cmd.MovementBaseAttachID = attachID
		}
	}

	raw.JumpJustPressed = false

	return cmd, true
}
