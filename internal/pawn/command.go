// Package pawn produces per-tick movement input commands for a player-controlled pawn.
//
// Device events update a cached RawInputState between ticks. Once per
// simulation tick, Resolve turns that state plus the current movement state
// into an InputCommand for the movement simulation.
package pawn

import (
	"github.com/Faultbox/mover-pawn/internal/mover"
	"github.com/Faultbox/mover-pawn/pkg/math"
)

// MoveInputKind says how InputCommand.MoveInput is interpreted.
type MoveInputKind uint8

const (
	MoveInputNone              MoveInputKind = iota
	MoveInputDirectionalIntent               // world direction scaled by stick magnitude
	MoveInputVelocity                        // raw velocity
)

func (k MoveInputKind) String() string {
	switch k {
	case MoveInputDirectionalIntent:
		return "directional_intent"
	case MoveInputVelocity:
		return "velocity"
	}
	return "none"
}

// InputCommand is the input handed to the movement simulation for one tick.
// The zero value is the "do nothing" command.
type InputCommand struct {
	ControlRotation math.Rotator

	MoveInputKind MoveInputKind
	MoveInput     math.Vec3

	// Direction the pawn should turn toward. Zero means no change.
	OrientationIntent math.Vec3

	JumpPressed     bool
	JumpJustPressed bool

	// Set when MoveInput and OrientationIntent are in MovementBase's local frame.
	UsingMovementBase    bool
	MovementBase         mover.Base
	MovementBaseAttachID string
}

// RawInputState is the device intent cached between ticks.
type RawInputState struct {
	MoveIntent   math.Vec3 // each axis in [-1, 1]
	MoveVelocity math.Vec3 // takes priority over MoveIntent when non-zero

	JumpPressed     bool
	JumpJustPressed bool
}

// OrientationMemory persists across ticks.
type OrientationMemory struct {
	// Move input from the last tick that had one. Replaced, never cleared.
	LastAffirmativeMoveInput math.Vec3
}

// Settings are the per-pawn orientation and movement policies.
type Settings struct {
	// Face the direction of movement instead of the control rotation.
	OrientRotationToMovement bool
	// Keep orientation intent in the horizontal plane.
	ShouldRemainVertical bool
	// Keep turning toward the last input direction after input stops.
	MaintainLastInputOrientation bool
	// Author input relative to the base the pawn stands on.
	UseBaseRelativeMovement bool
}

// DefaultSettings returns the standard player pawn policies.
func DefaultSettings() Settings {
	return Settings{
		OrientRotationToMovement:     true,
		ShouldRemainVertical:         true,
		MaintainLastInputOrientation: false,
		UseBaseRelativeMovement:      true,
	}
}
