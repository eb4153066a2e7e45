// Package mover is the boundary to the external movement simulation.
//
// The simulation itself (mode state machine, collision, prediction) lives
// elsewhere. This package only describes what the pawn may ask of it, plus a
// plain State that hosts and tests can fill in directly.
package mover

import (
	"fmt"

	"github.com/Faultbox/mover-pawn/pkg/math"
)

// Query exposes the movement state a pawn reads while producing input.
type Query interface {
	IsOnGround() bool
	IsFalling() bool
	// UpDirection is the simulation's notion of up. Unit length.
	UpDirection() math.Vec3
	// MovementBase returns the object the pawn is standing on and the
	// attach point (bone or socket) it is based on, if any.
	MovementBase() (Base, string, bool)
}

// Base is something a pawn can stand on and move relative to.
type Base interface {
	Name() string
	// WorldRotation returns the world rotation of the attach point, or of
	// the base root when attachID is empty. ok is false for an unknown attach point.
	WorldRotation(attachID string) (q math.Quat, ok bool)
}

// TransformWorldDirectionToBased rotates a world-space direction into the
// local frame of base at attachID. Unknown attach points use the base root.
func TransformWorldDirectionToBased(base Base, attachID string, dir math.Vec3) math.Vec3 {
	if base == nil {
		return dir
	}
	rot, ok := base.WorldRotation(attachID)
	if !ok {
		rot, _ = base.WorldRotation("")
	}
	return rot.UnrotateVec3(dir)
}

// Mode is the locomotion mode reported by the simulation.
type Mode uint8

const (
	ModeNone Mode = iota
	ModeWalking
	ModeFalling
	ModeFlying
)

var modeNames = [...]string{
	ModeNone:    "none",
	ModeWalking: "walking",
	ModeFalling: "falling",
	ModeFlying:  "flying",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if name == s {
			return Mode(i), nil
		}
	}
	return ModeNone, fmt.Errorf("unknown movement mode %q", s)
}
