package mover

import (
	"github.com/Faultbox/mover-pawn/pkg/math"
)

// WorldUp is the default up direction.
var WorldUp = math.Vec3{X: 0, Y: 0, Z: 1}

// State is a snapshot of movement state that satisfies Query.
type State struct {
	Mode Mode
	Up   math.Vec3

	// Movement base, nil when standing on nothing movable.
	Base     Base
	AttachID string
}

// NewState creates a walking state with world up and no base.
func NewState() *State {
	return &State{
		Mode: ModeWalking,
		Up:   WorldUp,
	}
}

// IsOnGround reports whether the pawn is walking on a surface.
func (s *State) IsOnGround() bool {
	return s.Mode == ModeWalking
}

// IsFalling reports whether the pawn is airborne under gravity.
func (s *State) IsFalling() bool {
	return s.Mode == ModeFalling
}

// UpDirection returns the normalized up vector, or world up if unset.
func (s *State) UpDirection() math.Vec3 {
	up := s.Up.SafeNormal()
	if up.IsZero() {
		return WorldUp
	}
	return up
}

// MovementBase returns the current base, if any.
func (s *State) MovementBase() (Base, string, bool) {
	if s.Base == nil {
		return nil, "", false
	}
	return s.Base, s.AttachID, true
}

// SetBase records the base the pawn is standing on.
func (s *State) SetBase(base Base, attachID string) {
	s.Base = base
	s.AttachID = attachID
}

// ClearBase removes the movement base.
func (s *State) ClearBase() {
	s.Base = nil
	s.AttachID = ""
}

// Platform is a rigid base with a root rotation and optional named sockets.
type Platform struct {
	ID       string
	Rotation math.Quat

	// Socket rotations are relative to the platform root.
	Sockets map[string]math.Quat
}

// NewPlatform creates a platform with the given world yaw in degrees.
func NewPlatform(id string, yaw float32) *Platform {
	return &Platform{
		ID:       id,
		Rotation: math.QuatFromYaw(yaw),
		Sockets:  make(map[string]math.Quat),
	}
}

// Name returns the platform identifier.
func (p *Platform) Name() string {
	return p.ID
}

// WorldRotation returns the world rotation of the root or of a socket.
func (p *Platform) WorldRotation(attachID string) (math.Quat, bool) {
	root := p.Rotation.Normalize()
	if attachID == "" {
		return root, true
	}
	local, ok := p.Sockets[attachID]
	if !ok {
		return root, false
	}
	return root.Mul(local.Normalize()).Normalize(), true
}
