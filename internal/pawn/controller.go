package pawn

import (
	stdmath "math"

	"github.com/Faultbox/mover-pawn/pkg/math"
)

// Controller is whatever possesses a pawn.
type Controller interface {
	Name() string
}

// RotationProvider is implemented by controllers with a control (camera) rotation.
type RotationProvider interface {
	ControlRotation() math.Rotator
}

// Pitch limits for PlayerController, in degrees.
const (
	MinPitch = -89.0
	MaxPitch = 89.0
)

// PlayerController is a controller driven by a local player's look input.
type PlayerController struct {
	name     string
	rotation math.Rotator
}

// NewPlayerController creates a player controller with a zero control rotation.
func NewPlayerController(name string) *PlayerController {
	return &PlayerController{name: name}
}

// Name returns the controller name.
func (c *PlayerController) Name() string {
	return c.name
}

// ControlRotation returns the current control rotation.
func (c *PlayerController) ControlRotation() math.Rotator {
	return c.rotation
}

// SetControlRotation replaces the control rotation, clamping pitch and wrapping yaw.
func (c *PlayerController) SetControlRotation(r math.Rotator) {
	c.rotation = math.Rotator{
		Pitch: clampPitch(r.Pitch),
		Yaw:   wrapYaw(r.Yaw),
		Roll:  r.Roll,
	}
}

// AddYawInput turns the control rotation by deg about up.
// Non-finite input is ignored.
func (c *PlayerController) AddYawInput(deg float32) {
	if y := c.rotation.Yaw + deg; finite(y) {
		c.rotation.Yaw = wrapYaw(y)
	}
}

// AddPitchInput tilts the control rotation by deg.
// Non-finite input is ignored.
func (c *PlayerController) AddPitchInput(deg float32) {
	if p := c.rotation.Pitch + deg; !stdmath.IsNaN(float64(p)) {
		c.rotation.Pitch = clampPitch(p)
	}
}

func clampPitch(p float32) float32 {
	if p < MinPitch {
		return MinPitch
	}
	if p > MaxPitch {
		return MaxPitch
	}
	return p
}

// wrapYaw wraps yaw into [0, 360). Non-finite yaw wraps to 0.
func wrapYaw(y float32) float32 {
	if !finite(y) {
		return 0
	}
	w := float32(stdmath.Mod(float64(y), 360))
	if w < 0 {
		w += 360
	}
	if w >= 360 {
		w = 0
	}
	return w
}

func finite(f float32) bool {
	return !stdmath.IsNaN(float64(f)) && !stdmath.IsInf(float64(f), 0)
}
