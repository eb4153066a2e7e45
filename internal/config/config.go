// Package config handles sandbox configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/mover-pawn/internal/mover"
	"github.com/Faultbox/mover-pawn/internal/pawn"
)

// Config holds all sandbox settings.
type Config struct {
	Movement   MovementConfig   `yaml:"movement"`
	Simulation SimulationConfig `yaml:"simulation"`
	Input      InputConfig      `yaml:"input"`
	Window     WindowConfig     `yaml:"window"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// MovementConfig holds the pawn orientation and movement policies.
type MovementConfig struct {
	OrientRotationToMovement     bool `yaml:"orient_rotation_to_movement"`
	ShouldRemainVertical         bool `yaml:"should_remain_vertical"`
	MaintainLastInputOrientation bool `yaml:"maintain_last_input_orientation"`
	UseBaseRelativeMovement      bool `yaml:"use_base_relative_movement"`
}

// SimulationConfig holds tick, network role and starting movement settings.
type SimulationConfig struct {
	TickRateHz int        `yaml:"tick_rate_hz"`
	LocalRole  string     `yaml:"local_role"`
	RemoteRole string     `yaml:"remote_role"`
	Mode       string     `yaml:"mode"` // movement mode the sandbox mover starts in
	Up         [3]float32 `yaml:"up"`
}

// KeyAxis binds a key to a move axis contribution.
type KeyAxis struct {
	Key  string     `yaml:"key"`
	Axis [3]float32 `yaml:"axis"`
}

// InputConfig holds key bindings and look sensitivity.
type InputConfig struct {
	Move             []KeyAxis `yaml:"move"`
	Jump             []string  `yaml:"jump"`
	MouseSensitivity float32   `yaml:"mouse_sensitivity"` // degrees per pixel
}

// WindowConfig holds sandbox window settings.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Movement: MovementConfig{
			OrientRotationToMovement:     true,
			ShouldRemainVertical:         true,
			MaintainLastInputOrientation: false,
			UseBaseRelativeMovement:      true,
		},
		Simulation: SimulationConfig{
			TickRateHz: 60,
			LocalRole:  "authority",
			RemoteRole: "simulated_proxy",
			Mode:       "walking",
			Up:         [3]float32{0, 0, 1},
		},
		Input: InputConfig{
			Move: []KeyAxis{
				{Key: "W", Axis: [3]float32{1, 0, 0}},
				{Key: "S", Axis: [3]float32{-1, 0, 0}},
				{Key: "D", Axis: [3]float32{0, 1, 0}},
				{Key: "A", Axis: [3]float32{0, -1, 0}},
			},
			Jump:             []string{"Space"},
			MouseSensitivity: 0.2,
		},
		Window: WindowConfig{
			Title:  "Mover Pawn Sandbox",
			Width:  960,
			Height: 540,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks settings that would otherwise fail at runtime.
func (c *Config) Validate() error {
	var errs []error

	if c.Simulation.TickRateHz <= 0 {
		errs = append(errs, fmt.Errorf("simulation.tick_rate_hz must be positive, got %d", c.Simulation.TickRateHz))
	}
	if _, err := pawn.ParseNetRole(c.Simulation.LocalRole); err != nil {
		errs = append(errs, fmt.Errorf("simulation.local_role: %w", err))
	}
	if _, err := pawn.ParseNetRole(c.Simulation.RemoteRole); err != nil {
		errs = append(errs, fmt.Errorf("simulation.remote_role: %w", err))
	}
	if _, err := mover.ParseMode(c.Simulation.Mode); err != nil {
		errs = append(errs, fmt.Errorf("simulation.mode: %w", err))
	}
	if c.Simulation.Up == [3]float32{} {
		errs = append(errs, errors.New("simulation.up must be non-zero"))
	}
	if len(c.Input.Move) == 0 {
		errs = append(errs, errors.New("input.move needs at least one binding"))
	}
	for i, b := range c.Input.Move {
		if strings.TrimSpace(b.Key) == "" {
			errs = append(errs, fmt.Errorf("input.move[%d] has no key", i))
		}
	}
	if len(c.Input.Jump) == 0 {
		errs = append(errs, errors.New("input.jump needs at least one key"))
	}

	return errors.Join(errs...)
}
