// Package main runs an interactive sandbox that turns keyboard and mouse input
// into mover input commands and logs them.
//
// WASD moves, Space jumps, the mouse turns the camera. Hold B to stand on a
// rotating platform and F to fall; otherwise the mover stays in
// simulation.mode. ESC quits.
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/mover-pawn/internal/config"
	"github.com/Faultbox/mover-pawn/internal/input"
	"github.com/Faultbox/mover-pawn/internal/input/sdlinput"
	"github.com/Faultbox/mover-pawn/internal/logger"
	"github.com/Faultbox/mover-pawn/internal/mover"
	"github.com/Faultbox/mover-pawn/internal/pawn"
	"github.com/Faultbox/mover-pawn/internal/sim"
	"github.com/Faultbox/mover-pawn/internal/window"
	"github.com/Faultbox/mover-pawn/pkg/math"
)

const (
	platformKey = "B"
	fallKey     = "F"

	// Degrees per second the sandbox platform turns.
	platformSpin = 45
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Mover Pawn Sandbox ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("sandbox error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("sandbox closed normally")
}

func run(cfg *config.Config) error {
	local, remote, err := roles(cfg.Simulation)
	if err != nil {
		return err
	}
	baseMode, err := mover.ParseMode(cfg.Simulation.Mode)
	if err != nil {
		return err
	}
	step, err := sim.StepForRate(cfg.Simulation.TickRateHz)
	if err != nil {
		return err
	}

	state := mover.NewState()
	state.Mode = baseMode
	state.Up = vec(cfg.Simulation.Up)
	platform := mover.NewPlatform("turntable", 0)

	hero := pawn.New(pawn.Config{
		Name:       "hero",
		Settings:   pawnSettings(cfg.Movement),
		LocalRole:  local,
		RemoteRole: remote,
		Mover:      state,
		Logger:     logger.Named("pawn"),
	})
	pc := pawn.NewPlayerController("player0")
	hero.Possess(pc)

	actions := input.NewActionMap()
	hero.BindInput(actions, input.ActionMove, input.ActionJump)
	kb := input.NewKeyboard(bindings(cfg.Input))

	commands := sim.NewCommandLog(logger.Named("mover"))
	driver, err := sim.NewDriver(hero, commands, step, logger.Named("driver"))
	if err != nil {
		return fmt.Errorf("creating driver: %w", err)
	}

	win, err := window.New(window.Config{
		Title:        cfg.Window.Title,
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		CaptureMouse: true,
	}, logger.Named("window"))
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Close()

	src := sdlinput.New(kb)

	lastTime := time.Now()
	statusTimer := time.Now()

	logger.Info("starting input loop",
		zap.Duration("tick", step),
		zap.Stringer("local_role", local),
		zap.Stringer("remote_role", remote),
		zap.Stringer("mode", baseMode),
	)

	for {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		// 1. Device events
		if src.Update() {
			break
		}
		dx, dy := src.MouseDelta()
		pc.AddYawInput(dx * cfg.Input.MouseSensitivity)
		pc.AddPitchInput(-dy * cfg.Input.MouseSensitivity)

		// 2. Stand-in movement state
		if kb.IsDown(fallKey) {
			state.Mode = mover.ModeFalling
		} else {
			state.Mode = baseMode
		}
		platform.Rotation = platform.Rotation.Mul(math.QuatFromYaw(float32(dt.Seconds()) * platformSpin))
		if kb.IsDown(platformKey) {
			state.SetBase(platform, "")
		} else {
			state.ClearBase()
		}

		// 3. Action events into the pawn, then fixed-step ticks
		kb.Update(actions)
		driver.Advance(dt)

		if time.Since(statusTimer) >= time.Second {
			last := commands.Last()
			win.SetTitle(fmt.Sprintf("%s | tick %d | %s %.2f,%.2f | yaw %.0f",
				cfg.Window.Title, driver.Ticks(), last.MoveInputKind,
				last.MoveInput.X, last.MoveInput.Y, last.ControlRotation.Yaw))
			logger.Debug("status",
				zap.Uint64("ticks", driver.Ticks()),
				zap.Uint64("reused", driver.Reused()),
				zap.Duration("dropped", driver.Dropped()),
			)
			statusTimer = time.Now()
		}

		time.Sleep(time.Millisecond)
	}

	return nil
}
