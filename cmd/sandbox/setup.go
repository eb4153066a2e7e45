package main

import (
	"fmt"

	"github.com/Faultbox/mover-pawn/internal/config"
	"github.com/Faultbox/mover-pawn/internal/input"
	"github.com/Faultbox/mover-pawn/internal/pawn"
	"github.com/Faultbox/mover-pawn/pkg/math"
)

func pawnSettings(m config.MovementConfig) pawn.Settings {
	return pawn.Settings{
		OrientRotationToMovement:     m.OrientRotationToMovement,
		ShouldRemainVertical:         m.ShouldRemainVertical,
		MaintainLastInputOrientation: m.MaintainLastInputOrientation,
		UseBaseRelativeMovement:      m.UseBaseRelativeMovement,
	}
}

func roles(s config.SimulationConfig) (local, remote pawn.NetRole, err error) {
	local, err = pawn.ParseNetRole(s.LocalRole)
	if err != nil {
		return 0, 0, fmt.Errorf("local role: %w", err)
	}
	remote, err = pawn.ParseNetRole(s.RemoteRole)
	if err != nil {
		return 0, 0, fmt.Errorf("remote role: %w", err)
	}
	return local, remote, nil
}

func bindings(in config.InputConfig) input.Bindings {
	b := input.Bindings{Jump: in.Jump}
	for _, m := range in.Move {
		b.Move = append(b.Move, input.AxisBinding{Key: m.Key, Axis: vec(m.Axis)})
	}
	return b
}

func vec(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
