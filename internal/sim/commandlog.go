package sim

import (
	"go.uber.org/zap"

	"github.com/Faultbox/mover-pawn/internal/pawn"
)

// CommandLog is a Consumer that logs each command and keeps the latest one.
type CommandLog struct {
	log   *zap.Logger
	last  pawn.InputCommand
	count int
}

// NewCommandLog creates a command log writing to log at debug level.
func NewCommandLog(log *zap.Logger) *CommandLog {
	if log == nil {
		log = zap.NewNop()
	}
	return &CommandLog{log: log}
}

// ConsumeInput implements Consumer.
func (c *CommandLog) ConsumeInput(simTimeMs int32, cmd pawn.InputCommand) {
	c.last = cmd
	c.count++

	if ce := c.log.Check(zap.DebugLevel, "input command"); ce != nil {
		fields := []zap.Field{
			zap.Int32("sim_time_ms", simTimeMs),
			zap.Stringer("kind", cmd.MoveInputKind),
			zap.Any("move", cmd.MoveInput),
			zap.Any("orient", cmd.OrientationIntent),
			zap.Float32("yaw", cmd.ControlRotation.Yaw),
			zap.Bool("jump", cmd.JumpPressed),
			zap.Bool("jump_edge", cmd.JumpJustPressed),
		}
		if cmd.UsingMovementBase {
			fields = append(fields,
				zap.String("base", cmd.MovementBase.Name()),
				zap.String("attach", cmd.MovementBaseAttachID),
			)
		}
		ce.Write(fields...)
	}
}

// Last returns the most recent command.
func (c *CommandLog) Last() pawn.InputCommand {
	return c.last
}

// Count returns how many commands were consumed.
func (c *CommandLog) Count() int {
	return c.count
}
