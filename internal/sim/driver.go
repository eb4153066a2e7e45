// Package sim drives input production at a fixed simulation rate.
package sim

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/mover-pawn/internal/pawn"
)

// Consumer receives the input command for each tick, typically the movement simulation.
type Consumer interface {
	ConsumeInput(simTimeMs int32, cmd pawn.InputCommand)
}

// maxTicksPerAdvance bounds catch-up after a long stall.
const maxTicksPerAdvance = 8

// Driver runs fixed-step ticks from variable frame times.
type Driver struct {
	producer pawn.InputProducer
	consumer Consumer
	step     time.Duration
	log      *zap.Logger

	accumulator time.Duration
	simTimeMs   int32
	ticks       uint64

	last    pawn.InputCommand
	reused  uint64
	dropped time.Duration
}

// NewDriver creates a driver ticking every step.
func NewDriver(producer pawn.InputProducer, consumer Consumer, step time.Duration, log *zap.Logger) (*Driver, error) {
	if producer == nil || consumer == nil {
		return nil, fmt.Errorf("driver needs a producer and a consumer")
	}
	if step <= 0 {
		return nil, fmt.Errorf("invalid tick step %v", step)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Driver{
		producer: producer,
		consumer: consumer,
		step:     step,
		log:      log,
	}, nil
}

// StepForRate returns the tick duration for a rate in Hz.
func StepForRate(hz int) (time.Duration, error) {
	if hz <= 0 {
		return 0, fmt.Errorf("invalid tick rate %d", hz)
	}
	return time.Second / time.Duration(hz), nil
}

// Advance adds dt of frame time and runs every whole tick that fits.
// Returns the number of ticks run.
func (d *Driver) Advance(dt time.Duration) int {
	if dt > 0 {
		d.accumulator += dt
	}

	n := 0
	for d.accumulator >= d.step {
		if n == maxTicksPerAdvance {
			d.dropped += d.accumulator
			d.log.Warn("simulation fell behind, dropping time",
				zap.Duration("dropped", d.accumulator),
				zap.Uint64("tick", d.ticks),
			)
			d.accumulator = 0
			break
		}
		d.tick()
		d.accumulator -= d.step
		n++
	}
	return n
}

// Step runs exactly one tick regardless of accumulated time.
func (d *Driver) Step() {
	d.tick()
}

func (d *Driver) tick() {
	cmd, ok := d.producer.ProduceInput(d.simTimeMs)
	if !ok {
		cmd = d.last
		d.reused++
	}
	d.consumer.ConsumeInput(d.simTimeMs, cmd)
	d.last = cmd

	d.ticks++
	// Derived from the tick count so fractional-millisecond steps do not drift.
	d.simTimeMs = int32((time.Duration(d.ticks) * d.step).Round(time.Millisecond) / time.Millisecond)
}

// Ticks returns the number of ticks run.
func (d *Driver) Ticks() uint64 {
	return d.ticks
}

// SimTimeMs returns the simulation time of the next tick.
func (d *Driver) SimTimeMs() int32 {
	return d.simTimeMs
}

// Reused returns how many ticks re-sent the previous command.
func (d *Driver) Reused() uint64 {
	return d.reused
}

// Dropped returns the frame time discarded while catching up.
func (d *Driver) Dropped() time.Duration {
	return d.dropped
}

// LastCommand returns the most recently sent command.
func (d *Driver) LastCommand() pawn.InputCommand {
	return d.last
}
