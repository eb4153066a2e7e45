package input

import (
	"strings"

	"github.com/Faultbox/mover-pawn/pkg/math"
)

// AxisBinding adds Axis to the move value while Key is held.
type AxisBinding struct {
	Key  string
	Axis math.Vec3
}

// Bindings describes which keys drive movement and jumping.
type Bindings struct {
	Move []AxisBinding
	Jump []string
}

// DefaultBindings returns WASD movement and Space to jump.
// Forward is +X and right is +Y.
func DefaultBindings() Bindings {
	return Bindings{
		Move: []AxisBinding{
			{Key: "W", Axis: math.Vec3{X: 1}},
			{Key: "S", Axis: math.Vec3{X: -1}},
			{Key: "D", Axis: math.Vec3{Y: 1}},
			{Key: "A", Axis: math.Vec3{Y: -1}},
		},
		Jump: []string{"Space"},
	}
}

// Keyboard turns held keys into move and jump action events.
type Keyboard struct {
	bindings Bindings
	down     map[string]bool

	moving  bool
	jumping bool

	MoveAction Action
	JumpAction Action
}

// NewKeyboard creates a keyboard mapper for the given bindings.
func NewKeyboard(b Bindings) *Keyboard {
	return &Keyboard{
		bindings:   b,
		down:       make(map[string]bool),
		MoveAction: ActionMove,
		JumpAction: ActionJump,
	}
}

// SetKey records a key transition. Key names are case-insensitive.
func (k *Keyboard) SetKey(name string, down bool) {
	name = normalizeKey(name)
	if down {
		k.down[name] = true
	} else {
		delete(k.down, name)
	}
}

// IsDown reports whether a key is currently held.
func (k *Keyboard) IsDown(name string) bool {
	return k.down[normalizeKey(name)]
}

// MoveValue sums the axes of every held move key.
func (k *Keyboard) MoveValue() Value {
	var v Value
	for _, b := range k.bindings.Move {
		if k.down[normalizeKey(b.Key)] {
			v = v.Add(b.Axis)
		}
	}
	return v
}

// Update emits this frame's action events into m.
func (k *Keyboard) Update(m *ActionMap) {
	move := k.MoveValue()
	if !move.IsZero() {
		if !k.moving {
			m.Dispatch(Event{Action: k.MoveAction, Trigger: TriggerStarted, Value: move})
		}
		m.Dispatch(Event{Action: k.MoveAction, Trigger: TriggerTriggered, Value: move})
		k.moving = true
	} else if k.moving {
		m.Dispatch(Event{Action: k.MoveAction, Trigger: TriggerCompleted})
		k.moving = false
	}

	jump := k.anyDown(k.bindings.Jump)
	switch {
	case jump && !k.jumping:
		m.Dispatch(Event{Action: k.JumpAction, Trigger: TriggerStarted, Value: Value{X: 1}})
	case !jump && k.jumping:
		m.Dispatch(Event{Action: k.JumpAction, Trigger: TriggerCompleted})
	}
	if jump {
		m.Dispatch(Event{Action: k.JumpAction, Trigger: TriggerTriggered, Value: Value{X: 1}})
	}
	k.jumping = jump
}

func (k *Keyboard) anyDown(keys []string) bool {
	for _, key := range keys {
		if k.down[normalizeKey(key)] {
			return true
		}
	}
	return false
}

func normalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
