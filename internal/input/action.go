// Package input maps device state to named actions and dispatches them to handlers.
package input

import (
	"github.com/Faultbox/mover-pawn/pkg/math"
)

// Action names a logical input such as "move" or "jump".
type Action string

// Default action names.
const (
	ActionMove Action = "move"
	ActionJump Action = "jump"
)

// Trigger is the phase of an action an event reports.
type Trigger uint8

const (
	TriggerStarted   Trigger = iota // first frame the action is active
	TriggerTriggered                // every frame the action is active
	TriggerCompleted                // the frame the action stops
)

func (t Trigger) String() string {
	switch t {
	case TriggerStarted:
		return "started"
	case TriggerTriggered:
		return "triggered"
	case TriggerCompleted:
		return "completed"
	}
	return "unknown"
}

// Value is the payload of an action event. Buttons use X = 1 while held.
type Value = math.Vec3

// Event is a single action phase with its value.
type Event struct {
	Action  Action
	Trigger Trigger
	Value   Value
}

// Handler receives a dispatched action value.
type Handler func(Value)

type bindKey struct {
	action  Action
	trigger Trigger
}

// ActionMap routes action events to bound handlers.
type ActionMap struct {
	handlers map[bindKey][]Handler
}

// NewActionMap creates an empty action map.
func NewActionMap() *ActionMap {
	return &ActionMap{
		handlers: make(map[bindKey][]Handler),
	}
}

// Bind registers h for the given action phase. Multiple handlers run in bind order.
func (m *ActionMap) Bind(action Action, trigger Trigger, h Handler) {
	k := bindKey{action, trigger}
	m.handlers[k] = append(m.handlers[k], h)
}

// Dispatch invokes every handler bound to the event's action phase.
// Returns the number of handlers run.
func (m *ActionMap) Dispatch(ev Event) int {
	hs := m.handlers[bindKey{ev.Action, ev.Trigger}]
	for _, h := range hs {
		h(ev.Value)
	}
	return len(hs)
}
