package input

import (
	"testing"

	"github.com/Faultbox/mover-pawn/pkg/math"
)

// recorder captures dispatched events per phase.
type recorder struct {
	events []Event
}

func (r *recorder) bind(m *ActionMap, action Action) {
	for _, tr := range []Trigger{TriggerStarted, TriggerTriggered, TriggerCompleted} {
		tr := tr
		m.Bind(action, tr, func(v Value) {
			r.events = append(r.events, Event{Action: action, Trigger: tr, Value: v})
		})
	}
}

func (r *recorder) count(action Action, tr Trigger) int {
	n := 0
	for _, e := range r.events {
		if e.Action == action && e.Trigger == tr {
			n++
		}
	}
	return n
}

func TestActionMapDispatch(t *testing.T) {
	m := NewActionMap()

	var got []Value
	m.Bind(ActionMove, TriggerTriggered, func(v Value) { got = append(got, v) })
	m.Bind(ActionMove, TriggerTriggered, func(v Value) { got = append(got, v.Scale(2)) })

	n := m.Dispatch(Event{Action: ActionMove, Trigger: TriggerTriggered, Value: Value{X: 1}})
	if n != 2 {
		t.Fatalf("Dispatch ran %d handlers, want 2", n)
	}
	if got[0] != (Value{X: 1}) || got[1] != (Value{X: 2}) {
		t.Errorf("handlers received %v", got)
	}

	if n := m.Dispatch(Event{Action: "crouch", Trigger: TriggerStarted}); n != 0 {
		t.Errorf("unbound action ran %d handlers, want 0", n)
	}
}

func TestKeyboardMoveValue(t *testing.T) {
	k := NewKeyboard(DefaultBindings())

	k.SetKey("w", true)
	k.SetKey("D", true)
	if got, want := k.MoveValue(), (math.Vec3{X: 1, Y: 1}); got != want {
		t.Errorf("W+D = %v, want %v", got, want)
	}

	k.SetKey("S", true)
	if got, want := k.MoveValue(), (math.Vec3{Y: 1}); got != want {
		t.Errorf("W+S+D = %v, want %v", got, want)
	}

	if !k.IsDown("W") {
		t.Error("W should be down")
	}
}

func TestKeyboardMoveLifecycle(t *testing.T) {
	k := NewKeyboard(DefaultBindings())
	m := NewActionMap()
	rec := &recorder{}
	rec.bind(m, ActionMove)

	k.Update(m) // idle
	if len(rec.events) != 0 {
		t.Fatalf("idle frame dispatched %v", rec.events)
	}

	k.SetKey("W", true)
	k.Update(m)
	k.Update(m)
	if n := rec.count(ActionMove, TriggerStarted); n != 1 {
		t.Errorf("started %d times, want 1", n)
	}
	if n := rec.count(ActionMove, TriggerTriggered); n != 2 {
		t.Errorf("triggered %d times, want 2", n)
	}

	k.SetKey("W", false)
	k.Update(m)
	k.Update(m)
	if n := rec.count(ActionMove, TriggerCompleted); n != 1 {
		t.Errorf("completed %d times, want 1", n)
	}
}

func TestKeyboardOpposingKeysComplete(t *testing.T) {
	k := NewKeyboard(DefaultBindings())
	m := NewActionMap()
	rec := &recorder{}
	rec.bind(m, ActionMove)

	k.SetKey("A", true)
	k.Update(m)
	k.SetKey("D", true) // cancels out
	k.Update(m)

	if n := rec.count(ActionMove, TriggerCompleted); n != 1 {
		t.Errorf("completed %d times, want 1 when axes cancel", n)
	}
}

func TestKeyboardJumpEdges(t *testing.T) {
	k := NewKeyboard(DefaultBindings())
	m := NewActionMap()
	rec := &recorder{}
	rec.bind(m, ActionJump)

	k.SetKey("space", true)
	for i := 0; i < 3; i++ {
		k.Update(m)
	}
	k.SetKey("Space", false)
	k.Update(m)

	if n := rec.count(ActionJump, TriggerStarted); n != 1 {
		t.Errorf("jump started %d times, want 1", n)
	}
	if n := rec.count(ActionJump, TriggerTriggered); n != 3 {
		t.Errorf("jump triggered %d times, want 3", n)
	}
	if n := rec.count(ActionJump, TriggerCompleted); n != 1 {
		t.Errorf("jump completed %d times, want 1", n)
	}
}
