package pawn

import (
	stdmath "math"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/mover-pawn/internal/input"
	"github.com/Faultbox/mover-pawn/internal/mover"
	"github.com/Faultbox/mover-pawn/pkg/math"
)

func newTestPawn(local, remote NetRole) *Pawn {
	return New(Config{
		Name:       "hero",
		Settings:   DefaultSettings(),
		LocalRole:  local,
		RemoteRole: remote,
		Mover:      mover.NewState(),
	})
}

func TestOnMoveTriggeredClamps(t *testing.T) {
	tests := []struct {
		in   math.Vec3
		want math.Vec3
	}{
		{math.Vec3{X: 2, Y: -5, Z: 0.5}, math.Vec3{X: 1, Y: -1, Z: 0.5}},
		{math.Vec3{X: -1.0001, Y: 1.5, Z: -3}, math.Vec3{X: -1, Y: 1, Z: -1}},
		{math.Vec3{X: 0.3, Y: -0.7}, math.Vec3{X: 0.3, Y: -0.7}},
	}

	p := newTestPawn(RoleAuthority, RoleNone)
	for _, tt := range tests {
		p.OnMoveTriggered(tt.in)
		if got := p.RawInput().MoveIntent; got != tt.want {
			t.Errorf("OnMoveTriggered(%v) cached %v, want %v", tt.in, got, tt.want)
		}
	}

	p.OnMoveCompleted()
	if got := p.RawInput().MoveIntent; !got.IsZero() {
		t.Errorf("after OnMoveCompleted intent = %v, want zero", got)
	}
}

func TestJumpHandlers(t *testing.T) {
	p := newTestPawn(RoleAuthority, RoleNone)

	p.OnJumpStarted()
	raw := p.RawInput()
	if !raw.JumpPressed || !raw.JumpJustPressed {
		t.Fatalf("after press = %v/%v, want true/true", raw.JumpPressed, raw.JumpJustPressed)
	}

	// A second start while held is not a new edge.
	p.OnJumpStarted()
	raw = p.RawInput()
	if !raw.JumpPressed || raw.JumpJustPressed {
		t.Errorf("after repeat press = %v/%v, want true/false", raw.JumpPressed, raw.JumpJustPressed)
	}

	p.OnJumpReleased()
	raw = p.RawInput()
	if raw.JumpPressed || raw.JumpJustPressed {
		t.Errorf("after release = %v/%v, want false/false", raw.JumpPressed, raw.JumpJustPressed)
	}
}

func TestProduceInputJumpPulse(t *testing.T) {
	p := newTestPawn(RoleAuthority, RoleAutonomousProxy)
	p.Possess(NewPlayerController("p1"))

	p.OnJumpStarted()
	var just []bool
	for tick := 0; tick < 4; tick++ {
		cmd, ok := p.ProduceInput(int32(tick * 16))
		if !ok {
			t.Fatalf("tick %d: no command", tick)
		}
		if !cmd.JumpPressed {
			t.Errorf("tick %d: JumpPressed = false while held", tick)
		}
		just = append(just, cmd.JumpJustPressed)
	}
	if !just[0] || just[1] || just[2] || just[3] {
		t.Errorf("JumpJustPressed per tick = %v, want only the first", just)
	}

	p.OnJumpReleased()
	p.OnJumpStarted()
	cmd, _ := p.ProduceInput(64)
	if !cmd.JumpJustPressed {
		t.Error("re-press should produce a new edge")
	}
}

func TestProduceInputPossession(t *testing.T) {
	p := newTestPawn(RoleSimulatedProxy, RoleAuthority)

	if _, ok := p.ProduceInput(0); ok {
		t.Error("unpossessed simulated proxy should reuse previous input")
	}

	p.SetRoles(RoleAuthority, RoleSimulatedProxy)
	cmd, ok := p.ProduceInput(16)
	if !ok || cmd != (InputCommand{}) {
		t.Errorf("authority over unpossessed proxy = %+v, %v, want zero command", cmd, ok)
	}

	pc := NewPlayerController("p1")
	p.Possess(pc)
	if p.Controller() != pc {
		t.Fatal("controller not set")
	}
	p.OnMoveTriggered(math.Vec3{X: 1})
	cmd, ok = p.ProduceInput(32)
	if !ok || cmd.MoveInputKind != MoveInputDirectionalIntent {
		t.Errorf("possessed = %+v, %v", cmd, ok)
	}
	if !near(p.LastAffirmativeMoveInput(), math.Vec3{X: 1}) {
		t.Errorf("LastAffirmativeMoveInput = %v", p.LastAffirmativeMoveInput())
	}

	p.Possess(nil)
	if p.Controller() != nil {
		t.Error("Possess(nil) should unpossess")
	}
}

func TestProduceInputVelocityOverride(t *testing.T) {
	p := newTestPawn(RoleAuthority, RoleAutonomousProxy)
	p.Possess(NewPlayerController("p1"))
	p.SetSettings(Settings{})
	p.SetMover(nil)

	p.OnMoveTriggered(math.Vec3{Y: 1})
	p.SetMoveVelocity(math.Vec3{X: 250})

	cmd, _ := p.ProduceInput(0)
	if cmd.MoveInputKind != MoveInputVelocity || cmd.MoveInput != (math.Vec3{X: 250}) {
		t.Errorf("command = %v %v, want velocity (250,0,0)", cmd.MoveInputKind, cmd.MoveInput)
	}

	p.SetMoveVelocity(math.Vec3{})
	cmd, _ = p.ProduceInput(16)
	if cmd.MoveInputKind != MoveInputDirectionalIntent {
		t.Errorf("kind = %v after clearing velocity, want directional intent", cmd.MoveInputKind)
	}
}

func TestBindInput(t *testing.T) {
	p := newTestPawn(RoleAuthority, RoleAutonomousProxy)
	p.Possess(NewPlayerController("p1"))

	m := input.NewActionMap()
	p.BindInput(m, input.ActionMove, input.ActionJump)
	kb := input.NewKeyboard(input.DefaultBindings())

	kb.SetKey("W", true)
	kb.SetKey("Space", true)
	kb.Update(m)

	raw := p.RawInput()
	if raw.MoveIntent != (math.Vec3{X: 1}) {
		t.Errorf("MoveIntent = %v, want (1,0,0)", raw.MoveIntent)
	}
	if !raw.JumpPressed || !raw.JumpJustPressed {
		t.Errorf("jump = %v/%v, want true/true", raw.JumpPressed, raw.JumpJustPressed)
	}

	kb.SetKey("W", false)
	kb.SetKey("Space", false)
	kb.Update(m)

	raw = p.RawInput()
	if !raw.MoveIntent.IsZero() || raw.JumpPressed {
		t.Errorf("after release raw = %+v", raw)
	}
}

func TestPossessionLogging(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	p := New(Config{Name: "hero", Settings: DefaultSettings(), Logger: zap.New(core)})

	p.Possess(NewPlayerController("p1"))
	p.Unpossess()
	p.Unpossess() // no-op

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d log entries, want 2", len(entries))
	}
	if entries[0].Message != "possessed" || entries[1].Message != "unpossessed" {
		t.Errorf("messages = %q, %q", entries[0].Message, entries[1].Message)
	}
	if got := entries[0].ContextMap()["pawn"]; got != "hero" {
		t.Errorf("pawn field = %v, want hero", got)
	}
}

func TestPlayerControllerRotation(t *testing.T) {
	pc := NewPlayerController("p1")

	pc.AddYawInput(-90)
	if got := pc.ControlRotation().Yaw; got != 270 {
		t.Errorf("yaw = %v, want 270", got)
	}
	pc.AddYawInput(100)
	if got := pc.ControlRotation().Yaw; got != 10 {
		t.Errorf("yaw = %v, want 10", got)
	}

	pc.AddPitchInput(120)
	if got := pc.ControlRotation().Pitch; got != MaxPitch {
		t.Errorf("pitch = %v, want %v", got, MaxPitch)
	}
	pc.SetControlRotation(math.Rotator{Pitch: -200, Yaw: 725})
	r := pc.ControlRotation()
	if r.Pitch != MinPitch || r.Yaw != 5 {
		t.Errorf("SetControlRotation = %+v, want pitch %v yaw 5", r, MinPitch)
	}
}

func TestPlayerControllerNonFiniteInput(t *testing.T) {
	inf := float32(stdmath.Inf(1))
	nan := float32(stdmath.NaN())

	pc := NewPlayerController("p1")
	pc.SetControlRotation(math.Rotator{Pitch: 10, Yaw: 45})

	pc.AddYawInput(inf)
	pc.AddYawInput(-inf)
	pc.AddYawInput(nan)
	pc.AddPitchInput(nan)
	r := pc.ControlRotation()
	if r.Yaw != 45 || r.Pitch != 10 {
		t.Errorf("rotation after non-finite input = %+v, want pitch 10 yaw 45", r)
	}

	pc.AddPitchInput(inf)
	if got := pc.ControlRotation().Pitch; got != MaxPitch {
		t.Errorf("pitch = %v, want %v", got, MaxPitch)
	}

	pc.SetControlRotation(math.Rotator{Yaw: inf})
	if got := pc.ControlRotation().Yaw; got != 0 {
		t.Errorf("SetControlRotation(+Inf) yaw = %v, want 0", got)
	}
}

func TestWrapYaw(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{359, 359},
		{360, 0},
		{725, 5},
		{-90, 270},
		{-720, 0},
		{3.6e9, 0},
		{-1e-9, 0},
	}
	for _, tt := range tests {
		if got := wrapYaw(tt.in); got != tt.want {
			t.Errorf("wrapYaw(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseNetRole(t *testing.T) {
	for _, r := range []NetRole{RoleNone, RoleSimulatedProxy, RoleAutonomousProxy, RoleAuthority} {
		got, err := ParseNetRole(r.String())
		if err != nil || got != r {
			t.Errorf("ParseNetRole(%q) = %v, %v", r.String(), got, err)
		}
	}
	if _, err := ParseNetRole("server"); err == nil {
		t.Error("expected error for unknown role")
	}
}
