// Package sdlinput feeds SDL2 keyboard and mouse events into the input package.
package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/mover-pawn/internal/input"
)

// Source polls SDL events into a Keyboard and accumulates mouse motion.
type Source struct {
	keyboard *input.Keyboard

	mouseDX, mouseDY int32
}

// New creates an SDL input source writing key state into kb.
func New(kb *input.Keyboard) *Source {
	return &Source{keyboard: kb}
}

// Update polls pending SDL events.
// Returns true if the application should quit.
func (s *Source) Update() bool {
	s.mouseDX, s.mouseDY = 0, 0

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE && e.Type == sdl.KEYDOWN {
				return true
			}
			name := sdl.GetScancodeName(e.Keysym.Scancode)
			s.keyboard.SetKey(name, e.Type == sdl.KEYDOWN)

		case *sdl.MouseMotionEvent:
			s.mouseDX += e.XRel
			s.mouseDY += e.YRel
		}
	}

	return false
}

// MouseDelta returns the mouse motion accumulated during the last Update.
func (s *Source) MouseDelta() (dx, dy float32) {
	return float32(s.mouseDX), float32(s.mouseDY)
}
