// Package input handles SDL2 input events and keyboard state.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/skydrop/internal/game/controls"
)

// Event types for game use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Width  int
	Height int
}

// scancodes maps game keys to physical keys.
var scancodes = [controls.KeyCount]sdl.Scancode{
	controls.KeyW:      sdl.SCANCODE_W,
	controls.KeyA:      sdl.SCANCODE_A,
	controls.KeyS:      sdl.SCANCODE_S,
	controls.KeyD:      sdl.SCANCODE_D,
	controls.KeyShift:  sdl.SCANCODE_LSHIFT,
	controls.KeyUp:     sdl.SCANCODE_UP,
	controls.KeyDown:   sdl.SCANCODE_DOWN,
	controls.KeyLeft:   sdl.SCANCODE_LEFT,
	controls.KeyRight:  sdl.SCANCODE_RIGHT,
	controls.KeyJ:      sdl.SCANCODE_J,
	controls.KeyN:      sdl.SCANCODE_N,
	controls.KeyB:      sdl.SCANCODE_B,
	controls.KeyM:      sdl.SCANCODE_M,
	controls.KeyH:      sdl.SCANCODE_H,
	controls.KeyK:      sdl.SCANCODE_K,
	controls.KeySpace:  sdl.SCANCODE_SPACE,
	controls.Key1:      sdl.SCANCODE_1,
	controls.Key2:      sdl.SCANCODE_2,
	controls.KeyZ:      sdl.SCANCODE_Z,
	controls.KeyX:      sdl.SCANCODE_X,
	controls.KeyP:      sdl.SCANCODE_P,
	controls.KeyF12:    sdl.SCANCODE_F12,
	controls.KeyEscape: sdl.SCANCODE_ESCAPE,
}

// Input handles all input processing.
type Input struct {
	events   []Event
	keyboard []uint8
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to game events.
// Returns true if the game should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}
		}
	}

	// The returned slice is owned by SDL and refreshed by PollEvent.
	i.keyboard = sdl.GetKeyboardState()
	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Down reports whether a game key is held. It implements controls.KeyState.
func (i *Input) Down(k controls.Key) bool {
	if k >= controls.KeyCount {
		return false
	}
	sc := int(scancodes[k])
	return sc < len(i.keyboard) && i.keyboard[sc] != 0
}
