package app

import "cgol/internal/core"

// Event is an input event delivered to a Session. Events are plain values so
// the dispatch logic is exercisable without a window or event system.
type Event interface {
	isEvent()
}

// ToggleMode switches between play and edit mode.
type ToggleMode struct{}

// ToggleTheme switches between the dark and light palette.
type ToggleTheme struct{}

// Quit asks the session to terminate at the end of the frame.
type Quit struct{}

// StepOnce advances a single generation while editing.
type StepOnce struct{}

// Clear kills every cell while editing.
type Clear struct{}

// Randomize replaces the board with a random soup while editing.
type Randomize struct {
	Seed int64
}

// Paint writes one cell under a screen position while editing. X and Y are
// pixels in the logical screen; positions outside the board are ignored.
type Paint struct {
	X, Y  int
	State core.State
}

func (ToggleMode) isEvent()  {}
func (ToggleTheme) isEvent() {}
func (Quit) isEvent()        {}
func (StepOnce) isEvent()    {}
func (Clear) isEvent()       {}
func (Randomize) isEvent()   {}
func (Paint) isEvent()       {}
