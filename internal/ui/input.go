package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pong/internal/input"
)

// HoldTicks is how many frames a key stays down after its last event.
// It has to outlast the terminal's initial key repeat delay.
const HoldTicks = 30

var specialKeys = map[tcell.Key]input.Key{
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyDown:       input.KeyDown,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyF1:         input.KeyF1,
	tcell.KeyF2:         input.KeyF2,
	tcell.KeyF3:         input.KeyF3,
	tcell.KeyF4:         input.KeyF4,
	tcell.KeyF5:         input.KeyF5,
	tcell.KeyF6:         input.KeyF6,
	tcell.KeyF7:         input.KeyF7,
	tcell.KeyF8:         input.KeyF8,
	tcell.KeyF9:         input.KeyF9,
	tcell.KeyF10:        input.KeyF10,
	tcell.KeyF11:        input.KeyF11,
	tcell.KeyF12:        input.KeyF12,
}

// KeyFromEvent converts a terminal key event to a game key
func KeyFromEvent(ev *tcell.EventKey) (input.Key, bool) {
	if ev.Key() == tcell.KeyRune {
		return input.LetterKey(ev.Rune())
	}
	k, ok := specialKeys[ev.Key()]
	return k, ok
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// HoldTracker emulates key-up events, which terminals never send.
// A pressed key is released after it has seen no event for a number of frames.
type HoldTracker struct {
	ticks int
	left  map[input.Key]int
}

func NewHoldTracker(ticks int) *HoldTracker {
	return &HoldTracker{ticks: ticks, left: make(map[input.Key]int)}
}

// Press records a press or repeat event for k
func (h *HoldTracker) Press(k input.Key) {
	h.left[k] = h.ticks
}

// Release drops k immediately
func (h *HoldTracker) Release(k input.Key, s *input.State) {
	delete(h.left, k)
	s.Release(k)
}

// Step ages every held key by one frame and releases the expired ones in s
func (h *HoldTracker) Step(s *input.State) {
	for k, n := range h.left {
		n--
		if n <= 0 {
			delete(h.left, k)
			s.Release(k)
			continue
		}
		h.left[k] = n
	}
}

// Held reports whether k is still considered down
func (h *HoldTracker) Held(k input.Key) bool {
	_, ok := h.left[k]
	return ok
}
