package tui

import (
	"time"

	"github.com/vovakirdan/arcade-shooter/internal/core"
)

// HeldKeys approximates key state from a terminal, which reports presses
// and auto-repeats but never releases. A key counts as held until hold has
// passed since its last press.
type HeldKeys struct {
	hold time.Duration
	last map[core.Action]time.Time
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(hold time.Duration) *HeldKeys {
	return &HeldKeys{
		hold: hold,
		last: make(map[core.Action]time.Time),
	}
}

// Press records a press or auto-repeat of the action at now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	h.last[a] = now
}

// Held reports whether the action is held at now.
func (h *HeldKeys) Held(a core.Action, now time.Time) bool {
	at, ok := h.last[a]
	if !ok {
		return false
	}
	return now.Sub(at) <= h.hold
}

// Fill sets every action held at now on the frame and forgets expired ones.
func (h *HeldKeys) Fill(frame *core.InputFrame, now time.Time) {
	for a := range h.last {
		if h.Held(a, now) {
			frame.Set(a)
		} else {
			delete(h.last, a)
		}
	}
}

// Release forgets all keys, e.g. after a restart.
func (h *HeldKeys) Release() {
	clear(h.last)
}
