package input

import (
	"time"
)

// KeyState exposes the boolean held-state of the four directional actions.
// A press arms the action until hold elapses; autorepeat keeps refreshing
// the deadline, so a physically held key reads as continuously active
type KeyState struct {
	hold      time.Duration
	deadlines [5]time.Time // indexed by Action
}

// NewKeyState creates a tracker with the given hold window. The window
// must exceed the terminal's autorepeat interval or held keys stutter
func NewKeyState(hold time.Duration) *KeyState {
	return &KeyState{hold: hold}
}

// Press arms action at time now
func (k *KeyState) Press(action Action, now time.Time) {
	if action == ActionNone {
		return
	}
	k.deadlines[action] = now.Add(k.hold)
}

// Active reports whether action is held at time now
func (k *KeyState) Active(action Action, now time.Time) bool {
	return now.Before(k.deadlines[action])
}

// Reset drops all held actions, used on lock release so keystrokes from
// the unlocked interval cannot leak into the next locked session
func (k *KeyState) Reset() {
	k.deadlines = [5]time.Time{}
}

// Axes folds the four directionals into forward/right components in
// {-1, 0, +1}; opposing keys cancel
func (k *KeyState) Axes(now time.Time) (forward, right float64) {
	if k.Active(ActionForward, now) {
		forward++
	}
	if k.Active(ActionBack, now) {
		forward--
	}
	if k.Active(ActionRight, now) {
		right++
	}
	if k.Active(ActionLeft, now) {
		right--
	}
	return forward, right
}
