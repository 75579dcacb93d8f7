// Package input parses tcell events into semantic intents and tracks held
// movement keys. Terminals report key autorepeat but never key release, so
// "held" is emulated: each press arms the action until a hold deadline
// lapses without a repeat.
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine parses tcell.Event into Intent. It is lock-state aware only as
// far as parsing requires: pointer deltas are emitted unconditionally and
// the engine decides whether they steer the camera
type Machine struct {
	moveKeys map[rune]Action

	// Previous pointer cell for delta derivation
	mouseX, mouseY int
	mouseSeen      bool
}

// NewMachine creates an input machine with the default key table
func NewMachine() *Machine {
	return &Machine{
		moveKeys: map[rune]Action{
			'w': ActionForward,
			's': ActionBack,
			'a': ActionLeft,
			'd': ActionRight,
		},
	}
}

// Process parses one terminal event. Returns nil for events that carry no
// semantic action
func (m *Machine) Process(ev tcell.Event, locked bool) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev, locked)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey, locked bool) *Intent {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return &Intent{Type: IntentQuit}
	case tcell.KeyEscape:
		return &Intent{Type: IntentRelease}
	case tcell.KeyEnter:
		return &Intent{Type: IntentLock}
	case tcell.KeyUp:
		return &Intent{Type: IntentMove, Action: ActionForward}
	case tcell.KeyDown:
		return &Intent{Type: IntentMove, Action: ActionBack}
	case tcell.KeyLeft:
		return &Intent{Type: IntentMove, Action: ActionLeft}
	case tcell.KeyRight:
		return &Intent{Type: IntentMove, Action: ActionRight}
	case tcell.KeyRune:
		return m.processRune(ev.Rune(), locked)
	}
	return nil
}

func (m *Machine) processRune(r rune, locked bool) *Intent {
	if action, ok := m.moveKeys[r]; ok {
		return &Intent{Type: IntentMove, Action: action}
	}
	switch r {
	case ']', '+', '=':
		return &Intent{Type: IntentSpeedUp}
	case '[', '-':
		return &Intent{Type: IntentSpeedDown}
	case 'q':
		// Quit only while unlocked; locked sessions reserve all runes for
		// movement mistakes without killing the viewer
		if !locked {
			return &Intent{Type: IntentQuit}
		}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()

	if ev.Buttons()&tcell.Button1 != 0 {
		m.mouseX, m.mouseY, m.mouseSeen = x, y, true
		return &Intent{Type: IntentLock}
	}

	if !m.mouseSeen {
		m.mouseX, m.mouseY, m.mouseSeen = x, y, true
		return nil
	}
	dx, dy := x-m.mouseX, y-m.mouseY
	m.mouseX, m.mouseY = x, y
	if dx == 0 && dy == 0 {
		return nil
	}
	return &Intent{Type: IntentLook, DX: dx, DY: dy}
}
