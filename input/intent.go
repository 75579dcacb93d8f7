package input

// IntentType discriminates semantic actions parsed from terminal events
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // Ctrl+C, Ctrl+Q, q while unlocked
	IntentResize // terminal resize event

	// Capture lock transitions
	IntentLock    // Enter or click on the surface
	IntentRelease // ESC

	// Observer controls
	IntentMove      // directional key press (see Action)
	IntentSpeedUp   // ']' or '+' — one BetaStep increment
	IntentSpeedDown // '[' or '-' — one BetaStep decrement
	IntentLook      // pointer motion while locked (DX/DY cells)
)

// Action identifies one of the four directional movement inputs
type Action uint8

const (
	ActionNone Action = iota
	ActionForward
	ActionBack
	ActionLeft
	ActionRight
)

// Intent is a parsed semantic action. Pure data, no engine dependencies
type Intent struct {
	Type   IntentType
	Action Action
	DX, DY int // look deltas in cells, IntentLook only
}
