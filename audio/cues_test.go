package audio

import (
	"testing"
)

func TestDisabledPlayerDropsCues(t *testing.T) {
	p, err := NewPlayer(false)
	if err != nil {
		t.Fatalf("Disabled player must not error: %v", err)
	}
	if p.Enabled() {
		t.Error("Expected player disabled")
	}
	// Cues on a disabled player are no-ops, not panics
	p.SpeedBlip(0.5)
	p.LockCue(true)
	p.LockCue(false)
	p.Close()
}
