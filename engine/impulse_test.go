package engine

import (
	"testing"

	"github.com/lixenwraith/pong-patrol/parameter"
)

// TestImpulseOneFrame verifies the signal lasts until the next frame advance
func TestImpulseOneFrame(t *testing.T) {
	var imp Impulse

	if imp.Value() != 0 {
		t.Errorf("Expected zero initial impulse, got %f", imp.Value())
	}

	imp.Trigger()
	if imp.Value() != parameter.ImpulseMagnitude {
		t.Errorf("Expected impulse %f, got %f", parameter.ImpulseMagnitude, imp.Value())
	}
	if imp.Level() != 1 {
		t.Errorf("Expected level 1, got %f", imp.Level())
	}

	imp.Advance()
	if imp.Value() != 0 {
		t.Errorf("Expected impulse relaxed to 0, got %f", imp.Value())
	}
}
