package engine

import "testing"

// TestDefaultEnemyRoster verifies roster shape and that every entry can patrol
func TestDefaultEnemyRoster(t *testing.T) {
	roster := DefaultEnemyRoster()
	if len(roster) != 13 {
		t.Fatalf("Expected 13 enemies, got %d", len(roster))
	}

	right := 0
	for i, spec := range roster {
		if err := spec.Validate(); err != nil {
			t.Errorf("Enemy %d invalid: %v", i, err)
		}
		if spec.Direction == DirectionRight {
			right++
		}
	}
	if right != 6 {
		t.Errorf("Expected 6 right-side enemies, got %d", right)
	}

	// Fresh copy each call
	roster[0].Lane = 42
	if DefaultEnemyRoster()[0].Lane == 42 {
		t.Error("Expected DefaultEnemyRoster to return an independent copy")
	}
}

// TestParseDirection verifies accepted spellings and rejection of others
func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"left", DirectionLeft, false},
		{"RIGHT", DirectionRight, false},
		{" right ", DirectionRight, false},
		{"up", DirectionLeft, true},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDirection(%q): unexpected error state %v", tt.in, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseDirection(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

// TestEnemySpecValidate verifies non-positive speeds are rejected
func TestEnemySpecValidate(t *testing.T) {
	if err := (EnemySpec{Speed: 0, Color: "cyan"}).Validate(); err == nil {
		t.Error("Expected error for zero speed")
	}
	if err := (EnemySpec{Speed: 0.1}).Validate(); err == nil {
		t.Error("Expected error for empty color")
	}
}

// TestParseSize verifies size spellings, with empty defaulting to short
func TestParseSize(t *testing.T) {
	for in, want := range map[string]Size{"": SizeShort, "short": SizeShort, "Long": SizeLong} {
		got, err := ParseSize(in)
		if err != nil || got != want {
			t.Errorf("ParseSize(%q): expected %v, got %v (err %v)", in, want, got, err)
		}
	}
	if _, err := ParseSize("huge"); err == nil {
		t.Error("Expected error for unknown size")
	}
}
