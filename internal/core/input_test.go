package core

import "testing"

func TestParseIntent(t *testing.T) {
	tests := []struct {
		symbol string
		dir    Direction
		ok     bool
	}{
		{"ArrowLeft", DirLeft, true},
		{"ArrowRight", DirRight, true},
		{"ArrowUp", DirUp, true},
		{"ArrowDown", DirDown, true},
		{"left", DirLeft, true},
		{"W", DirUp, true},
		{"j", DirDown, true},
		{"l", DirRight, true},
		{"Space", DirNone, false},
		{"", DirNone, false},
		{"KeyQ", DirNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.symbol, func(t *testing.T) {
			dir, ok := ParseIntent(tc.symbol)
			if ok != tc.ok || dir != tc.dir {
				t.Errorf("ParseIntent(%q) = (%v, %v), expected (%v, %v)", tc.symbol, dir, ok, tc.dir, tc.ok)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	if DirUp.String() != "up" {
		t.Errorf("DirUp.String() = %q", DirUp.String())
	}
	if Direction(42).String() != "unknown" {
		t.Errorf("Direction(42).String() = %q", Direction(42).String())
	}
}
