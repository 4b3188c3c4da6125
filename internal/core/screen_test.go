package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'X', ColorRed)
	g := s.Glyph(5, 5)
	if g.Rune != 'X' || g.Color != ColorRed {
		t.Errorf("Glyph(5, 5) = %+v, expected red 'X'", g)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if got := s.Row(1); !strings.HasPrefix(got, "  Hello") {
		t.Errorf("Row(1) = %q, expected to start with '  Hello'", got)
	}

	// Clipped at right boundary
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorDefault)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, row = %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 2, 'X')
	s.DrawBox(1, 1, 5, 4, ColorDefault)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("Box corners not drawn")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("Box edges not drawn")
	}
	if s.Get(2, 2) != ' ' {
		t.Error("Box interior should be cleared")
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "AAA")
	s.DrawText(0, 1, "BBB")

	if got := s.String(); got != "AAA\nBBB" {
		t.Errorf("String() = %q, expected %q", got, "AAA\nBBB")
	}

	s.Resize(4, 1)
	if s.Width() != 4 || s.Height() != 1 {
		t.Errorf("After resize, dimensions should be 4x1, got %dx%d", s.Width(), s.Height())
	}
	if s.Row(0) != "    " {
		t.Errorf("Resize should clear content, got %q", s.Row(0))
	}
	if s.Row(-1) != "    " {
		t.Error("Out of bounds row should be spaces")
	}
}
