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

	s.SetWithColor(5, 5, 'X', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", cell)
	}

	// Out of bounds writes are ignored
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0).Color != ColorDefault {
		t.Error("Out of bounds GetCell should return the default colour")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			s.SetWithColor(x, y, '#', ColorBlue)
		}
	}

	s.Clear()

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextWithColor(7, 0, "WORDS", ColorYellow)

	if got := s.Row(0); got != "       WOR" {
		t.Errorf("Row(0) = %q, expected clipped text", got)
	}
	if s.GetCell(8, 0).Color != ColorYellow {
		t.Error("DrawTextWithColor should colour every rune")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "CAT", ColorDefault)

	if got := s.Row(0); got != "    CAT    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4), ColorGray)

	want := []string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}
	if got := s.String(); got != strings.Join(want, "\n") {
		t.Errorf("DrawBox produced:\n%s", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'Q')

	s.Resize(6, 2)

	if s.Width() != 6 || s.Height() != 2 {
		t.Fatalf("Resize: got %dx%d, expected 6x2", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize should clear the buffer")
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, expected blank row", got)
	}
}
