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

	// Check that it's initialized with blanks
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if got := s.GetCell(x, y); got != blank {
				t.Errorf("New screen should be blank, got %+v at (%d, %d)", got, x, y)
			}
		}
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("NewScreen(-3, -1) = %dx%d, expected 0x0", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("String() = %q, expected empty", s.String())
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(5, 5)

	s.SetCell(2, 3, 'A', ColorPlayerA)
	cell := s.GetCell(2, 3)
	if cell.Rune != 'A' || cell.Color != ColorPlayerA {
		t.Errorf("GetCell(2, 3) = %+v, expected {A PlayerA}", cell)
	}

	// Out of bounds should be silent
	s.SetCell(-1, 0, 'X', ColorWall)
	s.SetCell(100, 0, 'X', ColorWall)
	s.SetCell(0, -1, 'X', ColorWall)
	s.SetCell(0, 100, 'X', ColorWall)

	if got := s.GetCell(9, 9); got != (Cell{Rune: ' ', Color: ColorDefault}) {
		t.Errorf("Out of bounds GetCell = %+v, expected blank", got)
	}
	if got := s.GetCell(-1, 0); got != blank {
		t.Errorf("Out of bounds GetCell = %+v, expected blank", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, 'X', ColorWall)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if cell := s.GetCell(x, y); cell != blank {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawTextColor(2, 1, "Hello", ColorStatus)

	for i, r := range "Hello" {
		cell := s.GetCell(2+i, 1)
		if cell.Rune != r || cell.Color != ColorStatus {
			t.Errorf("DrawTextColor: expected %q at (%d, 1), got %+v", r, 2+i, cell)
		}
	}

	// Text beyond bounds is clipped
	s.DrawTextColor(18, 2, "Hello", ColorStatus)
	if s.GetCell(18, 2).Rune != 'H' || s.GetCell(19, 2).Rune != 'e' {
		t.Error("DrawTextColor should draw visible part of clipped text")
	}
}

func TestScreenDrawTextColorMultibyte(t *testing.T) {
	s := NewScreen(10, 1)

	// Multibyte runes occupy one cell each
	s.DrawTextColor(0, 0, "█a", ColorWall)
	if s.GetCell(0, 0).Rune != '█' || s.GetCell(1, 0).Rune != 'a' {
		t.Errorf("Row(0) = %q, expected %q prefix", s.Row(0), "█a")
	}
	if s.GetCell(1, 0).Color != ColorWall {
		t.Errorf("Color at (1, 0) = %v, expected Wall", s.GetCell(1, 0).Color)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawTextCentered(2, "Test", ColorBanner)

	// "Test" is 4 chars, screen is 20, so x = (20-4)/2 = 8
	if s.GetCell(8, 2).Rune != 'T' {
		t.Errorf("DrawTextCentered: expected 'T' at (8, 2), got %q", s.GetCell(8, 2).Rune)
	}
	if s.GetCell(11, 2).Color != ColorBanner {
		t.Errorf("DrawTextCentered: expected Banner color at (11, 2)")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)

	s.DrawBox(NewRect(1, 1, 5, 4), ColorFrame)

	tests := []struct {
		x, y     int
		expected rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
		{2, 1, '─'},
		{1, 2, '│'},
		{3, 2, ' '}, // interior untouched
	}

	for _, tc := range tests {
		if got := s.GetCell(tc.x, tc.y).Rune; got != tc.expected {
			t.Errorf("DrawBox: expected %q at (%d, %d), got %q", tc.expected, tc.x, tc.y, got)
		}
	}
	if s.GetCell(3, 4).Color != ColorFrame {
		t.Error("Box edges should carry the box color")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawTextColor(0, 0, "ABC", ColorDefault)
	s.DrawTextColor(0, 1, "DEF", ColorError)

	expected := "ABC\nDEF"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetCell(2, 2, 'X', ColorWall)

	s.Resize(10, 10)
	if s.Width() != 10 || s.Height() != 10 {
		t.Errorf("After Resize(10, 10), got %dx%d", s.Width(), s.Height())
	}
	if got := s.GetCell(2, 2); got.Rune != 'X' || got.Color != ColorWall {
		t.Errorf("Resize should preserve content, got %+v", got)
	}

	s.Resize(2, 2)
	if s.Width() != 2 || s.Height() != 2 {
		t.Errorf("After Resize(2, 2), got %dx%d", s.Width(), s.Height())
	}
	if s.GetCell(2, 2) != blank {
		t.Error("Shrunk area should read as blank")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawTextColor(0, 1, "Hello", ColorStatus)

	if s.Row(1) != "Hello" {
		t.Errorf("Row(1) = %q, expected 'Hello'", s.Row(1))
	}
	if s.Row(-1) != strings.Repeat(" ", 5) {
		t.Error("Out of bounds row should return spaces")
	}
}
