package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '*')
	if got := s.Get(3, 2); got != '*' {
		t.Errorf("Get(3,2) = %q, want '*'", got)
	}

	// Out-of-bounds writes are ignored and reads return space
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 1, '#', ColorRed)

	cell := s.GetCell(1, 1)
	if cell.Rune != '#' || cell.Color != ColorRed {
		t.Errorf("GetCell(1,1) = %+v, want '#' in red", cell)
	}

	if cell := s.GetCell(0, 0); cell.Color != ColorDefault {
		t.Errorf("untouched cell color = %v, want default", cell.Color)
	}
}

func TestScreenDrawTextClipping(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawText(3, 0, "hello")

	if row := s.Row(0); row != "   he" {
		t.Errorf("Row(0) = %q, want %q", row, "   he")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 3)
	s.SetColored(1, 1, 'x', ColorBlue)
	s.Clear()

	if s.Get(1, 1) != ' ' {
		t.Error("Clear should reset runes to space")
	}
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear should reset colors to default")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 3)
	s.Set(1, 1, 'a')
	s.Set(5, 2, 'b')

	s.Resize(4, 2)

	if s.Get(1, 1) != 'a' {
		t.Error("Resize should preserve content inside the new bounds")
	}
	if s.Width() != 4 || s.Height() != 2 {
		t.Errorf("size = %dx%d, want 4x2", s.Width(), s.Height())
	}

	s.Resize(8, 4)
	if s.Get(1, 1) != 'a' {
		t.Error("growing should preserve surviving content")
	}
	if s.Get(7, 3) != ' ' {
		t.Error("new cells should be blank")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(NewRect(1, 1, 3, 2), '#', ColorGreen)

	for y := 1; y < 3; y++ {
		for x := 1; x < 4; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("cell (%d,%d) = %q, want '#'", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(0, 0) != ' ' || s.Get(4, 1) != ' ' {
		t.Error("DrawRect should not paint outside the rect")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if strings.Count(s.String(), "\n") != 1 {
		t.Error("String() should join rows with single newlines")
	}
}

func TestScreenDrawTextMultibyteRunes(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(2, 0, "a✦b")

	// One cell per rune, regardless of byte width.
	if s.Get(2, 0) != 'a' || s.Get(3, 0) != '✦' || s.Get(4, 0) != 'b' {
		t.Errorf("row = %q, want runes in consecutive cells", s.Row(0))
	}
	if s.Get(5, 0) != ' ' {
		t.Errorf("cell (5,0) = %q, want space", s.Get(5, 0))
	}
}

func TestScreenDrawTextCenteredMultibyte(t *testing.T) {
	s := NewScreen(9, 1)
	s.DrawTextCentered(0, "✦✦✦")

	// Three runes on a 9-wide screen center at column 3.
	for x := 3; x <= 5; x++ {
		if s.Get(x, 0) != '✦' {
			t.Errorf("cell (%d,0) = %q, want '✦'", x, s.Get(x, 0))
		}
	}
	if s.Get(2, 0) != ' ' || s.Get(6, 0) != ' ' {
		t.Errorf("row = %q, want text centered with space margins", s.Row(0))
	}
}

func TestScreenDrawTextRight(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextRight(0, "✦")

	// A single-rune marker ends one cell short of the right edge.
	if s.Get(8, 0) != '✦' {
		t.Errorf("cell (8,0) = %q, want '✦'", s.Get(8, 0))
	}
	if s.Get(9, 0) != ' ' {
		t.Errorf("cell (9,0) = %q, want space", s.Get(9, 0))
	}

	s.Clear()
	s.DrawTextRight(0, "PAUSED")
	if got := s.Row(0); got != "   PAUSED " {
		t.Errorf("Row(0) = %q, want %q", got, "   PAUSED ")
	}
}
