package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, want 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("new screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}

	if empty := NewScreen(-3, 2); empty.Width() != 0 || empty.String() != "\n" {
		t.Errorf("negative width should give an empty screen, got %dx%d %q", empty.Width(), empty.Height(), empty.String())
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, '^', ColorBrightYellow)
	if cell := s.GetCell(5, 5); cell.Rune != '^' || cell.Color != ColorBrightYellow {
		t.Errorf("GetCell(5, 5) = %+v, want '^' in bright yellow", cell)
	}

	// Off-screen writes are dropped.
	for _, p := range [][2]int{{-1, 0}, {10, 0}, {0, -1}, {0, 10}} {
		s.SetColored(p[0], p[1], 'A', ColorRed)
	}
	if strings.ContainsRune(s.String(), 'A') {
		t.Error("off-screen writes should not wrap onto the screen")
	}
	if s.Get(-1, 0) != ' ' || s.GetCell(100, 0).Color != ColorDefault {
		t.Error("off-screen reads should return a blank cell")
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(6, 4)
	s.Fill(NewRect(-2, 1, 5, 10), '#', ColorGray)

	want := "\n###\n###\n###"
	if got := s.String(); got != want {
		t.Errorf("Fill clipped wrong:\n%q\nwant\n%q", got, want)
	}
	if s.GetCell(2, 3).Color != ColorGray {
		t.Error("Fill should color every cell")
	}

	s.Clear()
	if strings.TrimSpace(s.String()) != "" {
		t.Error("Clear should blank the screen")
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColored(0, 0, "°C", ColorCyan)

	if s.Get(0, 0) != '°' || s.Get(1, 0) != 'C' {
		t.Errorf("multibyte text should advance one cell per rune, got %q", s.String())
	}
	if s.GetCell(1, 0).Color != ColorCyan {
		t.Error("every cell should carry the color")
	}

	s.DrawTextColored(8, 1, "rover", ColorDefault)
	if s.Get(8, 1) != 'r' || s.Get(9, 1) != 'o' {
		t.Error("text should be clipped at the right edge")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawTextColored(0, 0, "AAAAA", ColorDefault)
	s.DrawTextColored(1, 1, "B", ColorDefault)
	s.DrawTextColored(0, 2, "CC", ColorDefault)

	want := "AAAAA\n B\nCC"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorGreen)

	s.Resize(3, 2)
	if s.Width() != 3 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", s.Width(), s.Height())
	}
	if got := s.String(); got != "Hel\n" {
		t.Errorf("shrink should keep the top-left content, got %q", got)
	}

	s.Resize(8, 4)
	if !strings.HasPrefix(s.String(), "Hel\n") {
		t.Errorf("grow should keep content, got %q", s.String())
	}
	if s.GetCell(0, 0).Color != ColorGreen {
		t.Error("resize should keep colors")
	}
	if s.Get(5, 3) != ' ' {
		t.Error("new area should be blank")
	}
}
