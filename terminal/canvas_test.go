package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-towers/asset"
	"github.com/lixenwraith/vi-towers/render"
	"github.com/lixenwraith/vi-towers/vmath"
)

var (
	red  = render.RGB(255, 0, 0)
	blue = render.RGB(0, 0, 255)
)

func newTestCanvas() *Canvas {
	c := NewCanvas(10, 4, ColorModeTrueColor)
	c.Clear(render.RgbBlack)
	return c
}

func TestCanvasSize(t *testing.T) {
	c := newTestCanvas()
	if got := c.Size(); got != vmath.V(80, 64) {
		t.Errorf("Expected 80x64 world units, got %v", got)
	}
}

func TestFillRectCoversPixels(t *testing.T) {
	c := newTestCanvas()
	c.FillRect(vmath.R(0, 0, 16, 16), red)

	for x := 0; x < 2; x++ {
		top, bottom, _ := c.At(x, 0)
		if top != red || bottom != red {
			t.Errorf("Expected cell %d filled, got %v %v", x, top, bottom)
		}
	}
	if top, _, _ := c.At(2, 0); top != render.RgbBlack {
		t.Errorf("Expected cell 2 untouched, got %v", top)
	}
}

func TestThinRectStaysVisible(t *testing.T) {
	c := newTestCanvas()
	c.FillRect(vmath.R(0, 10, 8, 3), red)

	top, bottom, _ := c.At(0, 0)
	if top != render.RgbBlack || bottom != red {
		t.Errorf("Expected lower half only, got %v %v", top, bottom)
	}
}

func TestTransformApplies(t *testing.T) {
	c := newTestCanvas()
	c.Save()
	c.Translate(vmath.V(16, 16))
	c.Scale(2)
	c.FillRect(vmath.R(0, 0, 4, 4), blue)
	c.Restore()

	if top, _, _ := c.At(2, 1); top != blue {
		t.Errorf("Expected translated and scaled fill at cell (2,1), got %v", top)
	}
	if top, _, _ := c.At(0, 0); top != render.RgbBlack {
		t.Errorf("Expected origin untouched, got %v", top)
	}
}

func TestClipLimitsFill(t *testing.T) {
	c := newTestCanvas()
	c.Save()
	c.Clip(vmath.R(0, 0, 8, 16))
	c.FillRect(vmath.R(0, 0, 80, 64), red)
	c.Restore()

	if top, _, _ := c.At(0, 0); top != red {
		t.Errorf("Expected clipped cell filled, got %v", top)
	}
	if top, _, _ := c.At(1, 0); top != render.RgbBlack {
		t.Errorf("Expected cell outside clip untouched, got %v", top)
	}
}

func TestFillCircle(t *testing.T) {
	c := newTestCanvas()
	c.FillCircle(vmath.V(40, 32), 8, red)

	if top, _, _ := c.At(5, 2); top != red {
		t.Errorf("Expected circle center filled, got %v", top)
	}
	if top, _, _ := c.At(0, 0); top != render.RgbBlack {
		t.Errorf("Expected far cell untouched, got %v", top)
	}
}

func TestTextAlignment(t *testing.T) {
	c := newTestCanvas()
	c.Text(vmath.V(40, 8), "abc", render.AlignCenter, render.RgbText)

	for i, want := range "abc" {
		if _, _, g := c.At(4+i, 0); g != want {
			t.Errorf("Expected %q at column %d, got %q", want, 4+i, g)
		}
	}

	c.Text(vmath.V(80, 24), "xy", render.AlignRight, render.RgbText)
	if _, _, g := c.At(9, 1); g != 'y' {
		t.Errorf("Expected right aligned text ending at column 9, got %q", g)
	}
}

func TestOpaqueShapeHidesGlyph(t *testing.T) {
	c := newTestCanvas()
	c.Text(vmath.V(4, 8), "a", render.AlignLeft, render.RgbText)
	c.FillRect(vmath.R(0, 0, 8, 16), red)

	if _, _, g := c.At(0, 0); g != 0 {
		t.Errorf("Expected glyph covered, got %q", g)
	}
}

func TestImageDrawsGlyph(t *testing.T) {
	c := newTestCanvas()
	img := asset.NewImage("turret.png", '^', '>', 'v', '<')

	ok := c.Image(img, render.ImageOptions{Pos: vmath.V(12, 8), Turns: 1})
	if !ok {
		t.Fatal("Expected glyph stand-in drawn")
	}
	if _, _, g := c.At(1, 0); g != '>' {
		t.Errorf("Expected '>' for one quarter turn, got %q", g)
	}

	if c.Image(asset.NewImage("plain.png"), render.ImageOptions{Pos: vmath.V(12, 8)}) {
		t.Error("Expected image without glyphs to draw nothing")
	}
}

func TestFlushWritesHalfBlocks(t *testing.T) {
	scr := tcell.NewSimulationScreen("UTF-8")
	if err := scr.Init(); err != nil {
		t.Fatalf("Expected simulation screen, got %v", err)
	}
	defer scr.Fini()
	scr.SetSize(10, 4)

	c := newTestCanvas()
	c.FillRect(vmath.R(0, 0, 8, 8), red)
	c.Text(vmath.V(12, 8), "q", render.AlignLeft, render.RgbText)
	c.Flush(scr)

	cells, w, _ := scr.GetContents()
	if w != 10 {
		t.Fatalf("Expected width 10, got %d", w)
	}
	if r := cells[0].Runes; len(r) == 0 || r[0] != '▀' {
		t.Errorf("Expected half block at (0,0), got %v", r)
	}
	if r := cells[1].Runes; len(r) == 0 || r[0] != 'q' {
		t.Errorf("Expected glyph at (1,0), got %v", r)
	}
	if r := cells[2].Runes; len(r) == 0 || r[0] != ' ' {
		t.Errorf("Expected blank at (2,0), got %v", r)
	}
}

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    uint8
	}{
		{0, 0, 0, 16},
		{255, 255, 255, 231},
		{255, 0, 0, 196},
		{0, 0, 255, 21},
		{128, 128, 128, 244},
	}
	for _, tt := range tests {
		if got := rgbTo256(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("Expected %d for (%d,%d,%d), got %d", tt.want, tt.r, tt.g, tt.b, got)
		}
	}
}

func TestParseColorMode(t *testing.T) {
	if ParseColorMode("256") != ColorMode256 {
		t.Error("Expected 256 mode")
	}
	if ParseColorMode("truecolor") != ColorModeTrueColor {
		t.Error("Expected truecolor mode")
	}
	t.Setenv("COLORTERM", "truecolor")
	if ParseColorMode("auto") != ColorModeTrueColor {
		t.Error("Expected auto to detect truecolor from COLORTERM")
	}
}
