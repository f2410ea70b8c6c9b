package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-towers/asset"
	"github.com/lixenwraith/vi-towers/parameter"
	"github.com/lixenwraith/vi-towers/render"
	"github.com/lixenwraith/vi-towers/vmath"
)

// Raster pixel in world units, each terminal cell stacks two pixels under a half block
const (
	pixelWidth  = parameter.TerminalCellWidth
	pixelHeight = parameter.TerminalCellHeight / 2
)

// cell is one terminal character: two pixels and an optional glyph over them
type cell struct {
	top, bottom render.Color
	glyph       rune
	fg          render.Color
}

// Canvas rasterizes world-space shapes onto the terminal cell grid
// Shapes land on half-block pixels, text and image glyphs on whole cells
type Canvas struct {
	render.State
	mode       ColorMode
	cols, rows int
	cells      []cell
}

// NewCanvas creates a canvas for a cols x rows terminal
func NewCanvas(cols, rows int, mode ColorMode) *Canvas {
	c := &Canvas{mode: mode}
	c.Resize(cols, rows)
	c.State.Reset()
	return c
}

// Resize reallocates the grid, contents are lost
func (c *Canvas) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c.cols, c.rows = cols, rows
	if cap(c.cells) >= cols*rows {
		c.cells = c.cells[:cols*rows]
	} else {
		c.cells = make([]cell, cols*rows)
	}
}

// Cells returns the grid size
func (c *Canvas) Cells() (cols, rows int) { return c.cols, c.rows }

// At returns the pixels and glyph of a cell, zero values outside the grid
func (c *Canvas) At(x, y int) (top, bottom render.Color, glyph rune) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return
	}
	cl := c.cells[y*c.cols+x]
	return cl.top, cl.bottom, cl.glyph
}

// Size implements render.Canvas
func (c *Canvas) Size() vmath.Vec2 {
	return vmath.V(float64(c.cols*parameter.TerminalCellWidth), float64(c.rows*parameter.TerminalCellHeight))
}

// Clear implements render.Canvas
func (c *Canvas) Clear(col render.Color) {
	c.State.Reset()
	col.A = 255
	for i := range c.cells {
		c.cells[i] = cell{top: col, bottom: col}
	}
}

// FillRect implements render.Canvas
func (c *Canvas) FillRect(r vmath.Rect, col render.Color) {
	c.fillDevice(c.DeviceRect(r), col)
}

// StrokeRect implements render.Canvas
func (c *Canvas) StrokeRect(r vmath.Rect, width float64, col render.Color) {
	tr := vmath.V(r.Max.X, r.Min.Y)
	bl := vmath.V(r.Min.X, r.Max.Y)
	c.Line(r.Min, tr, width, col)
	c.Line(tr, r.Max, width, col)
	c.Line(r.Max, bl, width, col)
	c.Line(bl, r.Min, width, col)
}

// FillCircle implements render.Canvas
func (c *Canvas) FillCircle(center vmath.Vec2, radius float64, col render.Color) {
	dc := c.Apply(center)
	dr := math.Max(radius*c.Matrix().ScaleFactor(), pixelWidth/2)
	c.eachPixel(vmath.Rect{Min: dc.Sub(vmath.V(dr, dr)), Max: dc.Add(vmath.V(dr, dr))}, func(p vmath.Vec2) bool {
		return p.DistSq(dc) <= dr*dr
	}, col)
}

// StrokeCircle implements render.Canvas
func (c *Canvas) StrokeCircle(center vmath.Vec2, radius, width float64, col render.Color) {
	dc := c.Apply(center)
	scale := c.Matrix().ScaleFactor()
	dr := radius * scale
	hw := math.Max(width*scale/2, pixelWidth/2)
	outer := dr + hw
	c.eachPixel(vmath.Rect{Min: dc.Sub(vmath.V(outer, outer)), Max: dc.Add(vmath.V(outer, outer))}, func(p vmath.Vec2) bool {
		return math.Abs(p.Dist(dc)-dr) <= hw
	}, col)
}

// Line implements render.Canvas, width is below the raster resolution and ignored
func (c *Canvas) Line(a, b vmath.Vec2, width float64, col render.Color) {
	da, db := c.Apply(a), c.Apply(b)
	steps := int(math.Ceil(da.Dist(db)/(pixelWidth/2))) + 1
	lastX, lastY := math.MinInt, math.MinInt
	for i := 0; i <= steps; i++ {
		p := da.Lerp(db, float64(i)/float64(steps))
		px, py := int(math.Floor(p.X/pixelWidth)), int(math.Floor(p.Y/pixelHeight))
		if px == lastX && py == lastY {
			continue
		}
		lastX, lastY = px, py
		c.plot(px, py, col)
	}
}

// Text implements render.Canvas, pos is the vertical middle of the line
func (c *Canvas) Text(pos vmath.Vec2, s string, align render.Align, col render.Color) {
	runes := []rune(s)
	d := c.Apply(pos)
	row := int(math.Floor(d.Y / parameter.TerminalCellHeight))
	x := int(math.Floor(d.X / parameter.TerminalCellWidth))
	switch align {
	case render.AlignCenter:
		x -= len(runes) / 2
	case render.AlignRight:
		x -= len(runes)
	}
	for i, r := range runes {
		c.glyph(x+i, row, r, col)
	}
}

// Image implements render.Canvas by drawing the glyph stand-in, bitmaps are not shown
func (c *Canvas) Image(img *asset.Image, opts render.ImageOptions) bool {
	g := img.Glyph(opts.Turns)
	if g == 0 {
		return false
	}
	tint := opts.Tint
	if tint.A == 0 {
		tint = render.RgbText
	}
	d := c.Apply(opts.Pos)
	return c.glyph(int(math.Floor(d.X/parameter.TerminalCellWidth)), int(math.Floor(d.Y/parameter.TerminalCellHeight)), g, tint)
}

// Flush writes the grid to the screen and shows it
func (c *Canvas) Flush(s tcell.Screen) {
	for y := 0; y < c.rows; y++ {
		for x := 0; x < c.cols; x++ {
			cl := c.cells[y*c.cols+x]
			switch {
			case cl.glyph != 0:
				bg := cl.top.Lerp(cl.bottom, 0.5)
				style := tcell.StyleDefault.Foreground(toTcell(cl.fg, c.mode)).Background(toTcell(bg, c.mode))
				s.SetContent(x, y, cl.glyph, nil, style)
			case cl.top == cl.bottom:
				s.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(toTcell(cl.top, c.mode)))
			default:
				style := tcell.StyleDefault.Foreground(toTcell(cl.top, c.mode)).Background(toTcell(cl.bottom, c.mode))
				s.SetContent(x, y, '▀', nil, style)
			}
		}
	}
	s.Show()
}

// fillDevice plots every pixel whose center lies in r
// Rects thinner than a pixel grow to one pixel so hairlines stay visible
func (c *Canvas) fillDevice(r vmath.Rect, col render.Color) {
	if w := r.W(); w < pixelWidth {
		mid := (r.Min.X + r.Max.X) / 2
		r.Min.X, r.Max.X = mid-pixelWidth/2, mid+pixelWidth/2
	}
	if h := r.H(); h < pixelHeight {
		mid := (r.Min.Y + r.Max.Y) / 2
		r.Min.Y, r.Max.Y = mid-pixelHeight/2, mid+pixelHeight/2
	}
	c.eachPixel(r, func(p vmath.Vec2) bool {
		return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
	}, col)
}

// eachPixel plots pixels in the device box whose centers pass inside
func (c *Canvas) eachPixel(box vmath.Rect, inside func(vmath.Vec2) bool, col render.Color) {
	x0 := max(int(math.Floor(box.Min.X/pixelWidth)), 0)
	y0 := max(int(math.Floor(box.Min.Y/pixelHeight)), 0)
	x1 := min(int(math.Ceil(box.Max.X/pixelWidth)), c.cols)
	y1 := min(int(math.Ceil(box.Max.Y/pixelHeight)), c.rows*2)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			center := vmath.V((float64(px)+0.5)*pixelWidth, (float64(py)+0.5)*pixelHeight)
			if inside(center) {
				c.plot(px, py, col)
			}
		}
	}
}

func (c *Canvas) plot(px, py int, col render.Color) {
	if px < 0 || py < 0 || px >= c.cols || py >= c.rows*2 || col.A == 0 {
		return
	}
	center := vmath.V((float64(px)+0.5)*pixelWidth, (float64(py)+0.5)*pixelHeight)
	if !c.Visible(center) {
		return
	}
	cl := &c.cells[(py/2)*c.cols+px]
	if py%2 == 0 {
		cl.top = cl.top.Blend(col)
	} else {
		cl.bottom = cl.bottom.Blend(col)
	}
	if col.A == 255 {
		cl.glyph = 0
	}
}

func (c *Canvas) glyph(x, y int, r rune, col render.Color) bool {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows || col.A == 0 {
		return false
	}
	center := vmath.V((float64(x)+0.5)*parameter.TerminalCellWidth, (float64(y)+0.5)*parameter.TerminalCellHeight)
	if !c.Visible(center) {
		return false
	}
	cl := &c.cells[y*c.cols+x]
	if r == ' ' {
		cl.glyph = 0
		return true
	}
	cl.glyph = r
	cl.fg = cl.top.Lerp(cl.bottom, 0.5).Blend(col)
	return true
}
