package render

import (
	"github.com/lixenwraith/vi-towers/asset"
	"github.com/lixenwraith/vi-towers/vmath"
)

// Op is one recorded draw call in device coordinates
type Op struct {
	Kind   string
	Rect   vmath.Rect
	Points []vmath.Vec2
	Radius float64
	Text   string
	Color  Color
}

// Recorder is a headless Canvas that logs draw calls
// Backs draw tests without a display
type Recorder struct {
	State
	View vmath.Vec2
	Ops  []Op
}

// NewRecorder creates a recorder with the given view size
func NewRecorder(view vmath.Vec2) *Recorder {
	r := &Recorder{View: view}
	r.State.Reset()
	return r
}

// Count returns the number of ops of the given kind
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns every recorded string in order
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

func (r *Recorder) Size() vmath.Vec2 { return r.View }

func (r *Recorder) Clear(c Color) {
	r.Ops = r.Ops[:0]
	r.State.Reset()
	r.Ops = append(r.Ops, Op{Kind: "clear", Color: c})
}

func (r *Recorder) FillRect(rect vmath.Rect, c Color) {
	r.Ops = append(r.Ops, Op{Kind: "fill_rect", Rect: r.DeviceRect(rect), Color: c})
}

func (r *Recorder) StrokeRect(rect vmath.Rect, width float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: "stroke_rect", Rect: r.DeviceRect(rect), Radius: width, Color: c})
}

func (r *Recorder) FillCircle(center vmath.Vec2, radius float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: "fill_circle", Points: []vmath.Vec2{r.Apply(center)}, Radius: radius * r.Matrix().ScaleFactor(), Color: c})
}

func (r *Recorder) StrokeCircle(center vmath.Vec2, radius, width float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: "stroke_circle", Points: []vmath.Vec2{r.Apply(center)}, Radius: radius * r.Matrix().ScaleFactor(), Color: c})
}

func (r *Recorder) Line(a, b vmath.Vec2, width float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: "line", Points: []vmath.Vec2{r.Apply(a), r.Apply(b)}, Radius: width, Color: c})
}

func (r *Recorder) Text(pos vmath.Vec2, s string, align Align, c Color) {
	r.Ops = append(r.Ops, Op{Kind: "text", Points: []vmath.Vec2{r.Apply(pos)}, Text: s, Color: c})
}

func (r *Recorder) Image(img *asset.Image, opts ImageOptions) bool {
	if img == nil || !img.Ready() {
		return false
	}
	r.Ops = append(r.Ops, Op{Kind: "image", Points: []vmath.Vec2{r.Apply(opts.Pos)}, Text: img.Path(), Color: opts.Tint})
	return true
}
