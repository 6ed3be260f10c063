// Package visual draws sample chunks as an oscilloscope trace.
package visual

import (
	"image"
	"image/color"

	"github.com/faiface/sawscope"
)

// Canvas is a 2D surface offering the primitives the trace needs.
type Canvas interface {
	FillRect(r image.Rectangle, c color.Color)
	Line(x0, y0, x1, y1 int, c color.Color)
}

// Palette holds the colors of a trace.
type Palette struct {
	Panel color.Color
	Axis  color.Color
	Trace color.Color
}

// DefaultPalette is a green trace on a dark panel.
var DefaultPalette = Palette{
	Panel: color.RGBA{0x10, 0x18, 0x14, 0xff},
	Axis:  color.RGBA{0x30, 0x48, 0x3c, 0xff},
	Trace: color.RGBA{0x40, 0xe0, 0x80, 0xff},
}

// Column is the deflection drawn at one horizontal position: a vertical line from Mid to Y.
type Column struct {
	X, Mid, Y int
}

// Columns appends one Column per horizontal pixel of r to dst[:0] and returns it.
//
// The pixel at offset i picks the sample at i*len(samples)/r.Dx(): the nearest index below, no
// interpolation. A full-scale positive sample reaches the top edge of r, a full-scale negative
// one the bottom edge.
func Columns(dst []Column, samples []int16, r image.Rectangle) []Column {
	dst = dst[:0]
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 || len(samples) == 0 {
		return dst
	}
	mid := r.Min.Y + h/2
	half := float64(h) / 2
	for i := 0; i < w; i++ {
		s := samples[i*len(samples)/w]
		y := mid - int(float64(s)/sawscope.MaxSample*half)
		if y < r.Min.Y {
			y = r.Min.Y
		}
		if y >= r.Max.Y {
			y = r.Max.Y - 1
		}
		dst = append(dst, Column{X: r.Min.X + i, Mid: mid, Y: y})
	}
	return dst
}

// Scope draws sample chunks onto a Canvas. It reuses its column buffer between frames, so a
// Scope must not be shared between goroutines.
type Scope struct {
	Palette Palette
	cols    []Column
}

// NewScope returns a Scope drawing with DefaultPalette.
func NewScope() *Scope {
	return &Scope{Palette: DefaultPalette}
}

// Draw fills r with the panel color and draws the zero axis and one deflection per column.
func (s *Scope) Draw(c Canvas, samples []int16, r image.Rectangle) {
	if r.Empty() {
		return
	}
	c.FillRect(r, s.Palette.Panel)
	mid := r.Min.Y + r.Dy()/2
	c.Line(r.Min.X, mid, r.Max.X-1, mid, s.Palette.Axis)

	s.cols = Columns(s.cols, samples, r)
	for _, col := range s.cols {
		c.Line(col.X, col.Mid, col.X, col.Y, s.Palette.Trace)
	}
}
