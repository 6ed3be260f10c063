package main

import (
	"image"
	"image/color"

	"github.com/faiface/sawscope"
	"github.com/faiface/sawscope/control"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// window runs the Controller inside ebiten's game loop. ebiten polls input before Update and
// presents after Draw, at its own tick rate.
type window struct {
	c    *control.Controller
	w, h int

	lastX, lastY int
}

// windowKeys is checked in order, so a pause and a resume pressed in the same tick always end
// resumed.
var windowKeys = []struct {
	key ebiten.Key
	k   control.Key
}{
	{ebiten.KeyK, control.KeyPause},
	{ebiten.KeyP, control.KeyPause},
	{ebiten.KeyL, control.KeyResume},
	{ebiten.KeyR, control.KeyResume},
	{ebiten.KeyEscape, control.KeyQuit},
}

// keyEvents returns the events for the keys justPressed reports, in windowKeys order.
func keyEvents(justPressed func(ebiten.Key) bool) []control.Event {
	var events []control.Event
	for _, wk := range windowKeys {
		if justPressed(wk.key) {
			events = append(events, control.KeyEvent{Key: wk.k})
		}
	}
	return events
}

func runWindow(c *control.Controller, w, h int) error {
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("sawscope")
	ebiten.SetWindowResizable(true)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetRunnableOnUnfocused(true)

	if err := ebiten.RunGame(&window{c: c, w: w, h: h, lastX: -1, lastY: -1}); err != nil {
		return &sawscope.SetupError{Stage: "window", Err: err}
	}
	return nil
}

func (win *window) Update() error {
	if ebiten.IsWindowBeingClosed() {
		win.c.Handle(control.QuitEvent{})
	}

	if x, y := ebiten.CursorPosition(); x != win.lastX || y != win.lastY {
		win.lastX, win.lastY = x, y
		if image.Pt(x, y).In(image.Rect(0, 0, win.w, win.h)) {
			win.c.Handle(control.PointerEvent{X: x, Y: y, W: win.w, H: win.h})
		}
	}

	for _, ev := range keyEvents(inpututil.IsKeyJustPressed) {
		win.c.Handle(ev)
	}

	if win.c.State() == control.Quitting {
		return ebiten.Termination
	}
	return nil
}

func (win *window) Draw(screen *ebiten.Image) {
	win.c.Frame(imageSurface{screen})
}

func (win *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	win.w, win.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// imageSurface draws on an ebiten image. Present is a no-op, ebiten presents after Draw.
type imageSurface struct {
	img *ebiten.Image
}

const (
	lineHeight = 16
	baseline   = 12
)

func (s imageSurface) FillRect(r image.Rectangle, c color.Color) {
	ebitenutil.DrawRect(s.img, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), c)
}

func (s imageSurface) Line(x0, y0, x1, y1 int, c color.Color) {
	if x0 == x1 && y0 == y1 {
		y1++
	}
	vector.StrokeLine(s.img, float32(x0)+0.5, float32(y0), float32(x1)+0.5, float32(y1), 1, c, false)
}

func (s imageSurface) Size() (w, h int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s imageSurface) LineHeight() int { return lineHeight }

func (s imageSurface) Clear() {
	s.img.Clear()
}

func (s imageSurface) Text(x, y int, str string, c color.Color) {
	text.Draw(s.img, str, basicfont.Face7x13, x+4, y+baseline, c)
}

func (s imageSurface) Present() {}
