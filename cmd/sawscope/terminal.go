package main

import (
	"image"
	"image/color"
	"os"
	"time"
	"unicode"

	"github.com/faiface/sawscope"
	"github.com/faiface/sawscope/control"
	"github.com/gdamore/tcell"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

const terminalFrame = time.Second / 30

func runTerminal(c *control.Controller) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return &sawscope.SetupError{Stage: "terminal", Err: errors.New("stdout is not a terminal")}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return &sawscope.SetupError{Stage: "terminal", Err: err}
	}
	if err := screen.Init(); err != nil {
		return &sawscope.SetupError{Stage: "terminal", Err: err}
	}
	defer screen.Fini()
	screen.EnableMouse()

	events := make(chan control.Event)
	done := make(chan struct{})
	defer close(done)
	go pollTerminal(screen, events, done)

	c.Run(events, cellSurface{screen}, terminalFrame)
	return nil
}

// pollTerminal translates tcell events until the screen is finalized or done is closed.
func pollTerminal(screen tcell.Screen, events chan<- control.Event, done <-chan struct{}) {
	for {
		event := screen.PollEvent()
		if event == nil {
			return
		}
		ev, ok := translate(screen, event)
		if !ok {
			continue
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func translate(screen tcell.Screen, event tcell.Event) (control.Event, bool) {
	switch event := event.(type) {
	case *tcell.EventMouse:
		x, y := event.Position()
		w, h := screen.Size()
		return control.PointerEvent{X: x, Y: y, W: w, H: h}, true

	case *tcell.EventKey:
		switch event.Key() {
		case tcell.KeyESC, tcell.KeyCtrlC:
			return control.QuitEvent{}, true
		case tcell.KeyRune:
			switch unicode.ToLower(event.Rune()) {
			case 'k', 'p':
				return control.KeyEvent{Key: control.KeyPause}, true
			case 'l', 'r':
				return control.KeyEvent{Key: control.KeyResume}, true
			case 'q':
				return control.KeyEvent{Key: control.KeyQuit}, true
			}
		}
	}
	return nil, false
}

// cellSurface draws on a terminal, one cell per pixel.
type cellSurface struct {
	screen tcell.Screen
}

func cellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func (s cellSurface) FillRect(r image.Rectangle, c color.Color) {
	style := tcell.StyleDefault.Background(cellColor(c))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// Line draws horizontal lines with box-drawing runes and everything else with blocks.
func (s cellSurface) Line(x0, y0, x1, y1 int, c color.Color) {
	if y0 == y1 {
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		for x := x0; x <= x1; x++ {
			s.put(x, y0, tcell.RuneHLine, c)
		}
		return
	}

	dx, dy := x1-x0, y1-y0
	steps := abs(dx)
	if abs(dy) > steps {
		steps = abs(dy)
	}
	for i := 0; i <= steps; i++ {
		s.put(x0+dx*i/steps, y0+dy*i/steps, tcell.RuneBlock, c)
	}
}

func (s cellSurface) put(x, y int, r rune, c color.Color) {
	_, _, style, _ := s.screen.GetContent(x, y)
	s.screen.SetContent(x, y, r, nil, style.Foreground(cellColor(c)))
}

func (s cellSurface) Size() (w, h int) {
	return s.screen.Size()
}

func (s cellSurface) LineHeight() int { return 1 }

func (s cellSurface) Clear() {
	s.screen.Clear()
}

func (s cellSurface) Text(x, y int, str string, c color.Color) {
	style := tcell.StyleDefault.Foreground(cellColor(c))
	for _, r := range str {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (s cellSurface) Present() {
	s.screen.Show()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
