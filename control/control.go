// Package control runs the input and render loop: pointer and key events steer the oscillator
// and the audio device, and every frame shows the latest chunk on a Surface.
package control

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"time"

	"github.com/faiface/sawscope"
	"github.com/faiface/sawscope/visual"
)

// State is the state of the loop.
type State int

const (
	// Running plays audio and draws frames.
	Running State = iota
	// Paused draws frames but the audio device is paused.
	Paused
	// Quitting is terminal. The loop exits and later events are ignored.
	Quitting
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Quitting:
		return "quitting"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Device is the part of the audio device the loop controls.
type Device interface {
	Pause()
	Resume()
}

// Key is a key the loop reacts to. Frontends translate their own key codes into Keys.
type Key int

const (
	KeyNone Key = iota
	KeyPause
	KeyResume
	KeyQuit
)

// Event is one of PointerEvent, KeyEvent or QuitEvent.
type Event interface{}

// PointerEvent reports the pointer at (X, Y) on a W×H surface.
type PointerEvent struct {
	X, Y, W, H int
}

// KeyEvent reports a key press.
type KeyEvent struct {
	Key Key
}

// QuitEvent reports that the window or terminal is going away.
type QuitEvent struct{}

// Surface is where frames are drawn.
type Surface interface {
	visual.Canvas

	// Size returns the drawable size.
	Size() (w, h int)
	// LineHeight returns the height of one line of text.
	LineHeight() int
	Clear()
	Text(x, y int, s string, c color.Color)
	// Present shows what was drawn since Clear.
	Present()
}

var statusColor = color.RGBA{0xd7, 0xd8, 0xa2, 0xff}

// Controller owns the oscillator, the audio device and the loop state. All of its methods
// are called from the loop's goroutine; only the oscillator is touched by the audio device.
type Controller struct {
	osc   *sawscope.Oscillator
	dev   Device
	state State

	scope   *visual.Scope
	samples []int16

	// Verbose logs every state change.
	Verbose bool
}

// New returns a Running Controller.
func New(osc *sawscope.Oscillator, dev Device) *Controller {
	return &Controller{
		osc:     osc,
		dev:     dev,
		state:   Running,
		scope:   visual.NewScope(),
		samples: make([]int16, 0, sawscope.ChunkSize),
	}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Handle applies an event. Once Quitting, every event is ignored.
func (c *Controller) Handle(ev Event) {
	if c.state == Quitting {
		return
	}
	switch ev := ev.(type) {
	case PointerEvent:
		c.osc.Params().Store(sawscope.ToneAt(ev.X, ev.Y, ev.W, ev.H))
	case KeyEvent:
		c.key(ev.Key)
	case QuitEvent:
		c.setState(Quitting)
	}
}

func (c *Controller) key(k Key) {
	switch k {
	case KeyPause:
		c.dev.Pause()
		c.setState(Paused)
	case KeyResume:
		c.dev.Resume()
		c.setState(Running)
	case KeyQuit:
		c.setState(Quitting)
	}
}

func (c *Controller) setState(s State) {
	if c.Verbose && s != c.state {
		log.Printf("control: %v -> %v", c.state, s)
	}
	c.state = s
}

// Frame draws one frame: the status line on top and the scope below it.
func (c *Controller) Frame(s Surface) {
	s.Clear()

	w, h := s.Size()
	lh := s.LineHeight()
	tone := c.osc.Params().Load()
	s.Text(0, 0, fmt.Sprintf("%4.0f Hz  amplitude %.2f  %v  [K]/[P] pause  [L]/[R] resume  [Esc] quit", tone.Frequency, tone.Amplitude, c.state), statusColor)

	c.samples = c.osc.Scope().Snapshot(c.samples)
	c.scope.Draw(s, c.samples, image.Rect(0, lh, w, h))

	s.Present()
}

// Run applies all pending events, draws a frame and waits for the next tick, until the
// Controller is Quitting. A closed events channel counts as a QuitEvent.
func (c *Controller) Run(events <-chan Event, s Surface, interval time.Duration) {
	tick := time.NewTicker(interval)
	defer tick.Stop()

	for {
	drain:
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					c.setState(Quitting)
					break drain
				}
				c.Handle(ev)
			default:
				break drain
			}
		}
		if c.state == Quitting {
			return
		}
		c.Frame(s)
		<-tick.C
	}
}
