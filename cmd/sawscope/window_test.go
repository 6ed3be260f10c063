package main

import (
	"reflect"
	"testing"

	"github.com/faiface/sawscope"
	"github.com/faiface/sawscope/control"
	"github.com/hajimehoshi/ebiten/v2"
)

type nopDevice struct{}

func (nopDevice) Pause()  {}
func (nopDevice) Resume() {}

func pressed(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(key ebiten.Key) bool {
		for _, k := range keys {
			if k == key {
				return true
			}
		}
		return false
	}
}

func TestKeyEvents(t *testing.T) {
	tests := []struct {
		keys []ebiten.Key
		want []control.Event
	}{
		{nil, nil},
		{[]ebiten.Key{ebiten.KeyK}, []control.Event{control.KeyEvent{Key: control.KeyPause}}},
		{[]ebiten.Key{ebiten.KeyP}, []control.Event{control.KeyEvent{Key: control.KeyPause}}},
		{[]ebiten.Key{ebiten.KeyL}, []control.Event{control.KeyEvent{Key: control.KeyResume}}},
		{[]ebiten.Key{ebiten.KeyR}, []control.Event{control.KeyEvent{Key: control.KeyResume}}},
		{[]ebiten.Key{ebiten.KeyEscape}, []control.Event{control.KeyEvent{Key: control.KeyQuit}}},
		{[]ebiten.Key{ebiten.KeyA, ebiten.KeySpace}, nil},
	}
	for _, test := range tests {
		if got := keyEvents(pressed(test.keys...)); !reflect.DeepEqual(test.want, got) {
			t.Errorf("%v: expected: %v, actual: %v", test.keys, test.want, got)
		}
	}
}

func TestKeyEventsSameTick(t *testing.T) {
	// Every order of the same presses ends in the same state.
	for _, keys := range [][]ebiten.Key{
		{ebiten.KeyK, ebiten.KeyL},
		{ebiten.KeyL, ebiten.KeyK},
		{ebiten.KeyR, ebiten.KeyP},
	} {
		for i := 0; i < 20; i++ {
			c := control.New(sawscope.NewOscillator(48000, sawscope.DefaultTone), nopDevice{})
			for _, ev := range keyEvents(pressed(keys...)) {
				c.Handle(ev)
			}
			if c.State() != control.Running {
				t.Fatalf("%v: expected running, actual: %v", keys, c.State())
			}
		}
	}
}
