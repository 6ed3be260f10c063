package sawscope_test

import (
	"reflect"
	"testing"

	"github.com/faiface/sawscope"
	"github.com/faiface/sawscope/generators"
)

func TestOscillatorFillMatchesGenerator(t *testing.T) {
	osc := sawscope.NewOscillator(48000, sawscope.Tone{Frequency: 240, Amplitude: 0.8})

	got := make([]int16, 3*sawscope.ChunkSize+17)
	osc.Fill(got[:500])
	osc.Fill(got[500:])

	want := make([]int16, len(got))
	generators.Sawtooth(want, 48000, 240, 0.8, 0)

	if !reflect.DeepEqual(want, got) {
		t.Fatal("Fill in pieces differs from one uninterrupted sawtooth")
	}
}

func TestOscillatorScopeHoldsLastChunk(t *testing.T) {
	osc := sawscope.NewOscillator(48000, sawscope.Tone{Frequency: 440, Amplitude: 1})

	out := make([]int16, 2*sawscope.ChunkSize+300)
	osc.Fill(out)

	snap := osc.Scope().Snapshot(nil)
	if !reflect.DeepEqual(out[len(out)-300:], snap) {
		t.Fatal("scope doesn't hold the last generated chunk")
	}
}

func TestOscillatorFollowsParams(t *testing.T) {
	osc := sawscope.NewOscillator(48000, sawscope.Tone{Frequency: 440, Amplitude: 1})
	osc.Params().Store(sawscope.Tone{Frequency: 440, Amplitude: 0})

	out := make([]int16, 256)
	osc.Fill(out)
	for i, v := range out {
		if v != 0 {
			t.Fatalf("sample %d = %v after muting", i, v)
		}
	}
}
