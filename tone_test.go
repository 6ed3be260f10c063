package sawscope_test

import (
	"math"
	"testing"

	"github.com/faiface/sawscope"
)

func TestToneAtCenter(t *testing.T) {
	tone := sawscope.ToneAt(400, 200, 800, 400)
	if tone.Amplitude != 0.5 {
		t.Errorf("amplitude at center: expected: 0.5, actual: %v", tone.Amplitude)
	}
	if tone.Frequency != 540 {
		t.Errorf("frequency at center: expected: 540, actual: %v", tone.Frequency)
	}
}

func TestToneAtEdges(t *testing.T) {
	tests := []struct {
		x, y int
		want sawscope.Tone
	}{
		{0, 0, sawscope.Tone{Frequency: 40, Amplitude: 1}},
		{800, 400, sawscope.Tone{Frequency: 1040, Amplitude: 0}},
		{-50, 900, sawscope.Tone{Frequency: 40, Amplitude: 0}},
		{5000, -3, sawscope.Tone{Frequency: 1040, Amplitude: 1}},
	}
	for _, test := range tests {
		got := sawscope.ToneAt(test.x, test.y, 800, 400)
		if got != test.want {
			t.Errorf("ToneAt(%d, %d): expected: %+v, actual: %+v", test.x, test.y, test.want, got)
		}
	}

	if got := sawscope.ToneAt(10, 10, 0, 0); got.Frequency <= 0 {
		t.Errorf("empty surface produced a non-positive frequency: %v", got.Frequency)
	}
}

func TestToneParamsClamp(t *testing.T) {
	var params sawscope.ToneParams
	if got := params.Load(); got != (sawscope.Tone{}) {
		t.Fatalf("zero ToneParams: expected zero Tone, actual: %+v", got)
	}

	params.Store(sawscope.Tone{Frequency: -1, Amplitude: 7})
	got := params.Load()
	if got.Frequency != sawscope.MinFrequency || got.Amplitude != 1 {
		t.Fatalf("stored tone not clamped: %+v", got)
	}

	params.Store(sawscope.Tone{Frequency: math.NaN(), Amplitude: math.NaN()})
	got = params.Load()
	if got.Frequency != sawscope.MinFrequency || got.Amplitude != 0 {
		t.Fatalf("NaN tone not clamped: %+v", got)
	}
}

func TestDefaultTone(t *testing.T) {
	want := sawscope.Tone{Frequency: 220, Amplitude: 0.1}
	if sawscope.DefaultTone != want {
		t.Fatalf("expected: %+v, actual: %+v", want, sawscope.DefaultTone)
	}
	if got := sawscope.NewOscillator(sawscope.DefaultSampleRate, sawscope.DefaultTone).Params().Load(); got != want {
		t.Errorf("oscillator starts at: %+v, expected: %+v", got, want)
	}
}
