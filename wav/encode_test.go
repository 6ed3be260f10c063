package wav_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/faiface/sawscope"
	"github.com/faiface/sawscope/wav"
)

func TestEncodeOscillator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	format := sawscope.DeviceFormat(48000)
	osc := sawscope.NewOscillator(format.SampleRate, sawscope.Tone{Frequency: 240, Amplitude: 1})
	const numSamples = 4800
	if err := wav.Encode(f, osc, numSamples, format); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 44+numSamples*2 {
		t.Fatalf("file size: expected: %v, actual: %v", 44+numSamples*2, len(data))
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" || string(data[36:40]) != "data" {
		t.Fatalf("bad marks in header: %q", data[:44])
	}

	le := binary.LittleEndian
	if got := le.Uint32(data[4:8]); got != uint32(len(data)-8) {
		t.Errorf("RIFF size: expected: %v, actual: %v", len(data)-8, got)
	}
	if got := le.Uint16(data[22:24]); got != 1 {
		t.Errorf("channels: expected: 1, actual: %v", got)
	}
	if got := le.Uint32(data[24:28]); got != 48000 {
		t.Errorf("sample rate: expected: 48000, actual: %v", got)
	}
	if got := le.Uint16(data[34:36]); got != 16 {
		t.Errorf("bits per sample: expected: 16, actual: %v", got)
	}
	if got := le.Uint32(data[40:44]); got != numSamples*2 {
		t.Errorf("data size: expected: %v, actual: %v", numSamples*2, got)
	}

	limit := sawscope.MaxSample * sawscope.Headroom
	for i := 44; i < len(data); i += 2 {
		v := float64(int16(le.Uint16(data[i:])))
		if v > limit || v < -limit {
			t.Fatalf("sample at byte %d = %v exceeds headroom", i, v)
		}
	}
}

func TestEncodeRejectsFormat(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "bad.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	osc := sawscope.NewOscillator(48000, sawscope.Tone{Frequency: 440, Amplitude: 1})
	for _, format := range []sawscope.Format{
		{SampleRate: 48000, NumChannels: 0, Precision: 2},
		{SampleRate: 48000, NumChannels: 1, Precision: 4},
		{SampleRate: 48000, NumChannels: 2, Precision: 2},
	} {
		if err := wav.Encode(f, osc, 10, format); err == nil {
			t.Errorf("format %+v: expected an error", format)
		}
	}
}
