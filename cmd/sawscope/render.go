package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/sawscope"
	"github.com/faiface/sawscope/pcm"
	"github.com/faiface/sawscope/wav"
	"github.com/pkg/errors"
)

// render writes d worth of tone to path: a WAVE file if path ends in .wav, raw PCM otherwise.
func render(path string, sr sawscope.SampleRate, tone sawscope.Tone, d time.Duration) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &sawscope.SetupError{Stage: "render", Err: err}
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()

	osc := sawscope.NewOscillator(sr, tone)
	n := sr.N(d)

	if strings.EqualFold(filepath.Ext(path), ".wav") {
		err = wav.Encode(f, osc, n, sawscope.DeviceFormat(sr))
	} else {
		err = pcm.Encode(f, osc, n)
	}
	if err != nil {
		return errors.Wrapf(err, "render %s", path)
	}

	t := osc.Params().Load()
	log.Printf("rendered %v of %.0f Hz at amplitude %.2f to %s", d, t.Frequency, t.Amplitude, path)
	return nil
}
