// Command sawscope plays a sawtooth wave steered by the pointer and draws it as an
// oscilloscope trace.
//
// Move the pointer right for a higher pitch and up for a louder tone. K (or P) pauses the
// audio, L (or R) resumes it, Esc quits.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/faiface/sawscope"
	"github.com/faiface/sawscope/control"
	"github.com/faiface/sawscope/speaker"
	"github.com/pkg/errors"
)

type config struct {
	terminal bool
	width    int
	height   int
	rate     int
	verbose  bool

	render   string
	tone     sawscope.Tone
	duration time.Duration
}

func parseFlags(args []string) (config, error) {
	cfg := config{}

	flagSet := flag.NewFlagSet("sawscope", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.BoolVar(&cfg.terminal, "term", false, "draw in the terminal instead of a window")
	flagSet.IntVar(&cfg.width, "width", 800, "window width")
	flagSet.IntVar(&cfg.height, "height", 400, "window height")
	flagSet.IntVar(&cfg.rate, "rate", int(sawscope.DefaultSampleRate), "sample rate")
	flagSet.BoolVar(&cfg.verbose, "v", false, "log what is going on")
	flagSet.StringVar(&cfg.render, "render", "", "render the tone to a .wav (or raw PCM) file and exit")
	flagSet.Float64Var(&cfg.tone.Frequency, "freq", 440, "frequency rendered with -render")
	flagSet.Float64Var(&cfg.tone.Amplitude, "amp", 0.5, "amplitude rendered with -render")
	flagSet.DurationVar(&cfg.duration, "duration", 2*time.Second, "duration rendered with -render")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: sawscope [-term] [-width 800] [-height 400] [-rate 48000] [-v]")
		fmt.Println("       sawscope -render out.wav [-freq 440] [-amp 0.5] [-duration 2s]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		return cfg, err
	}
	if flagSet.NArg() > 0 {
		return cfg, errors.Errorf("unexpected arguments: %v", flagSet.Args())
	}
	if cfg.rate <= 0 {
		return cfg, errors.Errorf("invalid sample rate %d", cfg.rate)
	}
	if cfg.width <= 0 || cfg.height <= 0 {
		return cfg, errors.Errorf("invalid window size %dx%d", cfg.width, cfg.height)
	}
	if cfg.duration < 0 {
		return cfg, errors.Errorf("invalid duration %v", cfg.duration)
	}
	return cfg, nil
}

func run(cfg config) error {
	if !cfg.verbose {
		log.SetOutput(io.Discard)
	}
	sr := sawscope.SampleRate(cfg.rate)

	if cfg.render != "" {
		return render(cfg.render, sr, cfg.tone, cfg.duration)
	}

	osc := sawscope.NewOscillator(sr, sawscope.DefaultTone)
	spk, err := speaker.Open(sawscope.DeviceFormat(sr), sawscope.ChunkSize, osc)
	if err != nil {
		return &sawscope.SetupError{Stage: "audio", Err: err}
	}
	defer func() {
		if err := spk.Close(); err != nil {
			log.Printf("close: %v", err)
		}
	}()
	log.Printf("playing at %d Hz, %d samples per chunk", sr, sawscope.ChunkSize)

	c := control.New(osc, spk)
	c.Verbose = cfg.verbose
	if cfg.terminal {
		return runTerminal(c)
	}
	return runWindow(c, cfg.width, cfg.height)
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err == flag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		report(err)
	}
	if err := run(cfg); err != nil {
		report(err)
	}
}

func report(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
