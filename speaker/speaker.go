//go:build !malgo && !headless
// +build !malgo,!headless

// Package speaker plays a sawscope.Source through the default audio output device.
package speaker

import (
	"github.com/ebitengine/oto/v3"
	"github.com/faiface/sawscope"
	"github.com/pkg/errors"
)

// Speaker is an open audio output device pulling from a Source.
type Speaker struct {
	ctx    *oto.Context
	player *oto.Player
}

// Open opens the audio device and starts playing src.
//
// The bufferSize argument specifies the number of samples of the speaker's buffer. Bigger
// bufferSize means lower CPU usage and more reliable playback. Lower bufferSize means better
// responsiveness and less delay.
//
// Only one Speaker can be opened per process.
func Open(format sawscope.Format, bufferSize int, src sawscope.Source) (*Speaker, error) {
	if err := format.Check(); err != nil {
		return nil, errors.Wrap(err, "speaker")
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(format.SampleRate),
		ChannelCount: format.NumChannels,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   format.SampleRate.D(bufferSize),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize speaker")
	}
	<-ready

	player := ctx.NewPlayer(NewReader(src))
	player.SetBufferSize(bufferSize * format.Width())
	player.Play()

	return &Speaker{ctx: ctx, player: player}, nil
}

// Pause stops pulling samples. The device stays open.
func (s *Speaker) Pause() {
	s.player.Pause()
}

// Resume continues pulling samples after Pause.
func (s *Speaker) Resume() {
	if !s.player.IsPlaying() {
		s.player.Play()
	}
}

// Close stops the playback. oto keeps its context until the process exits.
func (s *Speaker) Close() error {
	if err := s.player.Close(); err != nil {
		return errors.Wrap(err, "failed to close speaker")
	}
	return nil
}
