//go:build malgo && !headless
// +build malgo,!headless

// Package speaker plays a sawscope.Source through the default audio output device.
package speaker

import (
	"log"

	"github.com/faiface/sawscope"
	"github.com/gen2brain/malgo"
	"github.com/pkg/errors"
)

// Speaker is an open audio output device pulling from a Source.
type Speaker struct {
	context *malgo.AllocatedContext
	player  *malgo.Device
}

// Open opens the audio device and starts playing src. The device invokes its data callback
// once per period of bufferSize samples.
func Open(format sawscope.Format, bufferSize int, src sawscope.Source) (*Speaker, error) {
	if err := format.Check(); err != nil {
		return nil, errors.Wrap(err, "speaker")
	}

	context, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(message string) {
		log.Printf("speaker: malgo: %v", message)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize speaker (context)")
	}

	deviceConfig := malgo.DefaultDeviceConfig(malgo.Playback)
	deviceConfig.Playback.Format = malgo.FormatS16
	deviceConfig.Playback.Channels = uint32(format.NumChannels)
	deviceConfig.SampleRate = uint32(format.SampleRate)
	deviceConfig.PeriodSizeInFrames = uint32(bufferSize)
	deviceConfig.Alsa.NoMMap = 1

	r := NewReader(src)
	onSamples := func(pOutputSample, pInputSamples []byte, framecount uint32) {
		byteCount := int(framecount) * format.Width()
		if byteCount > len(pOutputSample) {
			byteCount = len(pOutputSample)
		}
		r.Read(pOutputSample[:byteCount])
	}

	player, err := malgo.InitDevice(context.Context, deviceConfig, malgo.DeviceCallbacks{
		Data: onSamples,
	})
	if err != nil {
		context.Uninit()
		context.Free()
		return nil, errors.Wrap(err, "failed to initialize speaker (player)")
	}

	if err := player.Start(); err != nil {
		player.Uninit()
		context.Uninit()
		context.Free()
		return nil, errors.Wrap(err, "failed to initialize speaker (player start)")
	}

	return &Speaker{context: context, player: player}, nil
}

// Pause stops the device. The data callback is not invoked until Resume.
func (s *Speaker) Pause() {
	if s.player.IsStarted() {
		if err := s.player.Stop(); err != nil {
			log.Printf("speaker: pause: %v", err)
		}
	}
}

// Resume restarts the device after Pause.
func (s *Speaker) Resume() {
	if !s.player.IsStarted() {
		if err := s.player.Start(); err != nil {
			log.Printf("speaker: resume: %v", err)
		}
	}
}

// Close stops the device and releases the audio context.
func (s *Speaker) Close() error {
	s.player.Uninit()
	err := s.context.Uninit()
	s.context.Free()
	return errors.Wrap(err, "failed to close speaker")
}
