//go:build headless
// +build headless

// Package speaker plays a sawscope.Source through the default audio output device.
//
// This build has no device: the Source is pulled at the rate of the format and the samples
// are discarded, which keeps the scope moving on machines without audio.
package speaker

import (
	"sync"
	"time"

	"github.com/faiface/sawscope"
	"github.com/pkg/errors"
)

// Speaker pulls from a Source in real time without playing anything.
type Speaker struct {
	mu     sync.Mutex
	paused bool
	done   chan struct{}
	wg     sync.WaitGroup
}

// Open starts pulling src, bufferSize samples at a time.
func Open(format sawscope.Format, bufferSize int, src sawscope.Source) (*Speaker, error) {
	if err := format.Check(); err != nil {
		return nil, errors.Wrap(err, "speaker")
	}
	if bufferSize <= 0 {
		bufferSize = sawscope.ChunkSize
	}

	s := &Speaker{done: make(chan struct{})}
	r := NewReader(src)
	buf := make([]byte, bufferSize*format.Width())

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		tick := time.NewTicker(format.SampleRate.D(bufferSize))
		defer tick.Stop()
		for {
			select {
			case <-s.done:
				return
			case <-tick.C:
				s.mu.Lock()
				paused := s.paused
				s.mu.Unlock()
				if !paused {
					r.Read(buf)
				}
			}
		}
	}()

	return s, nil
}

// Pause stops pulling samples.
func (s *Speaker) Pause() {
	s.mu.Lock()
	s.paused = true
	s.mu.Unlock()
}

// Resume continues pulling samples after Pause.
func (s *Speaker) Resume() {
	s.mu.Lock()
	s.paused = false
	s.mu.Unlock()
}

// Close stops pulling and waits for the pulling goroutine to exit.
func (s *Speaker) Close() error {
	close(s.done)
	s.wg.Wait()
	return nil
}
