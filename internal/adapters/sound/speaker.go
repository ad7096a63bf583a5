package sound

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/renato0307/beeper/internal/logging"
	"github.com/renato0307/beeper/internal/ports"
)

// resampleQuality is passed to beep.Resample when a file's rate differs from the speaker's
const resampleQuality = 4

// output is where decoded sounds are sent
type output interface {
	Close() error
	Play(s beep.Streamer) error
	SampleRate() beep.SampleRate
	Wait(ctx context.Context) error
}

// SpeakerBackend decodes each sound into memory once and plays it through the system speaker
type SpeakerBackend struct {
	assetsDir string
	output    output
}

// Verify interface compliance at compile time
var _ ports.SoundBackend = (*SpeakerBackend)(nil)

// NewSpeakerBackend creates a backend that mixes sounds on the default output device.
// The device is opened on first playback.
func NewSpeakerBackend(assetsDir string, sampleRate beep.SampleRate, bufferDuration time.Duration) *SpeakerBackend {
	return &SpeakerBackend{
		assetsDir: assetsDir,
		output: &speakerOutput{
			bufferDuration: bufferDuration,
			device:         beepSpeaker{},
			sampleRate:     sampleRate,
		},
	}
}

// Load decodes the first candidate that opens and decodes successfully
func (b *SpeakerBackend) Load(ctx context.Context, sources []string) (ports.SoundHandle, error) {
	var errs []error
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := resolveSource(b.assetsDir, src)
		buffer, err := b.bufferFile(path)
		if err != nil {
			logging.Logger.Debug("Skipping sound source", "path", path, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", src, err))
			continue
		}

		logging.Logger.Debug("Sound source loaded",
			"path", path,
			"samples", buffer.Len(),
			"sample_rate", buffer.Format().SampleRate)
		return &bufferHandle{buffer: buffer, output: b.output}, nil
	}

	return nil, noPlayableSource(errs)
}

// Wait blocks until every started sound has finished or ctx is done
func (b *SpeakerBackend) Wait(ctx context.Context) error {
	return b.output.Wait(ctx)
}

// Close releases the output device
func (b *SpeakerBackend) Close() error {
	return b.output.Close()
}

// bufferFile decodes path fully into a buffer at the output sample rate
func (b *SpeakerBackend) bufferFile(path string) (*beep.Buffer, error) {
	streamer, format, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	target := b.output.SampleRate()
	var source beep.Streamer = streamer
	if format.SampleRate != target {
		source = beep.Resample(resampleQuality, format.SampleRate, target, streamer)
	}

	buffer := beep.NewBuffer(beep.Format{
		NumChannels: format.NumChannels,
		Precision:   format.Precision,
		SampleRate:  target,
	})
	buffer.Append(source)

	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}
	if buffer.Len() == 0 {
		return nil, errors.New("audio file contains no samples")
	}
	return buffer, nil
}

// bufferHandle plays a decoded buffer. Each Play gets its own streamer,
// so overlapping plays of the same sound are mixed independently.
type bufferHandle struct {
	buffer *beep.Buffer
	output output
}

func (h *bufferHandle) Play() error {
	return h.output.Play(h.buffer.Streamer(0, h.buffer.Len()))
}

// speakerDevice is the subset of the beep speaker package speakerOutput drives
type speakerDevice interface {
	Clear()
	Close()
	Init(sampleRate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
}

// beepSpeaker forwards to the process-wide beep speaker
type beepSpeaker struct{}

func (beepSpeaker) Clear() { speaker.Clear() }
func (beepSpeaker) Close() { speaker.Close() }
func (beepSpeaker) Init(sr beep.SampleRate, bufferSize int) error { return speaker.Init(sr, bufferSize) }
func (beepSpeaker) Play(s ...beep.Streamer) { speaker.Play(s...) }

// speakerOutput opens the device on first Play and mixes every sound into it.
// Close may run concurrently with Play from a signal handler.
type speakerOutput struct {
	bufferDuration time.Duration
	device         speakerDevice
	initErr        error
	initOnce       sync.Once
	initialized    atomic.Bool
	playing        sync.WaitGroup
	sampleRate     beep.SampleRate
}

func (o *speakerOutput) init() error {
	o.initOnce.Do(func() {
		o.initErr = o.device.Init(o.sampleRate, o.sampleRate.N(o.bufferDuration))
		if o.initErr == nil {
			o.initialized.Store(true)
			logging.Logger.Debug("Speaker initialized",
				"sample_rate", o.sampleRate,
				"buffer", o.bufferDuration)
		}
	})
	return o.initErr
}

func (o *speakerOutput) Play(s beep.Streamer) error {
	if err := o.init(); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}

	o.playing.Add(1)
	o.device.Play(beep.Seq(s, beep.Callback(o.playing.Done)))
	return nil
}

func (o *speakerOutput) SampleRate() beep.SampleRate {
	return o.sampleRate
}

func (o *speakerOutput) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		o.playing.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close releases the device once; it is a no-op if nothing was ever played
func (o *speakerOutput) Close() error {
	if !o.initialized.CompareAndSwap(true, false) {
		return nil
	}
	o.device.Clear()
	o.device.Close()
	logging.Logger.Debug("Speaker closed")
	return nil
}
