package sound

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep/v2"

	"github.com/renato0307/beeper/internal/config"
	"github.com/renato0307/beeper/internal/domain"
	"github.com/renato0307/beeper/internal/ports"
)

// Backend kinds
const (
	BackendBell    = "bell"
	BackendCommand = "command"
	BackendSpeaker = "speaker"
)

// Defaults for the speaker backend
const (
	DefaultBufferDuration = 100 * time.Millisecond
	DefaultSampleRate     = 44100
)

// Options configures NewBackend
type Options struct {
	// AssetsDir is where relative sources are resolved
	AssetsDir      string
	Bell           io.Writer
	BufferDuration time.Duration
	SampleRate     int
}

// NewBackend creates the audio backend of the given kind
func NewBackend(kind string, opts Options) (ports.SoundBackend, error) {
	if opts.Bell == nil {
		opts.Bell = os.Stdout
	}

	switch kind {
	case BackendSpeaker, "":
		sampleRate := opts.SampleRate
		if sampleRate <= 0 {
			sampleRate = DefaultSampleRate
		}
		bufferDuration := opts.BufferDuration
		if bufferDuration <= 0 {
			bufferDuration = DefaultBufferDuration
		}
		return NewSpeakerBackend(opts.AssetsDir, beep.SampleRate(sampleRate), bufferDuration), nil
	case BackendCommand:
		return NewCommandBackend(opts.AssetsDir, opts.Bell), nil
	case BackendBell:
		return NewBellBackend(opts.Bell), nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownBackend, kind)
	}
}

// resolveSource turns a configured source into a file path.
// Relative sources are resolved against assetsDir when one is set.
func resolveSource(assetsDir, src string) string {
	path := config.ExpandPath(src)
	if filepath.IsAbs(path) || assetsDir == "" {
		return path
	}
	return filepath.Join(assetsDir, path)
}

// noPlayableSource builds the error returned when every candidate failed
func noPlayableSource(errs []error) error {
	if len(errs) == 0 {
		return domain.ErrNoPlayableSource
	}
	return fmt.Errorf("%w: %w", domain.ErrNoPlayableSource, errors.Join(errs...))
}

// terminalBell outputs a terminal bell character as fallback
func terminalBell(w io.Writer) error {
	_, err := fmt.Fprint(w, "\a")
	return err
}
