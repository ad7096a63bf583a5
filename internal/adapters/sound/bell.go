package sound

import (
	"context"
	"io"
	"sync"

	"github.com/renato0307/beeper/internal/ports"
)

// BellBackend plays every sound as the terminal bell.
// Useful on headless machines and in tests where no audio device exists.
type BellBackend struct {
	mu  sync.Mutex
	out io.Writer
}

// Verify interface compliance at compile time
var _ ports.SoundBackend = (*BellBackend)(nil)

// NewBellBackend creates a new BellBackend writing to out
func NewBellBackend(out io.Writer) *BellBackend {
	return &BellBackend{out: out}
}

// Load ignores the sources; every sound is the bell
func (b *BellBackend) Load(ctx context.Context, sources []string) (ports.SoundHandle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &bellHandle{backend: b}, nil
}

// Wait returns immediately; the bell has no duration
func (b *BellBackend) Wait(ctx context.Context) error {
	return nil
}

func (b *BellBackend) Close() error {
	return nil
}

func (b *BellBackend) ring() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return terminalBell(b.out)
}

type bellHandle struct {
	backend *BellBackend
}

func (h *bellHandle) Play() error {
	return h.backend.ring()
}
