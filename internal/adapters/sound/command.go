package sound

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/renato0307/beeper/internal/logging"
	"github.com/renato0307/beeper/internal/ports"
)

// playerCommand is one OS audio player invocation
type playerCommand struct {
	args []string
	name string
}

// CommandBackend plays files through the platform's command-line audio player.
// Platform-specific player lists are in player_*.go files with build tags.
type CommandBackend struct {
	assetsDir string
	bell      io.Writer
	bellMu    sync.Mutex
	newCmd    func(name string, args ...string) *exec.Cmd
	playing   sync.WaitGroup
}

// Verify interface compliance at compile time
var _ ports.SoundBackend = (*CommandBackend)(nil)

// NewCommandBackend creates a new CommandBackend
func NewCommandBackend(assetsDir string, bell io.Writer) *CommandBackend {
	return &CommandBackend{
		assetsDir: assetsDir,
		bell:      bell,
		newCmd:    exec.Command,
	}
}

// Load picks the first candidate that exists as a regular file
func (b *CommandBackend) Load(ctx context.Context, sources []string) (ports.SoundHandle, error) {
	var errs []error
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := resolveSource(b.assetsDir, src)
		info, err := os.Stat(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", src, err))
			continue
		}
		if info.IsDir() {
			errs = append(errs, fmt.Errorf("%s: %w", src, errors.New("is a directory")))
			continue
		}

		return &fileHandle{backend: b, path: path}, nil
	}

	return nil, noPlayableSource(errs)
}

// Wait blocks until every started player process has exited or ctx is done
func (b *CommandBackend) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		b.playing.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close is a no-op; running players finish on their own
func (b *CommandBackend) Close() error {
	return nil
}

// play starts the first available player for path without waiting for it,
// falling back to the terminal bell when no player can be started
func (b *CommandBackend) play(path string) error {
	for _, player := range playerCommands(path) {
		cmd := b.newCmd(player.name, player.args...)
		if err := cmd.Start(); err != nil {
			logging.Logger.Debug("Audio player unavailable", "player", player.name, "error", err)
			continue
		}

		logging.Logger.Debug("Audio player started", "player", player.name, "path", path, "pid", cmd.Process.Pid)
		b.playing.Add(1)
		go func() {
			defer b.playing.Done()
			if err := cmd.Wait(); err != nil {
				logging.Logger.Warn("Audio player failed", "player", player.name, "path", path, "error", err)
			}
		}()
		return nil
	}

	logging.Logger.Debug("No audio player available, ringing terminal bell", "path", path)
	b.bellMu.Lock()
	defer b.bellMu.Unlock()
	return terminalBell(b.bell)
}

// fileHandle plays a resolved file through its backend
type fileHandle struct {
	backend *CommandBackend
	path    string
}

func (h *fileHandle) Play() error {
	return h.backend.play(h.path)
}
