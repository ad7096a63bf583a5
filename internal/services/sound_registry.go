package services

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/beeper/internal/domain"
	"github.com/renato0307/beeper/internal/logging"
	"github.com/renato0307/beeper/internal/ports"
)

// maxConcurrentLoads bounds how many sounds are decoded at once during startup
const maxConcurrentLoads = 4

// SoundRegistry maps logical sound names to loaded handles.
// It is fully built by NewSoundRegistry and never mutated afterwards,
// so Play is safe for concurrent use without locking.
type SoundRegistry struct {
	handles map[string]ports.SoundHandle
	names   []string
	sources map[string][]string
}

// Verify interface compliance at compile time
var _ ports.SoundTrigger = (*SoundRegistry)(nil)

// NewSoundRegistry loads one handle per definition and returns the registry
// once every handle is ready. Any load failure aborts construction.
func NewSoundRegistry(ctx context.Context, loader ports.SoundLoader, table domain.SoundTable) (*SoundRegistry, error) {
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sound table: %w", err)
	}

	logging.Logger.Debug("Loading sounds", "count", len(table))

	handles := make([]ports.SoundHandle, len(table))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)

	for i, def := range table {
		g.Go(func() error {
			handle, err := loader.Load(gctx, slices.Clone(def.Sources))
			if err != nil {
				logging.Logger.Error("Failed to load sound", "name", def.Name, "sources", def.Sources, "error", err)
				return fmt.Errorf("failed to load sound %q: %w", def.Name, err)
			}
			handles[i] = handle
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	r := &SoundRegistry{
		handles: make(map[string]ports.SoundHandle, len(table)),
		names:   make([]string, 0, len(table)),
		sources: make(map[string][]string, len(table)),
	}
	for i, def := range table {
		r.handles[def.Name] = handles[i]
		r.names = append(r.names, def.Name)
		r.sources[def.Name] = slices.Clone(def.Sources)
	}
	sort.Strings(r.names)

	logging.Logger.Info("Sound registry initialized", "sounds", r.names)
	return r, nil
}

// Play starts playback of the named sound.
// An unregistered name is a caller error: it is logged, nothing is played,
// and an *domain.UnknownSoundError is returned.
func (r *SoundRegistry) Play(name string) error {
	handle, ok := r.handles[name]
	if !ok {
		logging.Logger.Warn("Unknown sound", "name", name)
		return &domain.UnknownSoundError{Name: name}
	}

	logging.Logger.Debug("Playing sound", "name", name)
	if err := handle.Play(); err != nil {
		logging.Logger.Error("Failed to start sound", "name", name, "error", err)
		return fmt.Errorf("failed to play sound %q: %w", name, err)
	}
	return nil
}

// Handle returns the handle registered under name
func (r *SoundRegistry) Handle(name string) (ports.SoundHandle, bool) {
	handle, ok := r.handles[name]
	return handle, ok
}

// Names returns the registered sound names, sorted
func (r *SoundRegistry) Names() []string {
	return slices.Clone(r.names)
}

// Sources returns the configured candidate sources for name
func (r *SoundRegistry) Sources(name string) []string {
	return slices.Clone(r.sources[name])
}
