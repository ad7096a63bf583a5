package cmd

import (
	"context"
	"errors"
	"io"
	"os"

	adaptersound "github.com/renato0307/beeper/internal/adapters/sound"
	adapterstorage "github.com/renato0307/beeper/internal/adapters/storage"
	"github.com/renato0307/beeper/internal/config"
	"github.com/renato0307/beeper/internal/domain"
	"github.com/renato0307/beeper/internal/logging"
	"github.com/renato0307/beeper/internal/ports"
	"github.com/renato0307/beeper/internal/services"
)

// ContainerConfig holds the resolved settings the container wires from
type ContainerConfig struct {
	AssetsDir  string
	Backend    string
	Bell       io.Writer
	DBPath     string
	History    bool
	Preset     string
	SoundsPath string
}

// Container holds all dependencies for the application.
// Dependencies are built on first use so commands that never play
// sounds do not open the audio device or the history database.
type Container struct {
	cfg ContainerConfig

	backend         ports.SoundBackend
	historyRepo     ports.PlayEventRepository
	historyService  *services.HistoryService
	playbackService *services.PlaybackService
	registry        *services.SoundRegistry
	table           domain.SoundTable
}

// NewContainer creates a new Container
func NewContainer(cfg ContainerConfig) *Container {
	if cfg.Bell == nil {
		cfg.Bell = os.Stdout
	}
	if cfg.DBPath == "" {
		cfg.DBPath = config.GetDBPath()
	}
	if cfg.SoundsPath == "" {
		cfg.SoundsPath = config.GetSoundsPath()
	}
	return &Container{cfg: cfg}
}

// SoundTable returns the preset table merged with the user's sounds.yaml
func (c *Container) SoundTable() (domain.SoundTable, error) {
	if c.table != nil {
		return c.table, nil
	}

	user, err := config.LoadSoundTable(c.cfg.SoundsPath)
	if err != nil {
		return nil, err
	}

	table, err := config.ResolveSoundTable(c.cfg.Preset, user)
	if err != nil {
		return nil, err
	}

	c.table = table
	return table, nil
}

// PlaybackService returns the playback service, loading every sound on first use.
// A failed build releases its backend so a later call starts clean.
func (c *Container) PlaybackService(ctx context.Context) (*services.PlaybackService, error) {
	if c.playbackService != nil {
		return c.playbackService, nil
	}

	table, err := c.SoundTable()
	if err != nil {
		return nil, err
	}

	backend, err := adaptersound.NewBackend(c.cfg.Backend, adaptersound.Options{
		AssetsDir: c.cfg.AssetsDir,
		Bell:      c.cfg.Bell,
	})
	if err != nil {
		return nil, err
	}

	registry, err := services.NewSoundRegistry(ctx, backend, table)
	if err != nil {
		return nil, closeBackendOnError(backend, err)
	}

	repo, err := c.openHistory()
	if err != nil {
		return nil, closeBackendOnError(backend, err)
	}

	// Keep the recorder a nil interface when history is disabled
	var recorder ports.PlayEventRecorder
	if repo != nil {
		recorder = repo
	}

	c.backend = backend
	c.registry = registry
	c.playbackService = services.NewPlaybackService(registry, recorder)
	return c.playbackService, nil
}

func closeBackendOnError(backend ports.SoundBackend, err error) error {
	if closeErr := backend.Close(); closeErr != nil {
		logging.Logger.Debug("Failed to close sound backend", "error", closeErr)
	}
	return err
}

// HistoryService returns the history service
func (c *Container) HistoryService() (*services.HistoryService, error) {
	if c.historyService != nil {
		return c.historyService, nil
	}

	repo, err := c.openHistory()
	if err != nil {
		return nil, err
	}

	var reader ports.PlayEventReader
	if repo != nil {
		reader = repo
	}

	c.historyService = services.NewHistoryService(reader)
	return c.historyService, nil
}

// Wait blocks until sounds started through the container have finished
func (c *Container) Wait(ctx context.Context) error {
	if c.backend == nil {
		return nil
	}
	return c.backend.Wait(ctx)
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error
	if c.backend != nil {
		errs = append(errs, c.backend.Close())
	}
	if c.historyRepo != nil {
		errs = append(errs, c.historyRepo.Close())
	}
	return errors.Join(errs...)
}

func (c *Container) openHistory() (ports.PlayEventRepository, error) {
	if !c.cfg.History {
		return nil, nil
	}
	if c.historyRepo != nil {
		return c.historyRepo, nil
	}

	repo, err := adapterstorage.NewSQLiteRepository(c.cfg.DBPath)
	if err != nil {
		return nil, err
	}
	logging.Logger.Debug("History repository opened", "path", c.cfg.DBPath)

	c.historyRepo = repo
	return repo, nil
}
