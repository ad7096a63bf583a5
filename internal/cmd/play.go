package cmd

import (
	"context"
	"errors"
	"time"

	"github.com/renato0307/beeper/internal/domain"
	"github.com/renato0307/beeper/internal/logging"
)

// PlayCmd plays one or more sounds by name
type PlayCmd struct {
	Names   []string      `arg:"" name:"name" help:"Names of the sounds to play"`
	NoWait  bool          `help:"Return as soon as playback has started"`
	Timeout time.Duration `help:"Maximum time to wait for playback to finish" default:"30s"`
}

// Run executes the play command
func (p *PlayCmd) Run(cli *CLI) error {
	ctx := context.Background()

	playback, err := cli.Container.PlaybackService(ctx)
	if err != nil {
		return err
	}

	// Keep going on failures so every name gets its own outcome
	var errs []error
	for _, name := range p.Names {
		if err := playback.Play(ctx, name, domain.OriginCLI); err != nil {
			errs = append(errs, err)
		}
	}

	if !p.NoWait {
		waitCtx, cancel := context.WithTimeout(ctx, p.Timeout)
		defer cancel()
		if err := cli.Container.Wait(waitCtx); err != nil {
			logging.Logger.Warn("Stopped waiting for playback", "error", err)
		}
	}

	return errors.Join(errs...)
}
