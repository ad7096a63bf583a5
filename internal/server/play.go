package server

import (
	"context"
	"fmt"
	"io"

	"github.com/renato0307/beeper/internal/domain"
	"github.com/renato0307/beeper/internal/ui"
)

// playNames plays every name in order and returns the session exit code.
// A failing name does not stop the remaining ones.
func playNames(ctx context.Context, player ui.SoundPlayer, names []string, out, errOut io.Writer) int {
	code := 0
	for _, name := range names {
		if err := player.Play(ctx, name, domain.OriginSSH); err != nil {
			fmt.Fprintln(errOut, err)
			code = 1
			continue
		}
		fmt.Fprintf(out, "played %s\n", name)
	}
	return code
}
