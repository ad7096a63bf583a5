package cmd

import (
	"context"
	"os"

	"github.com/renato0307/beeper/internal/config"
	"github.com/renato0307/beeper/internal/server"
)

// ServeCmd starts the SSH trigger server
type ServeCmd struct {
	AuthorizedKeys string `help:"authorized_keys file used for public key auth (default: ~/.ssh/authorized_keys)"`
	Host           string `help:"Address to listen on" default:"localhost" env:"BEEPER_SSH_HOST"`
	Port           int    `help:"Port to listen on" default:"2323" env:"BEEPER_SSH_PORT"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	s.applySettings(cli.Settings())

	playback, err := cli.Container.PlaybackService(context.Background())
	if err != nil {
		return err
	}

	srv, err := server.NewServer(server.Config{
		AuthorizedKeysPath: config.ExpandPath(s.AuthorizedKeys),
		Host:               s.Host,
		Port:               s.Port,
	}, playback, playback.Sounds())
	if err != nil {
		return err
	}

	return srv.Start()
}

// applySettings fills host and port from settings.json when left at their defaults
func (s *ServeCmd) applySettings(settings *config.Settings) {
	if s.Host == config.DefaultSSHHost {
		if _, hasEnv := os.LookupEnv("BEEPER_SSH_HOST"); !hasEnv {
			if settings.SSHHost != "" {
				s.Host = settings.SSHHost
			}
		}
	}

	if s.Port == config.DefaultSSHPort {
		if _, hasEnv := os.LookupEnv("BEEPER_SSH_PORT"); !hasEnv {
			if settings.SSHPort != nil {
				s.Port = *settings.SSHPort
			}
		}
	}
}
