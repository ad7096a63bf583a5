package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/beeper/internal/domain"
)

func writeSoundsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sounds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSoundTable_ScalarAndListSources(t *testing.T) {
	path := writeSoundsFile(t, `
sounds:
  honk: honk.wav
  beep:
    - beep.ogg
    - beep.mp3
`)

	table, err := LoadSoundTable(path)

	require.NoError(t, err)
	assert.Equal(t, domain.SoundTable{
		{Name: "beep", Sources: []string{"beep.ogg", "beep.mp3"}},
		{Name: "honk", Sources: []string{"honk.wav"}},
	}, table)
}

func TestLoadSoundTable_MissingFile(t *testing.T) {
	table, err := LoadSoundTable(filepath.Join(t.TempDir(), "sounds.yaml"))

	require.NoError(t, err)
	assert.Empty(t, table)
}

func TestLoadSoundTable_EmptySources(t *testing.T) {
	path := writeSoundsFile(t, "sounds:\n  beep:\n")

	_, err := LoadSoundTable(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoSources)
}

func TestLoadSoundTable_InvalidShape(t *testing.T) {
	path := writeSoundsFile(t, "sounds:\n  beep:\n    src: beep.mp3\n")

	_, err := LoadSoundTable(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sounds.yaml")
}

func TestResolveSoundTable(t *testing.T) {
	tests := []struct {
		name      string
		preset    string
		user      domain.SoundTable
		wantNames []string
		wantBeep  []string
		wantErrIs error
	}{
		{
			name:      "empty preset uses default",
			preset:    "",
			wantNames: []string{"beep"},
			wantBeep:  []string{"beep.mp3"},
		},
		{
			name:      "lower preset",
			preset:    "lower",
			wantNames: []string{"beep"},
			wantBeep:  []string{"lower_beep2.mp3"},
		},
		{
			name:   "user table overrides and extends",
			preset: "beep2",
			user: domain.SoundTable{
				{Name: "beep", Sources: []string{"custom.wav"}},
				{Name: "honk", Sources: []string{"honk.wav"}},
			},
			wantNames: []string{"beep", "honk"},
			wantBeep:  []string{"custom.wav"},
		},
		{
			name:      "unknown preset",
			preset:    "kazoo",
			wantErrIs: domain.ErrUnknownPreset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ResolveSoundTable(tt.preset, tt.user)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantNames, table.Names())
			beep, ok := table.Lookup(domain.SoundBeep)
			require.True(t, ok)
			assert.Equal(t, tt.wantBeep, beep.Sources)
		})
	}
}
