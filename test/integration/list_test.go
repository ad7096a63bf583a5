package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/beeper/test/integration/harness"
)

func TestList(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		env      map[string]string
		settings string
		expected string
	}{
		{
			name:     "default preset",
			args:     []string{"list"},
			expected: "beep.mp3",
		},
		{
			name:     "preset flag",
			args:     []string{"--preset", "beep2", "list"},
			expected: "beep2.mp3",
		},
		{
			name:     "preset from settings.json",
			args:     []string{"list"},
			settings: `{"preset": "lower"}`,
			expected: "lower_beep2.mp3",
		},
		{
			name:     "env overrides settings.json",
			args:     []string{"list"},
			env:      map[string]string{"BEEPER_PRESET": "beep2"},
			settings: `{"preset": "lower"}`,
			expected: "beep2.mp3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			for k, v := range tt.env {
				env.SetEnv(k, v)
			}
			if tt.settings != "" {
				env.WriteFile("settings.json", tt.settings)
			}

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertSuccess(t, result)
			harness.AssertStdoutContains(t, result, "beep")
			harness.AssertStdoutContains(t, result, tt.expected)
		})
	}
}

func TestList_JSON(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteFile("sounds.yaml", "sounds:\n  alarm: [alarm.ogg, alarm.wav]\n")

	result := harness.RunCommand(t, env, "list", "--format", "json")
	harness.AssertSuccess(t, result)

	var entries []struct {
		Name    string   `json:"name"`
		Sources []string `json:"sources"`
	}
	harness.AssertValidJSON(t, result, &entries)

	require.Len(t, entries, 2)
	assert.Equal(t, "alarm", entries[0].Name)
	assert.Equal(t, []string{"alarm.ogg", "alarm.wav"}, entries[0].Sources)
	assert.Equal(t, "beep", entries[1].Name)
}

func TestPresets(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--preset", "lower", "presets")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "  default  beep.mp3")
	harness.AssertStdoutContains(t, result, "  beep2    beep2.mp3")
	harness.AssertStdoutContains(t, result, "* lower    lower_beep2.mp3")
}
