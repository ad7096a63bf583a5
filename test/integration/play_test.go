package integration_test

import (
	"testing"

	"github.com/renato0307/beeper/test/integration/harness"
)

func TestPlay(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		setup    func(env *harness.TestEnvironment)
		validate func(t *testing.T, result harness.CommandResult)
	}{
		{
			name: "registered sound plays",
			args: []string{"play", "beep"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertSuccess(t, result)
				harness.AssertBells(t, result, 1)
				harness.AssertStderrEmpty(t, result)
			},
		},
		{
			name: "same sound twice plays twice",
			args: []string{"play", "beep", "beep"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertSuccess(t, result)
				harness.AssertBells(t, result, 2)
				harness.AssertStderrEmpty(t, result)
			},
		},
		{
			name: "unknown sound fails with its name",
			args: []string{"play", "honk"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertUnknownSound(t, result, "honk")
				harness.AssertStderrContains(t, result, "Error: unknown sound: honk")
				harness.AssertBells(t, result, 0)
			},
		},
		{
			name: "unknown sound does not stop the others",
			args: []string{"play", "honk", "beep"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertUnknownSound(t, result, "honk")
				harness.AssertBells(t, result, 1)
			},
		},
		{
			name: "sounds.yaml adds sounds",
			args: []string{"play", "alarm", "--no-wait"},
			setup: func(env *harness.TestEnvironment) {
				env.WriteFile("sounds.yaml", "sounds:\n  alarm: alarm.wav\n")
			},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertSuccess(t, result)
				harness.AssertBells(t, result, 1)
			},
		},
		{
			name: "unknown preset fails",
			args: []string{"--preset", "kazoo", "play", "beep"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertFailure(t, result)
				harness.AssertStderrContains(t, result, "unknown preset: kazoo")
			},
		},
		{
			name: "invalid sounds.yaml fails",
			args: []string{"play", "beep"},
			setup: func(env *harness.TestEnvironment) {
				env.WriteFile("sounds.yaml", "sounds:\n  alarm: []\n")
			},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertFailure(t, result)
				harness.AssertStderrContains(t, result, "invalid sounds.yaml")
			},
		},
		{
			name: "missing name argument fails",
			args: []string{"play"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertFailure(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			if tt.setup != nil {
				tt.setup(env)
			}

			result := harness.RunCommand(t, env, tt.args...)

			tt.validate(t, result)
		})
	}
}

func TestPlay_CommandBackendWithoutAssetsFails(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.SetEnv("BEEPER_BACKEND", "command")

	result := harness.RunCommand(t, env, "play", "beep")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "no playable source")
}
