package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/beeper/test/integration/harness"
)

type historyJSON struct {
	Recent []struct {
		Origin  string `json:"origin"`
		Outcome string `json:"outcome"`
		Sound   string `json:"sound"`
	} `json:"recent"`
	Sounds []struct {
		Played  int64  `json:"played"`
		Sound   string `json:"sound"`
		Total   int64  `json:"total"`
		Unknown int64  `json:"unknown"`
	} `json:"sounds"`
}

func TestHistory_RecordsPlays(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	harness.AssertSuccess(t, harness.RunCommand(t, env, "play", "beep"))
	harness.AssertSuccess(t, harness.RunCommand(t, env, "play", "beep"))
	harness.AssertFailure(t, harness.RunCommand(t, env, "play", "honk"))

	result := harness.RunCommand(t, env, "history", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertStderrEmpty(t, result)

	var history historyJSON
	harness.AssertValidJSON(t, result, &history)

	require.Len(t, history.Recent, 3)
	assert.Equal(t, "cli", history.Recent[0].Origin)

	require.Len(t, history.Sounds, 2)
	assert.Equal(t, "beep", history.Sounds[0].Sound)
	assert.EqualValues(t, 2, history.Sounds[0].Played)
	assert.Equal(t, "honk", history.Sounds[1].Sound)
	assert.EqualValues(t, 1, history.Sounds[1].Unknown)
	assert.FileExists(t, env.DBPath())
}

func TestHistory_Limit(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	harness.AssertSuccess(t, harness.RunCommand(t, env, "play", "beep", "beep", "beep"))

	result := harness.RunCommand(t, env, "history", "--format", "json", "--limit", "2")
	harness.AssertSuccess(t, result)

	var history historyJSON
	harness.AssertValidJSON(t, result, &history)
	assert.Len(t, history.Recent, 2)
	require.Len(t, history.Sounds, 1)
	assert.EqualValues(t, 3, history.Sounds[0].Total)
}

func TestHistory_Empty(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "history")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "No plays recorded yet.")
}

func TestHistory_Disabled(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteFile("settings.json", `{"history": false}`)

	harness.AssertSuccess(t, harness.RunCommand(t, env, "play", "beep"))
	result := harness.RunCommand(t, env, "history")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "play history is disabled")
	assert.NoFileExists(t, env.DBPath())
}
