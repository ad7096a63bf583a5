package harness

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccess verifies beeper exited 0
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Equal(tb, 0, result.ExitCode,
		"beeper %v: expected exit 0, got %d.\nStdout: %q\nStderr: %s",
		result.Args, result.ExitCode, result.Stdout, result.Stderr)
}

// AssertFailure verifies beeper exited non-zero
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotEqual(tb, 0, result.ExitCode,
		"beeper %v: expected a failure, got exit 0.\nStdout: %q",
		result.Args, result.Stdout)
}

// AssertExitCode verifies beeper exited with a specific code
func AssertExitCode(tb testing.TB, result CommandResult, expected int) {
	tb.Helper()
	assert.Equal(tb, expected, result.ExitCode,
		"beeper %v: expected exit %d, got %d.\nStdout: %q\nStderr: %s",
		result.Args, expected, result.ExitCode, result.Stdout, result.Stderr)
}

// AssertStdoutContains verifies stdout, minus bells, contains the expected string
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Text(), expected,
		"beeper %v: expected stdout to contain %q.\nActual stdout: %s",
		result.Args, expected, result.Text())
}

// AssertStderrContains verifies stderr contains the expected string
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected,
		"beeper %v: expected stderr to contain %q.\nActual stderr: %s",
		result.Args, expected, result.Stderr)
}

// AssertStderrEmpty verifies beeper reported nothing on stderr
func AssertStderrEmpty(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Empty(tb, strings.TrimSpace(result.Stderr),
		"beeper %v: expected empty stderr, got: %s", result.Args, result.Stderr)
}

// AssertBells verifies the bell backend played exactly n sounds
func AssertBells(tb testing.TB, result CommandResult, n int) {
	tb.Helper()
	assert.Equal(tb, n, result.Bells(),
		"beeper %v: expected %d sounds played, got %d", result.Args, n, result.Bells())
}

// AssertUnknownSound verifies a play exited 1 naming the unknown sound
func AssertUnknownSound(tb testing.TB, result CommandResult, name string) {
	tb.Helper()
	AssertExitCode(tb, result, 1)
	AssertStderrContains(tb, result, "unknown sound: "+name)
}

// AssertValidJSON verifies stdout is valid JSON and unmarshals it into target
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	err := json.Unmarshal([]byte(result.Stdout), target)
	require.NoError(tb, err, "beeper %v: expected valid JSON.\nStdout: %s", result.Args, result.Stdout)
}
