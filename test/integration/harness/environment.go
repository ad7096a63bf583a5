package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own BEEPER_HOME.
type TestEnvironment struct {
	BeeperHome string
	extraEnv   map[string]string
	tb         testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp BEEPER_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	beeperHome := tb.TempDir()

	if err := os.MkdirAll(filepath.Join(beeperHome, "sounds"), 0755); err != nil {
		tb.Fatalf("Failed to create sounds directory: %v", err)
	}

	return &TestEnvironment{
		BeeperHome: beeperHome,
		extraEnv:   make(map[string]string),
		tb:         tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out BEEPER_* variables and sets:
//   - BEEPER_HOME to the temp directory
//   - BEEPER_DEBUG to empty string (disables debug logging)
//   - BEEPER_BACKEND to "bell" (no audio device needed)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	overrideKeys := make(map[string]bool)
	overrideKeys["BEEPER_HOME"] = true
	overrideKeys["BEEPER_DEBUG"] = true
	overrideKeys["BEEPER_BACKEND"] = true
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	// Filter out existing BEEPER_* variables and any we're overriding
	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		key := parts[0]
		if strings.HasPrefix(key, "BEEPER_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"BEEPER_HOME="+e.BeeperHome,
		"BEEPER_DEBUG=",
	)

	// Extra variables may replace the default backend
	if _, ok := e.extraEnv["BEEPER_BACKEND"]; !ok {
		env = append(env, "BEEPER_BACKEND=bell")
	}
	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test history database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.BeeperHome, "history.db")
}

// SoundsDir returns the default assets directory.
func (e *TestEnvironment) SoundsDir() string {
	return filepath.Join(e.BeeperHome, "sounds")
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// WriteFile writes a file relative to BEEPER_HOME.
func (e *TestEnvironment) WriteFile(name, content string) string {
	e.tb.Helper()
	path := filepath.Join(e.BeeperHome, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.tb.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}
