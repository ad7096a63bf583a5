// Package harness provides utilities for integration testing the beeper CLI.
// It builds beeper once with BuildVersion stamped in, isolates each test's
// environment and counts the bells the bell backend writes to stdout.
//
// Environment variables managed:
//   - BEEPER_HOME: Isolated per test (temp directory)
//   - BEEPER_DEBUG: Disabled to reduce noise
//   - BEEPER_BACKEND: Set to "bell" so tests never need an audio device
package harness
