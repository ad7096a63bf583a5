package cmd

import (
	"fmt"

	"github.com/renato0307/beeper/internal/version"
)

// VersionCmd prints version information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run() error {
	fmt.Println(version.Info())
	return nil
}
