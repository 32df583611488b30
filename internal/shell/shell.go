// Package shell generates the shell integration that makes hop useful:
// a hook that tracks every directory change and an `h` function that
// cd's to the best-ranked match.
package shell

import "fmt"

// Supported shell types.
const (
	Bash = "bash"
	Zsh  = "zsh"
	Fish = "fish"
)

// ValidShell returns true if the shell name is supported.
func ValidShell(name string) bool {
	switch name {
	case Bash, Zsh, Fish:
		return true
	}
	return false
}

// ShellError is returned for unsupported shell types.
func ShellError(name string) error {
	return fmt.Errorf("unknown shell %q — supported: bash, zsh, fish", name)
}
