package gitexec

import "context"

// Runner executes git commands against a working copy.
type Runner interface {
	// Run executes git with args in dir and returns its trimmed stdout.
	// A non-zero exit status is reported as a *CommandError.
	Run(ctx context.Context, dir string, args ...string) (string, error)
}
