package gitexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultBinary is the git executable looked up on PATH.
const DefaultBinary = "git"

// ErrEmptyOutput is returned by Output when git succeeded but printed nothing.
var ErrEmptyOutput = errors.New("git printed no output")

// CommandError describes a git invocation that could not run or exited non-zero.
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s", strings.Join(e.Args, " "))
	if e.ExitCode >= 0 {
		msg += fmt.Sprintf(": exit status %d", e.ExitCode)
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

var _ Runner = (*ExecRunner)(nil)

// ExecRunner implements Runner by spawning the git binary.
type ExecRunner struct {
	binary string
}

// NewRunner creates a runner for the git binary on PATH.
func NewRunner() *ExecRunner {
	return &ExecRunner{binary: DefaultBinary}
}

// NewRunnerWithBinary creates a runner for a specific git executable.
func NewRunnerWithBinary(binary string) *ExecRunner {
	return &ExecRunner{binary: binary}
}

func (r *ExecRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		cmdErr := &CommandError{
			Args:     args,
			ExitCode: -1,
			Stderr:   strings.TrimSpace(stderr.String()),
			Err:      err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cmdErr.ExitCode = exitErr.ExitCode()
		}
		return "", cmdErr
	}

	return strings.TrimSpace(stdout.String()), nil
}

// IsExitError reports whether err is a git invocation that ran and exited non-zero.
func IsExitError(err error) bool {
	var cmdErr *CommandError
	return errors.As(err, &cmdErr) && cmdErr.ExitCode > 0
}

// Output runs git through r and treats empty stdout as a failure.
func Output(ctx context.Context, r Runner, dir string, args ...string) (string, error) {
	out, err := r.Run(ctx, dir, args...)
	if err != nil {
		return "", err
	}
	if out == "" {
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), ErrEmptyOutput)
	}
	return out, nil
}
