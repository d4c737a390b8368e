// Package gitexectest provides a scripted gitexec.Runner for tests.
package gitexectest

import (
	"context"
	"strings"
	"sync"

	"github.com/jeanhaley32/repolink/internal/gitexec"
)

var _ gitexec.Runner = (*Runner)(nil)

// Response is the scripted result of one git invocation.
type Response struct {
	Stdout string
	Err    error
}

// Runner answers git invocations from a script keyed by the joined argument list.
// Unscripted invocations fail with exit status 1, the way git reports missing config.
type Runner struct {
	mu        sync.Mutex
	responses map[string]Response
	calls     []string
	dirs      []string
}

// NewRunner creates an empty scripted runner.
func NewRunner() *Runner {
	return &Runner{responses: make(map[string]Response)}
}

// On scripts a successful invocation printing stdout.
func (r *Runner) On(args string, stdout string) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses[args] = Response{Stdout: stdout}
	return r
}

// Fail scripts a failing invocation with the given exit code.
func (r *Runner) Fail(args string, exitCode int) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses[args] = Response{Err: &gitexec.CommandError{
		Args:     strings.Fields(args),
		ExitCode: exitCode,
	}}
	return r
}

func (r *Runner) Run(_ context.Context, dir string, args ...string) (string, error) {
	key := strings.Join(args, " ")

	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, key)
	r.dirs = append(r.dirs, dir)

	resp, ok := r.responses[key]
	if !ok {
		return "", &gitexec.CommandError{Args: args, ExitCode: 1}
	}
	if resp.Err != nil {
		return "", resp.Err
	}
	return strings.TrimSpace(resp.Stdout), nil
}

// Calls returns every invocation in order, as joined argument strings.
func (r *Runner) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}

// Dirs returns the working directory of every invocation in order.
func (r *Runner) Dirs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.dirs))
	copy(out, r.dirs)
	return out
}

// Called reports how many times args was invoked.
func (r *Runner) Called(args string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c == args {
			n++
		}
	}
	return n
}
