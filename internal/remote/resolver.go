package remote

import (
	"context"
	"io"
	"log/slog"

	"github.com/jeanhaley32/repolink/internal/gitexec"
	"github.com/jeanhaley32/repolink/internal/logfields"
)

// Resolver finds the hosted URL and branch of a working copy by running
// probes in order until one succeeds. It keeps no state between calls.
type Resolver struct {
	git    gitexec.Runner
	probes []Probe
	logger *slog.Logger
}

// NewResolver creates a resolver with the default probe chain.
func NewResolver(git gitexec.Runner) *Resolver {
	return NewResolverWithProbes(git, DefaultProbes()...)
}

// NewResolverWithProbes creates a resolver with a custom probe chain.
func NewResolverWithProbes(git gitexec.Runner, probes ...Probe) *Resolver {
	return &Resolver{
		git:    git,
		probes: probes,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger sets the logger that receives per-probe debug records.
func (r *Resolver) WithLogger(logger *slog.Logger) *Resolver {
	if logger != nil {
		r.logger = logger
	}
	return r
}

// Resolve returns the resolved link for the working copy at root.
// The boolean is false when every probe missed; that is not an error.
func (r *Resolver) Resolve(ctx context.Context, root string) (*ResolvedLink, bool) {
	link, _ := r.Trace(ctx, root)
	return link, link != nil
}

// Trace runs the chain like Resolve and also returns the outcome of every
// probe it attempted, in order.
func (r *Resolver) Trace(ctx context.Context, root string) (*ResolvedLink, []Outcome) {
	outcomes := make([]Outcome, 0, len(r.probes))

	for _, probe := range r.probes {
		result := probe.Run(ctx, r.git, root)

		if result.Found {
			baseURL := Normalize(result.URL)
			if baseURL == "" {
				result = miss("remote url normalized to nothing", nil)
			} else {
				outcomes = append(outcomes, Outcome{Probe: probe.Name, Result: result})
				link := &ResolvedLink{
					BaseURL: baseURL,
					Branch:  result.Ref.Branch,
					Remote:  result.Ref.Remote,
					Probe:   probe.Name,
				}
				r.logger.Debug("Resolved remote",
					logfields.Probe(probe.Name),
					logfields.Remote(link.Remote),
					logfields.Branch(link.Branch),
					logfields.URL(link.BaseURL))
				return link, outcomes
			}
		}

		outcomes = append(outcomes, Outcome{Probe: probe.Name, Result: result})
		r.logger.Debug("Probe missed",
			logfields.Probe(probe.Name),
			logfields.Workspace(root),
			logfields.Reason(result.Reason),
			logfields.Error(result.Err))
	}

	return nil, outcomes
}
