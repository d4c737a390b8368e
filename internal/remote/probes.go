package remote

import (
	"context"
	"fmt"
	"strings"

	"github.com/jeanhaley32/repolink/internal/constants"
	"github.com/jeanhaley32/repolink/internal/gitexec"
)

// ProbeFunc inspects the working copy at root and reports a remote URL and branch.
type ProbeFunc func(ctx context.Context, git gitexec.Runner, root string) ProbeResult

// Probe is a named step of the resolution chain.
type Probe struct {
	Name string
	Run  ProbeFunc
}

// DefaultProbes returns the resolution chain in priority order.
func DefaultProbes() []Probe {
	return []Probe{
		{Name: ProbeUpstream, Run: probeUpstream},
		{Name: ProbeBranchRemote, Run: probeBranchRemote},
		{Name: ProbeOriginDefault, Run: probeOriginDefault},
		{Name: ProbeOriginFallback, Run: probeOriginFallback},
	}
}

// probeUpstream follows the upstream configured for HEAD.
func probeUpstream(ctx context.Context, git gitexec.Runner, root string) ProbeResult {
	upstream, err := gitexec.Output(ctx, git, root, "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{u}")
	if err != nil {
		return miss("HEAD has no upstream", err)
	}

	ref, ok := ParseTrackingRef(upstream)
	if !ok {
		return miss(fmt.Sprintf("upstream %q is not <remote>/<branch>", upstream), nil)
	}

	url, err := gitexec.Output(ctx, git, root, "config", "--get", "remote."+ref.Remote+".url")
	if err != nil {
		return miss(fmt.Sprintf("remote %q has no url", ref.Remote), err)
	}

	return found(ref, url)
}

// probeBranchRemote reads the current branch's remote from branch config,
// falling back to the remote part of its upstream.
func probeBranchRemote(ctx context.Context, git gitexec.Runner, root string) ProbeResult {
	branch, err := currentBranch(ctx, git, root)
	if err != nil {
		return miss("HEAD is not on a branch", err)
	}

	remoteName, err := gitexec.Output(ctx, git, root, "config", "branch."+branch+".remote")
	if err != nil {
		upstream, upErr := gitexec.Output(ctx, git, root,
			"for-each-ref", "--format=%(upstream:short)", "refs/heads/"+branch)
		if upErr != nil {
			return miss(fmt.Sprintf("branch %q has no remote", branch), upErr)
		}
		remoteName = upstream
		if ref, ok := ParseTrackingRef(upstream); ok {
			remoteName = ref.Remote
		}
	}

	url, err := gitexec.Output(ctx, git, root, "remote", "get-url", remoteName)
	if err != nil {
		return miss(fmt.Sprintf("remote %q has no url", remoteName), err)
	}

	return found(Reference{Remote: remoteName, Branch: branch}, url)
}

// probeOriginDefault uses origin's default branch.
func probeOriginDefault(ctx context.Context, git gitexec.Runner, root string) ProbeResult {
	target, err := gitexec.Output(ctx, git, root, "symbolic-ref", constants.OriginHeadRef)
	if err != nil {
		return miss("origin has no default branch", err)
	}

	branch := strings.TrimPrefix(target, constants.OriginRefPrefix)
	if branch == "" {
		return miss(fmt.Sprintf("unexpected origin HEAD target %q", target), nil)
	}

	url, err := gitexec.Output(ctx, git, root, "config", "--get", "remote."+constants.DefaultRemote+".url")
	if err != nil {
		return miss("origin has no url", err)
	}

	return found(Reference{Remote: constants.DefaultRemote, Branch: branch}, url)
}

// probeOriginFallback asks ls-remote for origin's URL and pairs it with the current branch.
func probeOriginFallback(ctx context.Context, git gitexec.Runner, root string) ProbeResult {
	branch, err := currentBranch(ctx, git, root)
	if err != nil {
		return miss("HEAD is not on a branch", err)
	}

	url, err := gitexec.Output(ctx, git, root, "ls-remote", "--get-url", constants.DefaultRemote)
	if err != nil {
		return miss("origin has no url", err)
	}
	// ls-remote echoes the name back when no such remote exists.
	if url == constants.DefaultRemote {
		return miss("origin is not configured", nil)
	}

	return found(Reference{Remote: constants.DefaultRemote, Branch: branch}, url)
}

func currentBranch(ctx context.Context, git gitexec.Runner, root string) (string, error) {
	return gitexec.Output(ctx, git, root, "symbolic-ref", "--short", "HEAD")
}
