package state

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/jeanhaley32/repolink/internal/gitexec"
	"github.com/jeanhaley32/repolink/internal/remote"
)

// RemoteInfo describes one configured remote.
type RemoteInfo struct {
	Name       string
	URL        string
	Normalized string
}

// WorkspaceState is a diagnostic snapshot of how a working copy resolves.
type WorkspaceState struct {
	WorkspacePath string
	IsRepository  bool
	CurrentBranch string
	Upstream      string
	Remotes       []RemoteInfo
	Resolved      *remote.ResolvedLink
	Probes        []remote.Outcome
}

// Detector checks the state of a working copy.
type Detector struct {
	git           gitexec.Runner
	resolver      *remote.Resolver
	workspacePath string
}

// NewDetector creates a new state detector.
func NewDetector(git gitexec.Runner, resolver *remote.Resolver, workspacePath string) *Detector {
	return &Detector{
		git:           git,
		resolver:      resolver,
		workspacePath: workspacePath,
	}
}

// Detect checks all aspects of the working copy.
func (d *Detector) Detect(ctx context.Context) *WorkspaceState {
	state := &WorkspaceState{
		WorkspacePath: d.workspacePath,
	}

	state.IsRepository, state.Remotes = d.checkRepository()

	// Empty on detached HEAD or missing upstream
	state.CurrentBranch, _ = gitexec.Output(ctx, d.git, d.workspacePath, "symbolic-ref", "--short", "HEAD")
	state.Upstream, _ = gitexec.Output(ctx, d.git, d.workspacePath,
		"rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{u}")

	state.Resolved, state.Probes = d.resolver.Trace(ctx, d.workspacePath)

	return state
}

// checkRepository opens the working copy with go-git and lists its remotes.
func (d *Detector) checkRepository() (bool, []RemoteInfo) {
	repository, err := git.PlainOpenWithOptions(d.workspacePath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return false, nil
	}

	remotes, err := repository.Remotes()
	if err != nil {
		return true, nil
	}

	infos := make([]RemoteInfo, 0, len(remotes))
	for _, r := range remotes {
		cfg := r.Config()
		info := RemoteInfo{Name: cfg.Name}
		if len(cfg.URLs) > 0 {
			info.URL = cfg.URLs[0]
			info.Normalized = remote.Normalize(info.URL)
		}
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })

	return true, infos
}

// Write prints a human-readable report.
func (s *WorkspaceState) Write(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Workspace:      %s\n", s.WorkspacePath)
	fmt.Fprintf(&b, "Git repository: %s\n", yesNo(s.IsRepository))
	fmt.Fprintf(&b, "Current branch: %s\n", orNone(s.CurrentBranch))
	fmt.Fprintf(&b, "Upstream:       %s\n", orNone(s.Upstream))

	b.WriteString("Remotes:\n")
	if len(s.Remotes) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, r := range s.Remotes {
		fmt.Fprintf(&b, "  %-10s %s -> %s\n", r.Name, orNone(r.URL), orNone(r.Normalized))
	}

	b.WriteString("Probes:\n")
	for i, o := range s.Probes {
		if o.Result.Found {
			fmt.Fprintf(&b, "  %d. %-16s ok (%s/%s)\n", i+1, o.Probe, o.Result.Ref.Remote, o.Result.Ref.Branch)
			continue
		}
		fmt.Fprintf(&b, "  %d. %-16s skipped: %s\n", i+1, o.Probe, o.Result.Reason)
	}

	if s.Resolved != nil {
		fmt.Fprintf(&b, "Resolved:       %s\n", s.Resolved.BlobURL())
	} else {
		fmt.Fprintf(&b, "Resolved:       (none)\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
