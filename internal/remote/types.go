package remote

import (
	"strings"

	"github.com/jeanhaley32/repolink/internal/constants"
)

// Probe names, in chain order.
const (
	ProbeUpstream       = "upstream"
	ProbeBranchRemote   = "branch-remote"
	ProbeOriginDefault  = "origin-default"
	ProbeOriginFallback = "origin-fallback"
)

// Reference names a remote and a branch on it.
type Reference struct {
	Remote string
	Branch string
}

// ParseTrackingRef splits a short tracking ref such as "origin/feature/x".
// The remote is everything before the first slash and the branch is the rest.
func ParseTrackingRef(ref string) (Reference, bool) {
	remoteName, branch, ok := strings.Cut(strings.TrimSpace(ref), "/")
	if !ok || remoteName == "" || branch == "" {
		return Reference{}, false
	}
	return Reference{Remote: remoteName, Branch: branch}, true
}

// ResolvedLink is the outcome of a successful resolution.
type ResolvedLink struct {
	// BaseURL is the normalized HTTPS repository URL: no trailing slash, no .git, no git@.
	BaseURL string
	Branch  string

	// Remote and Probe record where the link came from.
	Remote string
	Probe  string
}

// BlobURL returns the hosted view of the branch, e.g. https://github.com/acme/app/blob/main.
func (l *ResolvedLink) BlobURL() string {
	return l.BaseURL + constants.BlobSegment + l.Branch
}

// ProbeResult is the typed outcome of a single probe.
// Found results carry the reference and raw remote URL; misses carry a reason.
type ProbeResult struct {
	Found  bool
	Ref    Reference
	URL    string
	Reason string
	Err    error
}

func found(ref Reference, rawURL string) ProbeResult {
	return ProbeResult{Found: true, Ref: ref, URL: rawURL}
}

func miss(reason string, err error) ProbeResult {
	return ProbeResult{Reason: reason, Err: err}
}

// Outcome pairs a probe name with what it produced.
type Outcome struct {
	Probe  string
	Result ProbeResult
}
