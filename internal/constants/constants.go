package constants

// Remote-related constants
const (
	// DefaultRemote is the remote consulted by the origin probes.
	DefaultRemote = "origin"

	// OriginHeadRef is the symbolic ref pointing at origin's default branch.
	OriginHeadRef = "refs/remotes/origin/HEAD"

	// OriginRefPrefix is stripped from OriginHeadRef's target to get the branch name.
	OriginRefPrefix = "refs/remotes/origin/"

	// SSHPrefix is the scp-like shorthand prefix used by SSH remote URLs.
	SSHPrefix = "git@"

	// GitSuffix is the suffix stripped from remote URLs.
	GitSuffix = ".git"
)

// Link-related constants
const (
	// BlobSegment separates the repository URL from the branch name.
	BlobSegment = "/blob/"

	// PlainQuery forces the hosted viewer to show source instead of rendered output,
	// which is what makes line anchors work for markdown files.
	PlainQuery = "?plain=1"
)

// User-facing messages
const (
	// NoRemoteMessage is shown when no probe could resolve a remote URL.
	NoRemoteMessage = "No remote URL found for the current workspace."
)
