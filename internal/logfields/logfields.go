package logfields

import "log/slog"

// Canonical log field names shared by the resolver, locator and CLI.
const (
	KeyProbe     = "probe"
	KeyRemote    = "remote"
	KeyBranch    = "branch"
	KeyWorkspace = "workspace"
	KeyURL       = "url"
	KeyReason    = "reason"
	KeyError     = "error"
)

// Probe names the resolution step that produced a record.
func Probe(name string) slog.Attr { return slog.String(KeyProbe, name) }

// Remote is the git remote name, e.g. origin.
func Remote(name string) slog.Attr { return slog.String(KeyRemote, name) }

// Branch is the branch name used in the link.
func Branch(name string) slog.Attr { return slog.String(KeyBranch, name) }

// Workspace is the working copy root directory.
func Workspace(p string) slog.Attr { return slog.String(KeyWorkspace, p) }

// URL is a remote or composed link URL.
func URL(u string) slog.Attr { return slog.String(KeyURL, u) }

// Reason explains why a step missed.
func Reason(r string) slog.Attr { return slog.String(KeyReason, r) }

// Error records err. A nil error yields an empty Attr, which handlers drop.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}
