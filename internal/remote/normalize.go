package remote

import (
	"strings"

	"github.com/jeanhaley32/repolink/internal/constants"
)

// Normalize converts a git remote URL to the HTTPS form used by hosted web views.
// Examples:
//   - git@github.com:acme/app.git -> https://github.com/acme/app
//   - git@github.com+work:acme/app.git -> https://github.com/acme/app
//   - https://github.com/acme/app.git -> https://github.com/acme/app
//
// Anything that is not scp-like SSH shorthand only loses its .git suffix.
// Normalize never fails and normalizing its own output is a no-op.
func Normalize(rawURL string) string {
	url := trimSuffixes(strings.TrimSpace(rawURL))

	if !strings.HasPrefix(url, constants.SSHPrefix) {
		return url
	}

	hostAndUser, repoPath, ok := strings.Cut(strings.TrimPrefix(url, constants.SSHPrefix), ":")
	if !ok {
		return url
	}

	// host+alias is an ssh_config shortcut; only the real host is reachable over HTTPS.
	host, _, _ := strings.Cut(hostAndUser, "+")

	return trimSuffixes("https://" + host + "/" + repoPath)
}

// trimSuffixes strips trailing slashes and .git suffixes until neither remains.
func trimSuffixes(url string) string {
	for {
		trimmed := strings.TrimRight(url, "/")
		trimmed = strings.TrimSuffix(trimmed, constants.GitSuffix)
		if trimmed == url {
			return url
		}
		url = trimmed
	}
}
