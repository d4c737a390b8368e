package repo

import "context"

// Locator finds the working copy that contains a path.
type Locator interface {
	// WorkspaceRoot returns the root directory of the workspace containing path.
	// For git repos, this is the top level of the working tree.
	// For non-git directories, this is the provided path (or its directory, for files).
	WorkspaceRoot(ctx context.Context, path string) (string, error)
}
