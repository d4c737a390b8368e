package repo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"

	"github.com/jeanhaley32/repolink/internal/gitexec"
	"github.com/jeanhaley32/repolink/internal/logfields"
)

var _ Locator = (*DefaultLocator)(nil)

// DefaultLocator implements Locator using the git binary, then go-git.
type DefaultLocator struct {
	git    gitexec.Runner
	logger *slog.Logger
}

// NewLocator creates a new workspace locator.
func NewLocator(git gitexec.Runner) *DefaultLocator {
	return &DefaultLocator{
		git:    git,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger sets the logger used for debug records.
func (l *DefaultLocator) WithLogger(logger *slog.Logger) *DefaultLocator {
	if logger != nil {
		l.logger = logger
	}
	return l
}

func (l *DefaultLocator) WorkspaceRoot(ctx context.Context, path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	dir := absPath
	if info, err := os.Stat(absPath); err == nil && !info.IsDir() {
		dir = filepath.Dir(absPath)
	}

	// Try to get git root
	root, err := gitexec.Output(ctx, l.git, dir, "rev-parse", "--show-toplevel")
	if err == nil {
		return filepath.FromSlash(root), nil
	}
	l.logger.Debug("git rev-parse failed, trying go-git", logfields.Workspace(dir), logfields.Error(err))

	// git may be missing from PATH; the repository format does not need it
	if root, ok := openWorktreeRoot(dir); ok {
		return root, nil
	}

	// Not a git repo, return the directory itself
	return dir, nil
}

func openWorktreeRoot(dir string) (string, bool) {
	repository, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", false
	}
	worktree, err := repository.Worktree()
	if err != nil {
		return "", false
	}
	return worktree.Filesystem.Root(), true
}
