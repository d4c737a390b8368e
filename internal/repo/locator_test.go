package repo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanhaley32/repolink/internal/gitexec/gitexectest"
)

func samePath(t *testing.T, want, got string) {
	t.Helper()
	wantResolved, err := filepath.EvalSymlinks(want)
	require.NoError(t, err)
	gotResolved, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	assert.Equal(t, wantResolved, gotResolved)
}

func TestWorkspaceRoot_FromGit(t *testing.T) {
	runner := gitexectest.NewRunner().On("rev-parse --show-toplevel", "/work/app")

	root, err := NewLocator(runner).WorkspaceRoot(context.Background(), t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/work/app"), root)
}

func TestWorkspaceRoot_GoGitFallback(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err, "failed to initialize git repo")

	nested := filepath.Join(dir, "src", "pkg")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	file := filepath.Join(nested, "main.go")
	require.NoError(t, os.WriteFile(file, []byte("package main\n"), 0o600))

	runner := gitexectest.NewRunner().Fail("rev-parse --show-toplevel", 127)
	locator := NewLocator(runner)

	root, err := locator.WorkspaceRoot(context.Background(), nested)
	require.NoError(t, err)
	samePath(t, dir, root)

	root, err = locator.WorkspaceRoot(context.Background(), file)
	require.NoError(t, err)
	samePath(t, dir, root)

	// The git binary was asked from the file's directory, not the file.
	dirs := runner.Dirs()
	require.Len(t, dirs, 2)
	assert.Equal(t, nested, dirs[1])
}

func TestWorkspaceRoot_NotARepository(t *testing.T) {
	dir := t.TempDir()

	root, err := NewLocator(gitexectest.NewRunner()).WorkspaceRoot(context.Background(), dir)

	require.NoError(t, err)
	samePath(t, dir, root)
}
