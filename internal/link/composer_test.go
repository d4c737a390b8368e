package link

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanhaley32/repolink/internal/constants"
	"github.com/jeanhaley32/repolink/internal/remote"
)

var acme = &remote.ResolvedLink{
	BaseURL: "https://github.com/acme/app",
	Branch:  "main",
	Remote:  "origin",
	Probe:   remote.ProbeUpstream,
}

var workspace = filepath.Join(string(filepath.Separator), "work", "app")

type fakeRelativizer struct {
	rel string
	err error
}

func (f fakeRelativizer) Rel(string, string) (string, error) {
	return f.rel, f.err
}

func TestCompose_FileWithSelection(t *testing.T) {
	// Both ends of the 0-based selection get +1, so 10-15 covers editor lines 11-16.
	url, err := NewComposer().Compose(acme, Request{
		WorkspaceRoot: workspace,
		File:          filepath.Join(workspace, "src", "index.ts"),
		Selection:     &Selection{StartLine: 10, EndLine: 15},
	})

	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/app/blob/main/src/index.ts?plain=1#L11-L16", url)
}

func TestCompose_SelectionIsOneBasedInclusive(t *testing.T) {
	// Editor lines 11-15 arrive as a 0-based selection 10-14.
	url, err := NewComposer().Compose(acme, Request{
		WorkspaceRoot: workspace,
		File:          filepath.Join(workspace, "src", "index.ts"),
		Selection:     &Selection{StartLine: 10, EndLine: 14},
	})

	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/app/blob/main/src/index.ts?plain=1#L11-L15", url)
}

func TestCompose_UntitledBufferDropsSelection(t *testing.T) {
	url, err := NewComposer().Compose(acme, Request{
		WorkspaceRoot: workspace,
		Selection:     &Selection{StartLine: 3, EndLine: 7},
	})

	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/app/blob/main", url)
}

func TestCompose_FileWithoutSelection(t *testing.T) {
	url, err := NewComposer().Compose(acme, Request{
		WorkspaceRoot: workspace,
		File:          filepath.Join(workspace, "README.md"),
	})

	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/app/blob/main/README.md", url)
	assert.NotContains(t, url, "plain=1")
}

func TestCompose_NoRemote(t *testing.T) {
	url, err := NewComposer().Compose(nil, Request{WorkspaceRoot: workspace, File: "x.go"})

	assert.Empty(t, url)
	require.ErrorIs(t, err, ErrNoRemote)
	assert.Equal(t, constants.NoRemoteMessage, err.Error())
}

func TestCompose_BackslashPathsBecomeSlashes(t *testing.T) {
	composer := NewComposerWithRelativizer(fakeRelativizer{rel: filepath.Join("pkg", "api", "server.go")})

	url, err := composer.Compose(acme, Request{WorkspaceRoot: workspace, File: "ignored"})

	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/app/blob/main/pkg/api/server.go", url)
}

func TestCompose_RelativizeFailureLinksBranchRoot(t *testing.T) {
	composer := NewComposerWithRelativizer(fakeRelativizer{err: errors.New("different volumes")})

	url, err := composer.Compose(acme, Request{
		WorkspaceRoot: workspace,
		File:          "D:\\other\\file.go",
		Selection:     &Selection{StartLine: 0, EndLine: 0},
	})

	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/app/blob/main", url)
}

func TestCompose_SlashedBranch(t *testing.T) {
	resolved := &remote.ResolvedLink{BaseURL: "https://gitlab.com/group/app", Branch: "feature/login"}

	url, err := NewComposer().Compose(resolved, Request{
		WorkspaceRoot: workspace,
		File:          filepath.Join(workspace, "main.go"),
		Selection:     &Selection{StartLine: 0, EndLine: 0},
	})

	require.NoError(t, err)
	assert.Equal(t, "https://gitlab.com/group/app/blob/feature/login/main.go?plain=1#L1-L1", url)
}

func TestSelection_LineRange(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		want LineRange
	}{
		{"single line", Selection{StartLine: 0, EndLine: 0}, LineRange{Start: 1, End: 1}},
		{"range", Selection{StartLine: 10, EndLine: 15}, LineRange{Start: 11, End: 16}},
		{"reversed", Selection{StartLine: 9, EndLine: 4}, LineRange{Start: 5, End: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sel.LineRange())
		})
	}
}

func TestLineRange_Fragment(t *testing.T) {
	assert.Equal(t, "?plain=1#L11-L15", LineRange{Start: 11, End: 15}.Fragment())
}
