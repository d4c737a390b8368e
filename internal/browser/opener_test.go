package browser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanhaley32/repolink/internal/platform"
)

const target = "https://github.com/acme/app/blob/main/src/index.ts?plain=1#L11-L15"

func TestCommand(t *testing.T) {
	tests := []struct {
		os       platform.OS
		wantName string
		wantArgs []string
	}{
		{platform.MacOS, "open", []string{target}},
		{platform.Linux, "xdg-open", []string{target}},
		{platform.Windows, "rundll32", []string{"url.dll,FileProtocolHandler", target}},
	}

	for _, tt := range tests {
		t.Run(string(tt.os), func(t *testing.T) {
			name, args, err := Command(tt.os, target)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestCommand_Unsupported(t *testing.T) {
	_, _, err := Command(platform.Unknown, target)
	assert.Error(t, err)
}

func TestSystemOpener_Open(t *testing.T) {
	var gotName string
	var gotArgs []string
	opener := NewOpenerFor(platform.Linux, func(name string, args ...string) error {
		gotName, gotArgs = name, args
		return nil
	})

	require.NoError(t, opener.Open(target))
	assert.Equal(t, "xdg-open", gotName)
	assert.Equal(t, []string{target}, gotArgs)
}

func TestSystemOpener_StartFailure(t *testing.T) {
	opener := NewOpenerFor(platform.MacOS, func(string, ...string) error {
		return errors.New("executable file not found in $PATH")
	})

	err := opener.Open(target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open browser")
}
