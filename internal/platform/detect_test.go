package platform

import (
	"runtime"
	"testing"
)

func TestFromGOOS(t *testing.T) {
	tests := map[string]OS{
		"darwin":  MacOS,
		"linux":   Linux,
		"freebsd": Linux,
		"windows": Windows,
		"plan9":   Unknown,
		"js":      Unknown,
	}

	for goos, want := range tests {
		if got := FromGOOS(goos); got != want {
			t.Errorf("FromGOOS(%q) = %v, want %v", goos, got, want)
		}
	}
}

func TestDetect_MatchesRuntime(t *testing.T) {
	if got, want := Detect(), FromGOOS(runtime.GOOS); got != want {
		t.Errorf("Detect() = %v, want %v", got, want)
	}
}
