package terminal

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestIsWriterTerminal_Buffer(t *testing.T) {
	if IsWriterTerminal(&bytes.Buffer{}) {
		t.Error("IsWriterTerminal(buffer) = true, want false")
	}
}

func TestIsWriterTerminal_RegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	defer f.Close()

	if IsWriterTerminal(f) {
		t.Error("IsWriterTerminal(regular file) = true, want false")
	}
}
