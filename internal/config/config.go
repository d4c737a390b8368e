package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jeanhaley32/repolink/internal/link"
)

// Options holds what a single invocation needs to know about the editor state.
// Every field is optional; zero values mean "derive from the current directory".
type Options struct {
	Workspace string // working-copy root
	File      string // file to link; empty links the branch root
	Lines     string // 1-based "N" or "N-M"
	Print     bool   // print the URL instead of opening it
}

// Validate checks the options for consistency.
func (o Options) Validate() error {
	if o.Lines != "" && o.File == "" {
		return fmt.Errorf("--lines requires a file")
	}
	if _, err := ParseLines(o.Lines); err != nil {
		return err
	}
	return nil
}

// Selection returns the 0-based selection described by Lines, or nil.
func (o Options) Selection() (*link.Selection, error) {
	return ParseLines(o.Lines)
}

// LinesError reports a malformed --lines value.
type LinesError struct {
	Value  string
	Reason string
}

func (e *LinesError) Error() string {
	return fmt.Sprintf("invalid line range %q: %s", e.Value, e.Reason)
}

// ParseLines parses a 1-based line or inclusive range ("42", "10-15") into a
// 0-based selection. An empty string means no selection.
func ParseLines(value string) (*link.Selection, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	startStr, endStr, isRange := strings.Cut(value, "-")
	start, err := parseLine(value, startStr)
	if err != nil {
		return nil, err
	}
	end := start
	if isRange {
		if end, err = parseLine(value, endStr); err != nil {
			return nil, err
		}
	}
	if start > end {
		return nil, &LinesError{Value: value, Reason: "start is after end"}
	}

	return &link.Selection{StartLine: start - 1, EndLine: end - 1}, nil
}

func parseLine(value, part string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(part), "L"))
	if err != nil {
		return 0, &LinesError{Value: value, Reason: "not a number"}
	}
	if n < 1 {
		return 0, &LinesError{Value: value, Reason: "lines start at 1"}
	}
	return n, nil
}
