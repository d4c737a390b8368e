package link

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/jeanhaley32/repolink/internal/constants"
	"github.com/jeanhaley32/repolink/internal/logfields"
	"github.com/jeanhaley32/repolink/internal/remote"
)

// ErrNoRemote is the single user-visible failure: no probe found a remote.
var ErrNoRemote = errors.New(constants.NoRemoteMessage)

// Selection is an editor selection in 0-based line numbers.
type Selection struct {
	StartLine int
	EndLine   int
}

// LineRange is a 1-based inclusive line range as shown in hosted views.
type LineRange struct {
	Start int
	End   int
}

// LineRange converts the selection to 1-based lines, ordering the ends.
func (s Selection) LineRange() LineRange {
	start, end := s.StartLine, s.EndLine
	if start > end {
		start, end = end, start
	}
	return LineRange{Start: start + 1, End: end + 1}
}

// Fragment returns the query and anchor selecting the range, e.g. ?plain=1#L11-L15.
func (r LineRange) Fragment() string {
	return fmt.Sprintf("%s#L%d-L%d", constants.PlainQuery, r.Start, r.End)
}

// Request describes what to link to. File is empty for untitled buffers or
// when no editor is active; Selection is nil when nothing is selected.
type Request struct {
	WorkspaceRoot string
	File          string
	Selection     *Selection
}

// FilepathRelativizer implements Relativizer with path/filepath.
type FilepathRelativizer struct{}

func (FilepathRelativizer) Rel(base, target string) (string, error) {
	return filepath.Rel(base, target)
}

// Composer builds deep links from resolved remotes.
type Composer struct {
	paths  Relativizer
	logger *slog.Logger
}

// NewComposer creates a composer using filepath rules for relative paths.
func NewComposer() *Composer {
	return NewComposerWithRelativizer(FilepathRelativizer{})
}

// NewComposerWithRelativizer creates a composer with a custom relativizer.
func NewComposerWithRelativizer(paths Relativizer) *Composer {
	return &Composer{
		paths:  paths,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger sets the logger used for debug records.
func (c *Composer) WithLogger(logger *slog.Logger) *Composer {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// Compose builds the deep link for req. It returns ErrNoRemote when resolved is nil
// and performs no other validation of the result.
func (c *Composer) Compose(resolved *remote.ResolvedLink, req Request) (string, error) {
	if resolved == nil {
		return "", ErrNoRemote
	}

	url := resolved.BlobURL()

	// An untitled buffer has no place in the hosted tree, so its selection is dropped too.
	if req.File == "" {
		return url, nil
	}

	rel, err := c.paths.Rel(req.WorkspaceRoot, req.File)
	if err != nil {
		c.logger.Debug("Cannot relativize file, linking to branch root",
			logfields.Workspace(req.WorkspaceRoot),
			logfields.Error(err))
		return url, nil
	}
	rel = filepath.ToSlash(rel)
	if rel != "." {
		url += "/" + strings.TrimPrefix(rel, "./")
	}

	if req.Selection != nil {
		url += req.Selection.LineRange().Fragment()
	}

	return url, nil
}
