package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jeanhaley32/repolink/internal/browser"
	"github.com/jeanhaley32/repolink/internal/config"
	"github.com/jeanhaley32/repolink/internal/gitexec"
	"github.com/jeanhaley32/repolink/internal/link"
	"github.com/jeanhaley32/repolink/internal/logfields"
	"github.com/jeanhaley32/repolink/internal/remote"
	"github.com/jeanhaley32/repolink/internal/repo"
	"github.com/jeanhaley32/repolink/internal/state"
	"github.com/jeanhaley32/repolink/internal/terminal"
)

var version = "0.1.0"

// app carries the collaborators shared by every command.
type app struct {
	git        gitexec.Runner
	opener     browser.Opener
	isTerminal func(io.Writer) bool
	getwd      func() (string, error)
	logger     *slog.Logger
}

func newApp() *app {
	return &app{
		git:        gitexec.NewRunner(),
		opener:     browser.NewOpener(),
		isTerminal: terminal.IsWriterTerminal,
		getwd:      os.Getwd,
		logger:     newLogger(os.Stderr, false),
	}
}

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "repolink",
		Short:         "Open the hosted view of a git working copy",
		Long:          "Resolves the hosted repository URL and branch of the current git working copy and opens a deep link to a file and line range.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbose, err := cmd.Flags().GetBool("verbose")
			if err != nil {
				return fmt.Errorf("invalid verbose flag: %w", err)
			}
			a.logger = newLogger(cmd.ErrOrStderr(), verbose)
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log each resolution step to stderr")

	rootCmd.AddCommand(
		newOpenCmd(a),
		newURLCmd(a),
		newStatusCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func addLinkFlags(cmd *cobra.Command) {
	cmd.Flags().String("workspace", "", "Working copy root (defaults to the git root of the file or current directory)")
	cmd.Flags().StringP("lines", "l", "", "Line or range to highlight, e.g. 42 or 10-15")
}

func newOpenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open [file]",
		Short: "Open the repository, or a file in it, in the browser",
		Long: `Opens the hosted view of the current branch. With a file, links to that file;
with --lines, highlights the given lines.

When stdout is not a terminal the URL is printed instead of opened.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpen(a, cmd, args)
		},
	}

	addLinkFlags(cmd)
	cmd.Flags().BoolP("print", "p", false, "Print the URL instead of opening it")

	return cmd
}

func runOpen(a *app, cmd *cobra.Command, args []string) error {
	opts, err := readOptions(cmd, args)
	if err != nil {
		return err
	}

	url, err := buildURL(cmd.Context(), a, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.Print || !a.isTerminal(out) {
		fmt.Fprintln(out, url)
		return nil
	}

	fmt.Fprintf(out, "Opening %s\n", url)
	return a.opener.Open(url)
}

func newURLCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "url [file]",
		Short: "Print the repository URL without opening it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := readOptions(cmd, args)
			if err != nil {
				return err
			}
			url, err := buildURL(cmd.Context(), a, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}

	addLinkFlags(cmd)

	return cmd
}

func readOptions(cmd *cobra.Command, args []string) (config.Options, error) {
	var opts config.Options
	var err error

	if opts.Workspace, err = cmd.Flags().GetString("workspace"); err != nil {
		return opts, fmt.Errorf("invalid workspace flag: %w", err)
	}
	if opts.Lines, err = cmd.Flags().GetString("lines"); err != nil {
		return opts, fmt.Errorf("invalid lines flag: %w", err)
	}
	if cmd.Flags().Lookup("print") != nil {
		if opts.Print, err = cmd.Flags().GetBool("print"); err != nil {
			return opts, fmt.Errorf("invalid print flag: %w", err)
		}
	}
	if len(args) > 0 {
		opts.File = args[0]
	}

	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

// buildURL resolves the workspace and composes the link for opts.
func buildURL(ctx context.Context, a *app, opts config.Options) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cwd, err := a.getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	file := opts.File
	if file != "" && !filepath.IsAbs(file) {
		file = filepath.Join(cwd, file)
	}

	root, err := workspaceRoot(ctx, a, opts.Workspace, file, cwd)
	if err != nil {
		return "", err
	}
	// git reports the root with symlinks resolved; the file must match it to relativize.
	root = realPath(root)
	if file != "" {
		file = realPath(file)
	}

	resolved, ok := remote.NewResolver(a.git).WithLogger(a.logger).Resolve(ctx, root)
	if !ok {
		a.logger.Debug("No probe resolved a remote", logfields.Workspace(root))
	}

	selection, err := opts.Selection()
	if err != nil {
		return "", err
	}

	return link.NewComposer().WithLogger(a.logger).Compose(resolved, link.Request{
		WorkspaceRoot: root,
		File:          file,
		Selection:     selection,
	})
}

func workspaceRoot(ctx context.Context, a *app, workspace, file, cwd string) (string, error) {
	if workspace != "" {
		abs, err := filepath.Abs(workspace)
		if err != nil {
			return "", fmt.Errorf("failed to resolve workspace path: %w", err)
		}
		return abs, nil
	}

	start := cwd
	if file != "" {
		start = filepath.Dir(file)
	}
	root, err := repo.NewLocator(a.git).WithLogger(a.logger).WorkspaceRoot(ctx, start)
	if err != nil {
		return "", fmt.Errorf("failed to determine workspace root: %w", err)
	}
	return root, nil
}

// realPath resolves symlinks in p. A file that does not exist yet keeps its
// name under the resolved parent; p is returned unchanged when neither resolves.
func realPath(p string) string {
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		return resolved
	}
	if dir, err := filepath.EvalSymlinks(filepath.Dir(p)); err == nil {
		return filepath.Join(dir, filepath.Base(p))
	}
	return p
}

func newStatusCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show how the working copy's remote URL is resolved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			workspace, err := cmd.Flags().GetString("workspace")
			if err != nil {
				return fmt.Errorf("invalid workspace flag: %w", err)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cwd, err := a.getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}
			root, err := workspaceRoot(ctx, a, workspace, "", cwd)
			if err != nil {
				return err
			}

			resolver := remote.NewResolver(a.git).WithLogger(a.logger)
			return state.NewDetector(a.git, resolver, root).Detect(ctx).Write(cmd.OutOrStdout())
		},
	}

	cmd.Flags().String("workspace", "", "Working copy root (defaults to the git root of the current directory)")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "repolink %s\n", version)
		},
	}
}
