// relkit - Release metadata maintenance
// Source: https://github.com/ariel-frischer/relkit

// Package cli implements the relkit command tree.
package cli

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"os"

	"github.com/chainguard-dev/clog"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ariel-frischer/relkit/internal/build"
	clierrors "github.com/ariel-frischer/relkit/internal/errors"
)

// Command groups shown in help output.
const (
	GroupChangelog = "changelog"
	GroupVersion   = "version"
	GroupSetup     = "setup"
)

var (
	configPathFlag string
	debugFlag      bool
	noColorFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   "relkit",
	Short: "Maintain a project's version file and changelog",
	Long: `relkit maintains a project's release metadata: a single-line version file
(MAJOR.MINOR.PATCH[.devN]) and a master changelog fed from fragment files.

Unreleased changes are collected in three fragment files, one per release kind.
On release, the fragments of the release kind and of every smaller kind are
validated, merged by header and inserted into the master changelog.`,
	Example: `  # Create the version file, changelog and fragments
  relkit init

  # Check the fragments before committing
  relkit changelog validate

  # Release: insert a feature release and bump the version
  relkit changelog update minor --clear --stage
  relkit version increment minor`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setupCommand,
}

func init() {
	rootCmd.Version = build.Version
	rootCmd.SetVersionTemplate(build.Info())

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupChangelog, Title: "Changelog Commands:"},
		&cobra.Group{ID: GroupVersion, Title: "Version Commands:"},
		&cobra.Group{ID: GroupSetup, Title: "Setup Commands:"},
	)

	rootCmd.PersistentFlags().StringVarP(&configPathFlag, "config", "c", "", "Path to the project config (default: .relkit.yml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
}

// setupCommand installs the logger and color settings shared by every command.
func setupCommand(cmd *cobra.Command, args []string) error {
	if noColorFlag || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	level := slog.LevelWarn
	if debugFlag {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(clog.WithLogger(ctx, clog.New(handler)))
	return nil
}

// Execute runs the root command with the process arguments and returns the
// exit code.
func Execute() int {
	return execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

// execute runs the command tree in-process and reports any error on stderr.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	resetFlags(rootCmd)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	var exitErr *exitError
	if stderrors.As(err, &exitErr) {
		return exitErr.code
	}

	cliErr := clierrors.AsCLIError(err)
	if cliErr == nil {
		// Errors cobra raises itself: unknown commands, flags and arity.
		cliErr = clierrors.Wrap(err, clierrors.Argument, "Run 'relkit --help' for usage")
	}
	clierrors.FprintError(stderr, cliErr)
	return exitCodeFor(cliErr)
}

// resetFlags restores every flag of the command tree to its default so that
// consecutive in-process executions do not leak state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
