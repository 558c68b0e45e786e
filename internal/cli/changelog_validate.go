package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/relkit/internal/changelog"
	"github.com/ariel-frischer/relkit/internal/config"
	clierrors "github.com/ariel-frischer/relkit/internal/errors"
)

var changelogValidateCmd = &cobra.Command{
	Use:   "validate [main|feature|bugfix|all|<path>...]",
	Short: "Validate changelog fragment files",
	Long: `Validate changelog fragment files against the fragment grammar.

Without arguments all three fragments are validated. Arguments may name a
fragment by kind (main, feature, bugfix or major, minor, patch), "all", or
a path to any file in fragment format.

Every file is checked; each violation is reported with its file and line.
Returns exit code 0 if all files are valid, 1 otherwise.`,
	Example: `  relkit changelog validate
  relkit changelog validate bugfix
  relkit changelog validate docs/notes.md`,
	RunE: runChangelogValidate,
}

func init() {
	changelogCmd.AddCommand(changelogValidateCmd)
}

func runChangelogValidate(cmd *cobra.Command, args []string) error {
	svc, err := loadService(cmd)
	if err != nil {
		return err
	}
	cfg := svc.Config()
	paths := resolveFragmentArgs(cfg, args)

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	failed, missing := 0, 0
	for _, path := range paths {
		if err := svc.Validate(cmd.Context(), path); err != nil {
			failed++
			if errors.Is(err, fs.ErrNotExist) {
				missing++
			}
			fmt.Fprintf(out, "%s %s\n", red("✗"), path)
			clierrors.FprintError(errOut, toCLIError(cfg, err))
			fmt.Fprintln(errOut)
			continue
		}
		fmt.Fprintf(out, "%s %s\n", green("✓"), path)
	}

	if failed > 0 {
		fmt.Fprintf(out, "\n%d of %d files invalid\n", failed, len(paths))
		if missing == failed {
			return NewExitError(ExitMissingFiles)
		}
		return NewExitError(ExitValidationFailed)
	}
	return nil
}

// resolveFragmentArgs maps kind keywords to fragment paths. Other arguments
// are taken as paths; no arguments means all fragments.
func resolveFragmentArgs(cfg *config.Configuration, args []string) []string {
	if len(args) == 0 {
		return cfg.AllFragmentPaths()
	}

	var paths []string
	for _, arg := range args {
		if arg == "all" {
			paths = append(paths, cfg.AllFragmentPaths()...)
			continue
		}
		if kind, err := changelog.ParseReleaseKind(arg); err == nil {
			p, _ := cfg.FragmentPath(kind) // kind is known
			paths = append(paths, p)
			continue
		}
		paths = append(paths, arg)
	}
	return paths
}
