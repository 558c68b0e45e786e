package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/relkit/internal/config"
	clierrors "github.com/ariel-frischer/relkit/internal/errors"
	"github.com/ariel-frischer/relkit/internal/release"
)

var initPrintConfigFlag bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the relkit config, version file, changelog and fragments",
	Long: `Initialize relkit in the current project.

This command creates whichever of these files do not exist yet:
  1. .relkit.yml (or the file named by --config) with every option documented
  2. the version file (0.1.0.dev1)
  3. the master changelog with a short preamble
  4. the three empty changelog fragments

Existing files are never overwritten.

Examples:
  relkit init                 # Create missing files
  relkit init --print-config  # Print the default config to stdout
  relkit --config ci/relkit.yml init  # Create the project under ci/`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.GroupID = GroupSetup
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initPrintConfigFlag, "print-config", false, "Print the default config template and exit")
}

func runInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if initPrintConfigFlag {
		fmt.Fprint(out, config.GetDefaultConfigTemplate())
		return nil
	}

	// init creates the file named by --config when it does not exist yet.
	svc, err := newService(cmd, config.LoadOptions{AllowMissing: true})
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	results, err := svc.Scaffold(cmd.Context())
	for _, r := range results {
		if r.Created {
			fmt.Fprintf(out, "%s Created %s\n", green("✓"), r.Path)
		} else {
			fmt.Fprintf(out, "%s %s\n", dim("•"), dim(r.Path+" exists, skipped"))
		}
	}
	var scaffoldErr *release.ScaffoldError
	if errors.As(err, &scaffoldErr) {
		return clierrors.FileNotWritable(scaffoldErr.Path, scaffoldErr.Err)
	}
	if err != nil {
		return toCLIError(svc.Config(), err)
	}

	// Fragments that already existed may not be valid yet.
	if err := svc.ValidateAll(cmd.Context()); err != nil {
		yellow := color.New(color.FgYellow).SprintFunc()
		fmt.Fprintf(out, "\n%s existing fragments have errors, run 'relkit changelog validate'\n", yellow("Warning:"))
	}
	return nil
}
