package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var changelogExtractCmd = &cobra.Command{
	Use:   "extract <version>",
	Short: "Extract release notes for a specific version",
	Long: `Extract the release notes of a specific version from the master changelog.

This command outputs the body of the version's section, without its
"## Version" line, in a format suitable for GitHub release notes. The
output is written to stdout.

Examples:
  relkit changelog extract v1.4.0    # Extract notes for version 1.4.0
  relkit changelog extract 1.4.0     # Same (v prefix optional)`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChangelogExtract(cmd, args[0])
	},
}

func init() {
	changelogCmd.AddCommand(changelogExtractCmd)
}

func runChangelogExtract(cmd *cobra.Command, version string) error {
	svc, err := loadService(cmd)
	if err != nil {
		return err
	}

	notes, err := svc.Extract(cmd.Context(), version)
	if err != nil {
		return toCLIError(svc.Config(), err)
	}

	fmt.Fprint(cmd.OutOrStdout(), notes)
	return nil
}
