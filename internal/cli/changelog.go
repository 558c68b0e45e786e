package cli

import (
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/relkit/internal/changelog"
	clierrors "github.com/ariel-frischer/relkit/internal/errors"
)

var changelogCmd = &cobra.Command{
	Use:     "changelog",
	Aliases: []string{"cl"},
	Short:   "Validate fragments and insert releases into the changelog (cl)",
	Long: `Work with the changelog fragment files and the master changelog.

Fragments collect unreleased changes, one file per release kind:
  main     changes for the next major release
  feature  changes for the next feature (minor) release
  bugfix   changes for the next bugfix (patch) release

A fragment holds "# " headers, each followed by "- " or "* " entries.
Blank lines are allowed anywhere; any other line is an error.`,
	Example: `  relkit changelog validate
  relkit changelog preview minor
  relkit changelog update minor --clear
  relkit changelog extract 1.4.0`,
}

func init() {
	changelogCmd.GroupID = GroupChangelog
	rootCmd.AddCommand(changelogCmd)
}

// parseReleaseKind parses a release kind argument of the given subcommand.
func parseReleaseKind(arg, command string) (changelog.ReleaseKind, error) {
	kind, err := changelog.ParseReleaseKind(arg)
	if err != nil {
		return "", clierrors.InvalidReleaseKind(arg, command)
	}
	return kind, nil
}

// releaseKindArgs completes release kind arguments.
func releaseKindArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"major", "minor", "patch"}, cobra.ShellCompDirectiveNoFileComp
}
