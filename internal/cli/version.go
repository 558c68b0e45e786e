package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	clierrors "github.com/ariel-frischer/relkit/internal/errors"
	"github.com/ariel-frischer/relkit/internal/release"
	"github.com/ariel-frischer/relkit/internal/version"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Print or change the project version (v)",
	Long: `Print the version stored in the version file.

The version file holds exactly one line: MAJOR.MINOR.PATCH with an optional
development segment, e.g. 1.4.0 or 1.4.0.dev2. Use the subcommands to move
the version through its transitions. Use 'relkit --version' for the version
of relkit itself.`,
	Example: `  relkit version
  relkit version increment dev
  relkit version drop-dev`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadService(cmd)
		if err != nil {
			return err
		}
		v, err := svc.CurrentVersion(cmd.Context())
		if err != nil {
			return toCLIError(svc.Config(), err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	},
}

var versionIncrementCmd = &cobra.Command{
	Use:   "increment <dev|patch|minor|major>",
	Short: "Increment a version segment",
	Long: `Increment a segment of the version and write it back to the version file.

  dev    1.4.0 -> 1.4.0.dev1, 1.4.0.dev1 -> 1.4.0.dev2
  patch  1.4.2 -> 1.4.3
  minor  1.4.2 -> 1.5.0
  major  1.4.2 -> 2.0.0

Incrementing patch, minor or major drops the development segment.`,
	Args: cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var names []string
		for _, seg := range version.Segments() {
			names = append(names, string(seg))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		seg, err := version.ParseSegment(args[0])
		if err != nil {
			return clierrors.InvalidSegment(args[0])
		}
		return runVersionTransition(cmd, func(svc *release.Service, ctx context.Context) (version.Version, version.Version, error) {
			return svc.Increment(ctx, seg)
		})
	},
}

var versionDropDevCmd = &cobra.Command{
	Use:   "drop-dev",
	Short: "Remove the development segment",
	Long:  "Remove the development segment from the version, e.g. 1.4.0.dev3 -> 1.4.0.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVersionTransition(cmd, (*release.Service).DropDevelopment)
	},
}

func init() {
	versionCmd.GroupID = GroupVersion
	versionCmd.AddCommand(versionIncrementCmd, versionDropDevCmd)
	rootCmd.AddCommand(versionCmd)
}

type versionTransition func(svc *release.Service, ctx context.Context) (version.Version, version.Version, error)

func runVersionTransition(cmd *cobra.Command, transition versionTransition) error {
	svc, err := loadService(cmd)
	if err != nil {
		return err
	}

	old, updated, err := transition(svc, cmd.Context())
	if err != nil {
		return toCLIError(svc.Config(), err)
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s\n", green("✓"), old, updated)
	return nil
}
