package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/relkit/internal/changelog"
	"github.com/ariel-frischer/relkit/internal/git"
	"github.com/ariel-frischer/relkit/internal/release"
)

var (
	changelogUpdateDryRunFlag bool
	changelogUpdateClearFlag  bool
	changelogUpdateStageFlag  bool
)

var changelogUpdateCmd = &cobra.Command{
	Use:   "update <major|minor|patch>",
	Short: "Insert a release built from the fragments into the changelog",
	Long: `Merge the fragment files of a release kind into a release for the current
version and insert it into the master changelog, above the first existing
"## " release section.

Fragments merged per release kind, in priority order:
  major  main, feature, bugfix
  minor  feature, bugfix
  patch  bugfix

Changesets with the same header (ignoring case) are merged. All fragments,
the version file and the changelog are read and validated before anything
is written.`,
	Example: `  # Show the entry without writing
  relkit changelog update minor --dry-run

  # Insert, empty the merged fragments and stage the changes
  relkit changelog update minor --clear --stage`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: releaseKindArgs,
	RunE:              runChangelogUpdate,
}

func init() {
	changelogCmd.AddCommand(changelogUpdateCmd)
	changelogUpdateCmd.Flags().BoolVarP(&changelogUpdateDryRunFlag, "dry-run", "n", false, "Print the release entry without writing any file")
	changelogUpdateCmd.Flags().BoolVar(&changelogUpdateClearFlag, "clear", false, "Empty the merged fragment files after the update (default from clear_fragments)")
	changelogUpdateCmd.Flags().BoolVar(&changelogUpdateStageFlag, "stage", false, "Stage the changed files in git (default from stage_files)")
}

func runChangelogUpdate(cmd *cobra.Command, args []string) error {
	kind, err := parseReleaseKind(args[0], "update")
	if err != nil {
		return err
	}
	svc, err := loadService(cmd)
	if err != nil {
		return err
	}
	cfg := svc.Config()
	ctx := cmd.Context()

	opts := release.UpdateOptions{
		DryRun:         changelogUpdateDryRunFlag,
		ClearFragments: cfg.ClearFragments,
	}
	if cmd.Flags().Changed("clear") {
		opts.ClearFragments = changelogUpdateClearFlag
	}
	stage := cfg.StageFiles
	if cmd.Flags().Changed("stage") {
		stage = changelogUpdateStageFlag
	}

	// Refuse before writing anything when staging cannot succeed.
	if stage && !opts.DryRun && !git.IsRepository(ctx, cfg.Dir) {
		return toCLIError(cfg, fmt.Errorf("%s: %w", cfg.Dir, git.ErrNotRepository))
	}

	result, err := svc.Update(ctx, kind, opts)
	if err != nil {
		return toCLIError(cfg, err)
	}

	out := cmd.OutOrStdout()
	if opts.DryRun {
		fmt.Fprint(out, result.Rendered)
		return nil
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(out, "%s Inserted %s into %s\n", green("✓"), changelog.FormatSummary(result.Release), result.Changelog)
	if opts.ClearFragments {
		for _, path := range result.Fragments {
			fmt.Fprintf(out, "%s Cleared %s\n", green("✓"), path)
		}
	}

	if stage {
		if err := git.StageFiles(ctx, cfg.Dir, result.Written...); err != nil {
			return toCLIError(cfg, err)
		}
		fmt.Fprintf(out, "%s Staged %d files\n", green("✓"), len(result.Written))
	}
	return nil
}
