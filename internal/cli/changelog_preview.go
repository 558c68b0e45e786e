package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/relkit/internal/changelog"
)

var changelogPreviewPlainFlag bool

var changelogPreviewCmd = &cobra.Command{
	Use:   "preview <major|minor|patch>",
	Short: "Show the release an update would insert",
	Long: `Show the release entry an update of the given kind would insert, without
touching any file. The master changelog does not need to exist.

With --plain the output is exactly the Markdown the update would insert.`,
	Example: `  relkit changelog preview minor
  relkit changelog preview patch --plain`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: releaseKindArgs,
	RunE:              runChangelogPreview,
}

func init() {
	changelogCmd.AddCommand(changelogPreviewCmd)
	changelogPreviewCmd.Flags().BoolVar(&changelogPreviewPlainFlag, "plain", false, "Plain Markdown output (no colors/icons)")
}

func runChangelogPreview(cmd *cobra.Command, args []string) error {
	kind, err := parseReleaseKind(args[0], "preview")
	if err != nil {
		return err
	}
	svc, err := loadService(cmd)
	if err != nil {
		return err
	}

	r, err := svc.Preview(cmd.Context(), kind)
	if err != nil {
		return toCLIError(svc.Config(), err)
	}

	out := cmd.OutOrStdout()
	if err := changelog.FormatTerminal(r, out, changelog.FormatOptions{Plain: changelogPreviewPlainFlag}); err != nil {
		return toCLIError(svc.Config(), err)
	}
	if !changelogPreviewPlainFlag {
		dim := color.New(color.Faint).SprintFunc()
		fmt.Fprintf(out, "\n%s\n", dim(changelog.FormatSummary(r)))
	}
	return nil
}
