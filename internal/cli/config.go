package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect relkit configuration",
	Long: `Inspect relkit configuration settings.

Configuration is loaded with the following priority (highest to lowest):
  1. Environment variables (RELKIT_*, nested keys use __)
  2. Project config (.relkit.yml, or --config)
  3. Built-in defaults`,
	Example: `  # Show the effective configuration
  relkit config show

  # Check the project config for syntax and value errors
  relkit config validate

  # Create a documented config
  relkit init`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the project configuration",
	Long: `Validate the project configuration file.

YAML syntax errors are reported with line and column. Values are checked
after environment overrides are applied: every file name must be set, and
the fragments must be distinct from each other and from the version file and
changelog.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadService(cmd); err != nil {
			return err
		}
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(cmd.OutOrStdout(), "%s Configuration is valid\n", green("✓"))
		return nil
	},
}

func init() {
	configCmd.GroupID = GroupSetup
	configCmd.AddCommand(configShowCmd, configValidateCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	svc, err := loadService(cmd)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(svc.Config().Map()); err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}
	return enc.Close()
}
