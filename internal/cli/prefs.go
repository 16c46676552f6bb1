package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change saved defaults",
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("failed to load preferences: %w", err)
		}
		p, err := store.Load()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Preferences: %s\n", store.Path())
		fmt.Fprintf(out, "  Export format: %s\n", p.DefaultExportFormat)
		fmt.Fprintf(out, "  Include timestamps: %t\n", p.IncludeTimestamps)
		fmt.Fprintf(out, "  Timestamp format: %s\n", p.TimestampFormat)
		return nil
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Save default export format and timestamp options",
	Long: `Save defaults used by show and export when flags are not given.

Examples:
  transkripto prefs set --format csv
  transkripto prefs set --timestamps=false
  transkripto prefs set --timestamp-format compact`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("failed to load preferences: %w", err)
		}
		p, err := store.Load()
		if err != nil {
			return err
		}
		if err := store.Save(p); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Preferences saved: %s\n", store.Path())
		return nil
	},
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete saved preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("failed to load preferences: %w", err)
		}
		if err := store.Reset(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Preferences reset: %s\n", store.Path())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(prefsCmd)
	prefsCmd.AddCommand(prefsShowCmd, prefsSetCmd, prefsResetCmd)

	prefsSetCmd.Flags().
		StringP("format", "f", "text", "Default export format (text, csv, json, document, subtitle, vtt)")
	addPolicyFlags(prefsSetCmd)
}
