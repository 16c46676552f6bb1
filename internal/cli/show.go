package cli

import (
	"fmt"

	"github.com/mgpai22/transkripto/internal/export"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [transcript_file]",
	Short: "Print a transcript to the terminal",
	Long: `Print a transcript as plain text, one segment per line, using the
current timestamp preferences.

Examples:
  transkripto show talk.json
  transkripto show captions.srt --timestamp-format compact
  cat talk.json | transkripto show - --timestamps=false`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	addPolicyFlags(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}
	p, err := store.Load()
	if err != nil {
		return err
	}

	t, err := loadTranscript(cmd, args[0])
	if err != nil {
		return err
	}

	logger.Debugw("Rendering transcript",
		"input", args[0],
		"segments", len(t),
	)

	_, err = fmt.Fprint(cmd.OutOrStdout(), export.Display(t, p.Policy()))
	return err
}
