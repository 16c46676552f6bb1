package cli

import (
	"github.com/mgpai22/transkripto/internal/logging"
	"github.com/mgpai22/transkripto/internal/prefs"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	logger     = logging.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "transkripto",
	Short: "Render transcripts as text, CSV, JSON, DOCX or subtitles",
	Long: `Transkripto renders timed transcript segments into plain text,
CSV, JSON, Word documents and SubRip/WebVTT subtitles.

Transcripts are read from a JSON array of {start, duration, text}
records or from an existing .srt or .vtt file.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Preferences file (default: user config dir)/transkripto/config.yaml")
}

// opens the preferences store and binds any of the command's
// preference flags to it
func openStore(cmd *cobra.Command) (*prefs.Store, error) {
	path := configPath
	if path == "" {
		var err error
		if path, err = prefs.DefaultPath(); err != nil {
			return nil, err
		}
	}

	store, err := prefs.Open(path,
		prefs.WithEnvFile(".env"),
		prefs.WithLogger(logger.SugaredLogger),
	)
	if err != nil {
		return nil, err
	}

	flagKeys := map[string]string{
		"format":           prefs.KeyExportFormat,
		"timestamps":       prefs.KeyIncludeTimestamps,
		"timestamp-format": prefs.KeyTimestampFormat,
	}
	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := store.Viper().BindPFlag(key, flag); err != nil {
			return nil, err
		}
	}

	return store, nil
}

// registers the display policy flags shared by several commands
func addPolicyFlags(cmd *cobra.Command) {
	cmd.Flags().
		Bool("timestamps", true, "Include timestamps in text, CSV and DOCX output")
	cmd.Flags().
		StringP("timestamp-format", "t", "clock", "Timestamp style (clock = HH:MM:SS, compact = mm:ss)")
}
