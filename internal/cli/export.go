package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mgpai22/transkripto/internal/export"
	"github.com/mgpai22/transkripto/internal/transcript"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [transcript_file]",
	Short: "Export a transcript to a file",
	Long: `Export a transcript as text, CSV, JSON, a Word document or subtitles.

The input is a JSON array of segment records, an .srt/.vtt file, or "-"
to read JSON from stdin. Formats: text (txt), csv, json, document (docx),
subtitle (srt), vtt.

Timestamp options apply to text, CSV and document output. JSON keeps the
original records and subtitle formats always use full cue timing.

Examples:
  transkripto export talk.json
  transkripto export talk.json -f csv --timestamp-format compact
  transkripto export talk.json -f srt -o captions.srt
  transkripto export captions.vtt -f docx --timestamps=false --save-prefs`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().
		StringP("format", "f", "text", "Output format (text, csv, json, document, subtitle, vtt)")
	addPolicyFlags(exportCmd)
	exportCmd.Flags().
		Bool("strict", false, "Fail on malformed time values instead of treating them as zero")
	exportCmd.Flags().
		Bool("save-prefs", false, "Remember the format and timestamp options as defaults")
}

func runExport(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	ctx := context.Background()

	strict, _ := cmd.Flags().GetBool("strict")
	savePrefs, _ := cmd.Flags().GetBool("save-prefs")
	outputPath, _ := cmd.Flags().GetString("output")

	store, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}
	p, err := store.Load()
	if err != nil {
		return err
	}

	t, err := loadTranscript(cmd, inputPath)
	if err != nil {
		return err
	}

	format := p.Format()
	if outputPath == "" {
		outputPath = defaultOutputPath(inputPath, format)
	}

	logger.Infow("Exporting transcript",
		"input", inputPath,
		"output", outputPath,
		"format", format,
		"segments", len(t),
		"timestamps", p.IncludeTimestamps,
		"timestamp_format", p.TimestampFormat,
		"strict", strict,
	)

	exporter := export.NewExporter(
		export.WithLogger(logger.SugaredLogger),
		export.WithStrict(strict),
	)
	if err := exporter.Export(ctx, t, format, p.Policy(), outputPath); err != nil {
		return err
	}

	if savePrefs {
		if err := store.Save(p); err != nil {
			logger.Warnw("Failed to save preferences",
				"path", store.Path(),
				"error", err,
			)
		}
	}

	out := cmd.OutOrStdout()
	absOutput, _ := filepath.Abs(outputPath)
	fmt.Fprintf(out, "Transcript exported successfully: %s\n", absOutput)
	fmt.Fprintf(out, "  Segments: %d\n", len(t))
	fmt.Fprintf(out, "  Format: %s\n", format)

	return nil
}

func loadTranscript(cmd *cobra.Command, path string) (transcript.Transcript, error) {
	if path == "-" {
		return transcript.Decode(cmd.InOrStdin())
	}
	return transcript.Load(path)
}

// input path with the format's extension; never the input itself
func defaultOutputPath(inputPath string, format export.Format) string {
	if inputPath == "-" {
		return "transcript" + format.Extension()
	}

	baseName := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	outputPath := baseName + format.Extension()
	if outputPath == inputPath {
		outputPath = fmt.Sprintf("%s.transcript%s", baseName, format.Extension())
	}
	return outputPath
}
