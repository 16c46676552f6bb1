package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mgpai22/transkripto/internal/export"
)

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		input  string
		format export.Format
		want   string
	}{
		{"talk.json", export.FormatCSV, "talk.csv"},
		{"dir/talk.json", export.FormatDocument, "dir/talk.docx"},
		{"captions.vtt", export.FormatSubtitle, "captions.srt"},
		{"captions.srt", export.FormatSubtitle, "captions.transcript.srt"},
		{"talk.json", export.FormatJSON, "talk.transcript.json"},
		{"-", export.FormatText, "transcript.txt"},
		{"noext", export.FormatVTT, "noext.vtt"},
	}

	for _, tt := range tests {
		t.Run(tt.input+"->"+string(tt.format), func(t *testing.T) {
			got := defaultOutputPath(tt.input, tt.format)
			if got != tt.want {
				t.Errorf(
					"defaultOutputPath(%q, %s) = %q, want %q",
					tt.input,
					tt.format,
					got,
					tt.want,
				)
			}
		})
	}
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "talk.json")
	output := filepath.Join(dir, "talk.srt")
	config := filepath.Join(dir, "config.yaml")

	records := `[{"start":5,"duration":2.5,"text":"Hello"},{"start":10,"duration":1,"text":"World"}]`
	if err := os.WriteFile(input, []byte(records), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{
		"export", input,
		"--format", "srt",
		"--output", output,
		"--config", config,
		"--save-prefs",
	})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("export command failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	want := "1\n00:00:05,000 --> 00:00:07,500\nHello\n\n" +
		"2\n00:00:10,000 --> 00:00:11,000\nWorld\n\n"
	if string(data) != want {
		t.Errorf("expected %q, got %q", want, string(data))
	}

	if !strings.Contains(stdout.String(), "Transcript exported successfully") {
		t.Errorf("expected success message, got %q", stdout.String())
	}

	saved, err := os.ReadFile(config)
	if err != nil {
		t.Fatalf("expected preferences to be saved: %v", err)
	}
	if !strings.Contains(string(saved), "default_export_format: subtitle") {
		t.Errorf("expected saved subtitle format, got:\n%s", saved)
	}
}

func TestShowCommandReadsStdin(t *testing.T) {
	dir := t.TempDir()

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetIn(strings.NewReader(`[{"start":90,"duration":1,"text":"later"}]`))
	rootCmd.SetArgs([]string{
		"show", "-",
		"--timestamp-format", "mm:ss",
		"--config", filepath.Join(dir, "config.yaml"),
	})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("show command failed: %v", err)
	}

	if got := stdout.String(); got != "[01:30] later\n" {
		t.Errorf("expected %q, got %q", "[01:30] later\n", got)
	}
}
