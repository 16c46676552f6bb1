package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
)

// Open reads all cues from an SRT or WebVTT file, chosen by extension.
func Open(path string) ([]Cue, Format, error) {
	format, ok := FormatFromExtension(path)
	if !ok {
		return nil, "", fmt.Errorf(
			"unsupported subtitle format: %s",
			filepath.Ext(path),
		)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open %s file: %w", format, err)
	}
	defer func() {
		_ = file.Close()
	}()

	cues, err := Read(file, format)
	if err != nil {
		return nil, "", err
	}
	return cues, format, nil
}
