package subtitle

import (
	"path/filepath"
	"strings"
	"time"
)

// single timed cue read from a subtitle file
type Cue struct {
	Index int
	Start time.Duration
	End   time.Duration
	Text  string
}

// Duration of the cue, never negative.
func (c Cue) Duration() time.Duration {
	if c.End < c.Start {
		return 0
	}
	return c.End - c.Start
}

// represents supported subtitle formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
)

// subtitle format based on file extension
func FormatFromExtension(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		return FormatSRT, true
	case ".vtt":
		return FormatVTT, true
	default:
		return "", false
	}
}
