package timecode

import (
	"fmt"
	"math"
	"strings"
)

// Style selects how a start offset is shown in text-like output.
type Style string

const (
	StyleClock   Style = "clock"   // HH:MM:SS, wraps at 24h
	StyleCompact Style = "compact" // MM:SS, unbounded minutes
)

const secondsPerDay = 24 * 60 * 60

// keeps int64 millisecond math far from overflow
const maxSeconds = float64(1 << 40)

// ParseStyle maps a style name to a Style.
// The labels "HH:MM:SS" and "mm:ss" are accepted as aliases.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clock", "hh:mm:ss":
		return StyleClock, nil
	case "compact", "mm:ss":
		return StyleCompact, nil
	default:
		return "", fmt.Errorf("unsupported timestamp style %q: use clock or compact", s)
	}
}

// FormatDisplay renders the start offset held by v using style.
// Fractional seconds are dropped. Unknown styles render as StyleClock.
func FormatDisplay(v any, style Style) string {
	return DisplaySeconds(Extract(v), style)
}

// DisplaySeconds is FormatDisplay for an already extracted value.
func DisplaySeconds(seconds float64, style Style) string {
	secs := wholeSeconds(seconds)
	if style == StyleCompact {
		return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
	}

	secs %= secondsPerDay
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}

// FormatSubtitle renders v as a SubRip timestamp (HH:MM:SS,mmm).
func FormatSubtitle(v any) string {
	return FormatCue(Extract(v), ',')
}

// FormatCue renders seconds as HH:MM:SS<sep>mmm. Hours are not wrapped.
func FormatCue(seconds float64, sep byte) string {
	ms := int64(math.Round(clamp(seconds) * 1000))

	hours := ms / 3_600_000
	minutes := (ms / 60_000) % 60
	secs := (ms / 1000) % 60
	millis := ms % 1000

	return fmt.Sprintf("%02d:%02d:%02d%c%03d", hours, minutes, secs, sep, millis)
}

func wholeSeconds(seconds float64) int64 {
	return int64(math.Trunc(clamp(seconds)))
}

// negative offsets render as zero
func clamp(seconds float64) float64 {
	if seconds < 0 {
		return 0
	}
	if seconds > maxSeconds {
		return maxSeconds
	}
	return seconds
}
