package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	srtTimestampRegex = regexp.MustCompile(
		`(\d{2,}):(\d{2}):(\d{2}),(\d{3})\s*-->\s*(\d{2,}):(\d{2}):(\d{2}),(\d{3})`,
	)
	// hours are optional in WebVTT
	vttTimestampRegex = regexp.MustCompile(
		`(?:(\d{2,}):)?(\d{2}):(\d{2})\.(\d{3})\s*-->\s*(?:(\d{2,}):)?(\d{2}):(\d{2})\.(\d{3})`,
	)
)

const maxLineSize = 1024 * 1024

// Read parses cues from r. Cue identifiers, the WEBVTT header and
// NOTE/STYLE/REGION blocks are skipped; cues without text are dropped.
func Read(r io.Reader, format Format) ([]Cue, error) {
	var timestampRegex *regexp.Regexp
	switch format {
	case FormatSRT:
		timestampRegex = srtTimestampRegex
	case FormatVTT:
		timestampRegex = vttTimestampRegex
	default:
		return nil, fmt.Errorf("unsupported subtitle format: %s", format)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		cues      []Cue
		current   *Cue
		textLines []string
		lineNum   int
		skipBlock bool
	)

	flush := func() {
		if current != nil && len(textLines) > 0 {
			current.Index = len(cues) + 1
			current.Text = strings.Join(textLines, "\n")
			cues = append(cues, *current)
		}
		current = nil
		textLines = nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			flush()
			skipBlock = false
			continue
		}
		if skipBlock {
			continue
		}

		if format == FormatVTT && current == nil && isVTTMetaBlock(trimmed) {
			skipBlock = true
			continue
		}

		matches := timestampRegex.FindStringSubmatch(line)
		if matches != nil {
			flush()

			start, err := cueTime(matches[1], matches[2], matches[3], matches[4])
			if err != nil {
				return nil, fmt.Errorf(
					"invalid start timestamp at line %d: %w",
					lineNum,
					err,
				)
			}
			end, err := cueTime(matches[5], matches[6], matches[7], matches[8])
			if err != nil {
				return nil, fmt.Errorf(
					"invalid end timestamp at line %d: %w",
					lineNum,
					err,
				)
			}

			current = &Cue{Start: start, End: end}
			continue
		}

		// anything before the timing line is a cue identifier
		if current != nil {
			textLines = append(textLines, line)
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s file: %w", format, err)
	}

	return cues, nil
}

func isVTTMetaBlock(line string) bool {
	for _, prefix := range []string{"WEBVTT", "NOTE", "STYLE", "REGION"} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func cueTime(hours, minutes, seconds, millis string) (time.Duration, error) {
	h := 0
	if hours != "" {
		var err error
		if h, err = strconv.Atoi(hours); err != nil {
			return 0, err
		}
	}
	m, err := strconv.Atoi(minutes)
	if err != nil {
		return 0, err
	}
	s, err := strconv.Atoi(seconds)
	if err != nil {
		return 0, err
	}
	ms, err := strconv.Atoi(millis)
	if err != nil {
		return 0, err
	}

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(ms)*time.Millisecond, nil
}
