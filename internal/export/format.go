package export

import (
	"fmt"
	"sort"
	"strings"
)

// Format identifies an export encoding.
type Format string

const (
	FormatText     Format = "text"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatDocument Format = "document"
	FormatSubtitle Format = "subtitle"
	FormatVTT      Format = "vtt"
)

var formatAliases = map[string]Format{
	"txt":    FormatText,
	"docx":   FormatDocument,
	"srt":    FormatSubtitle,
	"webvtt": FormatVTT,
}

// ParseFormat maps a format name or file-type label (txt, docx, srt) to a
// registered Format.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if f, ok := formatAliases[name]; ok {
		return f, nil
	}
	if _, ok := renderers[Format(name)]; ok {
		return Format(name), nil
	}
	return "", newError(
		CodeUnsupportedFormat,
		fmt.Sprintf("unsupported format %q: use %s", s, strings.Join(formatNames(), ", ")),
		nil,
	)
}

// Formats lists every registered format, sorted by name.
func Formats() []Format {
	formats := make([]Format, 0, len(renderers))
	for f := range renderers {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}

// Extension returns the file extension for f, including the dot.
func (f Format) Extension() string {
	if r, ok := renderers[f]; ok {
		return r.ext
	}
	return ""
}

func formatNames() []string {
	formats := Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return names
}
