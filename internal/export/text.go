package export

import (
	"strings"

	"github.com/mgpai22/transkripto/internal/transcript"
)

// one line per segment: "[ts] text" or "text"
func renderText(r *run, t transcript.Transcript) (*Output, error) {
	var sb strings.Builder
	for i, seg := range t {
		line, err := r.line(i, seg)
		if err != nil {
			return nil, err
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return &Output{Data: []byte(sb.String())}, nil
}
