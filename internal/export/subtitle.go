package export

import (
	"fmt"
	"strings"

	"github.com/mgpai22/transkripto/internal/timecode"
	"github.com/mgpai22/transkripto/internal/transcript"
)

// SubRip blocks; timestamps are fixed-format and ignore the policy
func renderSRT(r *run, t transcript.Transcript) (*Output, error) {
	var sb strings.Builder
	if err := r.writeCues(&sb, t, ','); err != nil {
		return nil, err
	}
	return &Output{Data: []byte(sb.String())}, nil
}

func renderVTT(r *run, t transcript.Transcript) (*Output, error) {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")
	if err := r.writeCues(&sb, t, '.'); err != nil {
		return nil, err
	}
	return &Output{Data: []byte(sb.String())}, nil
}

func (r *run) writeCues(sb *strings.Builder, t transcript.Transcript, sep byte) error {
	for i, seg := range t {
		start, err := r.seconds(i, "start", seg.Start)
		if err != nil {
			return err
		}
		duration, err := r.seconds(i, "duration", seg.Duration)
		if err != nil {
			return err
		}

		// index (1-based)
		sb.WriteString(fmt.Sprintf("%d\n", i+1))

		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			timecode.FormatCue(start, sep),
			timecode.FormatCue(start+duration, sep)))

		sb.WriteString(seg.Text)
		sb.WriteString("\n\n")
	}
	return nil
}
