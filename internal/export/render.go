package export

import (
	"fmt"

	"github.com/mgpai22/transkripto/internal/timecode"
	"github.com/mgpai22/transkripto/internal/transcript"
)

// Policy controls how start offsets appear in text-like output.
// JSON and subtitle output ignore it.
type Policy struct {
	IncludeTimestamps bool
	Style             timecode.Style
}

// DefaultPolicy shows clock-style timestamps.
func DefaultPolicy() Policy {
	return Policy{IncludeTimestamps: true, Style: timecode.StyleClock}
}

// BlockKind is the kind of a structured document block.
type BlockKind int

const (
	BlockHeading BlockKind = iota
	BlockParagraph
)

// Block is one structured write operation for the document format.
type Block struct {
	Kind BlockKind
	Text string
}

// Output is a rendered transcript. Text-like formats fill Data; the
// document format fills Blocks.
type Output struct {
	Format Format
	Data   []byte
	Blocks []Block
}

type renderFunc func(r *run, t transcript.Transcript) (*Output, error)

type renderer struct {
	ext    string
	render renderFunc
}

// dispatch table, one entry per format
var renderers map[Format]renderer

func init() {
	renderers = map[Format]renderer{
		FormatText:     {ext: ".txt", render: renderText},
		FormatCSV:      {ext: ".csv", render: renderCSV},
		FormatJSON:     {ext: ".json", render: renderJSON},
		FormatDocument: {ext: ".docx", render: renderDocument},
		FormatSubtitle: {ext: ".srt", render: renderSRT},
		FormatVTT:      {ext: ".vtt", render: renderVTT},
	}
}

// Render serializes t into format using the tolerant extractor.
func Render(t transcript.Transcript, format Format, policy Policy) (*Output, error) {
	return render(t, format, policy, timecode.Extractor{})
}

// Display renders t as the on-screen text view.
func Display(t transcript.Transcript, policy Policy) string {
	out, err := Render(t, FormatText, policy)
	if err != nil {
		return ""
	}
	return string(out.Data)
}

func render(
	t transcript.Transcript,
	format Format,
	policy Policy,
	extractor timecode.Extractor,
) (*Output, error) {
	r, ok := renderers[format]
	if !ok {
		return nil, newError(
			CodeUnsupportedFormat,
			fmt.Sprintf("unsupported format %q", format),
			nil,
		)
	}

	out, err := r.render(&run{policy: policy, extractor: extractor}, t)
	if err != nil {
		return nil, err
	}
	out.Format = format
	return out, nil
}

// state shared by the renderers for one call
type run struct {
	policy    Policy
	extractor timecode.Extractor
}

func (r *run) seconds(index int, field string, v any) (float64, error) {
	secs, err := r.extractor.Seconds(v)
	if err != nil {
		return 0, newError(
			CodeMalformedRecord,
			fmt.Sprintf("segment %d: invalid %s %v", index+1, field, v),
			err,
		)
	}
	return secs, nil
}

// display timestamp for a segment, "" when the policy hides timestamps
func (r *run) stamp(index int, seg transcript.Segment) (string, error) {
	if !r.policy.IncludeTimestamps {
		return "", nil
	}
	start, err := r.seconds(index, "start", seg.Start)
	if err != nil {
		return "", err
	}
	return timecode.DisplaySeconds(start, r.policy.Style), nil
}

// text line shared by the text and document formats
func (r *run) line(index int, seg transcript.Segment) (string, error) {
	ts, err := r.stamp(index, seg)
	if err != nil {
		return "", err
	}
	if !r.policy.IncludeTimestamps {
		return seg.Text, nil
	}
	return "[" + ts + "] " + seg.Text, nil
}
