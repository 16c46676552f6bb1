package transcript

import (
	"bytes"
	"encoding/json"

	"github.com/mgpai22/transkripto/internal/subtitle"
)

// Segment is one timed unit of transcript text.
//
// Start and Duration keep whatever shape the source delivered (number,
// json.Number, numeric string, or a descriptor object); use the timecode
// package to read them as seconds.
//
// A decoded segment also keeps its source record, and encodes back to that
// record unchanged: extra keys, missing keys and key order survive. Edits to
// the fields of a decoded segment are not reflected in its JSON form.
type Segment struct {
	Start    any    `json:"start"`
	Duration any    `json:"duration"`
	Text     string `json:"text"`

	// compacted source record; nil for segments built in code
	raw json.RawMessage
}

// UnmarshalJSON reads the known fields of a record and keeps the record
// itself. A text value that is not a string is kept as its JSON literal.
func (s *Segment) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var fields struct {
		Start    any             `json:"start"`
		Duration any             `json:"duration"`
		Text     json.RawMessage `json:"text"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		return err
	}

	var raw bytes.Buffer
	if err := json.Compact(&raw, data); err != nil {
		return err
	}

	*s = Segment{
		Start:    fields.Start,
		Duration: fields.Duration,
		Text:     textValue(fields.Text),
		raw:      raw.Bytes(),
	}
	return nil
}

// MarshalJSON emits the source record of a decoded segment, or the three
// fields for one built in code.
func (s Segment) MarshalJSON() ([]byte, error) {
	if s.raw != nil {
		return s.raw, nil
	}

	type plain Segment
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(plain(s)); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func textValue(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return string(raw)
	}
	return compact.String()
}

// Transcript is an ordered sequence of segments in playback order.
type Transcript []Segment

// FromCues converts subtitle cues into segments, one per cue, in order.
func FromCues(cues []subtitle.Cue) Transcript {
	t := make(Transcript, 0, len(cues))
	for _, cue := range cues {
		t = append(t, Segment{
			Start:    cue.Start.Seconds(),
			Duration: cue.Duration().Seconds(),
			Text:     cue.Text,
		})
	}
	return t
}
