package export

import (
	"bytes"
	"encoding/json"

	"github.com/mgpai22/transkripto/internal/transcript"
)

const jsonIndent = "    "

// raw records, pretty-printed; the display policy does not apply
func renderJSON(_ *run, t transcript.Transcript) (*Output, error) {
	if t == nil {
		t = transcript.Transcript{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(t); err != nil {
		return nil, newError(CodeEncodeFailed, "failed to encode transcript as JSON", err)
	}

	return &Output{Data: bytes.TrimSuffix(buf.Bytes(), []byte("\n"))}, nil
}
