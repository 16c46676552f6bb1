package transcript

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mgpai22/transkripto/internal/subtitle"
)

// Decode reads a JSON array of segment records from r.
// Numbers are kept as json.Number so they re-encode exactly as read.
func Decode(r io.Reader) (Transcript, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var t Transcript
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("transcript is empty")
		}
		return nil, fmt.Errorf("failed to decode transcript: %w", err)
	}
	if t == nil {
		t = Transcript{}
	}
	return t, nil
}

// Load reads a transcript from a JSON record file or, for .srt and .vtt
// paths, from the cues of a subtitle file.
func Load(path string) (Transcript, error) {
	if _, ok := subtitle.FormatFromExtension(path); ok {
		cues, _, err := subtitle.Open(path)
		if err != nil {
			return nil, err
		}
		return FromCues(cues), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transcript: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return Decode(file)
}
