package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mgpai22/transkripto/internal/transcript"
)

var csvHeader = []string{"Start Time", "Text", "Duration"}

func renderCSV(r *run, t transcript.Transcript) (*Output, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	if err := w.Write(csvHeader); err != nil {
		return nil, newError(CodeEncodeFailed, "failed to write CSV header", err)
	}

	for i, seg := range t {
		ts, err := r.stamp(i, seg)
		if err != nil {
			return nil, err
		}
		duration, err := r.durationField(i, seg.Duration)
		if err != nil {
			return nil, err
		}
		if err := w.Write([]string{ts, seg.Text, duration}); err != nil {
			return nil, newError(
				CodeEncodeFailed,
				fmt.Sprintf("failed to write CSV row %d", i+1),
				err,
			)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, newError(CodeEncodeFailed, "failed to flush CSV", err)
	}
	return &Output{Data: buf.Bytes()}, nil
}

// raw duration as written in the source where it is a scalar,
// otherwise the extracted number of seconds
func (r *run) durationField(index int, v any) (string, error) {
	secs, err := r.seconds(index, "duration", v)
	if err != nil {
		return "", err
	}

	switch d := v.(type) {
	case json.Number:
		return d.String(), nil
	case string:
		return d, nil
	case float64:
		return strconv.FormatFloat(d, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(d), 'f', -1, 32), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(d), nil
	default:
		return strconv.FormatFloat(secs, 'f', -1, 64), nil
	}
}
