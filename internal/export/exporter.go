package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mgpai22/transkripto/internal/timecode"
	"github.com/mgpai22/transkripto/internal/transcript"
)

// Exporter renders transcripts and writes them to files.
type Exporter struct {
	logger    *zap.SugaredLogger
	extractor timecode.Extractor
	perm      os.FileMode
}

type Option func(*Exporter)

// WithLogger sets the logger used for write diagnostics.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(e *Exporter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithStrict makes malformed time fields fail the export instead of
// rendering as zero.
func WithStrict(strict bool) Option {
	return func(e *Exporter) { e.extractor.Strict = strict }
}

// WithFileMode sets the permissions of written files (default 0644).
func WithFileMode(perm os.FileMode) Option {
	return func(e *Exporter) { e.perm = perm }
}

func NewExporter(opts ...Option) *Exporter {
	e := &Exporter{
		logger: zap.NewNop().Sugar(),
		perm:   0644,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render serializes t without writing anything.
func (e *Exporter) Render(t transcript.Transcript, format Format, policy Policy) (*Output, error) {
	return render(t, format, policy, e.extractor)
}

// Export renders t and writes it to path. The destination is replaced only
// after the full output has been written; on failure it is left as it was.
func (e *Exporter) Export(
	ctx context.Context,
	t transcript.Transcript,
	format Format,
	policy Policy,
	path string,
) error {
	if err := ctx.Err(); err != nil {
		return newError(CodeCanceled, "export canceled", err)
	}

	out, err := e.Render(t, format, policy)
	if err != nil {
		return withPath(err, path)
	}

	e.logger.Debugw("Writing export",
		"format", format,
		"path", path,
		"segments", len(t),
	)

	if out.Blocks != nil {
		err = writeDocument(path, e.perm, out.Blocks)
	} else {
		err = writeFile(path, e.perm, out.Data)
	}
	if err != nil {
		e.logger.Warnw("Export write failed",
			"path", path,
			"error", err,
		)
		return &Error{
			Code:    CodeWriteFailed,
			Path:    path,
			Message: fmt.Sprintf("could not write %s output", format),
			Err:     err,
		}
	}

	e.logger.Infow("Transcript exported",
		"format", format,
		"path", path,
	)
	return nil
}

func withPath(err error, path string) error {
	if exportErr, ok := err.(*Error); ok && exportErr.Path == "" {
		exportErr.Path = path
	}
	return err
}

func writeFile(path string, perm os.FileMode, data []byte) error {
	return replaceAtomically(path, perm, func(tmp *os.File) error {
		_, err := tmp.Write(data)
		return err
	})
}

// replaceAtomically fills a temp file next to path, then renames it over
// path. The temp file is removed on every failure path.
func replaceAtomically(path string, perm os.FileMode, fill func(tmp *os.File) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	closed := false

	defer func() {
		if err != nil {
			if !closed {
				_ = tmp.Close()
			}
			_ = os.Remove(tmpName)
		}
	}()

	if err = fill(tmp); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	closed = true
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpName, perm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
