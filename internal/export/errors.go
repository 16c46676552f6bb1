package export

import "fmt"

// Code classifies an export failure.
type Code string

const (
	CodeUnsupportedFormat Code = "unsupported_format"
	CodeMalformedRecord   Code = "malformed_record"
	CodeEncodeFailed      Code = "encode_failed"
	CodeWriteFailed       Code = "write_failed"
	CodeCanceled          Code = "canceled"
)

// Error is the single failure type returned by the export engine.
type Error struct {
	Code    Code
	Path    string
	Message string
	Err     error
}

func newError(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Path)
	}
	if e.Err != nil {
		return fmt.Sprintf("export failed: %s: %v", msg, e.Err)
	}
	return "export failed: " + msg
}

func (e *Error) Unwrap() error { return e.Err }
