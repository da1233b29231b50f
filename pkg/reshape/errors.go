package reshape

import (
	"errors"
	"fmt"
)

// ErrInputNotFound indicates the input file does not exist.
var ErrInputNotFound = errors.New("input file not found")

// ErrUnknownEncoding indicates the requested input encoding name is
// not supported.
var ErrUnknownEncoding = errors.New("unknown encoding")

// StageError represents a fatal error in one pipeline stage.
type StageError struct {
	Stage string // "input", "decode", "classify", "normalize", "export"
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(stage string, err error) *StageError {
	return &StageError{Stage: stage, Err: err}
}
