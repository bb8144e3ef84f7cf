package util

import (
	"errors"
	"fmt"
)

// Error codes classifying failures across the fetch and analyze pipelines.
const (
	CodeAuthFailed      = "AUTH_FAILED"
	CodeFetchFailed     = "FETCH_FAILED"
	CodeSnapshotIO      = "SNAPSHOT_IO"
	CodeSnapshotInvalid = "SNAPSHOT_INVALID"
	CodeAnalysisFailed  = "ANALYSIS_FAILED"
	CodeInternal        = "INTERNAL_ERROR"
)

// PipelineError standardizes application errors.
type PipelineError struct {
	Code    string
	Message string
	Err     error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// NewPipelineError constructs a PipelineError.
func NewPipelineError(code, message string, err error) *PipelineError {
	return &PipelineError{Code: code, Message: message, Err: err}
}

// NewAuthFailed marks an authentication or connectivity failure that halts
// the run before any fetch attempt.
func NewAuthFailed(message string, err error) error {
	return NewPipelineError(CodeAuthFailed, message, err)
}

// NewFetchFailed marks a per-page transport or HTTP failure.
func NewFetchFailed(message string, err error) error {
	return NewPipelineError(CodeFetchFailed, message, err)
}

// NewSnapshotIO marks a snapshot file read or write failure.
func NewSnapshotIO(message string, err error) error {
	return NewPipelineError(CodeSnapshotIO, message, err)
}

// NewSnapshotInvalid marks a malformed persisted snapshot.
func NewSnapshotInvalid(message string, err error) error {
	return NewPipelineError(CodeSnapshotInvalid, message, err)
}

// NewAnalysisFailed marks a text-completion service failure.
func NewAnalysisFailed(message string, err error) error {
	return NewPipelineError(CodeAnalysisFailed, message, err)
}

// ToPipelineError converts generic errors to PipelineError.
func ToPipelineError(err error) *PipelineError {
	if err == nil {
		return nil
	}
	var pipelineErr *PipelineError
	if errors.As(err, &pipelineErr) {
		return pipelineErr
	}
	return &PipelineError{Code: CodeInternal, Message: "unexpected error", Err: err}
}

// CodeOf extracts the classification code of an error.
func CodeOf(err error) string {
	if pe := ToPipelineError(err); pe != nil {
		return pe.Code
	}
	return ""
}
