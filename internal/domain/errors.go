package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a conversion failed.
type ErrorKind string

const (
	KindUnsupportedFormat ErrorKind = "UnsupportedFormat"
	KindEngineFailure     ErrorKind = "EngineFailure"
	KindTimeout           ErrorKind = "Timeout"
	KindCorruptInput      ErrorKind = "CorruptInput"
	KindIOFailure         ErrorKind = "IOFailure"
)

// ConvError is the typed failure recorded on a job. All engine and
// scheduler errors are normalized into one of these before they reach
// the report.
type ConvError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *ConvError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ConvError) Unwrap() error { return e.Cause }

func NewConvError(kind ErrorKind, message string, cause error) *ConvError {
	return &ConvError{Kind: kind, Message: message, Cause: cause}
}

// AsConvError extracts a ConvError from err, wrapping unclassified
// errors as EngineFailure so every job failure carries a kind.
func AsConvError(err error) *ConvError {
	var ce *ConvError
	if errors.As(err, &ce) {
		return ce
	}
	return &ConvError{Kind: KindEngineFailure, Message: err.Error(), Cause: err}
}

// ErrInputDirMissing aborts a run before any jobs execute.
var ErrInputDirMissing = errors.New("input directory does not exist")
