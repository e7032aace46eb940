package errors

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
)

// PlatformError is an error annotated with a code, a human readable message and
// optional context such as the path of the file being read.
type PlatformError struct {
	// Code classifies the failure.
	Code ErrorCode

	// Message describes what was being attempted.
	Message string

	// Context holds identifying details (paths, keys) rendered into the message.
	Context map[string]interface{}

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *PlatformError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)

	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteString(" (")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", k, e.Context[k])
		}
		b.WriteString(")")
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error for error chaining support.
func (e *PlatformError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a PlatformError with the same code.
// A target without a code never matches.
func (e *PlatformError) Is(target error) bool {
	var t *PlatformError
	if !stderrors.As(target, &t) {
		return false
	}
	return t.Code != "" && t.Code == e.Code && t.Message == ""
}

// New creates a new PlatformError with no underlying cause.
func New(code ErrorCode, message string) *PlatformError {
	return &PlatformError{Code: code, Message: message}
}

// Wrap annotates err with a code and message. It returns nil if err is nil.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &PlatformError{Code: code, Message: message, Err: err}
}

// WrapWithContext annotates err with a code, message and context map.
// It returns nil if err is nil.
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) error {
	if err == nil {
		return nil
	}
	return &PlatformError{Code: code, Message: message, Context: ctx, Err: err}
}

// GetCode returns the code of the outermost PlatformError in err's chain,
// or CodeUnknown if there is none.
func GetCode(err error) ErrorCode {
	var pe *PlatformError
	if stderrors.As(err, &pe) {
		return pe.Code
	}
	return CodeUnknown
}

// HasCode reports whether any PlatformError in err's chain carries code.
func HasCode(err error, code ErrorCode) bool {
	return stderrors.Is(err, &PlatformError{Code: code})
}

// Re-exported standard library helpers so callers need a single errors import.
var (
	Is     = stderrors.Is
	As     = stderrors.As
	Unwrap = stderrors.Unwrap
)
