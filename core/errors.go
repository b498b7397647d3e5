package core

import (
	"errors"
	"fmt"
	"os"
)

// General error codes
const (
	NOERROR      int = 0
	EMISSING     int = 122 // resource does not exist
	EINVALID     int = 123 // validation failed
	EFONTLOAD    int = 124 // font file unreadable or malformed
	EINTERNAL    int = 125 // internal error
	EUNSUPPORTED int = 126 // font lacks a required glyph
)

// Sentinel errors for the error kinds clients of ttfwrap may want to
// distinguish. Errors created with Error or WrapError carry the sentinel
// matching their code, so
//
//	errors.Is(err, core.ErrFontLoad)
//
// works on every font loading error, regardless of its cause.
var (
	ErrFontLoad                      = errors.New(errorText(EFONTLOAD))
	ErrInvalidConfiguration          = errors.New(errorText(EINVALID))
	ErrUnsupportedReferenceCharacter = errors.New(errorText(EUNSUPPORTED))
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid configuration"
	case EFONTLOAD:
		return "font load error"
	case EINTERNAL:
		return "internal error"
	case EUNSUPPORTED:
		return "unsupported reference character"
	}
	return "undefined error"
}

// sentinel returns the kind-error for an error code, or nil.
func sentinel(ecode int) error {
	switch ecode {
	case EFONTLOAD:
		return ErrFontLoad
	case EINVALID:
		return ErrInvalidConfiguration
	case EUNSUPPORTED:
		return ErrUnsupportedReferenceCharacter
	}
	return nil
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type coreError struct {
	error
	code int
	msg  string
}

func (e coreError) Unwrap() error {
	return e.error
}

func (e coreError) Error() string {
	if e.msg == "" || e.msg == errorText(e.code) {
		return fmt.Sprintf("[%d] %v", e.code, e.error)
	}
	return fmt.Sprintf("[%d] %s: %v", e.code, e.msg, e.error)
}

func (e coreError) ErrorCode() int {
	return e.code
}

func (e coreError) UserMessage() string {
	return e.msg
}

var _ AppError = coreError{}

// WrapError wraps an error in a core error, featuring an error code and
// a user message.
// If err is nil, an error denoting the code's error kind is wrapped.
func WrapError(err error, code int, format string, v ...interface{}) error {
	msg := fmt.Sprintf(format, v...)
	return coreError{withSentinel(err, code), code, msg}
}

func withSentinel(err error, code int) error {
	kind := sentinel(code)
	switch {
	case err == nil && kind == nil:
		return errors.New(errorText(code))
	case err == nil:
		return kind
	case kind == nil || errors.Is(err, kind):
		return err
	}
	return fmt.Errorf("%w: %w", kind, err)
}

// Code returns the status code associated with an error.
// If no status code is found, it returns EINTERNAL.
// If err is nil, NOERROR is returned.
func Code(err error) (code int) {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error.
// If no message is found, it checks StatusCode and returns that message.
// If err is nil, it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return coreError{
		withSentinel(nil, code),
		code,
		fmt.Sprintf(format, v...),
	}
}

// UserError prints an error to stderr, preferring the user message of
// application errors.
func UserError(err error) {
	if e := AppError(nil); errors.As(err, &e) {
		fmt.Fprintf(os.Stderr, "[%d] %s\n", e.ErrorCode(), e.UserMessage())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}
