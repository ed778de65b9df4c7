package mirrorsvg

import (
	"fmt"
	"io/fs"

	"github.com/pkg/errors"
)

// Kind identifies the pipeline stage which failed.
type Kind int

// The error kinds returned by the conversion pipeline.
const (
	// DecodeError is returned when the source is missing, unreadable or not a supported raster image.
	DecodeError Kind = iota + 1
	// EncodeError is returned when the mirrored image could not be serialized.
	EncodeError
	// WriteError is returned when the output document could not be created or written.
	WriteError
)

func (k Kind) String() string {
	switch k {
	case DecodeError:
		return "DecodeError"
	case EncodeError:
		return "EncodeError"
	case WriteError:
		return "WriteError"
	default:
		return "UnknownError"
	}
}

// Error is the error type returned by every exported operation of the package.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

// Error formats the error as "Kind: path: cause". The path is left out when
// the cause already names it, as *fs.PathError does.
func (e *Error) Error() string {
	var pe *fs.PathError
	if e.Path == "" || errors.As(e.Err, &pe) {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Cause makes the error compatible with errors.Cause from github.com/pkg/errors.
func (e *Error) Cause() error { return e.Err }

func newError(kind Kind, path string, err error, msg string) *Error {
	return &Error{Kind: kind, Path: path, Err: errors.Wrap(err, msg)}
}

// KindOf returns the kind of err, or 0 if err is not produced by this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsDecodeError reports whether err originates from the image loader.
func IsDecodeError(err error) bool { return KindOf(err) == DecodeError }

// IsEncodeError reports whether err originates from the PNG re-encoding.
func IsEncodeError(err error) bool { return KindOf(err) == EncodeError }

// IsWriteError reports whether err originates from writing the output document.
func IsWriteError(err error) bool { return KindOf(err) == WriteError }
