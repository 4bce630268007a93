package vgcore

import "errors"

// Status is the status enumeration shared by every component.
//
// Status implements error. Success is never returned as a non-nil error;
// use Err to convert a Status into an error value.
type Status uint8

const (
	// Success indicates no error has occurred.
	Success Status = iota

	// NoMemory indicates an allocation was refused.
	NoMemory

	// InvalidPathData indicates a malformed path snapshot record.
	InvalidPathData

	// SurfaceFinished indicates an operation on a finished surface.
	SurfaceFinished

	// SurfaceTypeMismatch indicates a surface of the wrong backend type.
	SurfaceTypeMismatch

	// InvalidIndex indicates an out-of-range or unknown index.
	InvalidIndex

	// Unsupported indicates a backend does not implement an operation and
	// no generic fallback exists for it.
	Unsupported

	// NoCurrentPoint indicates a relative path operation without a current point.
	NoCurrentPoint

	// InvalidContent indicates an unknown surface content value.
	InvalidContent

	// InvalidSize indicates a negative or otherwise unusable surface size.
	InvalidSize

	// UserError indicates an error returned by caller-supplied code
	// (a path sink, a backend) that is not itself a Status.
	UserError
)

// statusNames maps Status values to their string representation.
var statusNames = [...]string{
	Success:             "success",
	NoMemory:            "out of memory",
	InvalidPathData:     "invalid path data",
	SurfaceFinished:     "surface already finished",
	SurfaceTypeMismatch: "surface type mismatch",
	InvalidIndex:        "invalid index",
	Unsupported:         "operation not supported",
	NoCurrentPoint:      "no current point",
	InvalidContent:      "invalid content",
	InvalidSize:         "invalid size",
	UserError:           "user error",
}

// String returns the string representation of a Status.
func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown status"
}

// Error implements the error interface.
func (s Status) Error() string {
	return "vgcore: " + s.String()
}

// Err returns nil for Success and s otherwise.
func (s Status) Err() error {
	if s == Success {
		return nil
	}
	return s
}

// StatusOf maps an error back to a Status.
// A nil error is Success; an error that wraps a Status yields that Status;
// any other error yields UserError.
func StatusOf(err error) Status {
	if err == nil {
		return Success
	}
	var s Status
	if errors.As(err, &s) {
		return s
	}
	return UserError
}
