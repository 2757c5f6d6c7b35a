package protocol

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies an Error so callers can branch on it without string
// matching (see spec §7).
type Kind int

const (
	// InvalidArgument means the caller supplied an impossible parameter.
	InvalidArgument Kind = iota
	// AlreadyInProgress means a send or PDU builder was invoked while
	// another PDU was mid-build.
	AlreadyInProgress
	// WouldBlock means non-blocking I/O made no or only partial progress;
	// the caller must retry after readiness.
	WouldBlock
	// ConnectionReset means the peer closed the stream.
	ConnectionReset
	// ProtocolError means the inbound PDU was malformed.
	ProtocolError
	// OutOfMemory means a buffer or registry allocation failed.
	OutOfMemory
	// IOError means the underlying stream returned an error other than
	// would-block.
	IOError
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid-argument"
	case AlreadyInProgress:
		return "already-in-progress"
	case WouldBlock:
		return "would-block"
	case ConnectionReset:
		return "connection-reset"
	case ProtocolError:
		return "protocol-error"
	case OutOfMemory:
		return "out-of-memory"
	case IOError:
		return "io-error"
	default:
		return "unknown"
	}
}

// Error is the error type returned by every exported operation in this
// package. It always carries a Kind from spec §7.
type Error struct {
	Kind Kind
	op   string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.op, e.Kind, e.err)
	}
	return fmt.Sprintf("%s: %s", e.op, e.Kind)
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.err }

// newErr constructs an *Error, wrapping cause (if any) with pkg/errors so a
// stack trace is captured at the point of failure.
func newErr(op string, kind Kind, cause error) *Error {
	if cause == nil {
		return &Error{Kind: kind, op: op}
	}
	return &Error{Kind: kind, op: op, err: errors.Wrap(cause, op)}
}

func errf(op string, kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, op: op, err: errors.Errorf(format, args...)}
}

// Is reports whether target is an *Error with the same Kind, so callers can
// write errors.Is(err, protocol.ErrWouldBlock()) style checks if they prefer
// sentinel comparison over inspecting Kind directly.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// Sentinel kind-only errors for errors.Is-style comparisons.
var (
	sentinelInvalidArgument   = &Error{Kind: InvalidArgument}
	sentinelAlreadyInProgress = &Error{Kind: AlreadyInProgress}
	sentinelWouldBlock        = &Error{Kind: WouldBlock}
	sentinelConnectionReset   = &Error{Kind: ConnectionReset}
	sentinelProtocolError     = &Error{Kind: ProtocolError}
	sentinelOutOfMemory       = &Error{Kind: OutOfMemory}
	sentinelIOError           = &Error{Kind: IOError}
)

// ErrWouldBlock is the sentinel for errors.Is(err, protocol.ErrWouldBlock).
func ErrWouldBlock() error { return sentinelWouldBlock }

// ErrProtocolError is the sentinel for errors.Is(err, protocol.ErrProtocolError).
func ErrProtocolError() error { return sentinelProtocolError }
