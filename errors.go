package bitstream

import "github.com/zeebo/errs"

// Error classifies every error this package returns or records against a
// stream's Bad/Fail reason.
var Error = errs.Class("bitstream")

var (
	// ErrBadMode is returned by NewBitBuffer for an unsupported open mode.
	ErrBadMode = Error.New("unsupported open mode")

	// ErrOutOfRange is returned by seeks whose target falls outside the
	// buffer's bounds.
	ErrOutOfRange = Error.New("seek target outside buffer bounds")

	// ErrShort marks a read or write that requested more bits than were
	// available.
	ErrShort = Error.New("fewer bits available than requested")

	// ErrMismatch marks a const-assertion extraction whose value disagreed
	// with the stream contents.
	ErrMismatch = Error.New("extracted value does not match expected constant")

	// ErrPutback marks a putback whose bit disagreed with the bit already
	// on the stream.
	ErrPutback = Error.New("putback value does not match preceding bit")

	// ErrNilBuffer marks an operation attempted against a stream with no
	// backing buffer.
	ErrNilBuffer = Error.New("stream has no backing buffer")
)
