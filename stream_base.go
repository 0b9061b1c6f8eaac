package bitstream

// streamBase is the shared state machine embedded by InputStream and
// OutputStream: a buffer handle plus the sticky good/fail/eof/bad mask.
type streamBase struct {
	buf   *BitBuffer
	state State
	err   error
}

func newStreamBase(buf *BitBuffer) streamBase {
	s := streamBase{buf: buf}
	if buf == nil {
		s.state = Bad
		s.err = ErrNilBuffer
	}
	return s
}

// IsGood reports whether no state bit is set.
func (s *streamBase) IsGood() bool { return s.state.IsGood() }

// IsFail reports whether the most recent operation failed.
func (s *streamBase) IsFail() bool { return s.state.IsFail() }

// IsEof reports whether the stream reached its end on the most recent read.
func (s *streamBase) IsEof() bool { return s.state.IsEof() }

// IsBad reports whether the stream's integrity has been compromised.
func (s *streamBase) IsBad() bool { return s.state.IsBad() }

// Usable reports whether further operations can proceed, i.e. neither Fail
// nor Bad is set.
func (s *streamBase) Usable() bool { return s.state.Usable() }

// State returns the full sticky state mask.
func (s *streamBase) State() State { return s.state }

// Err returns the classified error behind the current Fail or Bad state,
// or nil if the stream is Good or only Eof.
func (s *streamBase) Err() error { return s.err }

// Clear resets the stream state. With no argument it resets to Good; an
// explicit mask sets the state to exactly that value.
func (s *streamBase) Clear(mask ...State) {
	if len(mask) > 0 {
		s.state = mask[0]
	} else {
		s.state = Good
	}
	s.err = nil
}

// blocked reports whether the stream is in a state where operations other
// than Clear and the seek family are required to be no-ops.
func (s *streamBase) blocked() bool {
	return s.state.IsFail() || s.state.IsBad()
}

func (s *streamBase) setFail(err error) {
	s.state |= Fail
	s.err = err
}

func (s *streamBase) setEof() {
	s.state |= Eof
}

func (s *streamBase) setBad(err error) {
	s.state |= Bad | Fail
	s.err = err
}
