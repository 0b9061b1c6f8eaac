package bitstream

// InputStream is the typed extraction surface over a BitBuffer: Get/Read
// consume bits and report through the sticky state machine, Repeat governs
// how many elements a container extraction consumes.
type InputStream struct {
	streamBase
	gcount uint64
	gvalue uint64
	repeat uint64
}

// NewInputStream wraps buf for reading. buf may be nil, in which case the
// stream starts in the Bad state.
func NewInputStream(buf *BitBuffer) *InputStream {
	return &InputStream{streamBase: newStreamBase(buf)}
}

// GCount reports the number of bits consumed by the most recent operation,
// 0 if it failed.
func (s *InputStream) GCount() uint64 { return s.gcount }

// GValue reports the raw integer materialized by the most recent read.
func (s *InputStream) GValue() uint64 { return s.gvalue }

// SetRepeat sets the container-repeat count. n == 0 means "use the
// container's existing size on extraction."
func (s *InputStream) SetRepeat(n uint64) *InputStream {
	s.repeat = n
	return s
}

// Repeat returns the current container-repeat count.
func (s *InputStream) Repeat() uint64 { return s.repeat }

// readBits is the shared core for every extraction: it checks for a
// blocked stream, distinguishes short reads from exact-to-end reads, and
// updates gcount/gvalue/state accordingly.
func (s *InputStream) readBits(n uint) (uint64, bool) {
	if s.blocked() {
		return 0, false
	}
	if int64(n) > s.buf.InAvail() {
		s.gcount = 0
		s.gvalue = 0
		s.setFail(ErrShort)
		s.setEof()
		logStateChange("input", s.state)
		return 0, false
	}
	v, bits := s.buf.ReadN(n)
	s.gcount = uint64(bits)
	s.gvalue = v
	logDebugCursor("read", s.buf.TellGet(), n)
	if s.buf.InAvail() == 0 {
		s.setEof()
		logStateChange("input", s.state)
	}
	return v, true
}

// Get reads a single bit.
func (s *InputStream) Get() (uint8, bool) {
	v, ok := s.readBits(1)
	return uint8(v), ok
}

// Peek looks ahead one bit without advancing the cursor or touching
// gcount/gvalue.
func (s *InputStream) Peek() (uint8, bool) {
	if s.blocked() {
		return 0, false
	}
	return s.buf.PeekOne()
}

// Ignore skips n bits. On overrun it sets Eof and gcount = 0, leaving the
// cursor at the read bound.
func (s *InputStream) Ignore(n uint) *InputStream {
	if s.blocked() {
		return s
	}
	if int64(n) > s.buf.InAvail() {
		s.gcount = 0
		s.buf.SeekPos(s.buf.gEnd, SeekGet)
		s.setEof()
		logStateChange("input", s.state)
		return s
	}
	s.buf.SeekOff(int64(n), SeekCurrent, SeekGet)
	s.gcount = uint64(n)
	if s.buf.InAvail() == 0 {
		s.setEof()
	}
	return s
}

// Unget moves the read cursor back one bit. If Eof is set it is cleared
// before the retreat is attempted; Fail is set iff the retreat is out of
// bounds.
func (s *InputStream) Unget() *InputStream {
	if s.blocked() {
		return s
	}
	s.state &^= Eof
	if _, err := s.buf.SeekOff(-1, SeekCurrent, SeekGet); err != nil {
		s.setFail(ErrOutOfRange)
	}
	return s
}

// Putback pushes bit back onto the stream. It succeeds only if bit equals
// the bit immediately to the left of the read cursor; otherwise it sets
// Bad without moving the cursor.
func (s *InputStream) Putback(bit uint8) *InputStream {
	if s.blocked() {
		return s
	}
	if !s.buf.PutbackOne(bit) {
		s.setBad(ErrPutback)
	}
	return s
}

// AlignGet advances the read cursor to the next multiple of k bits; it is
// a no-op if already aligned. k must be positive. gcount is reset to 0.
func (s *InputStream) AlignGet(k uint) *InputStream {
	if k == 0 {
		panic("bitstream: align modulus must be positive")
	}
	if s.blocked() {
		return s
	}
	s.gcount = 0
	pos := s.buf.TellGet()
	rem := pos % int64(k)
	if rem == 0 {
		return s
	}
	skip := int64(k) - rem
	if int64(skip) > s.buf.InAvail() {
		s.setFail(ErrShort)
		s.setEof()
		return s
	}
	s.buf.SeekOff(skip, SeekCurrent, SeekGet)
	return s
}

// TellGet returns the current read cursor position, or NPos if the stream
// has no backing buffer.
func (s *InputStream) TellGet() int64 {
	if s.buf == nil {
		return NPos
	}
	return s.buf.TellGet()
}

// SeekGetPos performs an absolute seek of the read cursor. Unlike most
// operations, seeks are permitted even while Fail or Bad is set. On an
// out-of-range target it sets Fail and leaves the cursor unchanged.
func (s *InputStream) SeekGetPos(position int64) *InputStream {
	if s.buf == nil {
		return s
	}
	if _, err := s.buf.SeekPos(position, SeekGet); err != nil {
		s.setFail(err)
	}
	return s
}

// SeekGetOff performs a relative seek of the read cursor. Unlike most
// operations, seeks are permitted even while Fail or Bad is set. On an
// out-of-range target it sets Fail and leaves the cursor unchanged.
func (s *InputStream) SeekGetOff(offset int64, whence Whence) *InputStream {
	if s.buf == nil {
		return s
	}
	if _, err := s.buf.SeekOff(offset, whence, SeekGet); err != nil {
		s.setFail(err)
	}
	return s
}
