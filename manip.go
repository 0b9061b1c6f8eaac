package bitstream

// InputManip is a value type that adjusts InputStream state without
// itself consuming bits. It is the Go stand-in for the chain-operator
// manipulators of the original design: instead of overloading an operator,
// a stream applies one through its With method.
type InputManip struct {
	apply func(*InputStream)
}

// With applies an input manipulator and returns the stream for chaining.
func (s *InputStream) With(m InputManip) *InputStream {
	m.apply(s)
	return s
}

// SetRepeatIn returns a manipulator equivalent to InputStream.SetRepeat.
func SetRepeatIn(n uint64) InputManip {
	return InputManip{apply: func(s *InputStream) { s.SetRepeat(n) }}
}

// AlignGetManip returns a manipulator equivalent to InputStream.AlignGet.
func AlignGetManip(k uint) InputManip {
	return InputManip{apply: func(s *InputStream) { s.AlignGet(k) }}
}

// IgnoreManip returns a manipulator equivalent to InputStream.Ignore.
func IgnoreManip(n uint) InputManip {
	return InputManip{apply: func(s *InputStream) { s.Ignore(n) }}
}

// OutputManip is the output-side counterpart of InputManip.
type OutputManip struct {
	apply func(*OutputStream)
}

// With applies an output manipulator and returns the stream for chaining.
func (s *OutputStream) With(m OutputManip) *OutputStream {
	m.apply(s)
	return s
}

// SetRepeatOut returns a manipulator equivalent to OutputStream.SetRepeat.
func SetRepeatOut(n uint64) OutputManip {
	return OutputManip{apply: func(s *OutputStream) { s.SetRepeat(n) }}
}

// AlignPutManip returns a manipulator equivalent to OutputStream.AlignPut.
func AlignPutManip(k uint) OutputManip {
	return OutputManip{apply: func(s *OutputStream) { s.AlignPut(k) }}
}
