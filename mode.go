package bitstream

// OpenMode selects which cursors a BitBuffer exposes. Only Read and Write
// are supported; Append, AtEnd, and Truncate are recognized only so
// construction can reject them explicitly.
type OpenMode uint8

const (
	Read OpenMode = 1 << iota
	Write
	appendMode
	atEndMode
	truncateMode
)

const unsupportedModes = appendMode | atEndMode | truncateMode

func (m OpenMode) valid() bool {
	return m&unsupportedModes == 0 && m&(Read|Write) != 0
}

// Whence selects the origin of a relative seek, mirroring io.Seeker.
type Whence int

const (
	SeekBegin Whence = iota
	SeekCurrent
	SeekEnd
)

// SeekMode selects which cursor (or both) a seek operation targets.
type SeekMode uint8

const (
	SeekGet SeekMode = 1 << iota
	SeekPut
)

// SeekBoth targets both the read and write cursors of a BitBuffer.
const SeekBoth = SeekGet | SeekPut
