package bitstream

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestDispatchBits(t *testing.T) {
	data := make([]byte, 4)
	buf, _ := NewBitBuffer(data, Read|Write)
	out := NewOutputStream(buf)

	WriteBits(out, NewBits(4, 0xD))
	WriteBits(out, NewBits(12, 0xABC))

	buf.SeekPos(0, SeekGet)
	in := NewInputStream(buf)

	got := Bits{Width: 4}
	ReadBits(in, &got)
	assert.Equal(t, got.Value, uint64(0xD))

	got2 := Bits{Width: 12}
	ReadBits(in, &got2)
	assert.Equal(t, got2.Value, uint64(0xABC))
}

func TestDispatchConstBits(t *testing.T) {
	data := []byte{0b10000000}
	buf, _ := NewBitBuffer(data, Read)
	in := NewInputStream(buf)

	ReadConstBits(in, NewBits(2, 0b10))
	assert.That(t, in.IsGood())
}

func TestDispatchResizableContainer(t *testing.T) {
	data := []byte{0x12, 0x34, 0x56, 0x78}
	buf, _ := NewBitBuffer(data, Read)
	in := NewInputStream(buf)

	in.SetRepeat(4)
	var values []uint8
	ReadSlice(in, &values)

	assert.Equal(t, len(values), 4)
	assert.Equal(t, values[0], uint8(0x12))
	assert.Equal(t, values[1], uint8(0x34))
	assert.Equal(t, values[2], uint8(0x56))
	assert.Equal(t, values[3], uint8(0x78))
	assert.That(t, in.IsEof())
	assert.That(t, !in.IsFail())
}

func TestDispatchSizedContainerIgnoresZeroRepeat(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	buf, _ := NewBitBuffer(data, Read)
	in := NewInputStream(buf)

	values := make([]uint8, 3)
	ReadSlice(in, &values) // repeat is 0: keeps the existing length

	assert.Equal(t, values[0], uint8(0x01))
	assert.Equal(t, values[1], uint8(0x02))
	assert.Equal(t, values[2], uint8(0x03))
}

func TestDispatchFixedContainerIgnoresRepeat(t *testing.T) {
	data := []byte{0xAA, 0xBB}
	buf, _ := NewBitBuffer(data, Read)
	in := NewInputStream(buf)

	in.SetRepeat(100) // must be ignored for a fixed-size container
	var arr [2]uint8
	ReadArray[uint8](in, &arr)

	assert.Equal(t, arr[0], uint8(0xAA))
	assert.Equal(t, arr[1], uint8(0xBB))
}

func TestDispatchConstMismatchSetsFail(t *testing.T) {
	data := []byte{0x12, 0x34}
	buf, _ := NewBitBuffer(data, Read)
	in := NewInputStream(buf)

	ReadConstSlice(in, []uint8{0x12, 0xFF})
	assert.That(t, in.IsFail())
	assert.That(t, !in.IsBad())
}

func TestWriteArrayRoundTrip(t *testing.T) {
	data := make([]byte, 2)
	buf, _ := NewBitBuffer(data, Read|Write)
	out := NewOutputStream(buf)

	arr := [2]uint8{0x11, 0x22}
	WriteArray[uint8](out, arr)

	buf.SeekPos(0, SeekGet)
	in := NewInputStream(buf)
	var got [2]uint8
	ReadArray[uint8](in, &got)

	assert.Equal(t, got[0], arr[0])
	assert.Equal(t, got[1], arr[1])
}
