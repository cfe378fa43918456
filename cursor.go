package pe

import (
	"bytes"
	"encoding/binary"
)

// Cursor is a sequential little endian reader over an in memory
// buffer. It never reads past the end of the buffer: a read that does
// not fit returns ok == false and leaves the position unchanged.
type Cursor struct {
	data []byte
	pos  int
}

func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

func (self *Cursor) Len() int {
	return len(self.data)
}

func (self *Cursor) Tell() int {
	return self.pos
}

func (self *Cursor) Remaining() int {
	if self.pos >= len(self.data) {
		return 0
	}
	return len(self.data) - self.pos
}

// Seek moves to an absolute position. Positions past the end are
// clamped so later reads fail rather than wrap.
func (self *Cursor) Seek(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(self.data) {
		pos = len(self.data)
	}
	self.pos = pos
}

// Skip advances by n bytes, stopping at the end of the buffer.
func (self *Cursor) Skip(n int) bool {
	if n < 0 || n > self.Remaining() {
		self.pos = len(self.data)
		return false
	}
	self.pos += n
	return true
}

// Bytes returns the next n bytes. The returned slice aliases the
// buffer.
func (self *Cursor) Bytes(n int) ([]byte, bool) {
	if n < 0 || n > self.Remaining() {
		return nil, false
	}
	result := self.data[self.pos : self.pos+n]
	self.pos += n
	return result, true
}

func (self *Cursor) Uint8() (uint8, bool) {
	b, ok := self.Bytes(1)
	if !ok {
		return 0, false
	}
	return b[0], true
}

func (self *Cursor) Uint16() (uint16, bool) {
	b, ok := self.Bytes(2)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint16(b), true
}

func (self *Cursor) Uint32() (uint32, bool) {
	b, ok := self.Bytes(4)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b), true
}

func (self *Cursor) Uint64() (uint64, bool) {
	b, ok := self.Bytes(8)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint64(b), true
}

// Address is the pointer width of a PE image: uint32 for PE32 and
// uint64 for PE32+.
type Address interface {
	~uint32 | ~uint64
}

// Size in bytes of the address type.
func addressSize[T Address]() int {
	if uint64(^T(0)) > 0xFFFFFFFF {
		return 8
	}
	return 4
}

// The ordinal flag is the top bit of the address.
func ordinalFlag[T Address]() T {
	return ^T(0) ^ (^T(0) >> 1)
}

func decodeAddress[T Address](b []byte) T {
	if len(b) >= 8 && addressSize[T]() == 8 {
		return T(binary.LittleEndian.Uint64(b))
	}
	return T(binary.LittleEndian.Uint32(b))
}

func readAddress[T Address](cursor *Cursor) (T, bool) {
	b, ok := cursor.Bytes(addressSize[T]())
	if !ok {
		return 0, false
	}
	return decodeAddress[T](b), true
}

// CString returns the bytes up to the first NUL (or the end of data),
// truncated to max_length when max_length > 0.
func CString(data []byte, max_length int) string {
	end := bytes.IndexByte(data, 0)
	if end < 0 {
		end = len(data)
	}
	if max_length > 0 && end > max_length {
		end = max_length
	}
	return string(data[:end])
}
