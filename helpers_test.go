package pe

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// A zero filled buffer we can poke values into.
type testImage struct {
	data []byte
}

func newTestImage(size int) *testImage {
	return &testImage{data: make([]byte, size)}
}

func (self *testImage) put8(offset int, value uint8) {
	self.data[offset] = value
}

func (self *testImage) put16(offset int, value uint16) {
	binary.LittleEndian.PutUint16(self.data[offset:], value)
}

func (self *testImage) put32(offset int, value uint32) {
	binary.LittleEndian.PutUint32(self.data[offset:], value)
}

func (self *testImage) put64(offset int, value uint64) {
	binary.LittleEndian.PutUint64(self.data[offset:], value)
}

func (self *testImage) putString(offset int, value string) {
	copy(self.data[offset:], value)
}

func (self *testImage) reader() *bytes.Reader {
	return bytes.NewReader(self.data)
}

// Maps RVAs 1:1 to file offsets within the buffer.
type flatTranslator struct {
	size        uint64
	base        uint64
	image_size  uint32
	directories map[int]DataDirectory
}

func newFlatTranslator(size int, base uint64) *flatTranslator {
	return &flatTranslator{
		size:        uint64(size),
		base:        base,
		image_size:  uint32(size),
		directories: make(map[int]DataDirectory),
	}
}

func (self *flatTranslator) RvaToOffset(rva uint64) uint64 {
	if rva < self.size {
		return rva
	}
	return InvalidOffset
}

func (self *flatTranslator) OffsetToRva(offset uint64) uint64 {
	return self.RvaToOffset(offset)
}

func (self *flatTranslator) RvaToVa(rva uint64) uint64 {
	return rva + self.base
}

func (self *flatTranslator) ImageBase() uint64 {
	return self.base
}

func (self *flatTranslator) SizeOfImage() uint32 {
	return self.image_size
}

func (self *flatTranslator) DataDirectory(index int) (uint32, uint32) {
	dir := self.directories[index]
	return dir.VirtualAddress, dir.Size
}

// Encrypts the DanS preamble and the given record words with key and
// appends the "Rich" marker.
func buildRichHeader(key uint32, words ...uint32) []byte {
	plain := append([]uint32{DANS_SIGNATURE, 0, 0, 0}, words...)
	result := []byte{}
	for _, word := range plain {
		result = binary.LittleEndian.AppendUint32(result, word^key)
	}
	result = binary.LittleEndian.AppendUint32(result, RICH_SIGNATURE)
	result = binary.LittleEndian.AppendUint32(result, key)
	return result
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t, goldie.WithFixtureDir("fixtures"),
		goldie.WithNameSuffix(".golden"),
		goldie.WithDiffEngine(goldie.ColoredDiff))
}
