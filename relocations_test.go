package pe

import (
	"encoding/binary"
	"testing"

	"github.com/alecthomas/assert"
)

func buildRelocations() []byte {
	result := []byte{}
	for _, word := range []uint32{0x1000, 12} {
		result = binary.LittleEndian.AppendUint32(result, word)
	}
	for _, entry := range []uint16{0x3010, 0x3020} {
		result = binary.LittleEndian.AppendUint16(result, entry)
	}

	for _, word := range []uint32{0x2000, 10} {
		result = binary.LittleEndian.AppendUint32(result, word)
	}
	return binary.LittleEndian.AppendUint16(result, 0xA008)
}

// An in memory io.WriterAt
type memWriter struct {
	data []byte
}

func (self *memWriter) WriteAt(p []byte, off int64) (int, error) {
	end := int(off) + len(p)
	if end > len(self.data) {
		self.data = append(self.data, make([]byte, end-len(self.data))...)
	}
	copy(self.data[off:], p)
	return len(p), nil
}

func TestRelocations(t *testing.T) {
	data := buildRelocations()

	relocs := ParseRelocationsDirectory(data, uint32(len(data)))
	assert.Equal(t, 2, relocs.NumberOfRelocations())
	assert.Equal(t, uint32(0x1000), relocs.VirtualAddress(0))
	assert.Equal(t, uint32(12), relocs.SizeOfBlock(0))
	assert.Equal(t, 2, relocs.NumberOfRelocationData(0))
	assert.Equal(t, uint16(0x3020), relocs.RelocationData(0, 1))
	assert.Equal(t, uint16(0xA008), relocs.RelocationData(1, 0))

	assert.Equal(t, uint16(IMAGE_REL_BASED_DIR64), RelocationType(0xA008))
	assert.Equal(t, uint16(8), RelocationOffset(0xA008))
	assert.Equal(t, "HIGHLOW", RelocationTypeName(0x3010))

	// Out of range access is harmless.
	assert.Equal(t, uint32(0), relocs.VirtualAddress(2))
	assert.Equal(t, uint16(0), relocs.RelocationData(0, 2))
	assert.Equal(t, 0, relocs.NumberOfRelocationData(-1))

	assert.Equal(t, uint32(len(data)), relocs.Size())
	assert.Equal(t, data, relocs.Rebuild())

	writer := &memWriter{}
	assert.NoError(t, relocs.Write(writer, 4))
	assert.Equal(t, data, writer.data[4:])
}

func TestRelocationsEditing(t *testing.T) {
	data := buildRelocations()
	relocs := ParseRelocationsDirectory(data, uint32(len(data)))

	relocs.AddRelocation()
	assert.Equal(t, 3, relocs.NumberOfRelocations())
	assert.Equal(t, uint32(8), relocs.SizeOfBlock(2))

	relocs.SetVirtualAddress(2, 0x3000)
	relocs.AddRelocationData(2, 0x3004)
	assert.Equal(t, uint32(10), relocs.SizeOfBlock(2))
	assert.Equal(t, uint16(0x3004), relocs.RelocationData(2, 0))

	relocs.RemoveRelocationData(0, 0)
	assert.Equal(t, uint32(10), relocs.SizeOfBlock(0))
	assert.Equal(t, uint16(0x3020), relocs.RelocationData(0, 0))

	relocs.SetRelocationData(0, 0, 0x3030)
	assert.Equal(t, uint16(0x3030), relocs.RelocationData(0, 0))

	relocs.RemoveRelocation(1)
	assert.Equal(t, 2, relocs.NumberOfRelocations())
	assert.Equal(t, uint32(0x3000), relocs.VirtualAddress(1))

	// The rebuilt buffer decodes to the same table.
	rebuilt := ParseRelocationsDirectory(relocs.Rebuild(), relocs.Size())
	assert.Equal(t, 2, rebuilt.NumberOfRelocations())
	assert.Equal(t, relocs.Rebuild(), rebuilt.Rebuild())

	// An explicit SizeOfBlock is written as is.
	relocs.SetSizeOfBlock(1, 0x20)
	assert.Equal(t, uint32(0x20), relocs.SizeOfBlock(1))
	assert.Equal(t, uint32(20), relocs.Size())

	// Removing out of range items does nothing.
	relocs.RemoveRelocation(5)
	relocs.RemoveRelocationData(0, 5)
	assert.Equal(t, 2, relocs.NumberOfRelocations())
	assert.Equal(t, 1, relocs.NumberOfRelocationData(0))
}

func TestRelocationsMalformed(t *testing.T) {
	data := buildRelocations()

	// A SizeOfBlock smaller than the block header stops decoding.
	binary.LittleEndian.PutUint32(data[16:], 4)
	relocs := ParseRelocationsDirectory(data, uint32(len(data)))
	assert.Equal(t, 1, relocs.NumberOfRelocations())

	// Entries are capped to the available data.
	data = buildRelocations()
	binary.LittleEndian.PutUint32(data[4:], 0x100)
	relocs = ParseRelocationsDirectory(data, uint32(len(data)))
	assert.Equal(t, 1, relocs.NumberOfRelocations())
	assert.Equal(t, 7, relocs.NumberOfRelocationData(0))

	// Only size bytes are considered.
	data = buildRelocations()
	relocs = ParseRelocationsDirectory(data, 12)
	assert.Equal(t, 1, relocs.NumberOfRelocations())
}

func TestReadRelocationsDirectory(t *testing.T) {
	image := newTestImage(0x100)
	image.putString(0x80, string(buildRelocations()))

	translator := newFlatTranslator(len(image.data), testImageBase)
	translator.directories[IMAGE_DIRECTORY_ENTRY_BASERELOC] =
		DataDirectory{VirtualAddress: 0x80, Size: 22}

	relocs, err := ReadRelocationsDirectory(image.reader(), translator)
	assert.NoError(t, err)
	assert.Equal(t, 2, relocs.NumberOfRelocations())

	translator.directories[IMAGE_DIRECTORY_ENTRY_BASERELOC] =
		DataDirectory{VirtualAddress: 0x80, Size: 0x81}
	_, err = ReadRelocationsDirectory(image.reader(), translator)
	assert.Equal(t, INVALID_FILE, ResultCodeOf(err))
}
