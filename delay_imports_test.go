package pe

import (
	"testing"

	"github.com/alecthomas/assert"
)

const testImageBase = 0x400000

// Writes a delay import descriptor. Pointer fields are given as is so
// tests can use either RVAs or VAs.
func putDelayDescriptor(image *testImage, offset int,
	name, handle, iat, int_, bound, unload uint32) {
	image.put32(offset, 1)
	image.put32(offset+4, name)
	image.put32(offset+8, handle)
	image.put32(offset+12, iat)
	image.put32(offset+16, int_)
	image.put32(offset+20, bound)
	image.put32(offset+24, unload)
	image.put32(offset+28, 0)
}

func newDelayImportImage(va_base uint32) (*testImage, *flatTranslator) {
	image := newTestImage(0x2000)
	translator := newFlatTranslator(len(image.data), testImageBase)
	translator.directories[IMAGE_DIRECTORY_ENTRY_DELAY_IMPORT] =
		DataDirectory{VirtualAddress: 0x1000, Size: 0x40}

	putDelayDescriptor(image, 0x1000,
		va_base+0x1100, va_base+0x1200, va_base+0x1300, va_base+0x1400, 0, 0)

	image.putString(0x1100, "USER32.dll")

	// Name table: one import by name and one by ordinal.
	image.put32(0x1400, va_base+0x1500)
	image.put32(0x1404, 0x80000005)

	// Address table: one address inside the image and one outside.
	image.put32(0x1300, testImageBase+0x1234)
	image.put32(0x1304, 0x5678)

	image.put16(0x1500, 0x0102)
	image.putString(0x1502, "MessageBoxA")

	return image, translator
}

func TestDelayImports32(t *testing.T) {
	image, translator := newDelayImportImage(0)

	dir := NewDelayImportDirectory[uint32]()
	err := dir.Read(image.reader(), translator)
	assert.NoError(t, err)
	assert.Equal(t, 1, dir.NumberOfFiles())

	record, ok := dir.File(0)
	assert.True(t, ok)
	assert.Equal(t, "USER32.dll", record.Name)
	assert.Equal(t, uint32(1), record.Attributes)
	assert.Equal(t, uint32(0x1100), record.NameRva)
	assert.Equal(t, uint32(0x1200), record.ModuleHandleRva)
	assert.Equal(t, uint64(0x1300), record.DelayImportAddressTableOffset)
	assert.Equal(t, uint64(0x1400), record.DelayImportNameTableOffset)
	assert.Equal(t, 2, record.NumberOfFunctions())

	assert.Equal(t, []DelayImportFunction[uint32]{
		{Address: 0x1234, Hint: 0x0102, Name: "MessageBoxA"},
		{Address: 0x5678, ByOrdinal: true, Ordinal: 5},
	}, record.Functions())

	assert.Equal(t, []string{"USER32.dll!MessageBoxA", "USER32.dll!#5"},
		dir.Imports())

	_, ok = dir.File(1)
	assert.False(t, ok)

	_, ok = record.Function(2)
	assert.False(t, ok)
}

// Old linkers store VAs instead of RVAs in the descriptor.
func TestDelayImportsLegacyVA(t *testing.T) {
	image, translator := newDelayImportImage(testImageBase)

	dir := NewDelayImportDirectory[uint32]()
	err := dir.Read(image.reader(), translator)
	assert.NoError(t, err)
	assert.Equal(t, 1, dir.NumberOfFiles())

	record, _ := dir.File(0)
	assert.Equal(t, "USER32.dll", record.Name)
	assert.Equal(t, uint32(0x1100), record.NameRva)
	assert.Equal(t, uint32(0x1200), record.ModuleHandleRva)
	assert.Equal(t, uint32(0x1300), record.DelayImportAddressTableRva)
	assert.Equal(t, uint32(0x1400), record.DelayImportNameTableRva)
	assert.Equal(t, uint32(0), record.BoundDelayImportTableRva)

	function, ok := record.Function(0)
	assert.True(t, ok)
	assert.Equal(t, "MessageBoxA", function.Name)
}

func TestNormalizeAddress(t *testing.T) {
	translator := newFlatTranslator(0x10000, testImageBase)
	translator.directories[IMAGE_DIRECTORY_ENTRY_DELAY_IMPORT] =
		DataDirectory{VirtualAddress: 0x2000, Size: 0x40}

	assert.Equal(t, uint32(0x2050), normalizeAddress(translator, uint32(0x402050)))
	assert.Equal(t, uint32(0x2050), normalizeAddress(translator, uint32(0x2050)))
	assert.Equal(t, uint32(0), normalizeAddress(translator, uint32(0)))
	assert.Equal(t, uint64(0x2050), normalizeAddress(translator, uint64(0x402050)))
}

func TestDelayImportsTerminator(t *testing.T) {
	image, translator := newDelayImportImage(0)

	// A second descriptor for another library, then the zero one.
	putDelayDescriptor(image, 0x1020, 0x1600, 0, 0x1700, 0x1800, 0, 0)
	image.putString(0x1600, "ole32.dll")
	image.put32(0x1800, 0x80000010)
	image.put32(0x1700, testImageBase+0x1010)

	dir := NewDelayImportDirectory[uint32]()
	assert.NoError(t, dir.Read(image.reader(), translator))
	assert.Equal(t, 2, dir.NumberOfFiles())

	record, _ := dir.File(1)
	assert.Equal(t, "ole32.dll", record.Name)
	assert.Equal(t, []DelayImportFunction[uint32]{
		{Address: 0x1010, ByOrdinal: true, Ordinal: 0x10},
	}, record.Functions())

	assert.Equal(t, 2, len(dir.ToDict()))
}

// An import by name keeps its name form even when the name is empty.
func TestDelayImportsEmptyName(t *testing.T) {
	image, translator := newDelayImportImage(0)
	image.putString(0x1502, string(make([]byte, len("MessageBoxA"))))

	dir := NewDelayImportDirectory[uint32]()
	assert.NoError(t, dir.Read(image.reader(), translator))

	record, _ := dir.File(0)
	function, _ := record.Function(0)
	assert.False(t, function.ByOrdinal)
	assert.Equal(t, "", function.Name)

	assert.Equal(t, []string{"USER32.dll!", "USER32.dll!#5"}, dir.Imports())
}

func TestDelayImportsShortAddressTable(t *testing.T) {
	image, translator := newDelayImportImage(0)

	// The address table stops before the name table does.
	image.put32(0x1304, 0)

	dir := NewDelayImportDirectory[uint32]()
	assert.NoError(t, dir.Read(image.reader(), translator))

	record, _ := dir.File(0)
	assert.Equal(t, 1, record.NumberOfFunctions())
}

func TestDelayImports64(t *testing.T) {
	image := newTestImage(0x2000)
	translator := newFlatTranslator(len(image.data), testImageBase)
	translator.directories[IMAGE_DIRECTORY_ENTRY_DELAY_IMPORT] =
		DataDirectory{VirtualAddress: 0x1000, Size: 0x40}

	putDelayDescriptor(image, 0x1000, 0x1100, 0, 0x1300, 0x1400, 0, 0)
	image.putString(0x1100, "KERNEL32.dll")

	image.put64(0x1400, 0x1500)
	image.put64(0x1408, 0x8000000000000007)

	image.put64(0x1300, testImageBase+0x1040)
	image.put64(0x1308, testImageBase+0x1048)

	image.put16(0x1500, 3)
	image.putString(0x1502, "Sleep")

	dir := NewDelayImportDirectory[uint64]()
	assert.NoError(t, dir.Read(image.reader(), translator))

	record, ok := dir.File(0)
	assert.True(t, ok)
	assert.Equal(t, "KERNEL32.dll", record.Name)
	assert.Equal(t, []DelayImportFunction[uint64]{
		{Address: 0x1040, Hint: 3, Name: "Sleep"},
		{Address: 0x1048, ByOrdinal: true, Ordinal: 7},
	}, record.Functions())
}

func TestDelayImportsInvalid(t *testing.T) {
	image, translator := newDelayImportImage(0)

	// Name table outside the file.
	image.put32(0x1010, 0x5000)

	dir := NewDelayImportDirectory[uint32]()
	err := dir.Read(image.reader(), translator)
	assert.Equal(t, INVALID_FILE, ResultCodeOf(err))
	assert.Equal(t, 0, dir.NumberOfFiles())

	// Directory outside the file.
	translator.directories[IMAGE_DIRECTORY_ENTRY_DELAY_IMPORT] =
		DataDirectory{VirtualAddress: 0x3000, Size: 0x40}
	err = dir.Read(image.reader(), translator)
	assert.Equal(t, INVALID_FILE, ResultCodeOf(err))

	// Truncated descriptor is simply the end of the table.
	image, translator = newDelayImportImage(0)
	translator.directories[IMAGE_DIRECTORY_ENTRY_DELAY_IMPORT] =
		DataDirectory{VirtualAddress: 0x1ff0, Size: 0x40}
	err = dir.Read(image.reader(), translator)
	assert.NoError(t, err)
	assert.Equal(t, 0, dir.NumberOfFiles())
}
