package pe

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/assert"
)

type testSymbol struct {
	name          string // Inline name, when set.
	name_offset   uint32
	value         uint32
	section       uint16
	type_complex  uint8
	type_simple   uint8
	storage_class uint8
	aux           uint8
}

func putCoffSymbol(image *testImage, offset int, symbol testSymbol) {
	if symbol.name != "" {
		image.putString(offset, symbol.name)
	} else {
		image.put32(offset, 0)
		image.put32(offset+4, symbol.name_offset)
	}
	image.put32(offset+8, symbol.value)
	image.put16(offset+12, symbol.section)
	image.put8(offset+14, symbol.type_complex)
	image.put8(offset+15, symbol.type_simple)
	image.put8(offset+16, symbol.storage_class)
	image.put8(offset+17, symbol.aux)
}

// Four records (one of them auxiliary) followed by a string table.
func buildCoffSymbols() *testImage {
	strings_table := "long_symbol_name\x00"
	image := newTestImage(4*SIZEOF_COFF_SYMBOL + 4 + len(strings_table))

	putCoffSymbol(image, 0, testSymbol{
		name: "abcdefg", value: 0x10, section: 1,
		type_complex: 0x20, storage_class: 2})
	putCoffSymbol(image, SIZEOF_COFF_SYMBOL, testSymbol{
		name_offset: 4, section: 0xfffe, storage_class: 103, aux: 1})

	// The auxiliary record is garbage as far as we care.
	image.putString(2*SIZEOF_COFF_SYMBOL, strings.Repeat("x", SIZEOF_COFF_SYMBOL))

	putCoffSymbol(image, 3*SIZEOF_COFF_SYMBOL, testSymbol{
		name_offset: 0, value: 0x20, storage_class: 3})

	image.put32(4*SIZEOF_COFF_SYMBOL, uint32(4+len(strings_table)))
	image.putString(4*SIZEOF_COFF_SYMBOL+4, strings_table)

	return image
}

func TestCoffSymbolTable(t *testing.T) {
	image := buildCoffSymbols()

	table := ParseCoffSymbolTable(image.data, 4*SIZEOF_COFF_SYMBOL)
	assert.Equal(t, uint32(21), table.SizeOfStringTable())
	assert.Equal(t, 3, table.NumberOfStoredSymbols())

	assert.Equal(t, []CoffSymbol{{
		Index:         0,
		Name:          "abcdefg",
		Value:         0x10,
		SectionNumber: 1,
		TypeComplex:   0x20,
		StorageClass:  2,
	}, {
		Index:              1,
		Name:               "long_symbol_name",
		SectionNumber:      0xfffe,
		StorageClass:       103,
		NumberOfAuxSymbols: 1,
	}, {
		// The auxiliary record still counts towards the index.
		Index:        3,
		Name:         "",
		Value:        0x20,
		StorageClass: 3,
	}}, table.Symbols())

	symbol, ok := table.Symbol(1)
	assert.True(t, ok)
	assert.Equal(t, "FILE", symbol.StorageClassName())

	_, ok = table.Symbol(3)
	assert.False(t, ok)
}

func TestCoffSymbolInlineName(t *testing.T) {
	image := newTestImage(SIZEOF_COFF_SYMBOL * 2)

	// A full 8 character name has no terminator.
	putCoffSymbol(image, 0, testSymbol{name: "abcdefgh"})
	putCoffSymbol(image, SIZEOF_COFF_SYMBOL, testSymbol{name: "xyz"})

	table := ParseCoffSymbolTable(image.data, 2*SIZEOF_COFF_SYMBOL)
	assert.Equal(t, uint32(0), table.SizeOfStringTable())
	assert.Equal(t, 2, table.NumberOfStoredSymbols())

	symbol, _ := table.Symbol(0)
	assert.Equal(t, "abcdefgh", symbol.Name)

	symbol, _ = table.Symbol(1)
	assert.Equal(t, "xyz", symbol.Name)
	assert.Equal(t, uint32(1), symbol.Index)
}

func TestCoffSymbolLongNames(t *testing.T) {
	printable := strings.Repeat("A", 120)
	corrupt := "\x01" + strings.Repeat("B", 120)
	string_table := "\x00\x00\x00\x00" + printable + "\x00" + corrupt + "\x00"

	image := newTestImage(2*SIZEOF_COFF_SYMBOL + len(string_table))
	putCoffSymbol(image, 0, testSymbol{name_offset: 4})
	putCoffSymbol(image, SIZEOF_COFF_SYMBOL, testSymbol{
		name_offset: uint32(4 + len(printable) + 1)})
	image.putString(2*SIZEOF_COFF_SYMBOL, string_table)
	image.put32(2*SIZEOF_COFF_SYMBOL, uint32(len(string_table)))

	table := ParseCoffSymbolTable(image.data, 2*SIZEOF_COFF_SYMBOL)

	symbol, _ := table.Symbol(0)
	assert.Equal(t, printable, symbol.Name)

	// Names with non printables are cut at the threshold.
	symbol, _ = table.Symbol(1)
	assert.Equal(t, COFF_SYMBOL_NAME_MAX_LENGTH, len(symbol.Name))
	assert.Equal(t, corrupt[:COFF_SYMBOL_NAME_MAX_LENGTH], symbol.Name)
}

func TestCoffStringTableSize(t *testing.T) {
	// Declared size larger than the data.
	assert.Equal(t, uint32(8), coffStringTableSize(
		[]byte{0x00, 0x10, 0x00, 0x00, 'a', 'b', 'c', 0}))

	// Declared size below the size field itself.
	assert.Equal(t, uint32(4), coffStringTableSize(
		[]byte{0x02, 0x00, 0x00, 0x00, 'a', 'b', 'c', 0}))

	// Short read.
	assert.Equal(t, uint32(2), coffStringTableSize([]byte{0x10, 0x00}))
	assert.Equal(t, uint32(0), coffStringTableSize(nil))
}

func TestReadCoffSymbolTable(t *testing.T) {
	image := buildCoffSymbols()

	table, err := ReadCoffSymbolTable(image.reader(), 0, 4*SIZEOF_COFF_SYMBOL)
	assert.NoError(t, err)
	assert.Equal(t, 3, table.NumberOfStoredSymbols())
	assert.Equal(t, uint32(21), table.SizeOfStringTable())

	// Names in the string table resolve the same as when parsing
	// from memory.
	symbol, _ := table.Symbol(1)
	assert.Equal(t, "long_symbol_name", symbol.Name)
	assert.Equal(t, ParseCoffSymbolTable(image.data, 4*SIZEOF_COFF_SYMBOL).Symbols(),
		table.Symbols())

	// No room for a string table.
	_, err = ReadCoffSymbolTable(image.reader(), 0, uint64(len(image.data)))
	assert.Equal(t, INVALID_FILE, ResultCodeOf(err))

	_, err = ReadCoffSymbolTable(image.reader(), uint64(len(image.data)), 0)
	assert.Equal(t, INVALID_FILE, ResultCodeOf(err))

	// A symbol count which would wrap a 32 bit size.
	_, err = ReadCoffSymbolTable(image.reader(), 0,
		uint64(0x0E38E38F)*SIZEOF_COFF_SYMBOL)
	assert.Equal(t, INVALID_FILE, ResultCodeOf(err))
}

func TestReadCoffSymbolTableTruncated(t *testing.T) {
	image := buildCoffSymbols()

	// The declared string table size runs past the end of the file.
	image.put32(4*SIZEOF_COFF_SYMBOL, 0x1000)
	table, err := ReadCoffSymbolTable(image.reader(), 0, 4*SIZEOF_COFF_SYMBOL)
	assert.NoError(t, err)
	assert.Equal(t, uint32(21), table.SizeOfStringTable())

	// Only part of the size field is present.
	table, err = ReadCoffSymbolTable(
		bytes.NewReader(image.data[:4*SIZEOF_COFF_SYMBOL+2]),
		0, 4*SIZEOF_COFF_SYMBOL)
	assert.NoError(t, err)
	assert.Equal(t, uint32(2), table.SizeOfStringTable())

	symbol, _ := table.Symbol(1)
	assert.Equal(t, "", symbol.Name)
}
