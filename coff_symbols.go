package pe

import (
	"io"
	"math"

	"github.com/Velocidex/ordereddict"
)

const (
	SIZEOF_COFF_SYMBOL = 18

	// The string table starts with its own 4 byte size.
	SIZEOF_COFF_STRING_TABLE_SIZE = 4
)

var coffStorageClasses = map[uint8]string{
	0:   "NULL",
	1:   "AUTOMATIC",
	2:   "EXTERNAL",
	3:   "STATIC",
	4:   "REGISTER",
	5:   "EXTERNAL_DEF",
	6:   "LABEL",
	7:   "UNDEFINED_LABEL",
	8:   "MEMBER_OF_STRUCT",
	9:   "ARGUMENT",
	10:  "STRUCT_TAG",
	11:  "MEMBER_OF_UNION",
	12:  "UNION_TAG",
	13:  "TYPE_DEFINITION",
	14:  "UNDEFINED_STATIC",
	15:  "ENUM_TAG",
	16:  "MEMBER_OF_ENUM",
	17:  "REGISTER_PARAM",
	18:  "BIT_FIELD",
	100: "BLOCK",
	101: "FUNCTION",
	102: "END_OF_STRUCT",
	103: "FILE",
	104: "SECTION",
	105: "WEAK_EXTERNAL",
	107: "CLR_TOKEN",
	255: "END_OF_FUNCTION",
}

type CoffSymbol struct {
	// Position of the record in the table, counting auxiliary
	// records.
	Index              uint32 `json:"Index"`
	Name               string `json:"Name"`
	Value              uint32 `json:"Value"`
	SectionNumber      uint16 `json:"SectionNumber"`
	TypeComplex        uint8  `json:"TypeComplex"`
	TypeSimple         uint8  `json:"TypeSimple"`
	StorageClass       uint8  `json:"StorageClass"`
	NumberOfAuxSymbols uint8  `json:"NumberOfAuxSymbols"`
}

func (self CoffSymbol) StorageClassName() string {
	name, pres := coffStorageClasses[self.StorageClass]
	if !pres {
		return "UNKNOWN"
	}
	return name
}

type CoffSymbolTable struct {
	string_table_size uint32
	string_table      []byte
	symbols           []CoffSymbol
}

// ParseCoffSymbolTable decodes size bytes of symbol records from the
// start of data. Whatever follows the records in data is the string
// table region.
func ParseCoffSymbolTable(data []byte, size uint32) *CoffSymbolTable {
	result := &CoffSymbolTable{}

	symbol_data := data
	var string_region []byte
	if uint64(size) < uint64(len(data)) {
		symbol_data = data[:size]
		string_region = data[size:]
	}

	result.string_table_size = coffStringTableSize(string_region)
	result.string_table = string_region[:result.string_table_size]
	result.parseSymbols(symbol_data, size)

	return result
}

// The declared size is trusted only as far as the data goes. A
// declared size below 4 still counts the size field itself.
func coffStringTableSize(region []byte) uint32 {
	if len(region) < SIZEOF_COFF_STRING_TABLE_SIZE {
		return uint32(len(region))
	}

	size, _ := NewCursor(region).Uint32()
	if size < SIZEOF_COFF_STRING_TABLE_SIZE {
		size = SIZEOF_COFF_STRING_TABLE_SIZE
	}

	return uint32(Cap(uint64(size), uint64(len(region))))
}

func (self *CoffSymbolTable) parseSymbols(data []byte, size uint32) {
	cursor := NewCursor(data)
	count := int(size / SIZEOF_COFF_SYMBOL)

	for i := 0; i < count; i++ {
		record, ok := cursor.Bytes(SIZEOF_COFF_SYMBOL)
		if !ok {
			DebugPrint("CoffSymbolTable: record %d truncated\n", i)
			break
		}

		record_cursor := NewCursor(record)
		zeroes, _ := record_cursor.Uint32()
		name_offset, _ := record_cursor.Uint32()

		symbol := CoffSymbol{Index: uint32(i)}
		symbol.Value, _ = record_cursor.Uint32()
		symbol.SectionNumber, _ = record_cursor.Uint16()
		symbol.TypeComplex, _ = record_cursor.Uint8()
		symbol.TypeSimple, _ = record_cursor.Uint8()
		symbol.StorageClass, _ = record_cursor.Uint8()
		symbol.NumberOfAuxSymbols, _ = record_cursor.Uint8()

		if zeroes != 0 {
			// Short names are stored inline in the first 8 bytes.
			symbol.Name = CString(record[:8], 8)
		} else {
			symbol.Name = self.stringAt(name_offset)
		}

		// Auxiliary records are not symbols.
		i += int(symbol.NumberOfAuxSymbols)
		cursor.Skip(int(symbol.NumberOfAuxSymbols) * SIZEOF_COFF_SYMBOL)

		self.symbols = append(self.symbols, symbol)
	}
}

// Offset 0 is the size field so it never names anything.
func (self *CoffSymbolTable) stringAt(offset uint32) string {
	if self.string_table_size == 0 || offset == 0 {
		return ""
	}

	name := []byte{}
	for j := uint64(offset); j < uint64(len(self.string_table)) &&
		self.string_table[j] != 0; j++ {

		// A long name holding non printable characters is probably
		// random data so stop here.
		if j-uint64(offset) == COFF_SYMBOL_NAME_MAX_LENGTH &&
			hasNonPrintable(name) {
			break
		}
		name = append(name, self.string_table[j])
	}

	return string(name)
}

func hasNonPrintable(data []byte) bool {
	for _, c := range data {
		if c < 0x20 || c > 0x7e {
			return true
		}
	}
	return false
}

// ReadCoffSymbolTable reads the symbol table at offset (size bytes of
// records) and the string table which follows it.
func ReadCoffSymbolTable(
	reader io.ReaderAt, offset, size uint64) (*CoffSymbolTable, error) {
	file_size, err := sourceSize(reader)
	if err != nil {
		return nil, err
	}

	// The sum can only wrap when one of the other checks fails too.
	string_table_offset := offset + size
	if size > math.MaxUint32 ||
		string_table_offset >= uint64(file_size) ||
		offset >= uint64(file_size) {
		return nil, invalidFile("COFF symbol table %#x+%#x exceeds file size %#x",
			offset, size, file_size)
	}

	header := make([]byte, SIZEOF_COFF_STRING_TABLE_SIZE)
	n, _ := reader.ReadAt(header, int64(string_table_offset))

	string_table_size := uint64(n)
	if n == SIZEOF_COFF_STRING_TABLE_SIZE {
		declared, _ := NewCursor(header).Uint32()
		string_table_size = uint64(declared)
		if string_table_size < SIZEOF_COFF_STRING_TABLE_SIZE {
			string_table_size = SIZEOF_COFF_STRING_TABLE_SIZE
		}
	}

	// The string table can not extend past the end of the file.
	string_table_size = Cap(string_table_size,
		uint64(file_size)-string_table_offset)

	data, err := readRegion(reader, offset, size+string_table_size)
	if err != nil {
		return nil, err
	}

	return ParseCoffSymbolTable(data, uint32(size)), nil
}

func (self *CoffSymbolTable) SizeOfStringTable() uint32 {
	return self.string_table_size
}

func (self *CoffSymbolTable) NumberOfStoredSymbols() int {
	return len(self.symbols)
}

func (self *CoffSymbolTable) Symbol(index int) (CoffSymbol, bool) {
	if index < 0 || index >= len(self.symbols) {
		return CoffSymbol{}, false
	}
	return self.symbols[index], true
}

func (self *CoffSymbolTable) Symbols() []CoffSymbol {
	return append([]CoffSymbol{}, self.symbols...)
}

func (self *CoffSymbolTable) ToDict() *ordereddict.Dict {
	symbols := make([]*ordereddict.Dict, 0, len(self.symbols))
	for _, symbol := range self.symbols {
		symbols = append(symbols, ordereddict.NewDict().
			Set("Index", symbol.Index).
			Set("Name", symbol.Name).
			Set("Value", symbol.Value).
			Set("SectionNumber", symbol.SectionNumber).
			Set("TypeComplex", symbol.TypeComplex).
			Set("TypeSimple", symbol.TypeSimple).
			Set("StorageClass", symbol.StorageClassName()).
			Set("NumberOfAuxSymbols", symbol.NumberOfAuxSymbols))
	}

	return ordereddict.NewDict().
		Set("SizeOfStringTable", self.string_table_size).
		Set("NumberOfSymbols", len(self.symbols)).
		Set("Symbols", symbols)
}
