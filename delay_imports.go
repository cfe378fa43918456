// Parse the delay load import directory. Delay loaded DLLs are
// described by a descriptor which points at a name table (what to
// import) and an address table (where the resolved address goes).

package pe

import (
	"fmt"
	"io"

	"github.com/Velocidex/ordereddict"
)

const (
	// Eight 32 bit fields, regardless of the image bitness.
	SIZEOF_DELAY_IMPORT_DESCRIPTOR = 32
)

type DelayImportFunction[T Address] struct {
	// Resolved RVA from the address table.
	Address T `json:"Address"`

	// Set when the name table entry carries the ordinal flag.
	ByOrdinal bool   `json:"ByOrdinal"`
	Ordinal   uint16 `json:"Ordinal"`

	// Only valid for imports by name.
	Hint uint16 `json:"Hint"`
	Name string `json:"Name"`
}

type DelayImportRecord[T Address] struct {
	Attributes                    uint32
	NameRva                       T
	ModuleHandleRva               T
	DelayImportAddressTableRva    T
	DelayImportNameTableRva       T
	BoundDelayImportTableRva      T
	UnloadDelayImportTableRva     T
	TimeStamp                     uint32
	DelayImportAddressTableOffset uint64
	DelayImportNameTableOffset    uint64

	Name string

	functions []DelayImportFunction[T]
}

func (self *DelayImportRecord[T]) isZero() bool {
	return self.Attributes == 0 && self.NameRva == 0 &&
		self.ModuleHandleRva == 0 &&
		self.DelayImportAddressTableRva == 0 &&
		self.DelayImportNameTableRva == 0 &&
		self.BoundDelayImportTableRva == 0 &&
		self.UnloadDelayImportTableRva == 0 &&
		self.TimeStamp == 0
}

func (self *DelayImportRecord[T]) NumberOfFunctions() int {
	return len(self.functions)
}

func (self *DelayImportRecord[T]) Function(index int) (DelayImportFunction[T], bool) {
	if index < 0 || index >= len(self.functions) {
		return DelayImportFunction[T]{}, false
	}
	return self.functions[index], true
}

func (self *DelayImportRecord[T]) Functions() []DelayImportFunction[T] {
	return append([]DelayImportFunction[T]{}, self.functions...)
}

// DelayImportDirectory holds the delay import descriptors of a PE32
// (T = uint32) or PE32+ (T = uint64) image.
type DelayImportDirectory[T Address] struct {
	records []*DelayImportRecord[T]
}

type DelayImportDirectory32 = DelayImportDirectory[uint32]
type DelayImportDirectory64 = DelayImportDirectory[uint64]

func NewDelayImportDirectory[T Address]() *DelayImportDirectory[T] {
	return &DelayImportDirectory[T]{}
}

// Delay import descriptors made by MS Visual C++ 6.0 have an old
// format where all pointers are VAs instead of RVAs. A value is
// taken to be a VA when it is closer to the VA of the directory than
// to its RVA.
func normalizeAddress[T Address](translator AddressTranslator, value T) T {
	if value == 0 {
		return value
	}

	directory_rva, _ := translator.DataDirectory(IMAGE_DIRECTORY_ENTRY_DELAY_IMPORT)
	directory_va := translator.RvaToVa(uint64(directory_rva))

	if distance(directory_va, uint64(value)) <
		distance(uint64(directory_rva), uint64(value)) {
		return value - T(translator.ImageBase())
	}

	return value
}

func distance(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}

// Read discards any previous records and decodes the directory
// located by the translator.
func (self *DelayImportDirectory[T]) Read(
	reader io.ReaderAt, translator AddressTranslator) error {
	self.records = nil

	file_size, err := sourceSize(reader)
	if err != nil {
		return err
	}

	directory_rva, _ := translator.DataDirectory(IMAGE_DIRECTORY_ENTRY_DELAY_IMPORT)
	offset := translator.RvaToOffset(uint64(directory_rva))
	if offset >= uint64(file_size) {
		return invalidFile("delay import directory offset %#x", offset)
	}

	wrapper := NewReaderWrapper(reader)
	buf := make([]byte, SIZEOF_DELAY_IMPORT_DESCRIPTOR)
	max_descriptors := GetMaxDelayImportDescriptors()

	// Keep loading until we encounter an entry filled with zeros.
	for i := int64(0); i < max_descriptors; i++ {
		wrapper.Seek(int64(offset) + i*SIZEOF_DELAY_IMPORT_DESCRIPTOR)
		if !wrapper.ReadFull(buf) {
			DebugPrint("DelayImport: descriptor %d truncated\n", i)
			break
		}

		record := parseDelayImportDescriptor[T](buf)
		if record.isZero() {
			break
		}

		err := self.resolve(wrapper, translator, uint64(file_size), record)
		if err != nil {
			return err
		}

		self.records = append(self.records, record)
	}

	return nil
}

func parseDelayImportDescriptor[T Address](buf []byte) *DelayImportRecord[T] {
	cursor := NewCursor(buf)
	field := func() T {
		value, _ := cursor.Uint32()
		return T(value)
	}

	record := &DelayImportRecord[T]{}
	record.Attributes, _ = cursor.Uint32()
	record.NameRva = field()
	record.ModuleHandleRva = field()
	record.DelayImportAddressTableRva = field()
	record.DelayImportNameTableRva = field()
	record.BoundDelayImportTableRva = field()
	record.UnloadDelayImportTableRva = field()
	record.TimeStamp, _ = cursor.Uint32()

	return record
}

func (self *DelayImportDirectory[T]) resolve(
	wrapper *ReaderWrapper, translator AddressTranslator,
	file_size uint64, record *DelayImportRecord[T]) error {

	// Every pointer field goes through the same VA/RVA check.
	record.NameRva = normalizeAddress(translator, record.NameRva)
	record.ModuleHandleRva = normalizeAddress(translator, record.ModuleHandleRva)
	record.DelayImportAddressTableRva = normalizeAddress(
		translator, record.DelayImportAddressTableRva)
	record.DelayImportNameTableRva = normalizeAddress(
		translator, record.DelayImportNameTableRva)
	record.BoundDelayImportTableRva = normalizeAddress(
		translator, record.BoundDelayImportTableRva)
	record.UnloadDelayImportTableRva = normalizeAddress(
		translator, record.UnloadDelayImportTableRva)

	record.DelayImportAddressTableOffset = translator.RvaToOffset(
		uint64(record.DelayImportAddressTableRva))
	record.DelayImportNameTableOffset = translator.RvaToOffset(
		uint64(record.DelayImportNameTableRva))

	// Get name of library
	name_offset := translator.RvaToOffset(uint64(record.NameRva))
	if name_offset < file_size {
		wrapper.Seek(int64(name_offset))
		record.Name = wrapper.ReadString(IMPORT_LIBRARY_MAX_LENGTH)
	}

	// The address table is not guaranteed to be null terminated
	// so the name table is read first.
	if record.DelayImportNameTableOffset >= file_size {
		return invalidFile("delay import name table offset %#x",
			record.DelayImportNameTableOffset)
	}

	flag := ordinalFlag[T]()
	width := addressSize[T]()
	max_functions := GetMaxDelayImportFunctions()
	buf := make([]byte, width)

	name_addresses := []T{}
	wrapper.Seek(int64(record.DelayImportNameTableOffset))
	for int64(len(name_addresses)) < max_functions {
		if !wrapper.ReadFull(buf) {
			break
		}

		value := decodeAddress[T](buf)
		if value == 0 {
			break
		}

		// Ordinals are not addresses.
		if value&flag == 0 {
			value = normalizeAddress(translator, value)
		}
		name_addresses = append(name_addresses, value)
	}

	if record.DelayImportAddressTableOffset >= file_size {
		return invalidFile("delay import address table offset %#x",
			record.DelayImportAddressTableOffset)
	}

	image_base := translator.ImageBase()
	image_end := image_base + uint64(translator.SizeOfImage())

	wrapper.Seek(int64(record.DelayImportAddressTableOffset))
	for range name_addresses {
		if !wrapper.ReadFull(buf) {
			break
		}

		value := decodeAddress[T](buf)
		if value == 0 {
			break
		}

		// The table is always in the image itself
		if image_base <= uint64(value) && uint64(value) < image_end {
			value -= T(image_base)
		}

		record.functions = append(record.functions,
			DelayImportFunction[T]{Address: value})
	}

	for i := range record.functions {
		function := &record.functions[i]
		name_address := name_addresses[i]

		if name_address&flag != 0 {
			function.ByOrdinal = true
			function.Ordinal = uint16(name_address & 0xFFFF)
			function.Hint = 0
			continue
		}

		hint_offset := translator.RvaToOffset(uint64(name_address))
		if hint_offset >= file_size {
			break
		}

		hint := make([]byte, 2)
		wrapper.Seek(int64(hint_offset))
		if !wrapper.ReadFull(hint) {
			break
		}

		function.Hint = uint16(hint[0]) | uint16(hint[1])<<8
		function.Name = wrapper.ReadString(IMPORT_SYMBOL_MAX_LENGTH)
	}

	return nil
}

func (self *DelayImportDirectory[T]) NumberOfFiles() int {
	return len(self.records)
}

func (self *DelayImportDirectory[T]) File(index int) (*DelayImportRecord[T], bool) {
	if index < 0 || index >= len(self.records) {
		return nil, false
	}
	return self.records[index], true
}

func (self *DelayImportDirectory[T]) Records() []*DelayImportRecord[T] {
	return append([]*DelayImportRecord[T]{}, self.records...)
}

// Imports lists the delay imports as dll!function (or dll!#ordinal)
// similar to the regular import list.
func (self *DelayImportDirectory[T]) Imports() []string {
	result := []string{}
	for _, record := range self.records {
		for _, function := range record.functions {
			if function.ByOrdinal {
				result = append(result, fmt.Sprintf("%s!#%d",
					record.Name, function.Ordinal))
			} else {
				result = append(result, record.Name+"!"+function.Name)
			}
		}
	}
	return result
}

func (self *DelayImportDirectory[T]) ToDict() []*ordereddict.Dict {
	result := make([]*ordereddict.Dict, 0, len(self.records))
	for _, record := range self.records {
		functions := make([]*ordereddict.Dict, 0, len(record.functions))
		for _, function := range record.functions {
			functions = append(functions, ordereddict.NewDict().
				Set("Address", uint64(function.Address)).
				Set("Ordinal", function.Ordinal).
				Set("Hint", function.Hint).
				Set("Name", function.Name))
		}

		result = append(result, ordereddict.NewDict().
			Set("Name", record.Name).
			Set("Attributes", record.Attributes).
			Set("NameRva", uint64(record.NameRva)).
			Set("ModuleHandleRva", uint64(record.ModuleHandleRva)).
			Set("DelayImportAddressTableRva", uint64(record.DelayImportAddressTableRva)).
			Set("DelayImportNameTableRva", uint64(record.DelayImportNameTableRva)).
			Set("BoundDelayImportTableRva", uint64(record.BoundDelayImportTableRva)).
			Set("UnloadDelayImportTableRva", uint64(record.UnloadDelayImportTableRva)).
			Set("TimeStamp", record.TimeStamp).
			Set("Functions", functions))
	}
	return result
}
