package pe

import (
	"encoding/binary"
	"io"

	"github.com/Velocidex/ordereddict"
	"github.com/pkg/errors"
)

const (
	// VirtualAddress and SizeOfBlock.
	SIZEOF_BASE_RELOCATION = 8

	IMAGE_REL_BASED_ABSOLUTE           = 0
	IMAGE_REL_BASED_HIGH               = 1
	IMAGE_REL_BASED_LOW                = 2
	IMAGE_REL_BASED_HIGHLOW            = 3
	IMAGE_REL_BASED_HIGHADJ            = 4
	IMAGE_REL_BASED_MACHINE_SPECIFIC_5 = 5
	IMAGE_REL_BASED_RESERVED           = 6
	IMAGE_REL_BASED_MACHINE_SPECIFIC_7 = 7
	IMAGE_REL_BASED_MACHINE_SPECIFIC_8 = 8
	IMAGE_REL_BASED_MACHINE_SPECIFIC_9 = 9
	IMAGE_REL_BASED_DIR64              = 10
)

var relocationTypeNames = map[uint16]string{
	IMAGE_REL_BASED_ABSOLUTE: "ABSOLUTE",
	IMAGE_REL_BASED_HIGH:     "HIGH",
	IMAGE_REL_BASED_LOW:      "LOW",
	IMAGE_REL_BASED_HIGHLOW:  "HIGHLOW",
	IMAGE_REL_BASED_HIGHADJ:  "HIGHADJ",
	IMAGE_REL_BASED_DIR64:    "DIR64",
}

// The type of a relocation entry lives in the top 4 bits.
func RelocationType(entry uint16) uint16 {
	return entry >> 12
}

// The offset from the block's VirtualAddress in the low 12 bits.
func RelocationOffset(entry uint16) uint16 {
	return entry & 0x0FFF
}

func RelocationTypeName(entry uint16) string {
	name, pres := relocationTypeNames[RelocationType(entry)]
	if !pres {
		return "UNKNOWN"
	}
	return name
}

type RelocationBlock struct {
	VirtualAddress uint32
	SizeOfBlock    uint32
	Entries        []uint16
}

type RelocationsDirectory struct {
	blocks []*RelocationBlock
}

func NewRelocationsDirectory() *RelocationsDirectory {
	return &RelocationsDirectory{}
}

// ParseRelocationsDirectory decodes the first size bytes of data.
func ParseRelocationsDirectory(data []byte, size uint32) *RelocationsDirectory {
	result := &RelocationsDirectory{}
	result.Parse(data, size)
	return result
}

// ReadRelocationsDirectory locates the base relocation directory
// through the translator and decodes it.
func ReadRelocationsDirectory(
	reader io.ReaderAt, translator AddressTranslator) (*RelocationsDirectory, error) {
	rva, size := translator.DataDirectory(IMAGE_DIRECTORY_ENTRY_BASERELOC)
	offset := translator.RvaToOffset(uint64(rva))

	data, err := readRegion(reader, offset, uint64(size))
	if err != nil {
		return nil, err
	}

	return ParseRelocationsDirectory(data, size), nil
}

func (self *RelocationsDirectory) Parse(data []byte, size uint32) {
	self.blocks = nil

	if uint64(size) < uint64(len(data)) {
		data = data[:size]
	}

	cursor := NewCursor(data)
	for cursor.Remaining() >= SIZEOF_BASE_RELOCATION {
		block := &RelocationBlock{}
		block.VirtualAddress, _ = cursor.Uint32()
		block.SizeOfBlock, _ = cursor.Uint32()

		// A block can never be smaller than its own header.
		if block.SizeOfBlock < SIZEOF_BASE_RELOCATION {
			DebugPrint("Relocations: block at %#x has size %#x\n",
				cursor.Tell()-SIZEOF_BASE_RELOCATION, block.SizeOfBlock)
			break
		}

		count := Cap(int((block.SizeOfBlock-SIZEOF_BASE_RELOCATION)/2),
			cursor.Remaining()/2)
		block.Entries = make([]uint16, 0, count)
		for i := 0; i < count; i++ {
			entry, _ := cursor.Uint16()
			block.Entries = append(block.Entries, entry)
		}

		self.blocks = append(self.blocks, block)
	}
}

func (self *RelocationsDirectory) NumberOfRelocations() int {
	return len(self.blocks)
}

func (self *RelocationsDirectory) block(index int) *RelocationBlock {
	if index < 0 || index >= len(self.blocks) {
		return nil
	}
	return self.blocks[index]
}

func (self *RelocationsDirectory) NumberOfRelocationData(index int) int {
	block := self.block(index)
	if block == nil {
		return 0
	}
	return len(block.Entries)
}

func (self *RelocationsDirectory) VirtualAddress(index int) uint32 {
	block := self.block(index)
	if block == nil {
		return 0
	}
	return block.VirtualAddress
}

func (self *RelocationsDirectory) SizeOfBlock(index int) uint32 {
	block := self.block(index)
	if block == nil {
		return 0
	}
	return block.SizeOfBlock
}

func (self *RelocationsDirectory) RelocationData(index, data_index int) uint16 {
	block := self.block(index)
	if block == nil || data_index < 0 || data_index >= len(block.Entries) {
		return 0
	}
	return block.Entries[data_index]
}

func (self *RelocationsDirectory) SetVirtualAddress(index int, value uint32) {
	if block := self.block(index); block != nil {
		block.VirtualAddress = value
	}
}

// SetSizeOfBlock stores value as is, even when it disagrees with the
// number of entries.
func (self *RelocationsDirectory) SetSizeOfBlock(index int, value uint32) {
	if block := self.block(index); block != nil {
		block.SizeOfBlock = value
	}
}

func (self *RelocationsDirectory) SetRelocationData(index, data_index int, value uint16) {
	block := self.block(index)
	if block == nil || data_index < 0 || data_index >= len(block.Entries) {
		return
	}
	block.Entries[data_index] = value
}

// AddRelocation appends an empty block.
func (self *RelocationsDirectory) AddRelocation() {
	self.blocks = append(self.blocks, &RelocationBlock{
		SizeOfBlock: SIZEOF_BASE_RELOCATION,
	})
}

func (self *RelocationsDirectory) AddRelocationData(index int, value uint16) {
	block := self.block(index)
	if block == nil {
		return
	}
	block.Entries = append(block.Entries, value)
	block.resize()
}

func (self *RelocationsDirectory) RemoveRelocation(index int) {
	if self.block(index) == nil {
		return
	}
	self.blocks = append(self.blocks[:index], self.blocks[index+1:]...)
}

func (self *RelocationsDirectory) RemoveRelocationData(index, data_index int) {
	block := self.block(index)
	if block == nil || data_index < 0 || data_index >= len(block.Entries) {
		return
	}
	block.Entries = append(block.Entries[:data_index], block.Entries[data_index+1:]...)
	block.resize()
}

func (self *RelocationBlock) resize() {
	self.SizeOfBlock = uint32(SIZEOF_BASE_RELOCATION + 2*len(self.Entries))
}

// Size is the number of bytes Rebuild produces.
func (self *RelocationsDirectory) Size() uint32 {
	size := uint32(0)
	for _, block := range self.blocks {
		size += uint32(SIZEOF_BASE_RELOCATION + 2*len(block.Entries))
	}
	return size
}

// Rebuild serializes the blocks. SizeOfBlock is written as stored.
func (self *RelocationsDirectory) Rebuild() []byte {
	result := make([]byte, 0, self.Size())
	for _, block := range self.blocks {
		result = binary.LittleEndian.AppendUint32(result, block.VirtualAddress)
		result = binary.LittleEndian.AppendUint32(result, block.SizeOfBlock)
		for _, entry := range block.Entries {
			result = binary.LittleEndian.AppendUint16(result, entry)
		}
	}
	return result
}

func (self *RelocationsDirectory) Write(writer io.WriterAt, offset int64) error {
	_, err := writer.WriteAt(self.Rebuild(), offset)
	if err != nil {
		return errors.Wrap(ErrOpeningFile, err.Error())
	}
	return nil
}

func (self *RelocationsDirectory) ToDict() []*ordereddict.Dict {
	result := make([]*ordereddict.Dict, 0, len(self.blocks))
	for _, block := range self.blocks {
		entries := make([]*ordereddict.Dict, 0, len(block.Entries))
		for _, entry := range block.Entries {
			entries = append(entries, ordereddict.NewDict().
				Set("Type", RelocationTypeName(entry)).
				Set("RVA", block.VirtualAddress+uint32(RelocationOffset(entry))))
		}

		result = append(result, ordereddict.NewDict().
			Set("VirtualAddress", block.VirtualAddress).
			Set("SizeOfBlock", block.SizeOfBlock).
			Set("Entries", entries))
	}
	return result
}
