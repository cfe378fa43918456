package pe

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	IMAGE_DOS_SIGNATURE        = 0x5a4d
	IMAGE_NT_SIGNATURE         = 0x4550
	IMAGE_NT_OPTIONAL_HDR32    = 0x10b
	IMAGE_NT_OPTIONAL_HDR64    = 0x20b
	SIZEOF_IMAGE_DOS_HEADER    = 0x40
	SIZEOF_IMAGE_FILE_HEADER   = 20
	SIZEOF_IMAGE_SECTION       = 40
	MAX_SIZEOF_OPTIONAL_HEADER = 0x1000
)

type DataDirectory struct {
	VirtualAddress uint32 `json:"VirtualAddress"`
	Size           uint32 `json:"Size"`
}

type SectionHeader struct {
	Name             string `json:"Name"`
	VirtualSize      uint32 `json:"VirtualSize"`
	VirtualAddress   uint32 `json:"VirtualAddress"`
	SizeOfRawData    uint32 `json:"SizeOfRawData"`
	PointerToRawData uint32 `json:"PointerToRawData"`
	Characteristics  uint32 `json:"Characteristics"`
}

func (self *SectionHeader) Permissions() string {
	characteristics := self.Characteristics

	result := ""
	if characteristics&0x20000000 > 0 {
		result += "x"
	} else {
		result += "-"
	}

	if characteristics&0x40000000 > 0 {
		result += "r"
	} else {
		result += "-"
	}

	if characteristics&0x80000000 > 0 {
		result += "w"
	} else {
		result += "-"
	}

	return result
}

// NTHeaders is the small part of the PE header model the directory
// decoders depend on.
type NTHeaders struct {
	// e_lfanew from the DOS header.
	AddressOfNewExeHeader uint32

	Machine              uint16
	NumberOfSections     uint16
	TimeDateStamp        uint32
	PointerToSymbolTable uint32
	NumberOfSymbols      uint32
	SizeOfOptionalHeader uint16
	Characteristics      uint16

	Magic               uint16
	ImageBase           uint64
	SectionAlignment    uint32
	FileAlignment       uint32
	SizeOfImage         uint32
	SizeOfHeaders       uint32
	NumberOfRvaAndSizes uint32

	DataDirectories []DataDirectory
	Sections        []*SectionHeader
}

func (self *NTHeaders) Is64Bit() bool {
	return self.Magic == IMAGE_NT_OPTIONAL_HDR64
}

func (self *NTHeaders) DataDirectory(index int) DataDirectory {
	if index < 0 || index >= len(self.DataDirectories) {
		return DataDirectory{}
	}
	return self.DataDirectories[index]
}

func readAt(reader io.ReaderAt, offset int64, size int) ([]byte, error) {
	buf := make([]byte, size)
	n, err := reader.ReadAt(buf, offset)
	if n < size {
		if err == nil || err == io.EOF {
			return nil, invalidFile("short read at %#x", offset)
		}
		return nil, errors.Wrap(ErrOpeningFile, err.Error())
	}
	return buf, nil
}

func ParseNTHeaders(reader io.ReaderAt) (*NTHeaders, error) {
	dos_header, err := readAt(reader, 0, SIZEOF_IMAGE_DOS_HEADER)
	if err != nil {
		return nil, errors.WithMessage(err, "Invalid IMAGE_DOS_HEADER")
	}

	cursor := NewCursor(dos_header)
	magic, _ := cursor.Uint16()
	if magic != IMAGE_DOS_SIGNATURE {
		return nil, invalidFile("Invalid IMAGE_DOS_HEADER")
	}

	cursor.Seek(0x3c)
	e_lfanew, _ := cursor.Uint32()

	result := &NTHeaders{AddressOfNewExeHeader: e_lfanew}

	nt_header, err := readAt(reader, int64(e_lfanew),
		4+SIZEOF_IMAGE_FILE_HEADER)
	if err != nil {
		return nil, errors.WithMessage(err, "Invalid IMAGE_NT_HEADERS")
	}

	cursor = NewCursor(nt_header)
	signature, _ := cursor.Uint32()
	if signature != IMAGE_NT_SIGNATURE {
		return nil, invalidFile("Invalid IMAGE_NT_HEADERS")
	}

	result.Machine, _ = cursor.Uint16()
	result.NumberOfSections, _ = cursor.Uint16()
	result.TimeDateStamp, _ = cursor.Uint32()
	result.PointerToSymbolTable, _ = cursor.Uint32()
	result.NumberOfSymbols, _ = cursor.Uint32()
	result.SizeOfOptionalHeader, _ = cursor.Uint16()
	result.Characteristics, _ = cursor.Uint16()

	optional_offset := int64(e_lfanew) + 4 + SIZEOF_IMAGE_FILE_HEADER
	optional_header, err := readAt(reader, optional_offset, int(Cap(
		result.SizeOfOptionalHeader, MAX_SIZEOF_OPTIONAL_HEADER)))
	if err != nil {
		return nil, errors.WithMessage(err, "Invalid IMAGE_OPTIONAL_HEADER")
	}

	err = result.parseOptionalHeader(optional_header)
	if err != nil {
		return nil, err
	}

	// The sections start immediately after the OptionalHeader:
	section_offset := optional_offset + int64(result.SizeOfOptionalHeader)
	number_of_sections := Cap(result.NumberOfSections, MAX_NUMBER_OF_SECTIONS)

	for i := 0; i < int(number_of_sections); i++ {
		data, err := readAt(reader, section_offset, SIZEOF_IMAGE_SECTION)
		if err != nil {
			DebugPrint("Section table truncated at %d\n", i)
			break
		}
		section_offset += SIZEOF_IMAGE_SECTION

		cursor := NewCursor(data)
		name, _ := cursor.Bytes(8)
		section := &SectionHeader{
			Name: strings.TrimRight(CString(name, 8), " "),
		}
		section.VirtualSize, _ = cursor.Uint32()
		section.VirtualAddress, _ = cursor.Uint32()
		section.SizeOfRawData, _ = cursor.Uint32()
		section.PointerToRawData, _ = cursor.Uint32()
		cursor.Skip(12)
		section.Characteristics, _ = cursor.Uint32()

		result.Sections = append(result.Sections, section)
	}

	return result, nil
}

func (self *NTHeaders) parseOptionalHeader(data []byte) error {
	cursor := NewCursor(data)
	magic, ok := cursor.Uint16()
	if !ok {
		return invalidFile("Invalid IMAGE_OPTIONAL_HEADER")
	}
	self.Magic = magic

	var directory_offset int
	switch magic {
	case IMAGE_NT_OPTIONAL_HDR32:
		cursor.Seek(28)
		image_base, _ := cursor.Uint32()
		self.ImageBase = uint64(image_base)
		cursor.Seek(92)
		self.NumberOfRvaAndSizes, _ = cursor.Uint32()
		directory_offset = 96

	case IMAGE_NT_OPTIONAL_HDR64:
		cursor.Seek(24)
		self.ImageBase, _ = cursor.Uint64()
		cursor.Seek(108)
		self.NumberOfRvaAndSizes, _ = cursor.Uint32()
		directory_offset = 112

	default:
		return invalidFile("Invalid IMAGE_OPTIONAL_HEADER magic %#x", magic)
	}

	cursor.Seek(32)
	self.SectionAlignment, _ = cursor.Uint32()
	self.FileAlignment, _ = cursor.Uint32()
	cursor.Seek(56)
	self.SizeOfImage, _ = cursor.Uint32()
	self.SizeOfHeaders, _ = cursor.Uint32()

	cursor.Seek(directory_offset)
	for i := uint32(0); i < Cap(self.NumberOfRvaAndSizes, 16); i++ {
		rva, ok := cursor.Uint32()
		if !ok {
			break
		}
		size, ok := cursor.Uint32()
		if !ok {
			break
		}
		self.DataDirectories = append(self.DataDirectories,
			DataDirectory{VirtualAddress: rva, Size: size})
	}

	return nil
}
