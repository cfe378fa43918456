package pe

import (
	"io"
	"os"

	"github.com/Velocidex/ordereddict"
	"github.com/h2non/filetype"
	"github.com/pkg/errors"
)

// Exported API

type Section struct {
	Perm       string `json:"perm"`
	Name       string `json:"name"`
	FileOffset int64  `json:"file_offset"`
	VMA        int64  `json:"vma"`
	Size       int64  `json:"size"`
}

type PEFile struct {
	reader    io.ReaderAt
	nt_header *NTHeaders

	// Used to resolve RVA to file offsets.
	rva_resolver *RVAResolver

	FileType string     `json:"file_type"`
	Machine  uint16     `json:"machine"`
	Sections []*Section `json:"sections"`
}

// The matchers only need the start of the file.
const FILETYPE_HEADER_SIZE = 262

func detectFileType(reader io.ReaderAt) (string, error) {
	head := make([]byte, FILETYPE_HEADER_SIZE)
	n, err := reader.ReadAt(head, 0)
	if err != nil && err != io.EOF {
		return "", errors.Wrap(ErrOpeningFile, err.Error())
	}
	head = head[:n]

	if !filetype.Is(head, "exe") {
		return "", invalidFile("not an executable")
	}

	kind, _ := filetype.Match(head)
	if kind == filetype.Unknown {
		return "Data", nil
	}
	return kind.MIME.Value, nil
}

func NewPEFile(reader io.ReaderAt) (*PEFile, error) {
	file_type, err := detectFileType(reader)
	if err != nil {
		return nil, err
	}

	nt_header, err := ParseNTHeaders(reader)
	if err != nil {
		return nil, err
	}

	result := &PEFile{
		reader:       reader,
		nt_header:    nt_header,
		rva_resolver: NewRVAResolver(nt_header),
		FileType:     file_type,
		Machine:      nt_header.Machine,
	}

	for _, section := range nt_header.Sections {
		result.Sections = append(result.Sections, &Section{
			Perm:       section.Permissions(),
			Name:       section.Name,
			FileOffset: int64(section.PointerToRawData),
			VMA:        int64(section.VirtualAddress),
			Size:       int64(section.SizeOfRawData),
		})
	}

	return result, nil
}

// OpenPEFile opens a file on disk. The caller must Close() it.
func OpenPEFile(filename string) (*PEFile, io.Closer, error) {
	fd, err := os.Open(filename)
	if err != nil {
		return nil, nil, errors.Wrap(ErrOpeningFile, err.Error())
	}

	result, err := NewPEFile(fd)
	if err != nil {
		fd.Close()
		return nil, nil, err
	}
	return result, fd, nil
}

func (self *PEFile) Is64Bit() bool {
	return self.nt_header.Is64Bit()
}

func (self *PEFile) Headers() *NTHeaders {
	return self.nt_header
}

func (self *PEFile) Translator() AddressTranslator {
	return self.rva_resolver
}

// RichHeader decodes the rich header between the DOS stub and the NT
// headers.
func (self *PEFile) RichHeader(ignore_invalid_key bool) (*RichHeader, error) {
	e_lfanew := uint64(self.nt_header.AddressOfNewExeHeader)
	if e_lfanew <= RICH_HEADER_OFFSET {
		return DecodeRichHeader(nil, ignore_invalid_key), nil
	}

	return ReadRichHeader(self.reader, RICH_HEADER_OFFSET,
		e_lfanew-RICH_HEADER_OFFSET, ignore_invalid_key)
}

func (self *PEFile) hasDirectory(index int) bool {
	rva, _ := self.rva_resolver.DataDirectory(index)
	return rva != 0
}

func (self *PEFile) DelayImports32() (*DelayImportDirectory32, error) {
	result := NewDelayImportDirectory[uint32]()
	if !self.hasDirectory(IMAGE_DIRECTORY_ENTRY_DELAY_IMPORT) {
		return result, nil
	}
	return result, result.Read(self.reader, self.rva_resolver)
}

func (self *PEFile) DelayImports64() (*DelayImportDirectory64, error) {
	result := NewDelayImportDirectory[uint64]()
	if !self.hasDirectory(IMAGE_DIRECTORY_ENTRY_DELAY_IMPORT) {
		return result, nil
	}
	return result, result.Read(self.reader, self.rva_resolver)
}

// DelayImports picks the address width from the optional header.
func (self *PEFile) DelayImports() ([]*ordereddict.Dict, error) {
	if self.Is64Bit() {
		dir, err := self.DelayImports64()
		return dir.ToDict(), err
	}
	dir, err := self.DelayImports32()
	return dir.ToDict(), err
}

func (self *PEFile) CoffSymbols() (*CoffSymbolTable, error) {
	if self.nt_header.PointerToSymbolTable == 0 {
		return &CoffSymbolTable{}, nil
	}

	return ReadCoffSymbolTable(self.reader,
		uint64(self.nt_header.PointerToSymbolTable),
		uint64(self.nt_header.NumberOfSymbols)*SIZEOF_COFF_SYMBOL)
}

// The security directory's VirtualAddress is really a file offset.
func (self *PEFile) SecurityDirectory() (*SecurityDirectory, error) {
	dir := self.nt_header.DataDirectory(IMAGE_DIRECTORY_ENTRY_SECURITY)
	if dir.VirtualAddress == 0 || dir.Size == 0 {
		return &SecurityDirectory{}, nil
	}

	return ReadSecurityDirectory(self.reader,
		uint64(dir.VirtualAddress), uint64(dir.Size))
}

func (self *PEFile) Relocations() (*RelocationsDirectory, error) {
	if !self.hasDirectory(IMAGE_DIRECTORY_ENTRY_BASERELOC) {
		return &RelocationsDirectory{}, nil
	}
	return ReadRelocationsDirectory(self.reader, self.rva_resolver)
}

func errorString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// Summary decodes every directory. Failures are reported per
// directory and do not stop the others.
func (self *PEFile) Summary(ignore_invalid_key bool) *ordereddict.Dict {
	result := ordereddict.NewDict().
		Set("FileType", self.FileType).
		Set("Machine", self.Machine).
		Set("TimeDateStamp", NewUnixTimeStamp(self.nt_header.TimeDateStamp).String()).
		Set("Is64Bit", self.Is64Bit()).
		Set("ImageBase", self.nt_header.ImageBase).
		Set("SizeOfImage", self.nt_header.SizeOfImage).
		Set("Sections", self.Sections)

	rich, err := self.RichHeader(ignore_invalid_key)
	if err != nil {
		result.Set("RichHeaderError", errorString(err))
	} else {
		result.Set("RichHeader", rich.ToDict())
	}

	delay_imports, err := self.DelayImports()
	result.Set("DelayImports", delay_imports)
	if err != nil {
		result.Set("DelayImportsError", errorString(err))
	}

	symbols, err := self.CoffSymbols()
	if err != nil {
		result.Set("CoffSymbolsError", errorString(err))
	} else {
		result.Set("CoffSymbols", symbols.ToDict())
	}

	security, err := self.SecurityDirectory()
	if security != nil {
		result.Set("Certificates", security.ToDict())
	}
	if err != nil {
		result.Set("CertificatesError", errorString(err))
	}

	relocations, err := self.Relocations()
	if err != nil {
		result.Set("RelocationsError", errorString(err))
	} else {
		result.Set("Relocations", relocations.ToDict())
	}

	return result
}
