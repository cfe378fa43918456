package pe

// An RVA resolver maps a VirtualAddress to a file physical
// address. When the physical file is mapped into memory, sections in
// the file are mapped at different memory addresses. Internally the
// PE file contains pointers to those virtual addresses. This means we
// need to convert these pointers to mapped memory back into the file
// so we can read their data. The RVAResolver is responsible for this
// - it is populated from the header's sections.
type Run struct {
	VirtualAddress  uint32
	VirtualEnd      uint64
	PhysicalAddress uint32
}

type RVAResolver struct {
	// For now very simple O(n) search.
	Runs          []*Run
	Base          uint64
	ImageSize     uint32
	SizeOfHeaders uint32
	Is64Bit       bool

	directories []DataDirectory
}

func (self *RVAResolver) RvaToOffset(rva uint64) uint64 {
	for _, run := range self.Runs {
		if rva >= uint64(run.VirtualAddress) &&
			rva < run.VirtualEnd {
			return rva - uint64(run.VirtualAddress) +
				uint64(run.PhysicalAddress)
		}
	}

	// The headers are mapped 1:1.
	if rva < uint64(self.SizeOfHeaders) {
		return rva
	}

	return InvalidOffset
}

func (self *RVAResolver) OffsetToRva(offset uint64) uint64 {
	for _, run := range self.Runs {
		size := run.VirtualEnd - uint64(run.VirtualAddress)
		if offset >= uint64(run.PhysicalAddress) &&
			offset < uint64(run.PhysicalAddress)+size {
			return offset - uint64(run.PhysicalAddress) +
				uint64(run.VirtualAddress)
		}
	}

	if offset < uint64(self.SizeOfHeaders) {
		return offset
	}

	return InvalidOffset
}

func (self *RVAResolver) RvaToVa(rva uint64) uint64 {
	return rva + self.Base
}

func (self *RVAResolver) ImageBase() uint64 {
	return self.Base
}

func (self *RVAResolver) SizeOfImage() uint32 {
	return self.ImageSize
}

func (self *RVAResolver) DataDirectory(index int) (uint32, uint32) {
	if index < 0 || index >= len(self.directories) {
		return 0, 0
	}
	dir := self.directories[index]
	return dir.VirtualAddress, dir.Size
}

func NewRVAResolver(header *NTHeaders) *RVAResolver {
	result := &RVAResolver{
		Base:          header.ImageBase,
		ImageSize:     header.SizeOfImage,
		SizeOfHeaders: header.SizeOfHeaders,
		Is64Bit:       header.Is64Bit(),
		directories:   header.DataDirectories,
	}

	for _, section := range header.Sections {
		if section.SizeOfRawData == 0 {
			continue
		}

		// Sections near the top of the address space must not wrap.
		virtual_end := uint64(section.VirtualAddress) +
			uint64(section.SizeOfRawData)

		run := &Run{
			VirtualAddress:  section.VirtualAddress,
			VirtualEnd:      virtual_end,
			PhysicalAddress: section.PointerToRawData,
		}

		result.Runs = append(result.Runs, run)
	}

	return result
}
