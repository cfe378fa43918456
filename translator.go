package pe

const (
	IMAGE_DIRECTORY_ENTRY_EXPORT       = 0
	IMAGE_DIRECTORY_ENTRY_IMPORT       = 1
	IMAGE_DIRECTORY_ENTRY_RESOURCE     = 2
	IMAGE_DIRECTORY_ENTRY_SECURITY     = 4
	IMAGE_DIRECTORY_ENTRY_BASERELOC    = 5
	IMAGE_DIRECTORY_ENTRY_DEBUG        = 6
	IMAGE_DIRECTORY_ENTRY_DELAY_IMPORT = 13
)

// Returned by RvaToOffset/OffsetToRva when the address does not map
// anywhere in the file.
const InvalidOffset = ^uint64(0)

// AddressTranslator is everything the directory decoders need to know
// about the image they are decoding. The host PE header model
// implements it (see RVAResolver), tests use a simple fake.
type AddressTranslator interface {
	RvaToOffset(rva uint64) uint64
	OffsetToRva(offset uint64) uint64
	RvaToVa(rva uint64) uint64
	ImageBase() uint64
	SizeOfImage() uint32

	// The RVA and size of a data directory entry. Note that for
	// the security directory the "RVA" is really a file offset.
	DataDirectory(index int) (rva uint32, size uint32)
}
