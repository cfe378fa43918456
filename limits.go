package pe

import "sync/atomic"

const (
	// Maximum length of a delay imported library name.
	IMPORT_LIBRARY_MAX_LENGTH = 0x100

	// Maximum length of a delay imported symbol name.
	IMPORT_SYMBOL_MAX_LENGTH = 0x200

	// A COFF name longer than this which contains non printable
	// characters is considered corrupt and truncated here.
	COFF_SYMBOL_NAME_MAX_LENGTH = 96

	MAX_NUMBER_OF_SECTIONS = 96
)

var (
	// Directories larger than this are not read into memory.
	MAX_DIRECTORY_SIZE int64 = 100 * 1024 * 1024 // 100Mb

	// Caps on the number of entries we walk in the delay import
	// tables. Real binaries are nowhere near these.
	MAX_DELAY_IMPORT_DESCRIPTORS int64 = 0x1000
	MAX_DELAY_IMPORT_FUNCTIONS   int64 = 0x4000
)

func SetMaxDirectorySize(limit int64) {
	atomic.SwapInt64(&MAX_DIRECTORY_SIZE, limit)
}

func GetMaxDirectorySize() int64 {
	return atomic.LoadInt64(&MAX_DIRECTORY_SIZE)
}

func SetMaxDelayImportDescriptors(limit int64) {
	atomic.SwapInt64(&MAX_DELAY_IMPORT_DESCRIPTORS, limit)
}

func GetMaxDelayImportDescriptors() int64 {
	return atomic.LoadInt64(&MAX_DELAY_IMPORT_DESCRIPTORS)
}

func SetMaxDelayImportFunctions(limit int64) {
	atomic.SwapInt64(&MAX_DELAY_IMPORT_FUNCTIONS, limit)
}

func GetMaxDelayImportFunctions() int64 {
	return atomic.LoadInt64(&MAX_DELAY_IMPORT_FUNCTIONS)
}
