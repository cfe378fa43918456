// Decode the "Rich" header - the undocumented, XOR obfuscated block
// the Microsoft linker places between the DOS stub and the NT
// headers. It records the tools (and their build numbers) that
// produced each object linked into the image.

package pe

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/Velocidex/ordereddict"
)

const (
	RICH_SIGNATURE = 0x68636952 // "Rich"
	DANS_SIGNATURE = 0x536e6144 // "DanS"

	// The rich header normally starts right after the standard
	// DOS stub and ends before the NT headers.
	RICH_HEADER_OFFSET = 0x80
)

type RichHeaderRecord struct {
	ProductId        uint16 `json:"ProductId"`
	ProductBuild     uint16 `json:"ProductBuild"`
	Count            uint32 `json:"Count"`
	Signature        string `json:"Signature"`
	ProductName      string `json:"ProductName"`
	VisualStudioName string `json:"VisualStudioName"`
}

type RichHeader struct {
	key              uint32
	decrypted_header []uint32
	header_is_valid  bool
	valid_structure  bool
	no_of_iters      int
	records          []RichHeaderRecord
}

func DecodeRichHeader(data []byte, ignore_invalid_key bool) *RichHeader {
	result := &RichHeader{}
	result.Parse(data, ignore_invalid_key)
	return result
}

// ReadRichHeader reads size bytes at offset from the reader and
// decodes them.
func ReadRichHeader(reader io.ReaderAt, offset, size uint64,
	ignore_invalid_key bool) (*RichHeader, error) {
	data, err := readRegion(reader, offset, size)
	if err != nil {
		return &RichHeader{}, err
	}

	return DecodeRichHeader(data, ignore_invalid_key), nil
}

func (self *RichHeader) reset() {
	*self = RichHeader{}
}

// Parse discards any previous result and decodes data.
//
// The header ends with "Rich" followed by the XOR key. Since the key
// is not known up front the "Rich" marker may also appear by chance
// inside the obfuscated data (or the stub). We try every occurrence
// from the right, and accept the first one whose decryption starts
// with "DanS" and three zero words.
func (self *RichHeader) Parse(data []byte, ignore_invalid_key bool) {
	self.reset()

	cursor := NewCursor(data)
	words := make([]uint32, 0, len(data)/4)
	for {
		word, ok := cursor.Uint32()
		if !ok {
			break
		}
		words = append(words, word)
	}

	last_pos := len(words)
	for {
		rich := lastIndexOf(words[:last_pos], RICH_SIGNATURE)

		// No more markers, or the marker has no key after it.
		if rich < 0 || rich+1 >= len(words) {
			break
		}

		last_pos = rich
		self.key = words[rich+1]
		self.no_of_iters++

		self.decrypted_header = make([]uint32, rich)
		for i := 0; i < rich; i++ {
			self.decrypted_header[i] = words[i] ^ self.key
		}
		self.valid_structure = len(self.decrypted_header) >= 4

		if self.analyze(false) {
			return
		}
		DebugPrint("RichHeader: key %#08x at word %d is not valid\n",
			self.key, rich)
	}

	if ignore_invalid_key && self.no_of_iters > 0 {
		self.analyze(true)
		return
	}

	// Nothing found - only remember how hard we tried.
	iters := self.no_of_iters
	self.reset()
	self.no_of_iters = iters
}

func (self *RichHeader) analyze(ignore_invalid_key bool) bool {
	header := self.decrypted_header
	if len(header) < 4 {
		return false
	}

	valid := header[0] == DANS_SIGNATURE &&
		header[1] == 0 && header[2] == 0 && header[3] == 0
	if !valid && !ignore_invalid_key {
		return false
	}

	self.header_is_valid = valid
	self.records = nil

	// Parse all products and their counts
	for i := 4; i+1 < len(header); i += 2 {
		record := RichHeaderRecord{
			ProductId:    uint16(header[i] >> 16),
			ProductBuild: uint16(header[i] & 0xFFFF),
			Count:        header[i+1],
			Signature:    richSignature(header[i], header[i+1]),
		}
		record.ProductName = richProductName(record.ProductId)
		record.VisualStudioName = visualStudioName(
			record.ProductId, record.ProductBuild)

		self.records = append(self.records, record)
	}

	return true
}

func lastIndexOf(words []uint32, value uint32) int {
	for i := len(words) - 1; i >= 0; i-- {
		if words[i] == value {
			return i
		}
	}
	return -1
}

func richSignature(words ...uint32) string {
	result := ""
	for _, w := range words {
		result += fmt.Sprintf("%08X", w)
	}
	return result
}

func richProductName(product_id uint16) string {
	if int(product_id) < len(richProductNames) {
		return richProductNames[product_id]
	}
	return "Unknown"
}

// Guess the Visual Studio release from the build number, falling back
// to the product id range.
func visualStudioName(product_id, build uint16) string {
	// Build 50727 is shared by VS2005 and VS2012 tools so it says
	// nothing for newer product ids.
	if !(product_id >= 0x83 && build == 50727) {
		vs, pres := visualStudioBuilds[build]
		if pres {
			name := ""
			if vs.name_index < len(visualStudioNames) {
				name = visualStudioNames[vs.name_index]
			}
			return name + " v" + vs.version
		}
	}

	for index := len(richProductIdRanges) - 1; index >= 0; index-- {
		if product_id < richProductIdRanges[index] {
			continue
		}

		if index < len(richProductIdRanges)-1 {
			return visualStudioRangeNames[index]
		}

		switch {
		case build < 26304:
			return "Visual Studio 2015"
		case build < 28329:
			return "Visual Studio 2017"
		default:
			return "Visual Studio 2019+"
		}
	}

	return ""
}

func (self *RichHeader) Key() uint32 {
	return self.key
}

// True when the decrypted data starts with the "DanS" signature.
func (self *RichHeader) IsHeaderValid() bool {
	return self.header_is_valid
}

// True when at least the four word preamble could be decrypted.
func (self *RichHeader) IsStructureValid() bool {
	return self.valid_structure
}

func (self *RichHeader) NumberOfIterations() int {
	return self.no_of_iters
}

func (self *RichHeader) NumberOfRecords() int {
	return len(self.records)
}

func (self *RichHeader) Record(index int) (RichHeaderRecord, bool) {
	if index < 0 || index >= len(self.records) {
		return RichHeaderRecord{}, false
	}
	return self.records[index], true
}

func (self *RichHeader) Records() []RichHeaderRecord {
	return append([]RichHeaderRecord{}, self.records...)
}

func (self *RichHeader) DecryptedHeader() []uint32 {
	return append([]uint32{}, self.decrypted_header...)
}

func (self *RichHeader) DecryptedHeaderItem(index int) (uint32, bool) {
	if index < 0 || index >= len(self.decrypted_header) {
		return 0, false
	}
	return self.decrypted_header[index], true
}

// Hex signature of a single decrypted word, or "" when out of range.
func (self *RichHeader) DecryptedHeaderItemSignature(index int) string {
	item, ok := self.DecryptedHeaderItem(index)
	if !ok {
		return ""
	}
	return richSignature(item)
}

func (self *RichHeader) DecryptedHeaderItemsSignature(indexes ...int) string {
	result := ""
	for _, index := range indexes {
		result += self.DecryptedHeaderItemSignature(index)
	}
	return result
}

func (self *RichHeader) DecryptedHeaderBytes() []byte {
	result := make([]byte, 4*len(self.decrypted_header))
	for i, word := range self.decrypted_header {
		binary.LittleEndian.PutUint32(result[4*i:], word)
	}
	return result
}

func (self *RichHeader) ToDict() *ordereddict.Dict {
	records := make([]*ordereddict.Dict, 0, len(self.records))
	for _, record := range self.records {
		records = append(records, ordereddict.NewDict().
			Set("ProductId", record.ProductId).
			Set("ProductBuild", record.ProductBuild).
			Set("Count", record.Count).
			Set("Signature", record.Signature).
			Set("ProductName", record.ProductName).
			Set("VisualStudioName", record.VisualStudioName))
	}

	return ordereddict.NewDict().
		Set("Key", fmt.Sprintf("%#08x", self.key)).
		Set("HeaderIsValid", self.header_is_valid).
		Set("ValidStructure", self.valid_structure).
		Set("Iterations", self.no_of_iters).
		Set("Records", records)
}
