package pe

import (
	"io"

	"github.com/Velocidex/ordereddict"
	"github.com/Velocidex/pkcs7"
	"github.com/pkg/errors"
)

const (
	// Length, Revision and CertificateType.
	SIZEOF_WIN_CERTIFICATE_HEADER = 8

	WIN_CERT_REVISION_1_0 = 0x0100
	WIN_CERT_REVISION_2_0 = 0x0200

	WIN_CERT_TYPE_X509             = 0x0001
	WIN_CERT_TYPE_PKCS_SIGNED_DATA = 0x0002
	WIN_CERT_TYPE_RESERVED_1       = 0x0003
	WIN_CERT_TYPE_TS_STACK_SIGNED  = 0x0004
)

// A WIN_CERTIFICATE entry from the attribute certificate table.
type CertificateEntry struct {
	Length          uint32 `json:"Length"`
	Revision        uint16 `json:"Revision"`
	CertificateType uint16 `json:"CertificateType"`
	Certificate     []byte `json:"-"`
}

// SecurityDirectory is the attribute certificate table. Unlike the
// other directories its location is a file offset, not an RVA.
type SecurityDirectory struct {
	entries []CertificateEntry
}

// ReadSecurityDirectory reads size bytes at offset and decodes them.
// On a malformed entry the entries decoded so far are kept and
// returned together with the error.
func ReadSecurityDirectory(
	reader io.ReaderAt, offset, size uint64) (*SecurityDirectory, error) {
	data, err := readRegion(reader, offset, size)
	if err != nil {
		return nil, err
	}

	result := &SecurityDirectory{}
	return result, result.Parse(data)
}

func ParseSecurityDirectory(data []byte) (*SecurityDirectory, error) {
	result := &SecurityDirectory{}
	return result, result.Parse(data)
}

func (self *SecurityDirectory) Parse(data []byte) error {
	self.entries = nil

	cursor := NewCursor(data)
	size := uint64(len(data))
	bytes_read := uint64(0)

	for bytes_read < size {
		cursor.Seek(int(bytes_read))

		entry := CertificateEntry{}
		var ok1, ok2, ok3 bool
		entry.Length, ok1 = cursor.Uint32()
		entry.Revision, ok2 = cursor.Uint16()
		entry.CertificateType, ok3 = cursor.Uint16()
		if !ok1 || !ok2 || !ok3 {
			return invalidFile("certificate header at %#x truncated", bytes_read)
		}

		if entry.Length <= SIZEOF_WIN_CERTIFICATE_HEADER {
			return invalidFile("certificate at %#x has length %#x",
				bytes_read, entry.Length)
		}

		if entry.Revision != WIN_CERT_REVISION_1_0 &&
			entry.Revision != WIN_CERT_REVISION_2_0 {
			return invalidFile("certificate at %#x has revision %#x",
				bytes_read, entry.Revision)
		}

		if entry.CertificateType != WIN_CERT_TYPE_PKCS_SIGNED_DATA {
			return invalidFile("certificate at %#x has type %#x",
				bytes_read, entry.CertificateType)
		}

		payload, ok := cursor.Bytes(int(entry.Length - SIZEOF_WIN_CERTIFICATE_HEADER))
		if !ok {
			return invalidFile("certificate at %#x truncated", bytes_read)
		}
		entry.Certificate = append([]byte{}, payload...)

		DebugPrint("SecurityDirectory: certificate at %#x length %#x\n",
			bytes_read, entry.Length)

		bytes_read += uint64(entry.Length)
		self.entries = append(self.entries, entry)
	}

	return nil
}

func (self *SecurityDirectory) NumberOfCertificates() int {
	return len(self.entries)
}

func (self *SecurityDirectory) Entry(index int) (CertificateEntry, bool) {
	if index < 0 || index >= len(self.entries) {
		return CertificateEntry{}, false
	}
	return self.entries[index], true
}

// Certificate returns a copy of the raw PKCS#7 payload.
func (self *SecurityDirectory) Certificate(index int) []byte {
	if index < 0 || index >= len(self.entries) {
		return nil
	}
	return append([]byte{}, self.entries[index].Certificate...)
}

func (self *SecurityDirectory) PKCS7(index int) (*pkcs7.PKCS7, error) {
	if index < 0 || index >= len(self.entries) {
		return nil, errors.Errorf("no certificate at index %d", index)
	}

	result, err := pkcs7.Parse(self.entries[index].Certificate)
	if err != nil {
		return nil, errors.Wrapf(err, "certificate %d", index)
	}
	return result, nil
}

// CertificateInfo describes the signer and certificates of an entry.
func (self *SecurityDirectory) CertificateInfo(index int) (*ordereddict.Dict, error) {
	signature, err := self.PKCS7(index)
	if err != nil {
		return nil, err
	}
	return PKCS7ToOrderedDict(signature), nil
}

func (self *SecurityDirectory) ToDict() []*ordereddict.Dict {
	result := make([]*ordereddict.Dict, 0, len(self.entries))
	for idx, entry := range self.entries {
		item := ordereddict.NewDict().
			Set("Length", entry.Length).
			Set("Revision", entry.Revision).
			Set("CertificateType", entry.CertificateType)

		info, err := self.CertificateInfo(idx)
		if err != nil {
			item.Set("Error", err.Error())
		} else {
			item.Set("Info", info)
		}
		result = append(result, item)
	}
	return result
}
