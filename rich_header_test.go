package pe

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/alecthomas/assert"
)

var testRichRecords = []uint32{
	0x0104<<16 | 30319, 5,
	0x0102<<16 | 12345, 1,
	0x0093<<16 | 50727, 7,
	0x0200<<16 | 1, 2,
}

func TestRichHeader(t *testing.T) {
	data := buildRichHeader(0x1a2b3c4d, testRichRecords...)

	// The header is normally followed by zero padding.
	data = append(data, make([]byte, 16)...)

	rich := DecodeRichHeader(data, false)
	assert.True(t, rich.IsHeaderValid())
	assert.True(t, rich.IsStructureValid())
	assert.Equal(t, uint32(0x1a2b3c4d), rich.Key())
	assert.Equal(t, 1, rich.NumberOfIterations())
	assert.Equal(t, 4, rich.NumberOfRecords())

	newGoldie(t).AssertJson(t, "TestRichHeader", rich.ToDict())
}

func TestRichHeaderDecryption(t *testing.T) {
	key := uint32(0xcafe0042)
	data := buildRichHeader(key, testRichRecords...)

	rich := DecodeRichHeader(data, false)
	plain := append([]uint32{DANS_SIGNATURE, 0, 0, 0}, testRichRecords...)
	assert.Equal(t, plain, rich.DecryptedHeader())

	// XOR with the key again gives back the input.
	decrypted := rich.DecryptedHeaderBytes()
	encrypted := make([]byte, len(decrypted))
	for i := 0; i < len(decrypted); i += 4 {
		word := binary.LittleEndian.Uint32(decrypted[i:])
		binary.LittleEndian.PutUint32(encrypted[i:], word^key)
	}
	assert.True(t, bytes.Equal(data[:len(encrypted)], encrypted))

	item, ok := rich.DecryptedHeaderItem(0)
	assert.True(t, ok)
	assert.Equal(t, uint32(DANS_SIGNATURE), item)

	_, ok = rich.DecryptedHeaderItem(100)
	assert.False(t, ok)

	assert.Equal(t, "536E6144", rich.DecryptedHeaderItemSignature(0))
	assert.Equal(t, "", rich.DecryptedHeaderItemSignature(-1))
	assert.Equal(t, "0104766F00000005",
		rich.DecryptedHeaderItemsSignature(4, 5))

	record, ok := rich.Record(0)
	assert.True(t, ok)
	assert.Equal(t, RichHeaderRecord{
		ProductId:        0x0104,
		ProductBuild:     30319,
		Count:            5,
		Signature:        "0104766F00000005",
		ProductName:      "Utc1900_C",
		VisualStudioName: "Visual Studio 2010 v10.0",
	}, record)

	_, ok = rich.Record(4)
	assert.False(t, ok)
}

func TestRichHeaderSecondMarker(t *testing.T) {
	data := buildRichHeader(0x11111111, 0x0104<<16|30319, 5)

	// A stray marker with a bogus key after the real header.
	data = binary.LittleEndian.AppendUint32(data, 0)
	data = binary.LittleEndian.AppendUint32(data, RICH_SIGNATURE)
	data = binary.LittleEndian.AppendUint32(data, 0x22222222)

	rich := DecodeRichHeader(data, false)
	assert.True(t, rich.IsHeaderValid())
	assert.Equal(t, 2, rich.NumberOfIterations())
	assert.Equal(t, uint32(0x11111111), rich.Key())
	assert.Equal(t, 1, rich.NumberOfRecords())
}

func TestRichHeaderInvalidKey(t *testing.T) {
	data := buildRichHeader(0x11111111, 0x0104<<16|30319, 5)

	// Corrupt the key.
	binary.LittleEndian.PutUint32(data[len(data)-4:], 0x33333333)

	rich := DecodeRichHeader(data, false)
	assert.False(t, rich.IsHeaderValid())
	assert.False(t, rich.IsStructureValid())
	assert.Equal(t, 1, rich.NumberOfIterations())
	assert.Equal(t, 0, rich.NumberOfRecords())
	assert.Equal(t, uint32(0), rich.Key())

	// Accept the structure anyway.
	rich = DecodeRichHeader(data, true)
	assert.False(t, rich.IsHeaderValid())
	assert.True(t, rich.IsStructureValid())
	assert.Equal(t, 1, rich.NumberOfIterations())
	assert.Equal(t, uint32(0x33333333), rich.Key())
	assert.Equal(t, 1, rich.NumberOfRecords())
}

func TestRichHeaderTooShort(t *testing.T) {
	// Only 3 words before the marker.
	data := []byte{}
	for _, word := range []uint32{1, 2, 3, RICH_SIGNATURE, 0} {
		data = binary.LittleEndian.AppendUint32(data, word)
	}

	for _, ignore := range []bool{false, true} {
		rich := DecodeRichHeader(data, ignore)
		assert.False(t, rich.IsHeaderValid())
		assert.False(t, rich.IsStructureValid())
		assert.Equal(t, 0, rich.NumberOfRecords())
		assert.Equal(t, 1, rich.NumberOfIterations())
	}

	// No marker at all.
	rich := DecodeRichHeader(make([]byte, 64), true)
	assert.False(t, rich.IsStructureValid())
	assert.Equal(t, 0, rich.NumberOfIterations())

	rich = DecodeRichHeader(nil, false)
	assert.Equal(t, 0, rich.NumberOfRecords())
}

func TestVisualStudioName(t *testing.T) {
	assert.Equal(t, "Visual Studio 2010 v10.0", visualStudioName(0x104, 30319))

	// 50727 is ambiguous for newer products.
	assert.Equal(t, "Visual Studio 2008 v9.0", visualStudioName(0x93, 50727))
	assert.Equal(t, "Visual Studio 2005 v8.0", visualStudioName(0x5d, 50727))

	assert.Equal(t, "Visual Studio 2015", visualStudioName(0x102, 12345))
	assert.Equal(t, "Visual Studio 2017", visualStudioName(0x102, 26305))
	assert.Equal(t, "Visual Studio 2019+", visualStudioName(0x102, 40000))
	assert.Equal(t, "", visualStudioName(0x01, 1))

	assert.Equal(t, "Unknown", richProductName(0x1000))
}

func TestReadRichHeader(t *testing.T) {
	image := newTestImage(0x100)
	image.putString(RICH_HEADER_OFFSET,
		string(buildRichHeader(0x1a2b3c4d, testRichRecords...)))

	rich, err := ReadRichHeader(image.reader(), RICH_HEADER_OFFSET, 0x80, false)
	assert.NoError(t, err)
	assert.True(t, rich.IsHeaderValid())
	assert.Equal(t, 4, rich.NumberOfRecords())

	_, err = ReadRichHeader(image.reader(), RICH_HEADER_OFFSET, 0x81, false)
	assert.Equal(t, INVALID_FILE, ResultCodeOf(err))
}
