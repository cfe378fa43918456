package pe

import "io"

// SizedReader exposes a window of an io.ReaderAt together with its
// length. Decoders need to know the length of their source up front
// to bounds check directories, and paged readers do not carry it.
type SizedReader struct {
	reader io.ReaderAt
	offset int64
	length int64
}

func (self SizedReader) ReadAt(buff []byte, off int64) (int, error) {
	if off < 0 || off >= self.length {
		return 0, io.EOF
	}

	to_read := int64(len(buff))
	if off+to_read > self.length {
		to_read = self.length - off
	}

	n, err := self.reader.ReadAt(buff[:to_read], off+self.offset)
	if int64(n) == to_read {
		err = nil
	}
	if err == nil && to_read < int64(len(buff)) {
		err = io.EOF
	}
	return n, err
}

func (self SizedReader) Size() int64 {
	return self.length
}

func NewSizedReader(reader io.ReaderAt, offset, length int64) *SizedReader {
	return &SizedReader{
		reader: reader,
		offset: offset,
		length: length,
	}
}
