package pe

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// ReaderWrapper gives an io.ReaderAt the seek/read/tell semantics of
// a stream. The delay import tables are walked this way.
type ReaderWrapper struct {
	reader io.ReaderAt
	offset int64
}

func (self *ReaderWrapper) Read(p []byte) (n int, err error) {
	n, err = self.reader.ReadAt(p, self.offset)
	self.offset += int64(n)
	return n, err
}

func (self *ReaderWrapper) Seek(offset int64) {
	self.offset = offset
}

func (self *ReaderWrapper) Tell() int64 {
	return self.offset
}

// ReadFull reads exactly len(buf) bytes at the current position and
// reports whether it succeeded. A short read still advances the
// position by the bytes that were available.
func (self *ReaderWrapper) ReadFull(buf []byte) bool {
	n, err := io.ReadFull(self, buf)
	return err == nil && n == len(buf)
}

// ReadString reads a NUL terminated string of at most max_length
// bytes from the current position.
func (self *ReaderWrapper) ReadString(max_length int) string {
	result := make([]byte, 0, 32)
	b := make([]byte, 1)
	for max_length <= 0 || len(result) < max_length {
		n, _ := self.Read(b)
		if n == 0 || b[0] == 0 {
			break
		}
		result = append(result, b[0])
	}
	return string(result)
}

func NewReaderWrapper(reader io.ReaderAt) *ReaderWrapper {
	return &ReaderWrapper{
		reader: reader,
	}
}

// Figure out how large the source is. Readers that know their size
// (bytes.Reader, io.SectionReader, SizedReader) are asked directly,
// files are stat'ed and seekers are sought to the end.
func sourceSize(reader io.ReaderAt) (int64, error) {
	if reader == nil {
		return 0, errors.WithMessage(ErrOpeningFile, "no reader")
	}

	switch t := reader.(type) {
	case interface{ Size() int64 }:
		return t.Size(), nil

	case interface{ Stat() (os.FileInfo, error) }:
		stat, err := t.Stat()
		if err != nil {
			return 0, errors.Wrap(ErrOpeningFile, err.Error())
		}
		return stat.Size(), nil

	case io.Seeker:
		size, err := t.Seek(0, io.SeekEnd)
		if err != nil {
			return 0, errors.Wrap(ErrOpeningFile, err.Error())
		}
		return size, nil
	}

	return 0, errors.WithMessage(ErrOpeningFile, "unable to determine source size")
}

// Reads [offset, offset+size) after checking it fits in the source.
// The check is done in uint64 so huge sizes can not wrap around.
func readRegion(reader io.ReaderAt, offset, size uint64) ([]byte, error) {
	file_size, err := sourceSize(reader)
	if err != nil {
		return nil, err
	}

	if !inBounds(offset, size, uint64(file_size)) {
		return nil, invalidFile("region %#x+%#x exceeds file size %#x",
			offset, size, file_size)
	}

	if int64(size) > GetMaxDirectorySize() {
		return nil, invalidFile("region size %#x exceeds limit", size)
	}

	data := make([]byte, size)
	n, err := reader.ReadAt(data, int64(offset))
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(ErrOpeningFile, err.Error())
	}

	return data[:n], nil
}

// True when [offset, offset+size) lies within a file of file_size
// bytes, without overflowing.
func inBounds(offset, size, file_size uint64) bool {
	if size > file_size || offset > file_size {
		return false
	}
	return offset <= file_size-size
}

func Cap[T constraints.Integer](v T, max T) T {
	if v > max {
		return max
	}
	return v
}
