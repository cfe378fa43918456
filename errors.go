package pe

import (
	"github.com/pkg/errors"
)

var (
	// The backing file could not be opened or is unusable.
	ErrOpeningFile = errors.New("ERROR_OPENING_FILE")

	// Offset/size arithmetic points outside the file, or a
	// directory failed a hard validation check.
	ErrInvalidFile = errors.New("ERROR_INVALID_FILE")
)

// Result codes returned by the directory readers. Go callers normally
// just check the error but tooling that mirrors other PE libraries
// likes the numeric code.
type ResultCode int

const (
	NONE ResultCode = iota
	OPENING_FILE
	INVALID_FILE
)

func (self ResultCode) String() string {
	switch self {
	case NONE:
		return "NONE"
	case OPENING_FILE:
		return "OPENING_FILE"
	case INVALID_FILE:
		return "INVALID_FILE"
	}
	return "UNKNOWN"
}

func ResultCodeOf(err error) ResultCode {
	switch errors.Cause(err) {
	case nil:
		return NONE
	case ErrOpeningFile:
		return OPENING_FILE
	case ErrInvalidFile:
		return INVALID_FILE
	}

	// Any other I/O failure means the source was not usable.
	return OPENING_FILE
}

func invalidFile(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidFile, format, args...)
}
