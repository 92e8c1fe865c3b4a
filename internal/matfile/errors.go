package matfile

import "errors"

// Common errors.
var (
	ErrInvalidMagic       = errors.New("matfile: invalid magic bytes")
	ErrUnsupportedVersion = errors.New("matfile: unsupported format version")
	ErrChecksumMismatch   = errors.New("matfile: checksum mismatch: file may be corrupted")
	ErrTruncated          = errors.New("matfile: file truncated")
	ErrMatrixNotFound     = errors.New("matfile: matrix not found")
	ErrDTypeMismatch      = errors.New("matfile: stored dtype does not match requested element type")
	ErrUnsupportedDType   = errors.New("matfile: element type is not storable")
	ErrClosed             = errors.New("matfile: reader is closed")
)
