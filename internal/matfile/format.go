// Package matfile implements the binary .mx container for named matrices.
//
// Layout (all integers little-endian):
//
//	0x00  magic "MXF1"
//	0x04  format version (uint32)
//	0x08  flags (uint32)
//	0x0C  reserved
//	0x10  JSON header size (uint64)
//	0x18  data section size (uint64)
//	0x20  SHA-256 checksum of the data section (32 bytes)
//	0x40  JSON header, then zero padding to a 64-byte boundary
//	...   data section: element data, row-major, little-endian
package matfile

import (
	"time"

	"github.com/mx-ml/mx/internal/matrix"
)

// Format constants.
const (
	MagicBytes      = "MXF1"
	FormatVersion   = 1
	FixedHeaderSize = 64   // fixed header is 0x40 bytes
	HeaderAlignment = 64   // matrix data aligned to 64 bytes
	ChecksumSize    = 32   // SHA-256
	ChecksumOffset  = 0x20 // checksum offset in the fixed header
)

// Flags for the .mx format.
const (
	FlagHasMetadata uint32 = 1 << 0 // bit 0: custom metadata included
)

// Header is the JSON header of a .mx file.
type Header struct {
	FormatVersion int               `json:"format_version"` // version of the .mx format
	MXVersion     string            `json:"mx_version"`     // version of MX that created this file
	CreatedAt     time.Time         `json:"created_at"`     // when the file was created
	Matrices      []MatrixMeta      `json:"matrices"`       // matrix metadata
	Metadata      map[string]string `json:"metadata"`       // custom metadata
}

// MatrixMeta describes one matrix in the .mx file.
type MatrixMeta struct {
	Name   string `json:"name"`   // matrix name
	DType  string `json:"dtype"`  // element type (e.g. "float64")
	Rows   int    `json:"rows"`   // row count
	Cols   int    `json:"cols"`   // column count
	Offset int64  `json:"offset"` // offset in the data section (bytes)
	Size   int64  `json:"size"`   // size in bytes
}

// DataType is runtime element-type information for stored matrices.
// Only fixed-width types are storable; the platform-dependent int and
// uint are rejected at save time so files stay portable.
type DataType int

// Storable element types.
const (
	Int8 DataType = iota
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Complex64
	Complex128
)

// Size returns the byte size of one element.
func (dt DataType) Size() int {
	switch dt {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64, Complex64:
		return 8
	case Complex128:
		return 16
	default:
		panic("unknown data type")
	}
}

// String returns the serialized name of the data type.
func (dt DataType) String() string {
	switch dt {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}

// parseDType converts a serialized name back to a DataType.
func parseDType(s string) (DataType, bool) {
	switch s {
	case "int8":
		return Int8, true
	case "int16":
		return Int16, true
	case "int32":
		return Int32, true
	case "int64":
		return Int64, true
	case "uint8":
		return Uint8, true
	case "uint16":
		return Uint16, true
	case "uint32":
		return Uint32, true
	case "uint64":
		return Uint64, true
	case "float32":
		return Float32, true
	case "float64":
		return Float64, true
	case "complex64":
		return Complex64, true
	case "complex128":
		return Complex128, true
	default:
		return 0, false
	}
}

// dtypeOf infers the DataType for a generic element type T.
// int, uint and named element types are not storable.
func dtypeOf[T matrix.Element]() (DataType, error) {
	var zero T
	switch any(zero).(type) {
	case int8:
		return Int8, nil
	case int16:
		return Int16, nil
	case int32:
		return Int32, nil
	case int64:
		return Int64, nil
	case uint8:
		return Uint8, nil
	case uint16:
		return Uint16, nil
	case uint32:
		return Uint32, nil
	case uint64:
		return Uint64, nil
	case float32:
		return Float32, nil
	case float64:
		return Float64, nil
	case complex64:
		return Complex64, nil
	case complex128:
		return Complex128, nil
	default:
		return 0, ErrUnsupportedDType
	}
}
