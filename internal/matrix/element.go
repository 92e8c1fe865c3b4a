// Package matrix provides the core dense matrix types and operations for the MX library.
package matrix

// Element is a constraint for supported matrix element types.
// It admits every built-in type that supports addition, subtraction,
// multiplication and equality comparison.
type Element interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~complex64 | ~complex128
}
