package matfile

import (
	"crypto/sha256"
	"fmt"
)

// computeChecksum returns the SHA-256 digest of data.
func computeChecksum(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// validateChecksum compares a computed digest against the stored one.
func validateChecksum(computed, stored [32]byte) error {
	if computed != stored {
		return fmt.Errorf("%w: computed %x, stored %x", ErrChecksumMismatch, computed, stored)
	}
	return nil
}
