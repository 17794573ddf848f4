package program

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// FingerprintSize is the byte length of a fingerprint.
const FingerprintSize = blake2b.Size256

// Fingerprint is the one-way digest of a solution. It is the only form in
// which solutions are persisted.
type Fingerprint [FingerprintSize]byte

// String returns the hex representation of the fingerprint.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// HashSolution returns the fingerprint of the provided solution.
func HashSolution(solution string) Fingerprint {
	return blake2b.Sum256([]byte(solution))
}

// HashSolutions returns the fingerprints of the provided solutions in order.
func HashSolutions(solutions []string) []Fingerprint {
	list := make([]Fingerprint, 0, len(solutions))
	for _, solution := range solutions {
		list = append(list, HashSolution(solution))
	}

	return list
}
