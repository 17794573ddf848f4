package program

import (
	"encoding/binary"
	"math"
)

// MaxSolutions is the maximum number of fingerprints a challenge may hold. It
// is bounded by the single byte count field of the layout.
const MaxSolutions = math.MaxUint8

// HeaderSize is the fixed size of an encoded challenge without fingerprints.
const HeaderSize = KeySize + 8 + 1 + KeySize + 8 + 1

// Challenge is the persistent per authority challenge state.
type Challenge struct {
	// The owner of the challenge.
	Authority Key

	// The fee charged per admission.
	AdmitCost uint64

	// The number of guesses granted per admission.
	TriesPerAdmit uint8

	// The account that receives the reward of a correct guess.
	Redeem Key

	// The number of admissions granted so far.
	Solving uint64

	// The accepted solution fingerprints in insertion order. Duplicates are
	// kept as is.
	Solutions []Fingerprint
}

// NeededSize returns the encoded size of a challenge with n fingerprints.
func NeededSize(n int) int {
	return HeaderSize + n*FingerprintSize
}

// Size returns the encoded size of the challenge.
func (c *Challenge) Size() int {
	return NeededSize(len(c.Solutions))
}

// HasSolution returns whether the fingerprint is accepted by the challenge.
func (c *Challenge) HasSolution(fp Fingerprint) bool {
	for _, solution := range c.Solutions {
		if solution == fp {
			return true
		}
	}

	return false
}

// Encode returns the binary layout of the challenge.
func (c *Challenge) Encode() ([]byte, error) {
	// check solutions
	err := AssertMaxSupportedSolutions(c.Solutions)
	if err != nil {
		return nil, err
	}

	// prepare buffer
	buf := make([]byte, c.Size())

	// write header
	n := copy(buf, c.Authority[:])
	binary.LittleEndian.PutUint64(buf[n:], c.AdmitCost)
	n += 8
	buf[n] = c.TriesPerAdmit
	n++
	n += copy(buf[n:], c.Redeem[:])
	binary.LittleEndian.PutUint64(buf[n:], c.Solving)
	n += 8
	buf[n] = uint8(len(c.Solutions))
	n++

	// write fingerprints
	for _, solution := range c.Solutions {
		n += copy(buf[n:], solution[:])
	}

	return buf, nil
}

// DecodeChallenge parses the binary layout of a challenge. The buffer must
// have exactly the size implied by its fingerprint count.
func DecodeChallenge(buf []byte) (*Challenge, error) {
	// check header
	if len(buf) < HeaderSize {
		return nil, fail(InvalidAccountData, "challenge data has %d bytes, header needs %d", len(buf), HeaderSize)
	}

	// read header
	var c Challenge
	n := copy(c.Authority[:], buf)
	c.AdmitCost = binary.LittleEndian.Uint64(buf[n:])
	n += 8
	c.TriesPerAdmit = buf[n]
	n++
	n += copy(c.Redeem[:], buf[n:])
	c.Solving = binary.LittleEndian.Uint64(buf[n:])
	n += 8
	count := int(buf[n])
	n++

	// check size
	if len(buf) != NeededSize(count) {
		return nil, fail(InvalidAccountData, "challenge data has %d bytes, %d fingerprints need %d", len(buf), count, NeededSize(count))
	}

	// read fingerprints
	c.Solutions = make([]Fingerprint, count)
	for i := range c.Solutions {
		n += copy(c.Solutions[i][:], buf[n:])
	}

	return &c, nil
}

// AdmissionSize is the encoded size of an admission.
const AdmissionSize = KeySize + KeySize + 1

// Admission tracks the remaining guesses of a participant for a challenge.
type Admission struct {
	Challenge   Key
	Participant Key
	Tries       uint8
}

// Encode returns the binary layout of the admission.
func (a *Admission) Encode() []byte {
	buf := make([]byte, AdmissionSize)
	n := copy(buf, a.Challenge[:])
	n += copy(buf[n:], a.Participant[:])
	buf[n] = a.Tries
	return buf
}

// DecodeAdmission parses the binary layout of an admission.
func DecodeAdmission(buf []byte) (*Admission, error) {
	// check size
	if len(buf) != AdmissionSize {
		return nil, fail(InvalidAccountData, "admission data has %d bytes, expected %d", len(buf), AdmissionSize)
	}

	// read
	var a Admission
	n := copy(a.Challenge[:], buf)
	n += copy(a.Participant[:], buf[n:])
	a.Tries = buf[n]

	return &a, nil
}
