package program

import (
	"golang.org/x/crypto/blake2b"
)

// MaxSeeds is the maximum number of seeds per address.
const MaxSeeds = 16

// MaxSeedLength is the maximum length of a single seed.
const MaxSeedLength = 32

var addressMarker = []byte("ProgramDerivedAddress")

// The domain separation seeds.
var (
	ChallengeSeed = []byte("challenge")
	AdmissionSeed = []byte("admission")
)

// CreateAddress derives an address from the program id, the seeds and the
// bump. The same inputs always yield the same address.
func CreateAddress(programID Key, bump uint8, seeds ...[]byte) (Key, error) {
	// check seeds
	if len(seeds) > MaxSeeds {
		return Key{}, fail(InvalidArgument, "%d seeds exceed maximum of %d", len(seeds), MaxSeeds)
	}
	for i, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return Key{}, fail(InvalidArgument, "seed %d has %d bytes, maximum is %d", i, len(seed), MaxSeedLength)
		}
	}

	// keyed hash
	hash, err := blake2b.New256(programID[:])
	if err != nil {
		return Key{}, err
	}

	// write seeds
	for _, seed := range seeds {
		_, _ = hash.Write([]byte{uint8(len(seed))})
		_, _ = hash.Write(seed)
	}

	// write bump and marker
	_, _ = hash.Write([]byte{bump})
	_, _ = hash.Write(addressMarker)

	// get address
	var address Key
	copy(address[:], hash.Sum(nil))

	// reject reserved keys
	if address.IsZero() || address == programID {
		return Key{}, fail(InvalidArgument, "derived reserved address")
	}

	return address, nil
}

// FindAddress returns the first valid address scanning bumps from 255 down
// together with the bump that produced it.
func FindAddress(programID Key, seeds ...[]byte) (Key, uint8, error) {
	var err error
	for bump := 255; bump >= 0; bump-- {
		var address Key
		address, err = CreateAddress(programID, uint8(bump), seeds...)
		if err == nil {
			return address, uint8(bump), nil
		}
	}

	return Key{}, 0, err
}
