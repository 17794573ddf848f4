package cis

import (
	"fmt"

	"github.com/256dpi/turing"
	"github.com/256dpi/turing/coding"

	"github.com/256dpi/challenge/program"
)

// CreateChallenge is used to create a challenge.
type CreateChallenge struct {
	program.CreateChallenge

	// The keys that signed the instruction.
	Signed []program.Key
}

var createChallengeDesc = &turing.Description{
	Name: "challenge/CreateChallenge",
}

func (c *CreateChallenge) Describe() *turing.Description {
	return createChallengeDesc
}

func (c *CreateChallenge) Effect() int {
	return 2
}

func (c *CreateChallenge) Execute(mem turing.Memory, _ turing.Cache) error {
	return execute(mem, &c.CreateChallenge, c.Signed)
}

func (c *CreateChallenge) Encode() ([]byte, turing.Ref, error) {
	return coding.Encode(true, func(enc *coding.Encoder) error {
		// encode version
		enc.Uint8(1)

		// encode accounts
		encodeKey(enc, c.Payer)
		encodeKey(enc, c.Authority)
		encodeKey(enc, c.Challenge)

		// encode parameters
		enc.Uint64(c.AdmitCost)
		enc.Uint8(c.TriesPerAdmit)
		encodeKey(enc, c.Redeem)

		// encode solutions
		err := encodeStrings(enc, c.Solutions)
		if err != nil {
			return err
		}

		// encode signers
		return encodeKeys(enc, c.Signed)
	})
}

func (c *CreateChallenge) Decode(bytes []byte) error {
	return coding.Decode(bytes, func(dec *coding.Decoder) error {
		// decode version
		var version uint8
		dec.Uint8(&version)
		if version != 1 {
			return fmt.Errorf("invalid version")
		}

		// decode accounts
		for _, key := range []*program.Key{&c.Payer, &c.Authority, &c.Challenge} {
			err := decodeKey(dec, key)
			if err != nil {
				return err
			}
		}

		// decode parameters
		dec.Uint64(&c.AdmitCost)
		dec.Uint8(&c.TriesPerAdmit)
		err := decodeKey(dec, &c.Redeem)
		if err != nil {
			return err
		}

		// decode solutions and signers
		decodeStrings(dec, &c.Solutions)
		return decodeKeys(dec, &c.Signed)
	})
}
