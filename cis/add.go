package cis

import (
	"fmt"

	"github.com/256dpi/turing"
	"github.com/256dpi/turing/coding"

	"github.com/256dpi/challenge/program"
)

// AddSolutions is used to append solutions to a challenge.
type AddSolutions struct {
	program.AddSolutions

	// The keys that signed the instruction.
	Signed []program.Key
}

var addSolutionsDesc = &turing.Description{
	Name: "challenge/AddSolutions",
}

func (a *AddSolutions) Describe() *turing.Description {
	return addSolutionsDesc
}

func (a *AddSolutions) Effect() int {
	return 2
}

func (a *AddSolutions) Execute(mem turing.Memory, _ turing.Cache) error {
	return execute(mem, &a.AddSolutions, a.Signed)
}

func (a *AddSolutions) Encode() ([]byte, turing.Ref, error) {
	return coding.Encode(true, func(enc *coding.Encoder) error {
		// encode version
		enc.Uint8(1)

		// encode accounts
		encodeKey(enc, a.Payer)
		encodeKey(enc, a.Authority)
		encodeKey(enc, a.Challenge)

		// encode solutions
		err := encodeStrings(enc, a.Solutions)
		if err != nil {
			return err
		}

		// encode signers
		return encodeKeys(enc, a.Signed)
	})
}

func (a *AddSolutions) Decode(bytes []byte) error {
	return coding.Decode(bytes, func(dec *coding.Decoder) error {
		// decode version
		var version uint8
		dec.Uint8(&version)
		if version != 1 {
			return fmt.Errorf("invalid version")
		}

		// decode accounts
		for _, key := range []*program.Key{&a.Payer, &a.Authority, &a.Challenge} {
			err := decodeKey(dec, key)
			if err != nil {
				return err
			}
		}

		// decode solutions and signers
		decodeStrings(dec, &a.Solutions)
		return decodeKeys(dec, &a.Signed)
	})
}
