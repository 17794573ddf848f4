package cis

import (
	"fmt"

	"github.com/256dpi/turing"
	"github.com/256dpi/turing/coding"

	"github.com/256dpi/challenge/program"
)

// Admit is used to buy an admission to a challenge.
type Admit struct {
	program.Admit

	// The keys that signed the instruction.
	Signed []program.Key
}

var admitDesc = &turing.Description{
	Name: "challenge/Admit",
}

func (a *Admit) Describe() *turing.Description {
	return admitDesc
}

func (a *Admit) Effect() int {
	return 3
}

func (a *Admit) Execute(mem turing.Memory, _ turing.Cache) error {
	return execute(mem, &a.Admit, a.Signed)
}

func (a *Admit) Encode() ([]byte, turing.Ref, error) {
	return coding.Encode(true, func(enc *coding.Encoder) error {
		// encode version
		enc.Uint8(1)

		// encode accounts
		encodeKey(enc, a.Participant)
		encodeKey(enc, a.Authority)
		encodeKey(enc, a.Challenge)
		encodeKey(enc, a.Admission)

		// encode result and signers
		enc.Uint8(a.Tries)
		return encodeKeys(enc, a.Signed)
	})
}

func (a *Admit) Decode(bytes []byte) error {
	return coding.Decode(bytes, func(dec *coding.Decoder) error {
		// decode version
		var version uint8
		dec.Uint8(&version)
		if version != 1 {
			return fmt.Errorf("invalid version")
		}

		// decode accounts
		for _, key := range []*program.Key{&a.Participant, &a.Authority, &a.Challenge, &a.Admission} {
			err := decodeKey(dec, key)
			if err != nil {
				return err
			}
		}

		// decode result and signers
		dec.Uint8(&a.Tries)
		return decodeKeys(dec, &a.Signed)
	})
}
