package cis

import (
	"fmt"

	"github.com/256dpi/turing"
	"github.com/256dpi/turing/coding"

	"github.com/256dpi/challenge/program"
)

// Redeem is used to submit a guess for a challenge.
type Redeem struct {
	program.Redeem

	// The keys that signed the instruction.
	Signed []program.Key
}

var redeemDesc = &turing.Description{
	Name: "challenge/Redeem",
}

func (r *Redeem) Describe() *turing.Description {
	return redeemDesc
}

func (r *Redeem) Effect() int {
	return 3
}

func (r *Redeem) Execute(mem turing.Memory, _ turing.Cache) error {
	return execute(mem, &r.Redeem, r.Signed)
}

func (r *Redeem) Encode() ([]byte, turing.Ref, error) {
	return coding.Encode(true, func(enc *coding.Encoder) error {
		// encode version
		enc.Uint8(1)

		// encode accounts
		encodeKey(enc, r.Participant)
		encodeKey(enc, r.Authority)
		encodeKey(enc, r.Challenge)
		encodeKey(enc, r.Admission)
		encodeKey(enc, r.Redeem.Redeem)

		// encode guess
		err := encodeString(enc, r.Solution)
		if err != nil {
			return err
		}

		// encode result
		if r.Solved {
			enc.Uint8(1)
		} else {
			enc.Uint8(0)
		}
		enc.Uint64(r.Reward)
		enc.Uint8(r.Tries)

		// encode signers
		return encodeKeys(enc, r.Signed)
	})
}

func (r *Redeem) Decode(bytes []byte) error {
	return coding.Decode(bytes, func(dec *coding.Decoder) error {
		// decode version
		var version uint8
		dec.Uint8(&version)
		if version != 1 {
			return fmt.Errorf("invalid version")
		}

		// decode accounts
		for _, key := range []*program.Key{&r.Participant, &r.Authority, &r.Challenge, &r.Admission, &r.Redeem.Redeem} {
			err := decodeKey(dec, key)
			if err != nil {
				return err
			}
		}

		// decode guess
		dec.String(&r.Solution, 2, true)

		// decode result
		var solved uint8
		dec.Uint8(&solved)
		r.Solved = solved == 1
		dec.Uint64(&r.Reward)
		dec.Uint8(&r.Tries)

		// decode signers
		return decodeKeys(dec, &r.Signed)
	})
}
