package cis

import (
	"fmt"

	"github.com/256dpi/turing"
	"github.com/256dpi/turing/coding"

	"github.com/256dpi/challenge/program"
)

// Inspect is used to read an account and the challenge it may hold.
type Inspect struct {
	// The account to read. If Authority is set the key is replaced by the
	// challenge address of the authority.
	Key program.Key

	// The challenge authority.
	Authority program.Key

	// The account balance.
	Balance uint64

	// The decoded challenge, if the account holds one.
	Challenge *program.Challenge
}

var inspectDesc = &turing.Description{
	Name: "challenge/Inspect",
}

func (i *Inspect) Describe() *turing.Description {
	return inspectDesc
}

func (i *Inspect) Effect() int {
	return 0
}

func (i *Inspect) Execute(mem turing.Memory, _ turing.Cache) error {
	// get program
	prg := current()

	// prepare transaction
	tx := program.NewTransaction(&storage{mem: mem})

	// derive address
	if !i.Authority.IsZero() {
		i.Key, _ = prg.ChallengeAddress(i.Authority)
	}

	// get account
	account, err := tx.Account(i.Key)
	if err != nil {
		return err
	}

	// set balance
	i.Balance = account.Balance()
	i.Challenge = nil

	// check authority
	if i.Authority.IsZero() {
		return nil
	}

	// load challenge
	i.Challenge, err = prg.LoadChallenge(tx, i.Authority)
	if err != nil {
		return err
	}

	return nil
}

func (i *Inspect) Encode() ([]byte, turing.Ref, error) {
	return coding.Encode(true, func(enc *coding.Encoder) error {
		// encode challenge
		var record []byte
		if i.Challenge != nil {
			var err error
			record, err = i.Challenge.Encode()
			if err != nil {
				return err
			}
		}

		// encode version
		enc.Uint8(1)

		// encode keys
		encodeKey(enc, i.Key)
		encodeKey(enc, i.Authority)

		// encode balance and record
		enc.Uint64(i.Balance)
		enc.Bytes(record, 2)

		return nil
	})
}

func (i *Inspect) Decode(bytes []byte) error {
	return coding.Decode(bytes, func(dec *coding.Decoder) error {
		// decode version
		var version uint8
		dec.Uint8(&version)
		if version != 1 {
			return fmt.Errorf("invalid version")
		}

		// decode keys
		err := decodeKey(dec, &i.Key)
		if err != nil {
			return err
		}
		err = decodeKey(dec, &i.Authority)
		if err != nil {
			return err
		}

		// decode balance and record
		var record []byte
		dec.Uint64(&i.Balance)
		dec.Bytes(&record, 2, false)

		// decode challenge
		i.Challenge = nil
		if len(record) > 0 {
			i.Challenge, err = program.DecodeChallenge(record)
			if err != nil {
				return err
			}
		}

		return nil
	})
}
