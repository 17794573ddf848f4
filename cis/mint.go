package cis

import (
	"fmt"

	"github.com/256dpi/turing"
	"github.com/256dpi/turing/coding"

	"github.com/256dpi/challenge/program"
)

// Mint is used to credit lamports to an account.
type Mint struct {
	// The credited account.
	Key program.Key

	// The credited amount.
	Amount uint64
}

var mintDesc = &turing.Description{
	Name: "challenge/Mint",
}

func (m *Mint) Describe() *turing.Description {
	return mintDesc
}

func (m *Mint) Effect() int {
	return 1
}

func (m *Mint) Execute(mem turing.Memory, _ turing.Cache) error {
	// prepare transaction
	tx := program.NewTransaction(&storage{mem: mem})

	// credit account
	err := tx.Mint(m.Key, m.Amount)
	if err != nil {
		return err
	}

	// write account
	err = tx.Commit()
	if err != nil {
		return err
	}

	return nil
}

func (m *Mint) Encode() ([]byte, turing.Ref, error) {
	return coding.Encode(true, func(enc *coding.Encoder) error {
		// encode version
		enc.Uint8(1)

		// encode key and amount
		encodeKey(enc, m.Key)
		enc.Uint64(m.Amount)

		return nil
	})
}

func (m *Mint) Decode(bytes []byte) error {
	return coding.Decode(bytes, func(dec *coding.Decoder) error {
		// decode version
		var version uint8
		dec.Uint8(&version)
		if version != 1 {
			return fmt.Errorf("invalid version")
		}

		// decode key
		err := decodeKey(dec, &m.Key)
		if err != nil {
			return err
		}

		// decode amount
		dec.Uint64(&m.Amount)

		return nil
	})
}
