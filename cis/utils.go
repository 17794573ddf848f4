package cis

import (
	"fmt"
	"math"

	"github.com/256dpi/turing"
	"github.com/256dpi/turing/coding"

	"github.com/256dpi/challenge/program"
)

var accountPrefix = []byte("account#")

type storage struct {
	mem turing.Memory
}

func (s *storage) Load(key program.Key) ([]byte, bool, error) {
	// get key
	k, ref := coding.Concat(accountPrefix, key[:])
	defer ref.Release()

	// get value
	var value []byte
	var found bool
	err := s.mem.Use(k, func(v []byte) error {
		value = turing.Clone(v)
		found = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return value, found, nil
}

func (s *storage) Store(key program.Key, value []byte) error {
	// get key
	k, ref := coding.Concat(accountPrefix, key[:])
	defer ref.Release()

	// set value
	err := s.mem.Set(k, value)
	if err != nil {
		return err
	}

	return nil
}

func execute(mem turing.Memory, ins program.Instruction, signed []program.Key) error {
	// prepare transaction
	tx := program.NewTransaction(&storage{mem: mem}, signed...)

	// execute instruction
	err := current().Execute(tx, ins)
	if err != nil {
		return err
	}

	// write accounts
	err = tx.Commit()
	if err != nil {
		return err
	}

	return nil
}

func encodeKey(enc *coding.Encoder, key program.Key) {
	enc.Bytes(key[:], 1)
}

func decodeKey(dec *coding.Decoder, key *program.Key) error {
	// decode bytes
	var buf []byte
	dec.Bytes(&buf, 1, false)

	// check length
	if len(buf) != program.KeySize {
		return fmt.Errorf("invalid key length")
	}

	// copy key
	copy(key[:], buf)

	return nil
}

func encodeKeys(enc *coding.Encoder, keys []program.Key) error {
	// check length
	if len(keys) > math.MaxUint8 {
		return fmt.Errorf("too many keys: %d", len(keys))
	}

	// encode length
	enc.Uint8(uint8(len(keys)))

	// encode keys
	for _, key := range keys {
		encodeKey(enc, key)
	}

	return nil
}

func decodeKeys(dec *coding.Decoder, keys *[]program.Key) error {
	// decode length
	var length uint8
	dec.Uint8(&length)

	// decode keys
	*keys = make([]program.Key, length)
	for i := range *keys {
		err := decodeKey(dec, &(*keys)[i])
		if err != nil {
			return err
		}
	}

	return nil
}

func encodeStrings(enc *coding.Encoder, list []string) error {
	// check length
	if len(list) > math.MaxUint16 {
		return fmt.Errorf("too many strings: %d", len(list))
	}

	// encode length
	enc.Uint16(uint16(len(list)))

	// encode strings
	for _, item := range list {
		err := encodeString(enc, item)
		if err != nil {
			return err
		}
	}

	return nil
}

func encodeString(enc *coding.Encoder, str string) error {
	// check length
	if len(str) > math.MaxUint16 {
		return fmt.Errorf("string too long: %d bytes", len(str))
	}

	// encode string
	enc.String(str, 2)

	return nil
}

func decodeStrings(dec *coding.Decoder, list *[]string) {
	// decode length
	var length uint16
	dec.Uint16(&length)

	// decode strings
	*list = make([]string, length)
	for i := range *list {
		dec.String(&(*list)[i], 2, true)
	}
}
