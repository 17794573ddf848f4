package program

import (
	"encoding/binary"
	"math"
)

// Account is a handle to a stored account within a transaction. Changes are
// only persisted when the transaction is committed.
type Account struct {
	key     Key
	signer  bool
	balance uint64
	data    []byte
	dirty   bool
}

// Key returns the address of the account.
func (a *Account) Key() Key {
	return a.key
}

// IsSigner returns whether the account signed the transaction.
func (a *Account) IsSigner() bool {
	return a.signer
}

// Balance returns the balance of the account.
func (a *Account) Balance() uint64 {
	return a.balance
}

// DataLen returns the length of the account data.
func (a *Account) DataLen() int {
	return len(a.data)
}

// Data returns the account data. The returned slice must not be modified.
func (a *Account) Data() []byte {
	return a.data
}

// Allocate will allocate zeroed data of the specified size for an account
// without data.
func (a *Account) Allocate(size int) error {
	// check data
	err := AssertAccountHasNoData(a)
	if err != nil {
		return err
	}

	// check size
	if size <= 0 {
		return fail(InvalidArgument, "cannot allocate %d bytes", size)
	}

	// allocate
	a.data = make([]byte, size)
	a.dirty = true

	return nil
}

// Resize will grow or shrink the data of an initialized account. Existing
// bytes are kept and grown space is zeroed.
func (a *Account) Resize(size int) error {
	// check data
	if len(a.data) == 0 {
		return fail(UninitializedAccount, "cannot resize account %s without data", a.key)
	}

	// check size
	if size <= 0 {
		return fail(InvalidArgument, "cannot resize account %s to %d bytes", a.key, size)
	}

	// resize
	data := make([]byte, size)
	copy(data, a.data)
	a.data = data
	a.dirty = true

	return nil
}

// Write will replace the account data. The length must match the current
// data length.
func (a *Account) Write(data []byte) error {
	// check length
	if len(data) != len(a.data) {
		return fail(InvalidAccountData, "account %s holds %d bytes, cannot write %d", a.key, len(a.data), len(data))
	}

	// copy data
	copy(a.data, data)
	a.dirty = true

	return nil
}

// Transfer will move the specified amount from this account to the other.
func (a *Account) Transfer(to *Account, amount uint64) error {
	// check amount
	if amount == 0 {
		return nil
	}

	// check balance
	if a.balance < amount {
		return fail(InsufficientFunds, "account %s holds %d, cannot transfer %d", a.key, a.balance, amount)
	}

	// check overflow
	if to.balance > math.MaxUint64-amount {
		return fail(ArithmeticOverflow, "account %s would overflow receiving %d", to.key, amount)
	}

	// move funds
	a.balance -= amount
	to.balance += amount
	a.dirty = true
	to.dirty = true

	return nil
}

func encodeAccount(balance uint64, data []byte) []byte {
	buf := make([]byte, 8+len(data))
	binary.BigEndian.PutUint64(buf, balance)
	copy(buf[8:], data)
	return buf
}

func decodeAccount(key Key, value []byte) (uint64, []byte, error) {
	// check length
	if len(value) < 8 {
		return 0, nil, fail(InvalidAccountData, "stored account %s has %d bytes", key, len(value))
	}

	// copy data
	data := make([]byte, len(value)-8)
	copy(data, value[8:])

	return binary.BigEndian.Uint64(value), data, nil
}
