package program

import (
	"fmt"
	"math"
)

// Storage persists encoded accounts.
type Storage interface {
	// Load returns the stored value and whether it exists.
	Load(key Key) ([]byte, bool, error)

	// Store writes the value.
	Store(key Key, value []byte) error
}

// Transaction stages account handles loaded from a storage for a fixed set of
// signers. Nothing is written until Commit is called.
type Transaction struct {
	storage  Storage
	signers  map[Key]bool
	accounts map[Key]*Account
	order    []Key
}

// NewTransaction will create a new transaction on the provided storage.
func NewTransaction(storage Storage, signers ...Key) *Transaction {
	// check storage
	if storage == nil {
		panic("challenge: missing storage")
	}

	// prepare signers
	set := make(map[Key]bool, len(signers))
	for _, signer := range signers {
		set[signer] = true
	}

	return &Transaction{
		storage:  storage,
		signers:  set,
		accounts: map[Key]*Account{},
	}
}

// Account returns the handle for the specified key. Missing accounts are
// returned empty and unfunded. Repeated calls return the same handle.
func (t *Transaction) Account(key Key) (*Account, error) {
	// check cache
	if account, ok := t.accounts[key]; ok {
		return account, nil
	}

	// load value
	value, ok, err := t.storage.Load(key)
	if err != nil {
		return nil, fmt.Errorf("failed to load account %s: %w", key, err)
	}

	// prepare account
	account := &Account{
		key:    key,
		signer: t.signers[key],
	}

	// decode value
	if ok {
		account.balance, account.data, err = decodeAccount(key, value)
		if err != nil {
			return nil, err
		}
	}

	// cache account
	t.accounts[key] = account
	t.order = append(t.order, key)

	return account, nil
}

// Mint will credit the specified account outside of any instruction. It is
// used to fund accounts in development and test setups.
func (t *Transaction) Mint(key Key, amount uint64) error {
	// get account
	account, err := t.Account(key)
	if err != nil {
		return err
	}

	// check overflow
	if account.balance > math.MaxUint64-amount {
		return fail(ArithmeticOverflow, "account %s would overflow minting %d", key, amount)
	}

	// credit
	account.balance += amount
	account.dirty = true

	return nil
}

// Commit will write all modified accounts in load order.
func (t *Transaction) Commit() error {
	for _, key := range t.order {
		// get account
		account := t.accounts[key]
		if !account.dirty {
			continue
		}

		// store account
		err := t.storage.Store(key, encodeAccount(account.balance, account.data))
		if err != nil {
			return fmt.Errorf("failed to store account %s: %w", key, err)
		}

		// reset flag
		account.dirty = false
	}

	return nil
}
