package challenge

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cockroachdb/pebble"

	"github.com/256dpi/challenge/program"
)

// BankConfig is used to configure a bank.
type BankConfig struct {
	// The prefix for all account keys.
	Prefix string

	// The program that executes instructions.
	Program *program.Program
}

// Bank stores accounts in a database and executes instructions against them.
// Every instruction runs in its own indexed batch that is only committed if
// the instruction succeeded.
type Bank struct {
	db      *DB
	prefix  []byte
	program *program.Program
	mutex   sync.Mutex
}

// CreateBank will create a bank that stores accounts in the provided db.
func CreateBank(db *DB, config BankConfig) (*Bank, error) {
	// check db
	if db == nil {
		panic("challenge: missing db")
	}

	// check program
	if config.Program == nil {
		panic("challenge: missing program")
	}

	// check prefix
	if config.Prefix == "" {
		return nil, fmt.Errorf("missing prefix")
	}

	return &Bank{
		db:      db,
		prefix:  append([]byte(config.Prefix), '#'),
		program: config.Program,
	}, nil
}

// Program returns the program used by the bank.
func (b *Bank) Program() *program.Program {
	return b.program
}

// Execute will execute the instruction with the provided signers. No account
// has been modified if an error is returned.
func (b *Bank) Execute(ins program.Instruction, signers ...program.Key) error {
	return b.update(func(tx *program.Transaction) error {
		return b.program.Execute(tx, ins)
	}, signers)
}

// Mint will credit the specified amount to the account.
func (b *Bank) Mint(key program.Key, amount uint64) error {
	return b.update(func(tx *program.Transaction) error {
		return tx.Mint(key, amount)
	}, nil)
}

// Balance returns the balance of the specified account.
func (b *Bank) Balance(key program.Key) (uint64, error) {
	// get account
	var balance uint64
	err := b.view(func(tx *program.Transaction) error {
		account, err := tx.Account(key)
		if err != nil {
			return err
		}

		balance = account.Balance()

		return nil
	})
	if err != nil {
		return 0, err
	}

	return balance, nil
}

// Challenge returns the challenge of the specified authority.
func (b *Bank) Challenge(authority program.Key) (*program.Challenge, error) {
	// load challenge
	var record *program.Challenge
	err := b.view(func(tx *program.Transaction) (err error) {
		record, err = b.program.LoadChallenge(tx, authority)
		return err
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (b *Bank) update(fn func(*program.Transaction) error, signers []program.Key) error {
	// acquire mutex
	b.mutex.Lock()
	defer b.mutex.Unlock()

	// prepare batch
	batch := b.db.NewIndexedBatch()
	defer batch.Close()

	// prepare transaction
	tx := program.NewTransaction(&batchStorage{bank: b, batch: batch}, signers...)

	// run function
	err := fn(tx)
	if err != nil {
		return err
	}

	// stage accounts
	err = tx.Commit()
	if err != nil {
		return err
	}

	// commit batch
	err = batch.Commit(defaultWriteOptions)
	if err != nil {
		return err
	}

	return nil
}

func (b *Bank) view(fn func(*program.Transaction) error) error {
	// acquire mutex
	b.mutex.Lock()
	defer b.mutex.Unlock()

	// prepare batch
	batch := b.db.NewIndexedBatch()
	defer batch.Close()

	return fn(program.NewTransaction(&batchStorage{bank: b, batch: batch}))
}

func (b *Bank) makeKey(key program.Key) []byte {
	buf := make([]byte, 0, len(b.prefix)+program.KeySize)
	buf = append(buf, b.prefix...)
	buf = append(buf, key[:]...)
	return buf
}

type batchStorage struct {
	bank  *Bank
	batch *pebble.Batch
}

func (s *batchStorage) Load(key program.Key) ([]byte, bool, error) {
	// get value
	value, closer, err := s.batch.Get(s.bank.makeKey(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}

	// copy value
	value = append([]byte(nil), value...)

	// close value
	err = closer.Close()
	if err != nil {
		return nil, false, err
	}

	return value, true, nil
}

func (s *batchStorage) Store(key program.Key, value []byte) error {
	return s.batch.Set(s.bank.makeKey(key), value, nil)
}
