package program

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type memoryStorage map[Key][]byte

func (s memoryStorage) Load(key Key) ([]byte, bool, error) {
	value, ok := s[key]
	return value, ok, nil
}

func (s memoryStorage) Store(key Key, value []byte) error {
	s[key] = append([]byte(nil), value...)
	return nil
}

var testProgramID = Key{1, 2, 3}

func newProgram(t *testing.T) *Program {
	return New(Config{
		ProgramID: testProgramID,
		Rent:      DefaultRent(),
	}, zaptest.NewLogger(t))
}

func newKey(t *testing.T) Key {
	key, _, err := GenerateKey(nil)
	require.NoError(t, err)
	return key
}

// run executes the instruction like a host would: signed by the provided
// keys, committed only on success.
func run(p *Program, storage Storage, ins Instruction, signers ...Key) error {
	// prepare transaction
	tx := NewTransaction(storage, signers...)

	// execute
	err := p.Execute(tx, ins)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func mint(t *testing.T, storage Storage, key Key, amount uint64) {
	tx := NewTransaction(storage)
	require.NoError(t, tx.Mint(key, amount))
	require.NoError(t, tx.Commit())
}

func account(t *testing.T, storage Storage, key Key) *Account {
	acc, err := NewTransaction(storage).Account(key)
	require.NoError(t, err)
	return acc
}

func load(t *testing.T, p *Program, storage Storage, authority Key) *Challenge {
	record, err := p.LoadChallenge(NewTransaction(storage), authority)
	require.NoError(t, err)
	return record
}

// create stores a challenge for the authority paid by the authority.
func create(t *testing.T, p *Program, storage Storage, authority Key, solutions []string) *Account {
	mint(t, storage, authority, 1_000_000_000)
	ins := p.NewCreateChallenge(authority, authority, 200, 1, Key{9}, solutions)
	require.NoError(t, run(p, storage, ins, authority))
	return account(t, storage, ins.Challenge)
}
