package challenge

import (
	"testing"

	"github.com/256dpi/turing"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/256dpi/challenge/program"
)

func init() {
	turing.SetLogger(nil)
}

var testProgramID = program.Key{1, 2, 3}

func openBank(t *testing.T) *Bank {
	// open db
	db, err := OpenDB(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	// create bank
	bank, err := CreateBank(db, BankConfig{
		Prefix: "bank",
		Program: program.New(program.Config{
			ProgramID: testProgramID,
			Rent:      program.DefaultRent(),
		}, zaptest.NewLogger(t)),
	})
	require.NoError(t, err)

	return bank
}
