package challenge

import (
	"testing"

	"github.com/256dpi/turing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/256dpi/challenge/cis"
	"github.com/256dpi/challenge/program"
)

func TestInstructions(t *testing.T) {
	prg := program.New(program.Config{
		ProgramID: testProgramID,
		Rent:      program.DefaultRent(),
	}, nil)
	cis.Configure(prg)

	m := turing.Test(Instructions...)
	defer m.Stop()

	creator := program.Key{10}

	err := m.Execute(&cis.Mint{Key: creator, Amount: 1_000_000_000})
	assert.NoError(t, err)

	err = m.Execute(&cis.CreateChallenge{
		CreateChallenge: *prg.NewCreateChallenge(creator, creator, 10, 1, creator, []string{"hola"}),
		Signed:          []program.Key{creator},
	})
	assert.NoError(t, err)

	inspect := &cis.Inspect{Authority: creator}
	err = m.Execute(inspect)
	require.NoError(t, err)
	require.NotNil(t, inspect.Challenge)
	assert.True(t, inspect.Challenge.HasSolution(program.HashSolution("hola")))
	assert.Equal(t, prg.Rent().MinimumBalance(program.NeededSize(1)), inspect.Balance)
}
