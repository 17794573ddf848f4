package cis

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/256dpi/challenge/program"
)

func TestChallengeLifecycle(t *testing.T) {
	m := startMachine()
	defer m.Stop()

	creator := program.Key{10}
	participant := program.Key{11}
	target := program.Key{12}

	// fund

	err := m.Execute(&Mint{Key: creator, Amount: 1_000_000_000})
	assert.NoError(t, err)

	err = m.Execute(&Mint{Key: participant, Amount: 1_000_000_000})
	assert.NoError(t, err)

	assert.Equal(t, uint64(1_000_000_000), inspect(m, creator, program.Key{}).Balance)

	// create

	create := &CreateChallenge{
		CreateChallenge: *testProgram.NewCreateChallenge(creator, creator, 500, 1, target, []string{"hola"}),
		Signed:          []program.Key{creator},
	}
	err = m.Execute(create)
	assert.NoError(t, err)

	state := inspect(m, program.Key{}, creator)
	assert.Equal(t, create.Challenge, state.Key)
	assert.Equal(t, testProgram.Rent().MinimumBalance(program.NeededSize(1)), state.Balance)
	require.NotNil(t, state.Challenge)
	assert.Equal(t, creator, state.Challenge.Authority)
	assert.Equal(t, program.HashSolutions([]string{"hola"}), state.Challenge.Solutions)

	// add

	add := &AddSolutions{
		AddSolutions: *testProgram.NewAddSolutions(creator, creator, []string{"mundo"}),
		Signed:       []program.Key{creator},
	}
	err = m.Execute(add)
	assert.NoError(t, err)

	state = inspect(m, program.Key{}, creator)
	assert.Equal(t, program.HashSolutions([]string{"hola", "mundo"}), state.Challenge.Solutions)
	assert.Equal(t, testProgram.Rent().MinimumBalance(program.NeededSize(2)), state.Balance)

	// admit

	admit := &Admit{
		Admit:  *testProgram.NewAdmit(participant, creator),
		Signed: []program.Key{participant},
	}
	err = m.Execute(admit)
	assert.NoError(t, err)

	state = inspect(m, program.Key{}, creator)
	assert.Equal(t, uint64(1), state.Challenge.Solving)
	assert.Equal(t, testProgram.Rent().MinimumBalance(program.NeededSize(2))+500, state.Balance)

	assert.Equal(t, map[string]int{
		accountKey(creator):          8,
		accountKey(participant):      8,
		accountKey(create.Challenge): 8 + program.NeededSize(2),
		accountKey(admit.Admission):  8 + program.AdmissionSize,
	}, dump(m))

	// redeem

	redeem := &Redeem{
		Redeem: *testProgram.NewRedeem(participant, creator, target, "mundo"),
		Signed: []program.Key{participant},
	}
	err = m.Execute(redeem)
	assert.NoError(t, err)

	assert.Equal(t, uint64(500), inspect(m, target, program.Key{}).Balance)

	state = inspect(m, program.Key{}, creator)
	assert.Equal(t, testProgram.Rent().MinimumBalance(program.NeededSize(2)), state.Balance)
}

func TestFailedInstructionLeavesMemory(t *testing.T) {
	m := startMachine()
	defer m.Stop()

	creator := program.Key{10}

	err := m.Execute(&Mint{Key: creator, Amount: 1_000})
	assert.NoError(t, err)

	before := dump(m)

	// too little funding for the record
	err = m.Execute(&CreateChallenge{
		CreateChallenge: *testProgram.NewCreateChallenge(creator, creator, 500, 1, creator, []string{"hola"}),
		Signed:          []program.Key{creator},
	})
	assert.Error(t, err)
	assert.Equal(t, before, dump(m))
	assert.Equal(t, uint64(1_000), inspect(m, creator, program.Key{}).Balance)

	// missing signature
	err = m.Execute(&CreateChallenge{
		CreateChallenge: *testProgram.NewCreateChallenge(creator, creator, 500, 1, creator, []string{"hola"}),
	})
	assert.Error(t, err)
	assert.Equal(t, before, dump(m))
}

func TestInspectUninitialized(t *testing.T) {
	m := startMachine()
	defer m.Stop()

	ins := &Inspect{Key: program.Key{7}}
	err := m.Execute(ins)
	assert.NoError(t, err)
	assert.Equal(t, uint64(0), ins.Balance)
	assert.Nil(t, ins.Challenge)

	err = m.Execute(&Inspect{Authority: program.Key{7}})
	assert.Error(t, err)
}

func TestInstructionCoding(t *testing.T) {
	redeem := &Redeem{
		Redeem: program.Redeem{
			Participant: program.Key{1},
			Authority:   program.Key{2},
			Challenge:   program.Key{3},
			Admission:   program.Key{4},
			Redeem:      program.Key{5},
			Solution:    "hola",
			Solved:      true,
			Reward:      42,
			Tries:       3,
		},
		Signed: []program.Key{{1}},
	}

	bytes, ref, err := redeem.Encode()
	require.NoError(t, err)

	var decoded Redeem
	err = decoded.Decode(bytes)
	require.NoError(t, err)
	ref.Release()

	assert.Equal(t, redeem, &decoded)

	ins := &Inspect{
		Key:     program.Key{1},
		Balance: 7,
		Challenge: &program.Challenge{
			Authority:     program.Key{2},
			TriesPerAdmit: 1,
			Solutions:     program.HashSolutions([]string{"hola"}),
		},
	}

	bytes, ref, err = ins.Encode()
	require.NoError(t, err)

	var result Inspect
	err = result.Decode(bytes)
	require.NoError(t, err)
	ref.Release()

	assert.Equal(t, ins, &result)

	err = decoded.Decode([]byte{2})
	assert.Error(t, err)
}

func TestInstructionCodingLimits(t *testing.T) {
	// the largest list still round trips
	create := &CreateChallenge{
		CreateChallenge: program.CreateChallenge{Solutions: make([]string, math.MaxUint16)},
	}

	bytes, ref, err := create.Encode()
	require.NoError(t, err)

	var decoded CreateChallenge
	err = decoded.Decode(bytes)
	require.NoError(t, err)
	ref.Release()
	assert.Len(t, decoded.Solutions, math.MaxUint16)

	// longer lists are not truncated
	create.Solutions = make([]string, math.MaxUint16+3)
	_, _, err = create.Encode()
	assert.Error(t, err)

	add := &AddSolutions{
		AddSolutions: program.AddSolutions{Solutions: make([]string, math.MaxUint16+1)},
	}
	_, _, err = add.Encode()
	assert.Error(t, err)

	// long solutions are rejected
	long := strings.Repeat("x", math.MaxUint16+1)
	add.Solutions = []string{long}
	_, _, err = add.Encode()
	assert.Error(t, err)

	redeem := &Redeem{Redeem: program.Redeem{Solution: long}}
	_, _, err = redeem.Encode()
	assert.Error(t, err)

	// too many signers
	admit := &Admit{Signed: make([]program.Key, math.MaxUint8+1)}
	_, _, err = admit.Encode()
	assert.Error(t, err)
}
