package program

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmit(t *testing.T) {
	p := newProgram(t)
	storage := memoryStorage{}

	creator := newKey(t)
	participant := newKey(t)
	challenge := create(t, p, storage, creator, []string{"hola"})
	mint(t, storage, participant, 1_000_000_000)

	ins := p.NewAdmit(participant, creator)
	require.NoError(t, run(p, storage, ins, participant))
	assert.Equal(t, uint8(1), ins.Tries)

	record := load(t, p, storage, creator)
	assert.Equal(t, uint64(1), record.Solving)
	assert.Equal(t, HashSolutions([]string{"hola"}), record.Solutions)

	ticket := account(t, storage, ins.Admission)
	assert.Equal(t, AdmissionSize, ticket.DataLen())
	assert.Equal(t, p.Rent().MinimumBalance(AdmissionSize), ticket.Balance())

	admission, err := DecodeAdmission(ticket.Data())
	require.NoError(t, err)
	assert.Equal(t, &Admission{
		Challenge:   challenge.Key(),
		Participant: participant,
		Tries:       1,
	}, admission)

	assert.Equal(t, challenge.Balance()+200, account(t, storage, challenge.Key()).Balance())
	assert.Equal(t, 1_000_000_000-200-ticket.Balance(), account(t, storage, participant).Balance())

	// second admission accumulates tries
	ins = p.NewAdmit(participant, creator)
	require.NoError(t, run(p, storage, ins, participant))
	assert.Equal(t, uint8(2), ins.Tries)
	assert.Equal(t, uint64(2), load(t, p, storage, creator).Solving)
	assert.Equal(t, challenge.Balance()+400, account(t, storage, challenge.Key()).Balance())
}

func TestAdmitMissingSignature(t *testing.T) {
	p := newProgram(t)
	storage := memoryStorage{}

	creator := newKey(t)
	participant := newKey(t)
	create(t, p, storage, creator, nil)
	mint(t, storage, participant, 1_000_000_000)

	err := run(p, storage, p.NewAdmit(participant, creator), creator)
	assert.Equal(t, MissingSignature, KindOf(err))
	assert.Equal(t, uint64(0), load(t, p, storage, creator).Solving)
}

func TestAdmitUninitialized(t *testing.T) {
	p := newProgram(t)
	storage := memoryStorage{}

	creator := newKey(t)
	participant := newKey(t)
	mint(t, storage, participant, 1_000_000_000)

	err := run(p, storage, p.NewAdmit(participant, creator), participant)
	assert.Equal(t, UninitializedAccount, KindOf(err))
}

func TestAdmitWrongAdmission(t *testing.T) {
	p := newProgram(t)
	storage := memoryStorage{}

	creator := newKey(t)
	participant := newKey(t)
	create(t, p, storage, creator, nil)
	mint(t, storage, participant, 1_000_000_000)

	ins := p.NewAdmit(participant, creator)
	ins.Admission = newKey(t)

	err := run(p, storage, ins, participant)
	assert.Equal(t, KeyMismatch, KindOf(err))
}

func TestAdmitInsufficientFunds(t *testing.T) {
	p := newProgram(t)
	storage := memoryStorage{}

	creator := newKey(t)
	participant := newKey(t)
	create(t, p, storage, creator, nil)
	mint(t, storage, participant, p.Rent().MinimumBalance(AdmissionSize)+199)

	ins := p.NewAdmit(participant, creator)
	err := run(p, storage, ins, participant)
	assert.Equal(t, InsufficientFunds, KindOf(err))
	assert.Equal(t, 0, account(t, storage, ins.Admission).DataLen())
	assert.Equal(t, uint64(0), load(t, p, storage, creator).Solving)
}

func TestAdmitTriesOverflow(t *testing.T) {
	p := newProgram(t)
	storage := memoryStorage{}

	creator := newKey(t)
	participant := newKey(t)
	mint(t, storage, creator, 1_000_000_000)
	mint(t, storage, participant, 1_000_000_000)

	ins := p.NewCreateChallenge(creator, creator, 0, 200, Key{}, nil)
	require.NoError(t, run(p, storage, ins, creator))

	require.NoError(t, run(p, storage, p.NewAdmit(participant, creator), participant))

	err := run(p, storage, p.NewAdmit(participant, creator), participant)
	assert.Equal(t, ArithmeticOverflow, KindOf(err))
	assert.Equal(t, uint64(1), load(t, p, storage, creator).Solving)
}

func TestAdmitChallengeAsParticipant(t *testing.T) {
	p := newProgram(t)
	storage := memoryStorage{}

	creator := newKey(t)
	challenge := create(t, p, storage, creator, []string{"hola"})

	err := run(p, storage, p.NewAdmit(challenge.Key(), creator), challenge.Key())
	assert.Equal(t, InvalidArgument, KindOf(err))

	assert.Equal(t, uint64(0), load(t, p, storage, creator).Solving)
	assert.Equal(t, challenge.Balance(), account(t, storage, challenge.Key()).Balance())
}
