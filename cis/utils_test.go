package cis

import (
	"github.com/256dpi/turing"
	"github.com/256dpi/turing/stdset"

	"github.com/256dpi/challenge/program"
)

var testProgram = program.New(program.Config{
	ProgramID: program.Key{1, 2, 3},
	Rent:      program.DefaultRent(),
}, nil)

func init() {
	turing.SetLogger(nil)
	Configure(testProgram)
}

func startMachine() *turing.Machine {
	return turing.Test(
		&CreateChallenge{}, &AddSolutions{}, &Admit{}, &Redeem{},
		&Mint{}, &Inspect{}, &stdset.Map{},
	)
}

func inspect(m *turing.Machine, key, authority program.Key) *Inspect {
	// read account
	ins := &Inspect{Key: key, Authority: authority}
	err := m.Execute(ins)
	if err != nil {
		panic(err)
	}

	return ins
}

func dump(m *turing.Machine) map[string]int {
	// map keys
	mp := &stdset.Map{}
	err := m.Execute(mp)
	if err != nil {
		panic(err)
	}

	// collect sizes
	data := map[string]int{}
	for key, value := range mp.Pairs {
		data[key] = len(value)
	}

	return data
}

func accountKey(key program.Key) string {
	return string(accountPrefix) + string(key[:])
}
