// Package cis implements the instruction set used by the challenge package.
package cis

import (
	"sync"

	"github.com/256dpi/challenge/program"
)

/*
Account Layout

Every account is stored under "account#" followed by its 32 byte address. The
value holds the 8 byte big endian balance followed by the account data.

Instructions stage all account changes in a transaction and only write them to
the machine memory if the handler succeeded. A failed instruction therefore
leaves the memory untouched.
*/

var prg *program.Program
var prgMutex sync.RWMutex

// Configure sets the program that executes the instructions. It should be
// called once before the machine is started.
func Configure(p *program.Program) {
	// check program
	if p == nil {
		panic("cis: missing program")
	}

	// set program
	prgMutex.Lock()
	prg = p
	prgMutex.Unlock()
}

func current() *program.Program {
	// get program
	prgMutex.RLock()
	p := prg
	prgMutex.RUnlock()

	// check program
	if p == nil {
		panic("cis: program not configured")
	}

	return p
}
