// Package challenge hosts the challenge program on a local database and
// exposes its instructions for turing machines.
package challenge

import (
	"github.com/256dpi/turing"

	"github.com/256dpi/challenge/cis"
)

// Instructions are the turing instructions of the challenge program. The
// program must be set with cis.Configure before a machine executes them.
var Instructions = []turing.Instruction{
	&cis.CreateChallenge{}, &cis.AddSolutions{}, &cis.Admit{}, &cis.Redeem{},
	&cis.Mint{}, &cis.Inspect{},
}
