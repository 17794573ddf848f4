// Package program implements the challenge ledger account: validation,
// fingerprinting, the record layout and the instruction handlers.
package program

import (
	"math"
	"math/bits"

	"go.uber.org/zap"
)

// Rent defines the minimum balance an account needs to hold its data.
type Rent struct {
	// The bytes charged on top of the data of every account.
	Overhead uint64

	// The balance charged per byte.
	PerByte uint64
}

// DefaultRent returns the default rent.
func DefaultRent() Rent {
	return Rent{
		Overhead: 128,
		PerByte:  6960,
	}
}

// MinimumBalance returns the balance required for an account with the
// specified data size. The result saturates at math.MaxUint64.
func (r Rent) MinimumBalance(size int) uint64 {
	// add overhead
	bytes, carry := bits.Add64(r.Overhead, uint64(size), 0)
	if carry != 0 {
		return math.MaxUint64
	}

	// multiply
	hi, lo := bits.Mul64(bytes, r.PerByte)
	if hi != 0 {
		return math.MaxUint64
	}

	return lo
}

// Validate fails with InvalidArgument if the rent charges nothing or if the
// minimum balance of the largest record does not fit into a balance.
func (r Rent) Validate() error {
	// check per byte
	if r.PerByte == 0 {
		return fail(InvalidArgument, "rent per byte must be positive")
	}

	// check largest record
	if r.MinimumBalance(NeededSize(MaxSolutions)) == math.MaxUint64 {
		return fail(InvalidArgument, "rent overhead %d and per byte %d overflow the balance of a full record", r.Overhead, r.PerByte)
	}

	return nil
}

// Config is used to configure a program.
type Config struct {
	// The id used to derive addresses.
	ProgramID Key

	// The rent applied to created and grown accounts.
	Rent Rent
}

// Program executes instructions against transactions.
type Program struct {
	config Config
	logger *zap.Logger
}

// New will create and return a new program. A nil logger disables logging.
func New(config Config, logger *zap.Logger) *Program {
	// check id
	if config.ProgramID.IsZero() {
		panic("challenge: missing program id")
	}

	// check rent
	err := config.Rent.Validate()
	if err != nil {
		panic("challenge: " + err.Error())
	}

	// set default logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Program{
		config: config,
		logger: logger,
	}
}

// ID returns the program id.
func (p *Program) ID() Key {
	return p.config.ProgramID
}

// Rent returns the configured rent.
func (p *Program) Rent() Rent {
	return p.config.Rent
}

// ChallengeAddress returns the challenge address of the authority.
func (p *Program) ChallengeAddress(authority Key) (Key, uint8) {
	address, bump, err := FindAddress(p.config.ProgramID, ChallengeSeed, authority[:])
	if err != nil {
		panic(err)
	}

	return address, bump
}

// AdmissionAddress returns the admission address of a participant for the
// specified challenge.
func (p *Program) AdmissionAddress(challenge, participant Key) (Key, uint8) {
	address, bump, err := FindAddress(p.config.ProgramID, AdmissionSeed, challenge[:], participant[:])
	if err != nil {
		panic(err)
	}

	return address, bump
}

// Execute will run the instruction against the transaction. The transaction
// must be discarded if an error is returned.
func (p *Program) Execute(tx *Transaction, ins Instruction) error {
	// execute
	err := ins.execute(p, tx)
	if err != nil {
		p.logger.Warn("instruction failed",
			zap.String("instruction", ins.Name()),
			zap.Stringer("kind", KindOf(err)),
			zap.Error(err))
		return err
	}

	return nil
}

// LoadChallenge reads the challenge of the specified authority.
func (p *Program) LoadChallenge(tx *Transaction, authority Key) (*Challenge, error) {
	// get account
	address, _ := p.ChallengeAddress(authority)
	account, err := tx.Account(address)
	if err != nil {
		return nil, err
	}

	// check account
	err = AssertAccountIsFundedAndHasData(account)
	if err != nil {
		return nil, err
	}

	return DecodeChallenge(account.Data())
}
