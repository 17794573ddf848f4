package program

// Instruction is a state transition executed by a program.
type Instruction interface {
	// Name returns the instruction name.
	Name() string

	// Signers returns the keys that are expected to sign the instruction.
	Signers() []Key

	execute(p *Program, tx *Transaction) error
}

// CreateChallenge creates the challenge of an authority.
type CreateChallenge struct {
	// The account funding the challenge.
	Payer Key

	// The future owner of the challenge.
	Authority Key

	// The challenge address derived from the authority.
	Challenge Key

	// The challenge parameters.
	AdmitCost     uint64
	TriesPerAdmit uint8
	Redeem        Key

	// The initial solutions.
	Solutions []string
}

// NewCreateChallenge returns a create instruction with derived addresses.
func (p *Program) NewCreateChallenge(payer, authority Key, admitCost uint64, triesPerAdmit uint8, redeem Key, solutions []string) *CreateChallenge {
	challenge, _ := p.ChallengeAddress(authority)
	return &CreateChallenge{
		Payer:         payer,
		Authority:     authority,
		Challenge:     challenge,
		AdmitCost:     admitCost,
		TriesPerAdmit: triesPerAdmit,
		Redeem:        redeem,
		Solutions:     solutions,
	}
}

// Name implements the Instruction interface.
func (c *CreateChallenge) Name() string {
	return "CreateChallenge"
}

// Signers implements the Instruction interface.
func (c *CreateChallenge) Signers() []Key {
	return []Key{c.Payer, c.Authority}
}

// AddSolutions appends solutions to an existing challenge.
type AddSolutions struct {
	// The account funding the growth.
	Payer Key

	// The owner of the challenge.
	Authority Key

	// The challenge address derived from the authority.
	Challenge Key

	// The solutions to append.
	Solutions []string
}

// NewAddSolutions returns an add instruction with derived addresses.
func (p *Program) NewAddSolutions(payer, authority Key, solutions []string) *AddSolutions {
	challenge, _ := p.ChallengeAddress(authority)
	return &AddSolutions{
		Payer:     payer,
		Authority: authority,
		Challenge: challenge,
		Solutions: solutions,
	}
}

// Name implements the Instruction interface.
func (a *AddSolutions) Name() string {
	return "AddSolutions"
}

// Signers implements the Instruction interface.
func (a *AddSolutions) Signers() []Key {
	return []Key{a.Payer, a.Authority}
}

// Admit buys an admission to a challenge.
type Admit struct {
	// The paying participant.
	Participant Key

	// The owner of the challenge.
	Authority Key

	// The challenge and admission addresses.
	Challenge Key
	Admission Key

	// The remaining tries after the admission.
	Tries uint8
}

// NewAdmit returns an admit instruction with derived addresses.
func (p *Program) NewAdmit(participant, authority Key) *Admit {
	challenge, _ := p.ChallengeAddress(authority)
	admission, _ := p.AdmissionAddress(challenge, participant)
	return &Admit{
		Participant: participant,
		Authority:   authority,
		Challenge:   challenge,
		Admission:   admission,
	}
}

// Name implements the Instruction interface.
func (a *Admit) Name() string {
	return "Admit"
}

// Signers implements the Instruction interface.
func (a *Admit) Signers() []Key {
	return []Key{a.Participant}
}

// Redeem submits a guess and pays out the reward if it is correct.
type Redeem struct {
	// The guessing participant.
	Participant Key

	// The owner of the challenge.
	Authority Key

	// The challenge and admission addresses.
	Challenge Key
	Admission Key

	// The reward destination of the challenge.
	Redeem Key

	// The guess.
	Solution string

	// Whether the guess was correct.
	Solved bool

	// The transferred reward.
	Reward uint64

	// The remaining tries.
	Tries uint8
}

// NewRedeem returns a redeem instruction with derived addresses.
func (p *Program) NewRedeem(participant, authority, redeem Key, solution string) *Redeem {
	challenge, _ := p.ChallengeAddress(authority)
	admission, _ := p.AdmissionAddress(challenge, participant)
	return &Redeem{
		Participant: participant,
		Authority:   authority,
		Challenge:   challenge,
		Admission:   admission,
		Redeem:      redeem,
		Solution:    solution,
	}
}

// Name implements the Instruction interface.
func (r *Redeem) Name() string {
	return "Redeem"
}

// Signers implements the Instruction interface.
func (r *Redeem) Signers() []Key {
	return []Key{r.Participant}
}
