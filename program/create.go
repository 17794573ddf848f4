package program

import "go.uber.org/zap"

func (c *CreateChallenge) execute(p *Program, tx *Transaction) error {
	// get accounts
	payer, err := tx.Account(c.Payer)
	if err != nil {
		return err
	}
	authority, err := tx.Account(c.Authority)
	if err != nil {
		return err
	}
	challenge, err := tx.Account(c.Challenge)
	if err != nil {
		return err
	}

	// check signers
	err = AssertIsSigner(payer, "payer")
	if err != nil {
		return err
	}
	err = AssertIsSigner(authority, "authority")
	if err != nil {
		return err
	}

	// check address
	expected, _ := p.ChallengeAddress(authority.Key())
	err = AssertKeysEqual(challenge.Key(), expected, "challenge address")
	if err != nil {
		return err
	}

	// check payer
	err = AssertKeysDiffer(payer.Key(), challenge.Key(), "payer")
	if err != nil {
		return err
	}

	// check account
	err = AssertAccountHasNoData(challenge)
	if err != nil {
		return err
	}

	// check solutions
	err = AssertMaxSupportedSolutions(c.Solutions)
	if err != nil {
		return err
	}

	// check tries
	if c.TriesPerAdmit == 0 {
		return fail(InvalidArgument, "tries per admit must be positive")
	}

	// prepare record
	record := &Challenge{
		Authority:     authority.Key(),
		AdmitCost:     c.AdmitCost,
		TriesPerAdmit: c.TriesPerAdmit,
		Redeem:        c.Redeem,
		Solving:       0,
		Solutions:     HashSolutions(c.Solutions),
	}

	// encode record
	data, err := record.Encode()
	if err != nil {
		return err
	}

	// compute funding
	var funding uint64
	if minimum := p.config.Rent.MinimumBalance(len(data)); minimum > challenge.Balance() {
		funding = minimum - challenge.Balance()
	}

	// fund account
	err = payer.Transfer(challenge, funding)
	if err != nil {
		return err
	}

	// allocate and write
	err = challenge.Allocate(len(data))
	if err != nil {
		return err
	}
	err = challenge.Write(data)
	if err != nil {
		return err
	}

	p.logger.Debug("challenge created",
		zap.Stringer("authority", authority.Key()),
		zap.Stringer("challenge", challenge.Key()),
		zap.Int("solutions", len(record.Solutions)),
		zap.Uint64("balance", challenge.Balance()))

	return nil
}
