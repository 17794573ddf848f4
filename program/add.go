package program

import "go.uber.org/zap"

// Appended fingerprints are not deduplicated. Adding a solution twice stores
// it twice and charges rent for both.
func (a *AddSolutions) execute(p *Program, tx *Transaction) error {
	// get accounts
	payer, err := tx.Account(a.Payer)
	if err != nil {
		return err
	}
	authority, err := tx.Account(a.Authority)
	if err != nil {
		return err
	}
	challenge, err := tx.Account(a.Challenge)
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

	// check input
	err = AssertAddingNonEmpty(a.Solutions)
	if err != nil {
		return err
	}

	// check account
	err = AssertAccountIsFundedAndHasData(challenge)
	if err != nil {
		return err
	}

	// decode record
	record, err := DecodeChallenge(challenge.Data())
	if err != nil {
		return err
	}

	// check owner
	err = AssertKeysEqual(record.Authority, authority.Key(), "challenge authority")
	if err != nil {
		return err
	}

	// check capacity
	err = AssertCanAddSolutions(record.Solutions, a.Solutions)
	if err != nil {
		return err
	}

	// append fingerprints
	oldSize := record.Size()
	record.Solutions = append(record.Solutions, HashSolutions(a.Solutions)...)
	newSize := record.Size()

	// encode record
	data, err := record.Encode()
	if err != nil {
		return err
	}

	// fund growth
	rent := p.config.Rent
	err = payer.Transfer(challenge, rent.MinimumBalance(newSize)-rent.MinimumBalance(oldSize))
	if err != nil {
		return err
	}

	// resize and write
	err = challenge.Resize(newSize)
	if err != nil {
		return err
	}
	err = challenge.Write(data)
	if err != nil {
		return err
	}

	p.logger.Debug("solutions added",
		zap.Stringer("challenge", challenge.Key()),
		zap.Int("added", len(a.Solutions)),
		zap.Int("solutions", len(record.Solutions)),
		zap.Uint64("balance", challenge.Balance()))

	return nil
}
