package program

import "go.uber.org/zap"

// A wrong guess still consumes a try and commits. Only a correct guess moves
// the balance above the challenge minimum to the redeem account.
func (r *Redeem) execute(p *Program, tx *Transaction) error {
	// get accounts
	participant, err := tx.Account(r.Participant)
	if err != nil {
		return err
	}
	challenge, err := tx.Account(r.Challenge)
	if err != nil {
		return err
	}
	admission, err := tx.Account(r.Admission)
	if err != nil {
		return err
	}
	redeem, err := tx.Account(r.Redeem)
	if err != nil {
		return err
	}

	// check signer
	err = AssertIsSigner(participant, "participant")
	if err != nil {
		return err
	}

	// check addresses
	expected, _ := p.ChallengeAddress(r.Authority)
	err = AssertKeysEqual(challenge.Key(), expected, "challenge address")
	if err != nil {
		return err
	}
	expected, _ = p.AdmissionAddress(challenge.Key(), participant.Key())
	err = AssertKeysEqual(admission.Key(), expected, "admission address")
	if err != nil {
		return err
	}

	// check accounts
	err = AssertAccountIsFundedAndHasData(challenge)
	if err != nil {
		return err
	}
	err = AssertAccountIsFundedAndHasData(admission)
	if err != nil {
		return err
	}

	// decode record and ticket
	record, err := DecodeChallenge(challenge.Data())
	if err != nil {
		return err
	}
	ticket, err := DecodeAdmission(admission.Data())
	if err != nil {
		return err
	}

	// check ticket and destination
	err = AssertKeysEqual(ticket.Participant, participant.Key(), "admission participant")
	if err != nil {
		return err
	}
	err = AssertKeysEqual(redeem.Key(), record.Redeem, "redeem account")
	if err != nil {
		return err
	}

	// check tries
	if ticket.Tries == 0 {
		return fail(NoTriesLeft, "participant %s has no tries left for challenge %s", participant.Key(), challenge.Key())
	}

	// check guess
	solved := record.HasSolution(HashSolution(r.Solution))

	// compute reward
	var reward uint64
	if minimum := p.config.Rent.MinimumBalance(challenge.DataLen()); solved && challenge.Balance() > minimum {
		reward = challenge.Balance() - minimum
	}

	// pay reward
	err = challenge.Transfer(redeem, reward)
	if err != nil {
		return err
	}

	// consume try
	ticket.Tries--
	err = admission.Write(ticket.Encode())
	if err != nil {
		return err
	}

	// set result
	r.Solved = solved
	r.Reward = reward
	r.Tries = ticket.Tries

	p.logger.Debug("guess redeemed",
		zap.Stringer("challenge", challenge.Key()),
		zap.Stringer("participant", participant.Key()),
		zap.Bool("solved", solved),
		zap.Uint64("reward", reward),
		zap.Uint8("tries", ticket.Tries))

	return nil
}
