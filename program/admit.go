package program

import (
	"math"

	"go.uber.org/zap"
)

func (a *Admit) execute(p *Program, tx *Transaction) error {
	// get accounts
	participant, err := tx.Account(a.Participant)
	if err != nil {
		return err
	}
	challenge, err := tx.Account(a.Challenge)
	if err != nil {
		return err
	}
	admission, err := tx.Account(a.Admission)
	if err != nil {
		return err
	}

	// check signer
	err = AssertIsSigner(participant, "participant")
	if err != nil {
		return err
	}

	// check addresses
	expected, _ := p.ChallengeAddress(a.Authority)
	err = AssertKeysEqual(challenge.Key(), expected, "challenge address")
	if err != nil {
		return err
	}
	expected, _ = p.AdmissionAddress(challenge.Key(), participant.Key())
	err = AssertKeysEqual(admission.Key(), expected, "admission address")
	if err != nil {
		return err
	}

	// check participant
	err = AssertKeysDiffer(participant.Key(), challenge.Key(), "participant")
	if err != nil {
		return err
	}
	err = AssertKeysDiffer(participant.Key(), admission.Key(), "participant")
	if err != nil {
		return err
	}

	// check challenge
	err = AssertAccountIsFundedAndHasData(challenge)
	if err != nil {
		return err
	}

	// decode record
	record, err := DecodeChallenge(challenge.Data())
	if err != nil {
		return err
	}

	// load or prepare ticket
	ticket := &Admission{
		Challenge:   challenge.Key(),
		Participant: participant.Key(),
	}
	if admission.DataLen() > 0 {
		ticket, err = DecodeAdmission(admission.Data())
		if err != nil {
			return err
		}
		err = AssertKeysEqual(ticket.Participant, participant.Key(), "admission participant")
		if err != nil {
			return err
		}
	}

	// check tries
	if int(ticket.Tries)+int(record.TriesPerAdmit) > math.MaxUint8 {
		return fail(ArithmeticOverflow, "admission holds %d tries, cannot add %d", ticket.Tries, record.TriesPerAdmit)
	}

	// check counter
	if record.Solving == math.MaxUint64 {
		return fail(ArithmeticOverflow, "challenge %s solving counter exhausted", challenge.Key())
	}

	// create ticket on first admission
	if admission.DataLen() == 0 {
		// fund ticket
		var funding uint64
		if minimum := p.config.Rent.MinimumBalance(AdmissionSize); minimum > admission.Balance() {
			funding = minimum - admission.Balance()
		}
		err = participant.Transfer(admission, funding)
		if err != nil {
			return err
		}

		// allocate ticket
		err = admission.Allocate(AdmissionSize)
		if err != nil {
			return err
		}
	}

	// pay admission
	err = participant.Transfer(challenge, record.AdmitCost)
	if err != nil {
		return err
	}

	// update ticket
	ticket.Tries += record.TriesPerAdmit
	err = admission.Write(ticket.Encode())
	if err != nil {
		return err
	}

	// update record
	record.Solving++
	data, err := record.Encode()
	if err != nil {
		return err
	}
	err = challenge.Write(data)
	if err != nil {
		return err
	}

	// set result
	a.Tries = ticket.Tries

	p.logger.Debug("participant admitted",
		zap.Stringer("challenge", challenge.Key()),
		zap.Stringer("participant", participant.Key()),
		zap.Uint8("tries", ticket.Tries),
		zap.Uint64("solving", record.Solving))

	return nil
}
