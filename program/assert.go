package program

import "math"

// AssertKeysEqual fails with KeyMismatch if the provided key differs from the
// expected key.
func AssertKeysEqual(provided, expected Key, label string) error {
	if provided != expected {
		return fail(KeyMismatch, "%s: provided %s expected %s", label, provided, expected)
	}

	return nil
}

// AssertKeysDiffer fails with InvalidArgument if an account that pays is also
// the account receiving the payment.
func AssertKeysDiffer(from, to Key, label string) error {
	if from == to {
		return fail(InvalidArgument, "%s: account %s cannot pay itself", label, from)
	}

	return nil
}

// AssertMaxSupportedSolutions fails with CapacityExceeded if the list holds
// more than MaxSolutions items.
func AssertMaxSupportedSolutions[T any](solutions []T) error {
	if len(solutions) > MaxSolutions {
		return fail(CapacityExceeded, "solutions len (%d) is greater than maximum supported solutions (%d)", len(solutions), MaxSolutions)
	}

	return nil
}

// AssertCanAddSolutions fails with CapacityExceeded if appending the extra
// items to the current items would exceed MaxSolutions. The sum saturates
// instead of wrapping.
func AssertCanAddSolutions[T, U any](solutions []T, extra []U) error {
	// saturating add
	total := len(solutions) + len(extra)
	if total < len(solutions) {
		total = math.MaxInt
	}

	// check total
	if total > MaxSolutions {
		return fail(CapacityExceeded, "adding %d solutions would result in %d total solutions which exceeds max supported %d", len(extra), total, MaxSolutions)
	}

	return nil
}

// AssertAddingNonEmpty fails with EmptyInput if the list is empty.
func AssertAddingNonEmpty[T any](extra []T) error {
	if len(extra) == 0 {
		return fail(EmptyInput, "no solutions to add provided")
	}

	return nil
}

// AssertAccountIsFundedAndHasData fails with UninitializedAccount if the
// account has no data and with UnfundedAccount if it holds no balance. The
// data check runs first.
func AssertAccountIsFundedAndHasData(account *Account) error {
	if account.DataLen() == 0 {
		return fail(UninitializedAccount, "account %s has no data, was the challenge created?", account.Key())
	} else if account.Balance() < 1 {
		return fail(UnfundedAccount, "account %s is not funded, was the challenge created?", account.Key())
	}

	return nil
}

// AssertAccountHasNoData fails with AlreadyInitialized if the account holds
// data.
func AssertAccountHasNoData(account *Account) error {
	if account.DataLen() != 0 {
		return fail(AlreadyInitialized, "account %s already has %d bytes of data, was the challenge already created?", account.Key(), account.DataLen())
	}

	return nil
}

// AssertIsSigner fails with MissingSignature if the account did not sign the
// current transaction.
func AssertIsSigner(account *Account, label string) error {
	if !account.IsSigner() {
		return fail(MissingSignature, "account '%s' (%s) should be signer", label, account.Key())
	}

	return nil
}
