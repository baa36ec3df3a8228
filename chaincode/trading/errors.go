package main

import "errors"

// Validation and integrity failures surfaced by the trading operations.
// Store-layer failures are wrapped with context and propagated unchanged;
// they never alias one of these.
var (
	errDuplicateKey       = errors.New("key already in use")
	errNotFound           = errors.New("no record found")
	errUnknownOwner       = errors.New("owner does not exist")
	errUnknownParticipant = errors.New("participant does not exist")
	errUnknownAsset       = errors.New("asset does not exist")
	errNotOwner           = errors.New("transferer does not own asset")

	// errInconsistentState means the stored data itself violates the
	// ownership invariant: an asset names an owner whose holdings do not
	// include it. This is an integrity fault, not a bad request.
	errInconsistentState = errors.New("inconsistent state: owner holdings disagree with asset")
)
