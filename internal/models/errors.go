package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means a referenced bill, item or participant does not exist
	// or does not belong to the referenced bill.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState means the bill's lifecycle state forbids the operation.
	ErrInvalidState = errors.New("invalid bill state")

	// ErrAlreadyFinalized is returned by a second finalize of the same bill.
	ErrAlreadyFinalized = fmt.Errorf("%w: bill already finalized", ErrInvalidState)

	// ErrUnauthorized means the caller lacks the capability for a mutation.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvariantViolation signals data that breaks a bill invariant,
	// such as an unclaimed item on a bill without a payer.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrInvalidArgument is returned for malformed input.
	ErrInvalidArgument = errors.New("invalid argument")
)
