package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrProposalNotFound is returned when a proposal can't be resolved
	ErrProposalNotFound = errors.New("proposal not found")

	// ErrCourseNotFound is returned when a course can't be resolved
	ErrCourseNotFound = errors.New("course not found")

	// ErrEmptyTitle is returned when a proposal or course title is blank
	ErrEmptyTitle = errors.New("title must not be empty")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrVotingClosed is returned when a vote arrives after the proposal end time
	ErrVotingClosed = errors.New("voting period has ended")

	// ErrVotingNotEnded is returned when execution is attempted before the end time
	ErrVotingNotEnded = errors.New("voting period has not ended")

	// ErrAlreadyVoted is returned when a voter already has a vote on the proposal
	ErrAlreadyVoted = errors.New("already voted on this proposal")

	// ErrAlreadyExecuted is returned when a proposal was executed before
	ErrAlreadyExecuted = errors.New("proposal already executed")

	// ErrProposalNotPassing is returned when yes votes do not exceed no votes
	ErrProposalNotPassing = errors.New("proposal is not passing")

	// ErrInsufficientFunds is returned when the wallet can't cover a transfer
	ErrInsufficientFunds = errors.New("insufficient funds in wallet")

	// ErrReplicaUnavailable marks a transient replica failure, safe to retry
	ErrReplicaUnavailable = errors.New("replica store unavailable")

	// ErrReplicaRejected marks a permanent replica failure (constraint violation)
	ErrReplicaRejected = errors.New("replica store rejected record")
)

// DurationOutOfRangeErr is returned when a proposal duration falls outside
// the window the contract accepts.
type DurationOutOfRangeErr struct {
	Days int
}

func (e DurationOutOfRangeErr) Error() string {
	return fmt.Sprintf("voting period of %d days is outside the allowed %d-%d day window",
		e.Days, MinProposalDurationDays, MaxProposalDurationDays)
}

// ChainRejectedErr wraps a transaction revert. Nothing was persisted on-chain,
// so the action is safe to retry from scratch.
type ChainRejectedErr struct {
	Op     string
	Reason string
}

func (e ChainRejectedErr) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: transaction reverted", e.Op)
	}
	return fmt.Sprintf("%s: transaction reverted: %s", e.Op, e.Reason)
}

// ChainTimeoutErr is returned when a broadcast transaction is not confirmed
// within the configured wait. The transaction may still land later.
type ChainTimeoutErr struct {
	Op     string
	TxHash string
}

func (e ChainTimeoutErr) Error() string {
	return fmt.Sprintf("%s: timed out waiting for confirmation of %s", e.Op, e.TxHash)
}
