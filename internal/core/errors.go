package core

import (
	"errors"
)

var (
	// ErrChainUnavailable ... A ledger connection failed; transient, retry with backoff
	ErrChainUnavailable = errors.New("chain unavailable")
	// ErrSequenceOutOfRange ... A sequence number at or past the queue length was requested
	ErrSequenceOutOfRange = errors.New("sequence number out of range")
	// ErrAccumulatorMismatch ... A reconstructed batch does not hash to the on-chain accumulator
	ErrAccumulatorMismatch = errors.New("accumulator mismatch")
	// ErrSubmissionRejected ... The sequencer inbox refused the force inclusion call
	ErrSubmissionRejected = errors.New("submission rejected")
	// ErrAlreadyIncluded ... The read counter already covers the target; always paired
	// with ErrSubmissionRejected
	ErrAlreadyIncluded = errors.New("target already included")
	// ErrInclusionNotObserved ... A confirmed transaction did not advance the read counter
	ErrInclusionNotObserved = errors.New("inclusion not observed")
	// ErrConfirmationTimeout ... The receipt did not show up within the polling budget
	ErrConfirmationTimeout = errors.New("confirmation timeout")
)

// IsTransient ... Returns true if retrying the same invocation later may succeed
func IsTransient(err error) bool {
	return errors.Is(err, ErrChainUnavailable) || errors.Is(err, ErrConfirmationTimeout)
}

// IsBenign ... Returns true for the expected race where another party already
// forced the target
func IsBenign(err error) bool {
	return errors.Is(err, ErrAlreadyIncluded)
}

// IsFatal ... Returns true for outcomes that indicate a correctness problem and must be surfaced
func IsFatal(err error) bool {
	return errors.Is(err, ErrInclusionNotObserved) ||
		errors.Is(err, ErrAccumulatorMismatch) ||
		errors.Is(err, ErrSequenceOutOfRange)
}

// ErrorClass ... Short label for an error, used as metric and alert key
func ErrorClass(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrInclusionNotObserved):
		return "inclusion_not_observed"
	case errors.Is(err, ErrAccumulatorMismatch):
		return "accumulator_mismatch"
	case errors.Is(err, ErrSequenceOutOfRange):
		return "sequence_out_of_range"
	case errors.Is(err, ErrAlreadyIncluded):
		return "already_included"
	case errors.Is(err, ErrSubmissionRejected):
		return "submission_rejected"
	case errors.Is(err, ErrConfirmationTimeout):
		return "confirmation_timeout"
	case errors.Is(err, ErrChainUnavailable):
		return "chain_unavailable"
	}

	return UnknownType
}
