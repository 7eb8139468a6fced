// Package eligibility decides which delayed messages have waited long enough to be force included.
// Everything here is a pure function of explicitly passed chain head and threshold values.
package eligibility

import (
	"context"
	"sort"

	"github.com/base-org/forcer/internal/core"
)

// EntrySource ... Random access to delayed queue entries
type EntrySource interface {
	ReadEntry(ctx context.Context, seq uint64) (core.DelayedMessage, error)
}

// IsEligible ... Returns true when msg is at least MaxBlockDelay blocks and MaxTimeDelay seconds
// older than head. Both bounds must hold
func IsEligible(msg core.DelayedMessage, head core.ChainHead, th core.InclusionThreshold) bool {
	if head.Number < th.MaxBlockDelay || head.Timestamp < th.MaxTimeDelay {
		return false
	}

	return msg.BlockNumber <= head.Number-th.MaxBlockDelay &&
		msg.Timestamp <= head.Timestamp-th.MaxTimeDelay
}

// EligibleAt ... Returns the earliest head at which msg satisfies both bounds
func EligibleAt(msg core.DelayedMessage, th core.InclusionThreshold) core.ChainHead {
	return core.ChainHead{
		Number:    msg.BlockNumber + th.MaxBlockDelay,
		Timestamp: msg.Timestamp + th.MaxTimeDelay,
	}
}

// FindEligibleTarget ... Returns the highest eligible sequence number of the queue
func FindEligibleTarget(ctx context.Context, src EntrySource, state core.QueueState,
	head core.ChainHead, th core.InclusionThreshold) (uint64, bool, error) {
	return FindEligibleTargetFrom(ctx, src, 0, state, head, th)
}

// FindEligibleTargetFrom ... Binary searches [lo, count) for the highest eligible sequence number.
// Queue entries are appended in block and time order, so eligibility is monotone and a single
// ineligible entry bounds the search. ok is false when entry lo is not eligible
func FindEligibleTargetFrom(ctx context.Context, src EntrySource, lo uint64, state core.QueueState,
	head core.ChainHead, th core.InclusionThreshold) (uint64, bool, error) {
	if state.Empty() || lo >= state.Count {
		return 0, false, nil
	}

	eligible := func(seq uint64) (bool, error) {
		msg, err := src.ReadEntry(ctx, seq)
		if err != nil {
			return false, err
		}
		return IsEligible(msg, head, th), nil
	}

	ok, err := eligible(lo)
	if err != nil || !ok {
		return 0, false, err
	}

	// low is always eligible
	low, high := lo, state.Count-1
	for low < high {
		mid := low + (high-low+1)/2

		ok, err := eligible(mid)
		if err != nil {
			return 0, false, err
		}

		if ok {
			low = mid
		} else {
			high = mid - 1
		}
	}

	return low, true, nil
}

// EligiblePrefix ... In memory variant over entries already sorted by sequence number
func EligiblePrefix(entries []core.DelayedMessage, head core.ChainHead,
	th core.InclusionThreshold) (uint64, bool) {
	idx := sort.Search(len(entries), func(i int) bool {
		return !IsEligible(entries[i], head, th)
	})

	if idx == 0 {
		return 0, false
	}
	return entries[idx-1].SequenceNumber, true
}

// Backlog ... Number of queued messages the sequencer has not read yet
func Backlog(count, readCounter uint64) uint64 {
	if readCounter >= count {
		return 0
	}
	return count - readCounter
}
