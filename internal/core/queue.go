package core

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// QueueState ... Delayed queue length and the accumulator committing to entries 0..Count-1
type QueueState struct {
	Count       uint64      `json:"count"`
	Accumulator common.Hash `json:"accumulator"`
	BlockNumber uint64      `json:"block_number"`
}

// Empty ... Returns true if nothing was ever appended to the queue
func (qs QueueState) Empty() bool {
	return qs.Count == 0
}

// ChainHead ... L1 head used to evaluate eligibility windows
type ChainHead struct {
	Number    uint64 `json:"number"`
	Timestamp uint64 `json:"timestamp"`
}

// InclusionThreshold ... Maximum L1 blocks/seconds a message may sit unread before
// it can be force included
type InclusionThreshold struct {
	MaxBlockDelay uint64 `json:"max_block_delay"`
	MaxTimeDelay  uint64 `json:"max_time_delay"`

	FutureBlocks  uint64 `json:"future_blocks"`
	FutureSeconds uint64 `json:"future_seconds"`
}

// EligibleSet ... Prefix 0..Target of the queue that is old enough to be forced
type EligibleSet struct {
	Target uint64 `json:"target"`
}

// Count ... Number of entries in the eligible prefix
func (es EligibleSet) Count() uint64 {
	return es.Target + 1
}

// EligibilityReport ... Read-only snapshot of what a force inclusion would do
type EligibilityReport struct {
	Timestamp   time.Time          `json:"timestamp"`
	Queue       QueueState         `json:"queue"`
	Head        ChainHead          `json:"head"`
	Threshold   InclusionThreshold `json:"threshold"`
	ReadCounter uint64             `json:"read_counter"`

	// Eligible is nil when no entry satisfies the threshold
	Eligible *EligibleSet `json:"eligible,omitempty"`
	// Forceable is the number of eligible entries the sequencer has not read yet
	Forceable uint64 `json:"forceable"`
	Backlog   uint64 `json:"backlog"`
}
