package inbox

import (
	"fmt"

	"github.com/base-org/forcer/internal/core"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ComputeAccumulator ... Folds every message of the batch into prevAcc
func ComputeAccumulator(prevAcc common.Hash, batch []core.DelayedMessage) common.Hash {
	acc := prevAcc
	for i := range batch {
		acc = core.AccumulateInboxMessage(acc, batch[i].Hash())
	}
	return acc
}

// VerifyBatch ... Checks that batch is the contiguous run of messages starting at from, that each
// payload matches its committed hash and that every message chains onto the accumulator before it.
// Returns the accumulator after the last message
func VerifyBatch(batch []core.DelayedMessage, from uint64, prevAcc common.Hash) (common.Hash, error) {
	acc := prevAcc
	for i := range batch {
		msg := &batch[i]

		if expected := from + uint64(i); msg.SequenceNumber != expected {
			return common.Hash{}, fmt.Errorf("%w: expected message %d at position %d, found %d",
				core.ErrAccumulatorMismatch, expected, i, msg.SequenceNumber)
		}

		if msg.BeforeInboxAcc != acc {
			return common.Hash{}, fmt.Errorf("%w: message %d chains onto %s, expected %s",
				core.ErrAccumulatorMismatch, msg.SequenceNumber, msg.BeforeInboxAcc, acc)
		}

		if msg.Payload != nil {
			if payloadHash := crypto.Keccak256Hash(msg.Payload); payloadHash != msg.PayloadHash {
				return common.Hash{}, fmt.Errorf("%w: payload of message %d hashes to %s, committed %s",
					core.ErrAccumulatorMismatch, msg.SequenceNumber, payloadHash, msg.PayloadHash)
			}
		}

		acc = core.AccumulateInboxMessage(acc, msg.Hash())
	}

	return acc, nil
}
