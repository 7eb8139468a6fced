package inbox_test

import (
	"math/big"
	"testing"

	"github.com/base-org/forcer/internal/core"
	"github.com/base-org/forcer/internal/inbox"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chainOf ... Builds n correctly chained messages starting at sequence number from
func chainOf(from uint64, prevAcc common.Hash, n int) []core.DelayedMessage {
	batch := make([]core.DelayedMessage, n)
	acc := prevAcc

	for i := range batch {
		payload := []byte{0x01, byte(i)}
		batch[i] = core.DelayedMessage{
			SequenceNumber: from + uint64(i),
			Timestamp:      1_700_000_000 + uint64(i),
			BlockNumber:    100 + uint64(i),
			Sender:         testSender,
			PayloadHash:    crypto.Keccak256Hash(payload),
			Kind:           core.MessageKindL2Message,
			BaseFeeL1:      big.NewInt(1),
			BeforeInboxAcc: acc,
			Payload:        payload,
		}
		acc = batch[i].AfterInboxAcc()
	}
	return batch
}

func Test_VerifyBatch(t *testing.T) {
	anchor := crypto.Keccak256Hash([]byte("anchor"))

	var tests = []struct {
		name     string
		batch    func() []core.DelayedMessage
		from     uint64
		prevAcc  common.Hash
		expected error
	}{
		{
			name:    "Valid chain from genesis",
			batch:   func() []core.DelayedMessage { return chainOf(0, common.Hash{}, 4) },
			from:    0,
			prevAcc: common.Hash{},
		},
		{
			name:    "Valid chain from anchor",
			batch:   func() []core.DelayedMessage { return chainOf(7, anchor, 3) },
			from:    7,
			prevAcc: anchor,
		},
		{
			name: "Reordered messages",
			batch: func() []core.DelayedMessage {
				batch := chainOf(0, common.Hash{}, 3)
				batch[1], batch[2] = batch[2], batch[1]
				return batch
			},
			from:     0,
			prevAcc:  common.Hash{},
			expected: core.ErrAccumulatorMismatch,
		},
		{
			name: "Truncated head",
			batch: func() []core.DelayedMessage {
				return chainOf(0, common.Hash{}, 3)[1:]
			},
			from:     0,
			prevAcc:  common.Hash{},
			expected: core.ErrAccumulatorMismatch,
		},
		{
			name:     "Wrong anchor",
			batch:    func() []core.DelayedMessage { return chainOf(7, anchor, 2) },
			from:     7,
			prevAcc:  common.Hash{},
			expected: core.ErrAccumulatorMismatch,
		},
		{
			name: "Payload does not match committed hash",
			batch: func() []core.DelayedMessage {
				batch := chainOf(0, common.Hash{}, 2)
				batch[1].Payload = []byte{0xff}
				return batch
			},
			from:     0,
			prevAcc:  common.Hash{},
			expected: core.ErrAccumulatorMismatch,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			batch := tc.batch()

			acc, err := inbox.VerifyBatch(batch, tc.from, tc.prevAcc)
			if tc.expected != nil {
				assert.ErrorIs(t, err, tc.expected)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, batch[len(batch)-1].AfterInboxAcc(), acc)
			assert.Equal(t, acc, inbox.ComputeAccumulator(tc.prevAcc, batch))
		})
	}
}

func Test_ComputeAccumulator_Empty(t *testing.T) {
	anchor := crypto.Keccak256Hash([]byte("anchor"))
	assert.Equal(t, anchor, inbox.ComputeAccumulator(anchor, nil))
}
