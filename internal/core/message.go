package core

import (
	"encoding/binary"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
)

// DelayedMessage ... A delayed inbox queue entry as appended by the L1 bridge
type DelayedMessage struct {
	SequenceNumber uint64         `json:"sequence_number"`
	Timestamp      uint64         `json:"timestamp"`
	BlockNumber    uint64         `json:"block_number"`
	Sender         common.Address `json:"sender"`
	PayloadHash    common.Hash    `json:"payload_hash"`

	ValueTransferred *big.Int `json:"value_transferred"`

	Kind           uint8          `json:"kind"`
	BaseFeeL1      *big.Int       `json:"base_fee_l1"`
	BeforeInboxAcc common.Hash    `json:"before_inbox_acc"`
	Inbox          common.Address `json:"inbox"`
	BlockHash      common.Hash    `json:"block_hash"`
	TxHash         common.Hash    `json:"tx_hash"`

	// Payload is only populated by batch reconstruction
	Payload []byte `json:"-"`
}

// Hash ... Returns the message hash committed into the delayed inbox accumulator:
// keccak(kind, sender, blockNumber, timestamp, sequenceNumber, baseFeeL1, payloadHash)
func (m *DelayedMessage) Hash() common.Hash {
	baseFee := m.BaseFeeL1
	if baseFee == nil {
		baseFee = common.Big0
	}

	return crypto.Keccak256Hash(
		[]byte{m.Kind},
		m.Sender.Bytes(),
		uint64ToBytes(m.BlockNumber),
		uint64ToBytes(m.Timestamp),
		math.U256Bytes(new(big.Int).SetUint64(m.SequenceNumber)),
		math.U256Bytes(new(big.Int).Set(baseFee)),
		m.PayloadHash.Bytes(),
	)
}

// AfterInboxAcc ... Returns the accumulator value once this message is appended
func (m *DelayedMessage) AfterInboxAcc() common.Hash {
	return AccumulateInboxMessage(m.BeforeInboxAcc, m.Hash())
}

// AccumulateInboxMessage ... Folds a message hash into an accumulator
func AccumulateInboxMessage(prevAcc, messageHash common.Hash) common.Hash {
	return crypto.Keccak256Hash(prevAcc.Bytes(), messageHash.Bytes())
}

func uint64ToBytes(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
