package core

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// TxStatus ... Lifecycle of a force inclusion transaction
type TxStatus uint8

const (
	TxConstructed TxStatus = iota
	TxSubmitted
	TxPending
	TxConfirmed
	TxReverted
)

func (s TxStatus) String() string {
	switch s {
	case TxConstructed:
		return "constructed"
	case TxSubmitted:
		return "submitted"
	case TxPending:
		return "pending"
	case TxConfirmed:
		return "confirmed"
	case TxReverted:
		return "reverted"
	}

	return UnknownType
}

// MarshalText ... Renders the status by name in JSON payloads
func (s TxStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText ... Parses a status rendered by MarshalText
func (s *TxStatus) UnmarshalText(text []byte) error {
	for status := TxConstructed; status <= TxReverted; status++ {
		if status.String() == string(text) {
			*s = status
			return nil
		}
	}

	return fmt.Errorf("unknown tx status %q", text)
}

// ForceInclusionTx ... A submitted forceInclusion call and what it is expected to achieve
type ForceInclusionTx struct {
	ID InvocationID `json:"id"`

	Target            uint64      `json:"target"`
	ExpectedReadCount uint64      `json:"expected_read_count"`
	PreviousReadCount uint64      `json:"previous_read_count"`
	BatchSize         int         `json:"batch_size"`
	Accumulator       common.Hash `json:"accumulator"`

	TxHash         common.Hash `json:"tx_hash"`
	Status         TxStatus    `json:"status"`
	SubmittedAt    time.Time   `json:"submitted_at"`
	ConfirmedBlock uint64      `json:"confirmed_block,omitempty"`

	// Tx is the signed transaction; not rendered
	Tx *types.Transaction `json:"-"`
}

// Pending ... Returns true while the outcome of the transaction is unknown
func (fit *ForceInclusionTx) Pending() bool {
	return fit.Status == TxSubmitted || fit.Status == TxPending
}
