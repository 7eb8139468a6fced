package inbox

import (
	"context"
	"fmt"
	"math/big"

	"github.com/base-org/forcer/internal/bindings"
	"github.com/base-org/forcer/internal/core"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const (
	wordSize = 32

	// L2 message sub kinds carrying an explicit call value
	l2MessageKindUnsignedUserTx = 0
	l2MessageKindContractTx     = 1
)

// DecodeValue ... Returns the ETH value a delayed message moves onto L2, zero when the
// kind carries none or the payload is too short to hold it
func DecodeValue(kind uint8, payload []byte) *big.Int {
	switch kind {
	case core.MessageKindEthDeposit:
		// value only, or destination address followed by value
		if len(payload) == wordSize {
			return new(big.Int).SetBytes(payload)
		}
		if len(payload) == common.AddressLength+wordSize {
			return new(big.Int).SetBytes(payload[common.AddressLength:])
		}

	case core.MessageKindL2Message, core.MessageKindL2FundedByL1:
		if len(payload) == 0 {
			break
		}
		// gasLimit, maxFeePerGas, [nonce], to, value
		switch payload[0] {
		case l2MessageKindUnsignedUserTx:
			return word(payload[1:], 4)
		case l2MessageKindContractTx:
			return word(payload[1:], 3)
		}

	case core.MessageKindSubmitRetryable:
		// to, l2CallValue, deposit, ...
		return word(payload, 2)
	}

	return new(big.Int)
}

func word(data []byte, index int) *big.Int {
	start := index * wordSize
	if len(data) < start+wordSize {
		return new(big.Int)
	}
	return new(big.Int).SetBytes(data[start : start+wordSize])
}

// fillPayloads ... Attaches the payload of every message from the provider events emitted
// alongside it and decodes the transferred value. Messages without a payload are left untouched
func (r *Reconstructor) fillPayloads(ctx context.Context, batch []core.DelayedMessage) error {
	if len(batch) == 0 {
		return nil
	}

	bySeq := make(map[uint64]*core.DelayedMessage, len(batch))
	inboxes := make(map[common.Address]struct{})
	minBlock, maxBlock := batch[0].BlockNumber, batch[0].BlockNumber

	for i := range batch {
		msg := &batch[i]
		bySeq[msg.SequenceNumber] = msg
		inboxes[msg.Inbox] = struct{}{}

		if msg.BlockNumber < minBlock {
			minBlock = msg.BlockNumber
		}
		if msg.BlockNumber > maxBlock {
			maxBlock = msg.BlockNumber
		}
	}

	addresses := make([]common.Address, 0, len(inboxes))
	for addr := range inboxes {
		addresses = append(addresses, addr)
	}

	query := ethereum.FilterQuery{
		Addresses: addresses,
		Topics: [][]common.Hash{{
			bindings.InboxMessageDeliveredID,
			bindings.InboxMessageDeliveredFromOriginID,
		}},
	}

	for _, w := range blockWindows(minBlock, maxBlock, r.cfg.LogQueryRange) {
		query.FromBlock = new(big.Int).SetUint64(w.from)
		query.ToBlock = new(big.Int).SetUint64(w.to)

		logs, err := r.client.FilterLogs(ctx, query)
		if err != nil {
			return unavailable("filtering inbox message logs", err)
		}

		for _, log := range logs {
			if log.Removed || len(log.Topics) < 2 {
				continue
			}

			seq := new(big.Int).SetBytes(log.Topics[1].Bytes())
			if !seq.IsUint64() {
				continue
			}
			msg, ok := bySeq[seq.Uint64()]
			if !ok || msg.Inbox != log.Address {
				continue
			}

			payload, err := r.payloadFromLog(ctx, log)
			if err != nil {
				return err
			}

			msg.Payload = payload
			msg.ValueTransferred = DecodeValue(msg.Kind, payload)
		}
	}

	return nil
}

func (r *Reconstructor) payloadFromLog(ctx context.Context, log types.Log) ([]byte, error) {
	switch log.Topics[0] {
	case bindings.InboxMessageDeliveredID:
		event, err := r.provider.ParseInboxMessageDelivered(log)
		if err != nil {
			return nil, fmt.Errorf("parsing InboxMessageDelivered log in tx %s: %w", log.TxHash, err)
		}
		return event.Data, nil

	case bindings.InboxMessageDeliveredFromOriginID:
		tx, _, err := r.client.TransactionByHash(ctx, log.TxHash)
		if err != nil {
			return nil, unavailable(fmt.Sprintf("fetching origin tx %s", log.TxHash), err)
		}

		if tx.To() == nil || *tx.To() != log.Address {
			return nil, fmt.Errorf("%w: origin tx %s was not sent to inbox %s",
				core.ErrAccumulatorMismatch, log.TxHash, log.Address)
		}

		payload, err := bindings.UnpackSendL2MessageFromOrigin(tx.Data())
		if err != nil {
			return nil, fmt.Errorf("%w: decoding origin tx %s: %w", core.ErrAccumulatorMismatch, log.TxHash, err)
		}
		return payload, nil
	}

	return nil, fmt.Errorf("unexpected inbox event %s", log.Topics[0])
}
