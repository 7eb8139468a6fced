package inbox

import (
	"context"
	"fmt"
	"math/big"
	"sort"

	"github.com/base-org/forcer/internal/bindings"
	"github.com/base-org/forcer/internal/client"
	"github.com/base-org/forcer/internal/core"
	"github.com/base-org/forcer/internal/logging"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// Config ... Delayed inbox reader configuration
type Config struct {
	BridgeAddress         common.Address
	SequencerInboxAddress common.Address

	// DeployBlock is the first L1 block scanned for bridge events
	DeployBlock uint64
	// LogQueryRange caps the block span of a single eth_getLogs request; 0 is unbounded
	LogQueryRange uint64

	// Threshold overrides the sequencer inbox maxTimeVariation when set
	Threshold *core.InclusionThreshold
}

// Reader ... Read only view over the L1 delayed queue and the sequencer inbox read counter
type Reader interface {
	ReadQueueState(ctx context.Context) (core.QueueState, error)
	ReadEntry(ctx context.Context, seq uint64) (core.DelayedMessage, error)
	ReadEntriesInRange(ctx context.Context, lo, hi uint64) ([]core.DelayedMessage, error)

	Accumulator(ctx context.Context, seq uint64) (common.Hash, error)
	ReadCounter(ctx context.Context) (uint64, error)
	ReadCounterAt(ctx context.Context, block uint64) (uint64, error)
	Threshold(ctx context.Context) (core.InclusionThreshold, error)
	Head(ctx context.Context) (core.ChainHead, error)
}

// reader ... Reader implementation backed by an L1 json rpc client
type reader struct {
	cfg *Config

	client   client.EthClient
	bridge   *bindings.Bridge
	seqInbox *bindings.SequencerInbox
}

// NewReader ... Initializer
func NewReader(cfg *Config, l1Client client.EthClient) Reader {
	return &reader{
		cfg:      cfg,
		client:   l1Client,
		bridge:   bindings.NewBridge(cfg.BridgeAddress, l1Client),
		seqInbox: bindings.NewSequencerInbox(cfg.SequencerInboxAddress, l1Client),
	}
}

func unavailable(action string, err error) error {
	return fmt.Errorf("%w: %s: %w", core.ErrChainUnavailable, action, err)
}

// ReadQueueState ... Reads the queue length and tail accumulator pinned to a single L1 height
func (r *reader) ReadQueueState(ctx context.Context) (core.QueueState, error) {
	height, err := r.client.BlockNumber(ctx)
	if err != nil {
		return core.QueueState{}, unavailable("reading L1 height", err)
	}

	opts := &bind.CallOpts{Context: ctx, BlockNumber: new(big.Int).SetUint64(height)}
	count, err := r.bridge.DelayedMessageCount(opts)
	if err != nil {
		return core.QueueState{}, unavailable("reading delayed message count", err)
	}

	state := core.QueueState{Count: count.Uint64(), BlockNumber: height}
	if state.Empty() {
		return state, nil
	}

	acc, err := r.bridge.DelayedInboxAccs(opts, new(big.Int).SetUint64(state.Count-1))
	if err != nil {
		return core.QueueState{}, unavailable("reading delayed inbox accumulator", err)
	}
	state.Accumulator = acc

	return state, nil
}

func (r *reader) count(ctx context.Context) (uint64, error) {
	count, err := r.bridge.DelayedMessageCount(&bind.CallOpts{Context: ctx})
	if err != nil {
		return 0, unavailable("reading delayed message count", err)
	}
	return count.Uint64(), nil
}

func (r *reader) inRange(ctx context.Context, seq uint64) error {
	count, err := r.count(ctx)
	if err != nil {
		return err
	}

	if seq >= count {
		return fmt.Errorf("%w: message %d, queue length %d", core.ErrSequenceOutOfRange, seq, count)
	}
	return nil
}

// ReadEntry ... Reads a single queue entry from its MessageDelivered log
func (r *reader) ReadEntry(ctx context.Context, seq uint64) (core.DelayedMessage, error) {
	if err := r.inRange(ctx, seq); err != nil {
		return core.DelayedMessage{}, err
	}

	head, err := r.client.BlockNumber(ctx)
	if err != nil {
		return core.DelayedMessage{}, unavailable("reading L1 height", err)
	}

	query := ethereum.FilterQuery{
		Addresses: []common.Address{r.cfg.BridgeAddress},
		Topics: [][]common.Hash{
			{bindings.MessageDeliveredID},
			{common.BigToHash(new(big.Int).SetUint64(seq))},
		},
	}

	// Unread entries sit near the tail, so the newest windows are scanned first
	windows := blockWindows(r.cfg.DeployBlock, head, r.cfg.LogQueryRange)
	for i := len(windows) - 1; i >= 0; i-- {
		query.FromBlock = new(big.Int).SetUint64(windows[i].from)
		query.ToBlock = new(big.Int).SetUint64(windows[i].to)

		logs, err := r.client.FilterLogs(ctx, query)
		if err != nil {
			return core.DelayedMessage{}, unavailable("filtering MessageDelivered logs", err)
		}

		for _, log := range logs {
			if log.Removed {
				continue
			}

			msg, err := r.toMessage(log)
			if err != nil {
				return core.DelayedMessage{}, err
			}
			if msg.SequenceNumber == seq {
				return msg, nil
			}
		}
	}

	return core.DelayedMessage{}, fmt.Errorf("%w: no MessageDelivered log for message %d",
		core.ErrChainUnavailable, seq)
}

// ReadEntriesInRange ... Reads entries lo..hi inclusive ordered by sequence number.
// Gaps are not filled; batch reconstruction detects them against the accumulator
func (r *reader) ReadEntriesInRange(ctx context.Context, lo, hi uint64) ([]core.DelayedMessage, error) {
	if lo > hi {
		return nil, fmt.Errorf("%w: empty range [%d, %d]", core.ErrSequenceOutOfRange, lo, hi)
	}

	first, err := r.ReadEntry(ctx, lo)
	if err != nil {
		return nil, err
	}

	last := first
	if hi != lo {
		last, err = r.ReadEntry(ctx, hi)
		if err != nil {
			return nil, err
		}
	}

	found := make(map[uint64]core.DelayedMessage, hi-lo+1)
	query := ethereum.FilterQuery{
		Addresses: []common.Address{r.cfg.BridgeAddress},
		Topics:    [][]common.Hash{{bindings.MessageDeliveredID}},
	}

	for _, w := range blockWindows(first.BlockNumber, last.BlockNumber, r.cfg.LogQueryRange) {
		query.FromBlock = new(big.Int).SetUint64(w.from)
		query.ToBlock = new(big.Int).SetUint64(w.to)

		logs, err := r.client.FilterLogs(ctx, query)
		if err != nil {
			return nil, unavailable("filtering MessageDelivered logs", err)
		}

		for _, log := range logs {
			if log.Removed {
				continue
			}

			msg, err := r.toMessage(log)
			if err != nil {
				return nil, err
			}
			if msg.SequenceNumber >= lo && msg.SequenceNumber <= hi {
				found[msg.SequenceNumber] = msg
			}
		}
	}

	entries := make([]core.DelayedMessage, 0, len(found))
	for _, msg := range found {
		entries = append(entries, msg)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].SequenceNumber < entries[j].SequenceNumber
	})

	logging.WithContext(ctx).Debug("Read delayed messages",
		zap.Uint64("from", lo), zap.Uint64("to", hi), zap.Int("found", len(entries)))

	return entries, nil
}

// Accumulator ... Returns the on-chain accumulator committing to entries 0..seq
func (r *reader) Accumulator(ctx context.Context, seq uint64) (common.Hash, error) {
	if err := r.inRange(ctx, seq); err != nil {
		return common.Hash{}, err
	}

	acc, err := r.bridge.DelayedInboxAccs(&bind.CallOpts{Context: ctx}, new(big.Int).SetUint64(seq))
	if err != nil {
		return common.Hash{}, unavailable("reading delayed inbox accumulator", err)
	}
	return acc, nil
}

// ReadCounter ... Returns the number of delayed messages the sequencer inbox has read
func (r *reader) ReadCounter(ctx context.Context) (uint64, error) {
	return r.readCounter(&bind.CallOpts{Context: ctx})
}

// ReadCounterAt ... ReadCounter as of the state after block
func (r *reader) ReadCounterAt(ctx context.Context, block uint64) (uint64, error) {
	return r.readCounter(&bind.CallOpts{Context: ctx, BlockNumber: new(big.Int).SetUint64(block)})
}

func (r *reader) readCounter(opts *bind.CallOpts) (uint64, error) {
	read, err := r.seqInbox.TotalDelayedMessagesRead(opts)
	if err != nil {
		return 0, unavailable("reading total delayed messages read", err)
	}
	return read.Uint64(), nil
}

// Threshold ... Returns the configured threshold or the one enforced by the sequencer inbox
func (r *reader) Threshold(ctx context.Context) (core.InclusionThreshold, error) {
	if r.cfg.Threshold != nil {
		return *r.cfg.Threshold, nil
	}

	mtv, err := r.seqInbox.MaxTimeVariation(&bind.CallOpts{Context: ctx})
	if err != nil {
		return core.InclusionThreshold{}, unavailable("reading max time variation", err)
	}

	return core.InclusionThreshold{
		MaxBlockDelay: mtv.DelayBlocks.Uint64(),
		MaxTimeDelay:  mtv.DelaySeconds.Uint64(),
		FutureBlocks:  mtv.FutureBlocks.Uint64(),
		FutureSeconds: mtv.FutureSeconds.Uint64(),
	}, nil
}

// Head ... Returns the latest L1 block number and timestamp
func (r *reader) Head(ctx context.Context) (core.ChainHead, error) {
	header, err := r.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return core.ChainHead{}, unavailable("reading L1 head", err)
	}

	return core.ChainHead{Number: header.Number.Uint64(), Timestamp: header.Time}, nil
}

func (r *reader) toMessage(log types.Log) (core.DelayedMessage, error) {
	event, err := r.bridge.ParseMessageDelivered(log)
	if err != nil {
		return core.DelayedMessage{}, fmt.Errorf("parsing MessageDelivered log in tx %s: %w", log.TxHash, err)
	}

	return core.DelayedMessage{
		SequenceNumber:   event.MessageIndex.Uint64(),
		Timestamp:        event.Timestamp,
		BlockNumber:      log.BlockNumber,
		Sender:           event.Sender,
		PayloadHash:      event.MessageDataHash,
		ValueTransferred: new(big.Int),
		Kind:             event.Kind,
		BaseFeeL1:        event.BaseFeeL1,
		BeforeInboxAcc:   event.BeforeInboxAcc,
		Inbox:            event.Inbox,
		BlockHash:        log.BlockHash,
		TxHash:           log.TxHash,
	}, nil
}

type blockWindow struct {
	from uint64
	to   uint64
}

// blockWindows ... Splits [from, to] into consecutive windows of at most size blocks
func blockWindows(from, to, size uint64) []blockWindow {
	if from > to {
		return nil
	}
	if size == 0 {
		return []blockWindow{{from: from, to: to}}
	}

	windows := make([]blockWindow, 0, (to-from)/size+1)
	for start := from; start <= to; start += size {
		end := start + size - 1
		if end > to || end < start {
			end = to
		}
		windows = append(windows, blockWindow{from: start, to: end})
		if end == to {
			break
		}
	}
	return windows
}
