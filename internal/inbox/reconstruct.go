package inbox

import (
	"context"
	"fmt"

	"github.com/base-org/forcer/internal/bindings"
	"github.com/base-org/forcer/internal/client"
	"github.com/base-org/forcer/internal/core"
	"github.com/base-org/forcer/internal/logging"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// BatchReconstructor ... Rebuilds ordered delayed message batches from L1 event logs
type BatchReconstructor interface {
	ReconstructBatch(ctx context.Context, target uint64) ([]core.DelayedMessage, error)
	ReconstructRange(ctx context.Context, from, target uint64) ([]core.DelayedMessage, error)
}

// Reconstructor ... Replays bridge and inbox events and checks the result against the
// on-chain accumulator. Nothing is cached between calls
type Reconstructor struct {
	cfg *Config

	reader   Reader
	client   client.EthClient
	provider *bindings.MessageProvider
}

// NewReconstructor ... Initializer
func NewReconstructor(cfg *Config, reader Reader, l1Client client.EthClient) *Reconstructor {
	return &Reconstructor{
		cfg:      cfg,
		reader:   reader,
		client:   l1Client,
		provider: bindings.NewMessageProvider(l1Client),
	}
}

// ReconstructBatch ... Returns messages 0..target inclusive
func (r *Reconstructor) ReconstructBatch(ctx context.Context, target uint64) ([]core.DelayedMessage, error) {
	return r.ReconstructRange(ctx, 0, target)
}

// ReconstructRange ... Returns messages from..target inclusive, verified to chain from the
// on-chain accumulator at from-1 to the on-chain accumulator at target
func (r *Reconstructor) ReconstructRange(ctx context.Context, from, target uint64) ([]core.DelayedMessage, error) {
	if from > target {
		return nil, fmt.Errorf("%w: range start %d past target %d", core.ErrSequenceOutOfRange, from, target)
	}

	logger := logging.WithContext(ctx)

	expectedAcc, err := r.reader.Accumulator(ctx, target)
	if err != nil {
		return nil, err
	}

	var prevAcc common.Hash
	if from > 0 {
		prevAcc, err = r.reader.Accumulator(ctx, from-1)
		if err != nil {
			return nil, err
		}
	}

	batch, err := r.reader.ReadEntriesInRange(ctx, from, target)
	if err != nil {
		return nil, err
	}

	if want := target - from + 1; uint64(len(batch)) != want {
		return nil, fmt.Errorf("%w: replayed %d messages for range [%d, %d], expected %d",
			core.ErrAccumulatorMismatch, len(batch), from, target, want)
	}

	if err := r.fillPayloads(ctx, batch); err != nil {
		return nil, err
	}

	for i := range batch {
		if batch[i].Payload == nil {
			return nil, fmt.Errorf("%w: no payload event for message %d",
				core.ErrAccumulatorMismatch, batch[i].SequenceNumber)
		}
	}

	acc, err := VerifyBatch(batch, from, prevAcc)
	if err != nil {
		return nil, err
	}

	if acc != expectedAcc {
		return nil, fmt.Errorf("%w: replayed accumulator %s at message %d, on-chain %s",
			core.ErrAccumulatorMismatch, acc, target, expectedAcc)
	}

	logger.Debug("Reconstructed delayed message batch",
		zap.Uint64("from", from),
		zap.Uint64(logging.TargetKey, target),
		zap.String("accumulator", acc.String()))

	return batch, nil
}
