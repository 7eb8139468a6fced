package inclusion

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/base-org/forcer/internal/bindings"
	"github.com/base-org/forcer/internal/client"
	"github.com/base-org/forcer/internal/core"
	"github.com/base-org/forcer/internal/inbox"
	"github.com/base-org/forcer/internal/logging"
	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

const defaultGasBufferPercent = 20

// SubmitterConfig ... Force inclusion transaction settings
type SubmitterConfig struct {
	SequencerInboxAddress common.Address

	// GasBufferPercent is added on top of the simulated gas usage
	GasBufferPercent uint64
	// DryRun signs the transaction without broadcasting it
	DryRun bool

	Confirmation *core.RetryConfig
}

// TxSubmitter ... Sends force inclusion transactions and waits for their outcome
type TxSubmitter interface {
	Submit(ctx context.Context, target uint64, batch []core.DelayedMessage) (*core.ForceInclusionTx, error)
	WaitForConfirmation(ctx context.Context, fit *core.ForceInclusionTx) (*core.ForceInclusionTx, error)
}

// Submitter ... TxSubmitter calling SequencerInbox.forceInclusion
type Submitter struct {
	cfg *SubmitterConfig

	client   client.EthClient
	seqInbox *bindings.SequencerInbox
	reader   inbox.Reader
	signer   *bind.TransactOpts
}

// NewSubmitter ... Initializer
func NewSubmitter(cfg *SubmitterConfig, l1Client client.EthClient, reader inbox.Reader,
	signer *bind.TransactOpts) *Submitter {
	return &Submitter{
		cfg:      cfg,
		client:   l1Client,
		seqInbox: bindings.NewSequencerInbox(cfg.SequencerInboxAddress, l1Client),
		reader:   reader,
		signer:   signer,
	}
}

// Submit ... Sends one forceInclusion transaction covering batch, whose last message must be
// target. Returns nil when the batch is empty. The call is simulated before it is signed
func (s *Submitter) Submit(ctx context.Context, target uint64,
	batch []core.DelayedMessage) (*core.ForceInclusionTx, error) {
	if len(batch) == 0 {
		return nil, nil
	}

	last := batch[len(batch)-1]
	if last.SequenceNumber != target {
		return nil, fmt.Errorf("%w: batch ends at message %d, target is %d",
			core.ErrAccumulatorMismatch, last.SequenceNumber, target)
	}

	logger := logging.WithContext(ctx)

	args := forceInclusionArgs(last)
	calldata, err := bindings.PackForceInclusion(args)
	if err != nil {
		return nil, err
	}

	fit := &core.ForceInclusionTx{
		Target:            target,
		ExpectedReadCount: target + 1,
		BatchSize:         len(batch),
		Accumulator:       last.AfterInboxAcc(),
		Status:            core.TxConstructed,
	}

	to := s.cfg.SequencerInboxAddress
	gas, err := s.client.EstimateGas(ctx, ethereum.CallMsg{
		From: s.signer.From,
		To:   &to,
		Data: calldata,
	})
	if err != nil {
		if !bindings.IsRevert(err) {
			return nil, unavailable("simulating forceInclusion", err)
		}
		return nil, s.rejected(ctx, target, err)
	}

	opts := *s.signer
	opts.Context = ctx
	opts.GasLimit = gas + gas*s.gasBuffer()/100
	opts.NoSend = s.cfg.DryRun

	tx, err := s.seqInbox.ForceInclusion(&opts, args)
	if err != nil {
		if bindings.IsRevert(err) {
			return nil, s.rejected(ctx, target, err)
		}
		return nil, unavailable("sending forceInclusion", err)
	}

	fit.Tx = tx
	fit.TxHash = tx.Hash()

	if s.cfg.DryRun {
		logger.Info("Constructed force inclusion transaction without sending",
			zap.Uint64(logging.TargetKey, target),
			zap.String(logging.TxHashKey, fit.TxHash.String()))
		return fit, nil
	}

	fit.Status = core.TxSubmitted
	fit.SubmittedAt = time.Now()

	logger.Info("Submitted force inclusion transaction",
		zap.Uint64(logging.TargetKey, target),
		zap.Int("batch_size", fit.BatchSize),
		zap.Uint64("gas_limit", opts.GasLimit),
		zap.String(logging.TxHashKey, fit.TxHash.String()))

	return fit, nil
}

// WaitForConfirmation ... Polls for the receipt with bounded exponential backoff. A reverted
// receipt is a rejection; running out of attempts is a confirmation timeout
func (s *Submitter) WaitForConfirmation(ctx context.Context,
	fit *core.ForceInclusionTx) (*core.ForceInclusionTx, error) {
	if fit == nil || !fit.Pending() {
		return fit, nil
	}

	logger := logging.WithContext(ctx).With(zap.String(logging.TxHashKey, fit.TxHash.String()))
	fit.Status = core.TxPending

	var receipt *types.Receipt
	poll := func() error {
		r, err := s.client.TransactionReceipt(ctx, fit.TxHash)
		if err != nil {
			return err
		}

		receipt = r
		return nil
	}

	notify := func(err error, next time.Duration) {
		logger.Debug("Force inclusion receipt not available yet",
			zap.Error(err), zap.Duration("retry_in", next))
	}

	strategy := backoff.WithContext(core.RetryStrategy(s.cfg.Confirmation), ctx)
	if err := backoff.RetryNotify(poll, strategy, notify); err != nil {
		return fit, fmt.Errorf("%w: tx %s: %w", core.ErrConfirmationTimeout, fit.TxHash, err)
	}

	fit.ConfirmedBlock = receipt.BlockNumber.Uint64()
	if receipt.Status != types.ReceiptStatusSuccessful {
		fit.Status = core.TxReverted
		return fit, s.rejected(ctx, fit.Target,
			fmt.Errorf("tx %s reverted in block %d", fit.TxHash, fit.ConfirmedBlock))
	}

	fit.Status = core.TxConfirmed
	logger.Info("Force inclusion transaction confirmed",
		zap.Uint64(logging.TargetKey, fit.Target),
		zap.Uint64("block", fit.ConfirmedBlock))

	return fit, nil
}

// rejected ... Classifies a refused forceInclusion. A read counter already covering the target
// marks the benign race with another party
func (s *Submitter) rejected(ctx context.Context, target uint64, cause error) error {
	err := fmt.Errorf("%w: %s", core.ErrSubmissionRejected, bindings.RevertReason(cause))

	if bindings.RevertMatches(cause, bindings.AccumulatorReasons) {
		return fmt.Errorf("%w: %w", core.ErrAccumulatorMismatch, err)
	}

	if bindings.RevertMatches(cause, bindings.DelayedBackwardsReasons) {
		return fmt.Errorf("%w: %w", core.ErrAlreadyIncluded, err)
	}

	read, readErr := s.reader.ReadCounter(ctx)
	if readErr == nil && read > target {
		return fmt.Errorf("%w: read counter at %d: %w", core.ErrAlreadyIncluded, read, err)
	}

	return err
}

func (s *Submitter) gasBuffer() uint64 {
	if s.cfg.GasBufferPercent == 0 {
		return defaultGasBufferPercent
	}
	return s.cfg.GasBufferPercent
}

// forceInclusionArgs ... forceInclusion takes the new read count and the preimage of the
// last message hash of the forced prefix
func forceInclusionArgs(last core.DelayedMessage) bindings.ForceInclusionArgs {
	baseFee := last.BaseFeeL1
	if baseFee == nil {
		baseFee = new(big.Int)
	}

	return bindings.ForceInclusionArgs{
		TotalDelayedMessagesRead: new(big.Int).SetUint64(last.SequenceNumber + 1),
		Kind:                     last.Kind,
		L1BlockAndTime:           [2]uint64{last.BlockNumber, last.Timestamp},
		BaseFeeL1:                baseFee,
		Sender:                   last.Sender,
		MessageDataHash:          last.PayloadHash,
	}
}

func unavailable(action string, err error) error {
	return fmt.Errorf("%w: %s: %w", core.ErrChainUnavailable, action, err)
}
