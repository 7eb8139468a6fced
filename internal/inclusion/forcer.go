//go:generate mockgen -package mocks --destination ../mocks/forcer.go --mock_names Service=MockForcer . Service

package inclusion

import (
	"context"
	"time"

	"github.com/base-org/forcer/internal/core"
	"github.com/base-org/forcer/internal/eligibility"
	"github.com/base-org/forcer/internal/inbox"
	"github.com/base-org/forcer/internal/logging"
	"github.com/base-org/forcer/internal/metrics"
	"github.com/base-org/forcer/internal/state"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service ... Force inclusion entry points
type Service interface {
	Preview(ctx context.Context) (*core.EligibilityReport, error)
	ForceInclude(ctx context.Context) (*core.ForceInclusionTx, error)
	ForceIncludeAndWait(ctx context.Context) (*core.ForceInclusionTx, error)
}

// Forcer ... Runs the read, evaluate, reconstruct, submit pipeline. Every invocation starts
// from fresh L1 state
type Forcer struct {
	reader        inbox.Reader
	reconstructor inbox.BatchReconstructor
	submitter     TxSubmitter
	verifier      *Verifier

	store   state.Store
	metrics metrics.Metricer
	alerts  chan<- core.Alert
}

var _ Service = (*Forcer)(nil)

// NewForcer ... Initializer. alerts may be nil
func NewForcer(reader inbox.Reader, reconstructor inbox.BatchReconstructor, submitter TxSubmitter,
	store state.Store, m metrics.Metricer, alerts chan<- core.Alert) *Forcer {
	if m == nil {
		m = metrics.NoopMetrics
	}

	return &Forcer{
		reader:        reader,
		reconstructor: reconstructor,
		submitter:     submitter,
		verifier:      NewVerifier(reader),
		store:         store,
		metrics:       m,
		alerts:        alerts,
	}
}

// Preview ... Evaluates the queue without submitting anything
func (f *Forcer) Preview(ctx context.Context) (*core.EligibilityReport, error) {
	return f.evaluate(ctx)
}

// ForceInclude ... Forces the longest eligible unread prefix of the delayed queue. Returns
// nil, nil when nothing is eligible or the eligible prefix was already read
func (f *Forcer) ForceInclude(ctx context.Context) (*core.ForceInclusionTx, error) {
	return f.run(ctx, false)
}

// ForceIncludeAndWait ... ForceInclude followed by confirmation and read counter verification
func (f *Forcer) ForceIncludeAndWait(ctx context.Context) (*core.ForceInclusionTx, error) {
	return f.run(ctx, true)
}

func (f *Forcer) run(ctx context.Context, wait bool) (*core.ForceInclusionTx, error) {
	attempt := &core.Attempt{
		ID:        core.MakeInvocationID(),
		StartedAt: time.Now(),
	}
	ctx = logging.NewContext(ctx, zap.String(logging.InvocationIDKey, attempt.ID.String()))

	fit, err := f.forceInclude(ctx, attempt, wait)
	f.finish(ctx, attempt, fit, err)
	return fit, err
}

func (f *Forcer) forceInclude(ctx context.Context, attempt *core.Attempt,
	wait bool) (*core.ForceInclusionTx, error) {
	logger := logging.WithContext(ctx)

	report, err := f.evaluate(ctx)
	if err != nil {
		return nil, err
	}
	attempt.Report = report

	if report.Eligible == nil {
		logger.Debug("No unread delayed message is eligible for force inclusion",
			zap.Uint64("count", report.Queue.Count),
			zap.Uint64("read_counter", report.ReadCounter))
		return nil, nil
	}

	target := report.Eligible.Target

	start := time.Now()
	batch, err := f.reconstructor.ReconstructRange(ctx, report.ReadCounter, target)
	f.metrics.RecordStageLatency(core.StageReconstruct, time.Since(start))
	if err != nil {
		return nil, err
	}

	start = time.Now()
	fit, err := f.submitter.Submit(ctx, target, batch)
	f.metrics.RecordStageLatency(core.StageSubmit, time.Since(start))
	if err != nil || fit == nil {
		return fit, err
	}

	fit.ID = attempt.ID
	fit.PreviousReadCount = report.ReadCounter

	if !wait || !fit.Pending() {
		return fit, nil
	}

	start = time.Now()
	fit, err = f.submitter.WaitForConfirmation(ctx, fit)
	f.metrics.RecordStageLatency(core.StageConfirm, time.Since(start))
	if err != nil {
		return fit, err
	}

	start = time.Now()
	_, err = f.verifier.VerifyAt(ctx, fit.ExpectedReadCount, fit.ConfirmedBlock)
	f.metrics.RecordStageLatency(core.StageVerify, time.Since(start))
	return fit, err
}

// evaluate ... Snapshots queue state, head, read counter and threshold, then searches the
// unread part of the queue for the highest eligible entry
func (f *Forcer) evaluate(ctx context.Context) (*core.EligibilityReport, error) {
	report := &core.EligibilityReport{Timestamp: time.Now()}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		qs, err := f.reader.ReadQueueState(gctx)
		report.Queue = qs
		return err
	})
	g.Go(func() error {
		head, err := f.reader.Head(gctx)
		report.Head = head
		return err
	})
	g.Go(func() error {
		read, err := f.reader.ReadCounter(gctx)
		report.ReadCounter = read
		return err
	})
	g.Go(func() error {
		th, err := f.reader.Threshold(gctx)
		report.Threshold = th
		return err
	})

	err := g.Wait()
	f.metrics.RecordStageLatency(core.StageRead, time.Since(start))
	if err != nil {
		f.metrics.RecordNodeError(core.Layer1)
		return nil, err
	}

	start = time.Now()
	target, ok, err := eligibility.FindEligibleTargetFrom(ctx, f.reader, report.ReadCounter,
		report.Queue, report.Head, report.Threshold)
	f.metrics.RecordStageLatency(core.StageEvaluate, time.Since(start))
	if err != nil {
		return nil, err
	}

	report.Backlog = eligibility.Backlog(report.Queue.Count, report.ReadCounter)
	if ok {
		report.Eligible = &core.EligibleSet{Target: target}
		report.Forceable = target + 1 - report.ReadCounter
	}

	f.metrics.RecordQueueState(report.Queue.Count, report.ReadCounter, report.Backlog, report.Forceable)
	return report, nil
}

// finish ... Records the attempt, emits metrics and raises an alert when warranted
func (f *Forcer) finish(ctx context.Context, attempt *core.Attempt, fit *core.ForceInclusionTx, err error) {
	logger := logging.WithContext(ctx)

	attempt.FinishedAt = time.Now()
	attempt.Outcome = core.Outcome(fit, err)
	attempt.Tx = fit
	if err != nil {
		attempt.Error = err.Error()
	}

	f.metrics.RecordInvocation(attempt.Outcome)
	if fit != nil {
		f.metrics.RecordSubmission(fit.Status)
	}

	if f.store != nil {
		if putErr := f.store.Put(ctx, attempt); putErr != nil {
			logger.Warn("Could not record force inclusion attempt", zap.Error(putErr))
		}
	}

	switch {
	case err == nil:
		logger.Info("Force inclusion invocation finished", zap.String("outcome", attempt.Outcome))

	case core.IsBenign(err):
		logger.Info("Target was already included by another party", zap.Error(err))

	case core.IsTransient(err):
		logger.Warn("Force inclusion invocation failed, retrying later", zap.Error(err))

	default:
		logger.Error("Force inclusion invocation failed",
			zap.String("class", attempt.Outcome), zap.Error(err))
	}

	alert := core.AlertFromError(attempt.ID, err)
	if alert == nil || f.alerts == nil {
		return
	}

	f.metrics.RecordAlertGenerated(alert.Class)
	select {
	case f.alerts <- *alert:
	default:
		logger.Warn("Alert channel is full, dropping alert", zap.String("class", alert.Class))
	}
}
