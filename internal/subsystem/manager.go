package subsystem

import (
	"context"
	"sync"
	"time"

	"github.com/base-org/forcer/internal/alert"
	"github.com/base-org/forcer/internal/core"
	"github.com/base-org/forcer/internal/inclusion"
	"github.com/base-org/forcer/internal/logging"
	"go.uber.org/zap"
)

// Config ... Periodic force inclusion loop configuration
type Config struct {
	// LoopInterval between invocations; zero disables the loop
	LoopInterval time.Duration
	// Wait for confirmation and verification on every invocation
	Wait bool
}

// Manager ... Subsystem manager interface
type Manager interface {
	RunOnce(ctx context.Context) (*core.ForceInclusionTx, error)
	StartEventRoutines(ctx context.Context)
	Shutdown() error
}

// manager ... Subsystem manager struct
type manager struct {
	cfg    *Config
	ctx    context.Context
	cancel context.CancelFunc

	forcer inclusion.Service
	alrt   alert.Manager

	*sync.WaitGroup
}

// NewManager ... Initializer for the subsystem manager
func NewManager(ctx context.Context, cfg *Config, forcer inclusion.Service, alrt alert.Manager) Manager {
	ctx, cancel := context.WithCancel(ctx)

	return &manager{
		cfg:       cfg,
		ctx:       ctx,
		cancel:    cancel,
		forcer:    forcer,
		alrt:      alrt,
		WaitGroup: &sync.WaitGroup{},
	}
}

// RunOnce ... Runs a single force inclusion invocation
func (m *manager) RunOnce(ctx context.Context) (*core.ForceInclusionTx, error) {
	if m.cfg.Wait {
		return m.forcer.ForceIncludeAndWait(ctx)
	}

	return m.forcer.ForceInclude(ctx)
}

// Shutdown ... Stops the loop, then the alert manager, and waits for both routines to exit
func (m *manager) Shutdown() error {
	m.cancel()

	err := m.alrt.Shutdown()
	m.Wait()
	return err
}

// StartEventRoutines ... Starts the event loop routines for the subsystems
func (m *manager) StartEventRoutines(ctx context.Context) {
	logger := logging.WithContext(ctx)

	m.Add(1)
	go func() { // AlertManager driver thread
		defer m.Done()

		if err := m.alrt.EventLoop(); err != nil {
			logger.Error("alert manager event loop error", zap.Error(err))
		}
	}()

	if m.cfg.LoopInterval <= 0 {
		logger.Info("Periodic force inclusion loop is disabled")
		return
	}

	m.Add(1)
	go func() { // Forcer driver thread
		defer m.Done()
		m.forceLoop()
	}()
}

// forceLoop ... Invokes the forcer immediately and then on every tick. Invocations never
// overlap since they run on this routine
func (m *manager) forceLoop() {
	logger := logging.WithContext(m.ctx)
	logger.Info("Starting periodic force inclusion loop",
		zap.Duration("interval", m.cfg.LoopInterval), zap.Bool("wait", m.cfg.Wait))

	ticker := time.NewTicker(m.cfg.LoopInterval)
	defer ticker.Stop()

	for {
		// Outcomes are logged, recorded and alerted on by the forcer
		fit, err := m.RunOnce(m.ctx)
		if err == nil && fit != nil {
			logger.Info("Periodic force inclusion submitted",
				zap.Uint64(logging.TargetKey, fit.Target),
				zap.String(logging.TxHashKey, fit.TxHash.Hex()),
				zap.String("status", fit.Status.String()))
		}

		select {
		case <-m.ctx.Done():
			logger.Info("Stopping periodic force inclusion loop")
			return

		case <-ticker.C:
		}
	}
}
