package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/base-org/forcer/internal/alert"
	"github.com/base-org/forcer/internal/api/handlers"
	"github.com/base-org/forcer/internal/api/server"
	"github.com/base-org/forcer/internal/api/service"
	"github.com/base-org/forcer/internal/client"
	"github.com/base-org/forcer/internal/config"
	"github.com/base-org/forcer/internal/core"
	"github.com/base-org/forcer/internal/inbox"
	"github.com/base-org/forcer/internal/inclusion"
	"github.com/base-org/forcer/internal/logging"
	"github.com/base-org/forcer/internal/metrics"
	"github.com/base-org/forcer/internal/state"
	"github.com/base-org/forcer/internal/subsystem"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/crypto"

	"go.uber.org/zap"
)

// InitializeContext ... Performs dependency injection to build context struct
func InitializeContext(ctx context.Context, ss state.Store, cb *client.Bundle) context.Context {
	ctx = context.WithValue(
		ctx, core.State, ss)

	return context.WithValue(
		ctx, core.Clients, cb)
}

// InitializeMetrics ... Performs dependency injection to build metrics struct
func InitializeMetrics(ctx context.Context, cfg *config.Config) (metrics.Metricer, func(), error) {
	if !cfg.MetricsConfig.Enabled {
		return metrics.NoopMetrics, func() {}, nil
	}

	server, cleanup, err := metrics.New(ctx, cfg.MetricsConfig)
	if err != nil {
		return nil, nil, err
	}

	return server, cleanup, nil
}

// InitializeServer ... Performs dependency injection to build server struct
func InitializeServer(ctx context.Context, cfg *config.Config, forcer inclusion.Service,
	ss state.Store) (*server.Server, func(), error) {
	apiService := service.New(ctx, forcer, ss)
	handler, err := handlers.New(ctx, apiService)
	if err != nil {
		return nil, nil, err
	}

	server, cleanup, err := server.New(ctx, cfg.ServerConfig, handler)
	if err != nil {
		return nil, nil, err
	}

	return server, cleanup, nil
}

/*
	Subsystem initialization functions
*/

// InitializeAlerting ... Performs dependency injection to build alerting struct. Only
// configured destinations are wired
func InitializeAlerting(ctx context.Context, cfg *config.Config) (alert.Manager, error) {
	acfg := cfg.AlertConfig
	logger := logging.WithContext(ctx)

	var sc client.SlackClient
	if acfg.SlackURL != "" {
		sc = client.NewSlackClient(acfg.SlackURL)
	}

	var opts []alert.Option
	if acfg.PagerDuty != nil && acfg.PagerDuty.IntegrationKey != "" {
		opts = append(opts, alert.WithDestination(client.NewPagerDutyClient(acfg.PagerDuty, "pagerduty"), core.HIGH))
	}

	if acfg.SNS != nil && acfg.SNS.TopicArn != "" {
		sns, err := client.NewSNSClient(acfg.SNS, "sns")
		if err != nil {
			return nil, err
		}
		opts = append(opts, alert.WithDestination(sns, core.LOW))
	}

	if sc == nil && len(opts) == 0 {
		logger.Warn("No alert destination configured, alerts are only logged")
	}

	return alert.NewManager(ctx, acfg, sc, opts...), nil
}

// InitializeSigner ... Builds the transactor used to sign force inclusion transactions.
// Dry runs without a configured key sign with an ephemeral one
func InitializeSigner(ctx context.Context, cfg *config.Config, l1Client client.EthClient) (*bind.TransactOpts, error) {
	chainID, err := l1Client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: chain id: %w", core.ErrChainUnavailable, err)
	}

	if cfg.SignerKey == "" {
		if !cfg.SubmitterConfig.DryRun {
			return nil, fmt.Errorf("no signer key configured")
		}

		logging.WithContext(ctx).Warn("No signer key configured, dry runs use an ephemeral key")
		key, err := crypto.GenerateKey()
		if err != nil {
			return nil, err
		}
		return bind.NewKeyedTransactorWithChainID(key, chainID)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.SignerKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid signer key: %w", err)
	}

	return bind.NewKeyedTransactorWithChainID(key, chainID)
}

// InitializeForcer ... Performs dependency injection to build the force inclusion pipeline
func InitializeForcer(ctx context.Context, cfg *config.Config, m metrics.Metricer,
	alerts chan<- core.Alert) (*inclusion.Forcer, error) {
	bundle, err := client.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	ss, err := state.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	signer, err := InitializeSigner(ctx, cfg, bundle.L1Client)
	if err != nil {
		return nil, err
	}

	reader := inbox.NewReader(cfg.InboxConfig, bundle.L1Client)
	reconstructor := inbox.NewReconstructor(cfg.InboxConfig, reader, bundle.L1Client)
	submitter := inclusion.NewSubmitter(cfg.SubmitterConfig, bundle.L1Client, reader, signer)

	logging.WithContext(ctx).Info("Force inclusion pipeline initialized",
		zap.String("network", cfg.Network.Name),
		zap.String("bridge", cfg.InboxConfig.BridgeAddress.Hex()),
		zap.String("sequencer_inbox", cfg.InboxConfig.SequencerInboxAddress.Hex()),
		zap.String("sender", signer.From.Hex()),
		zap.Bool("dry_run", cfg.SubmitterConfig.DryRun))

	return inclusion.NewForcer(reader, reconstructor, submitter, ss, m, alerts), nil
}

// RunOnce ... Builds the pipeline without any long running routine and runs a single invocation
func RunOnce(ctx context.Context, cfg *config.Config, wait bool) (*core.ForceInclusionTx, error) {
	forcer, err := InitializeForcer(ctx, cfg, metrics.NoopMetrics, nil)
	if err != nil {
		return nil, err
	}

	if wait {
		return forcer.ForceIncludeAndWait(ctx)
	}
	return forcer.ForceInclude(ctx)
}

// NewForcerApp ... Performs dependency injection to build app struct
func NewForcerApp(ctx context.Context, cfg *config.Config) (*Application, func(), error) {
	ss, err := state.FromContext(ctx)
	if err != nil {
		return nil, nil, err
	}

	mSvr, mShutDown, err := InitializeMetrics(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	alerting, err := InitializeAlerting(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	forcer, err := InitializeForcer(ctx, cfg, mSvr, alerting.Transit())
	if err != nil {
		return nil, nil, err
	}

	m := subsystem.NewManager(ctx, cfg.SystemConfig, forcer, alerting)

	svr, shutDown, err := InitializeServer(ctx, cfg, forcer, ss)
	if err != nil {
		return nil, nil, err
	}

	appShutDown := func() {
		shutDown()
		mShutDown()
		if err := m.Shutdown(); err != nil {
			logging.WithContext(ctx).Error("error shutting down subsystems", zap.Error(err))
		}
	}

	return New(ctx, m, svr, mSvr), appShutDown, nil
}
