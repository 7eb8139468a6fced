package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/base-org/forcer/internal/app"
	"github.com/base-org/forcer/internal/client"
	"github.com/base-org/forcer/internal/config"
	"github.com/base-org/forcer/internal/core"
	"github.com/base-org/forcer/internal/logging"
	"github.com/base-org/forcer/internal/state"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const (
	// cfgPath ... env file path
	cfgPath = "config.env"
)

type options struct {
	configPath string
	once       bool
	wait       bool
	dryRun     bool
}

func parseFlags(args []string) (*options, *pflag.FlagSet, error) {
	opts := &options{}

	fs := pflag.NewFlagSet("forcer", pflag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", cfgPath, "env file to load configuration from")
	fs.BoolVar(&opts.once, "once", false, "run a single force inclusion invocation and exit")
	fs.BoolVar(&opts.wait, "wait", false, "wait for confirmation and verify the read counter")
	fs.BoolVar(&opts.dryRun, "dry-run", false, "simulate and sign the transaction without sending it")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return opts, fs, nil
}

// applyFlags ... Flags override the env file only when set explicitly
func applyFlags(cfg *config.Config, opts *options, fs *pflag.FlagSet) {
	if opts.dryRun {
		cfg.SubmitterConfig.DryRun = true
	}
	if fs.Changed("wait") {
		cfg.SystemConfig.Wait = opts.wait
	}
}

// main ... Application driver
func main() {
	opts, fs, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	cfg := config.NewConfig(core.FilePath(opts.configPath)) // Load env vars
	applyFlags(cfg, opts, fs)

	logging.NewLogger(cfg.LoggerConfig, cfg.IsProduction())
	ctx := context.Background()
	logger := logging.WithContext(ctx)

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	bundle, err := client.NewBundle(ctx, cfg.ClientConfig)
	if err != nil {
		logger.Fatal("Error creating clients", zap.Error(err))
	}

	ss := state.NewMemState(cfg.AttemptCapacity)
	ctx = app.InitializeContext(ctx, ss, bundle)

	if opts.once {
		os.Exit(runOnce(ctx, cfg, cfg.SystemConfig.Wait))
	}

	forcer, shutDown, err := app.NewForcerApp(ctx, cfg)
	if err != nil {
		logger.Fatal("Error creating forcer application", zap.Error(err))
	}

	logger.Info("Starting forcer application")
	if err := forcer.Start(); err != nil {
		logger.Fatal("Error starting forcer application", zap.Error(err))
	}

	forcer.ListenForShutdown(shutDown)
	logger.Debug("Waited for forcer application to end")
}

// runOnce ... Runs a single invocation, prints its transaction and returns the exit code.
// Losing a race to another party is not a failure
func runOnce(ctx context.Context, cfg *config.Config, wait bool) int {
	logger := logging.WithContext(ctx)

	fit, err := app.RunOnce(ctx, cfg, wait)
	if fit != nil {
		out, mErr := json.MarshalIndent(fit, "", "  ")
		if mErr == nil {
			fmt.Println(string(out))
		}
	}

	switch {
	case err == nil:
		if fit == nil {
			logger.Info("Nothing to force include")
		}
		return 0

	case core.IsBenign(err):
		logger.Info("Delayed messages were already included", zap.Error(err))
		return 0
	}

	logger.Error("Force inclusion failed", zap.Error(err))
	return 1
}
