package client

import (
	"context"
	"fmt"

	"github.com/base-org/forcer/internal/core"
	"github.com/base-org/forcer/internal/logging"
	"go.uber.org/zap"
)

// Config ... Client configuration
type Config struct {
	L1RpcEndpoint string
	L2RpcEndpoint string
}

// Bundle ... Used to store all client object references
type Bundle struct {
	L1Client EthClient
	L2Client EthClient
}

// NewBundle ... Construct a new client bundle
func NewBundle(ctx context.Context, cfg *Config) (*Bundle, error) {
	logger := logging.WithContext(ctx)

	l1Client, err := NewEthClient(ctx, cfg.L1RpcEndpoint)
	if err != nil {
		logger.Error("Error creating L1 client", zap.Error(err))
		return nil, err
	}

	l2Client, err := NewEthClient(ctx, cfg.L2RpcEndpoint)
	if err != nil {
		logger.Error("Error creating L2 client", zap.Error(err))
		return nil, err
	}

	return &Bundle{
		L1Client: l1Client,
		L2Client: l2Client,
	}, nil
}

// FromContext ... Retrieves the client bundle from the context
func FromContext(ctx context.Context) (*Bundle, error) {
	b, ok := ctx.Value(core.Clients).(*Bundle)
	if !ok {
		return nil, fmt.Errorf("failed to retrieve client bundle from context")
	}

	return b, nil
}

// FromNetwork ... Retrieves an eth client from the context
func FromNetwork(ctx context.Context, n core.Network) (EthClient, error) {
	bundle, err := FromContext(ctx)
	if err != nil {
		return nil, err
	}

	switch n {
	case core.Layer1:
		return bundle.L1Client, nil
	case core.Layer2:
		return bundle.L2Client, nil
	default:
		return nil, fmt.Errorf("invalid network supplied")
	}
}
