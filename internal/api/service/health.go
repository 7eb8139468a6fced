package service

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/base-org/forcer/internal/api/models"
	"github.com/base-org/forcer/internal/client"
	"github.com/base-org/forcer/internal/core"
	"github.com/base-org/forcer/internal/logging"
)

// CheckHealth ... Returns health check for server
func (svc *ForcerService) CheckHealth() *models.HealthCheck {
	hc := &models.ChainConnectionStatus{
		IsL1Healthy: false,
		IsL2Healthy: false,
	}

	var g errgroup.Group
	g.Go(func() error {
		hc.IsL1Healthy = svc.CheckETHRPCHealth(core.Layer1)
		return nil
	})
	g.Go(func() error {
		hc.IsL2Healthy = svc.CheckETHRPCHealth(core.Layer2)
		return nil
	})
	_ = g.Wait()

	return &models.HealthCheck{
		Timestamp:             time.Now(),
		Healthy:               hc.IsL1Healthy && hc.IsL2Healthy,
		ChainConnectionStatus: hc,
	}
}

// CheckETHRPCHealth ... Returns true if the node of the network serves its latest header
func (svc *ForcerService) CheckETHRPCHealth(n core.Network) bool {
	logger := logging.WithContext(svc.ctx)
	ethClient, err := client.FromNetwork(svc.ctx, n)
	if err != nil {
		logger.Error("error getting client from context", zap.Error(err))
		return false
	}

	_, err = ethClient.HeaderByNumber(svc.ctx, nil)
	if err != nil {
		logger.Error("error connecting to client",
			zap.String(logging.NetworkKey, n.String()), zap.Error(err))
		return false
	}

	logger.Debug("successfully connected", zap.String(logging.NetworkKey, n.String()))
	return true
}
