//go:generate mockgen -package mocks --destination ../mocks/alert_manager.go --mock_names Manager=AlertManager . Manager

package alert

import (
	"context"
	"fmt"
	"time"

	"github.com/base-org/forcer/internal/client"
	"github.com/base-org/forcer/internal/core"
	"github.com/base-org/forcer/internal/logging"
	"go.uber.org/zap"
)

const defaultCoolDown = 10 * time.Minute

// Config ... Alerting manager configuration
type Config struct {
	SlackURL  string
	PagerDuty *client.PagerDutyConfig
	SNS       *client.SNSConfig
	// CoolDown suppresses repeated alerts of the same class
	CoolDown time.Duration
}

// Manager ... Interface for alert manager
type Manager interface {
	Transit() chan core.Alert
	EventLoop() error
	Shutdown() error
}

// destination ... An additional alert client receiving alerts at or above a severity
type destination struct {
	client client.AlertClient
	minSev core.Severity
}

// Option ... Configures optional alert destinations
type Option func(*alertManager)

// WithDestination ... Routes alerts of at least minSev severity to ac
func WithDestination(ac client.AlertClient, minSev core.Severity) Option {
	return func(am *alertManager) {
		am.destinations = append(am.destinations, destination{client: ac, minSev: minSev})
	}
}

// alertManager ... Alert manager implementation
type alertManager struct {
	ctx    context.Context
	cancel context.CancelFunc

	cfg          *Config
	sc           client.SlackClient
	destinations []destination
	interpolator Interpolator
	cdHandler    CoolDownHandler

	alertTransit chan core.Alert
}

// NewManager ... Instantiates a new alert manager. sc may be nil when slack is not configured
func NewManager(ctx context.Context, cfg *Config, sc client.SlackClient, opts ...Option) Manager {
	ctx, cancel := context.WithCancel(ctx)

	am := &alertManager{
		ctx:          ctx,
		cancel:       cancel,
		cfg:          cfg,
		sc:           sc,
		interpolator: NewInterpolator(),
		cdHandler:    NewCoolDownHandler(),
		alertTransit: make(chan core.Alert, 16),
	}

	for _, opt := range opts {
		opt(am)
	}

	return am
}

// Transit ... Returns inter-subsystem transit channel for receiving alerts
func (am *alertManager) Transit() chan core.Alert {
	return am.alertTransit
}

func (am *alertManager) coolDown() time.Duration {
	if am.cfg == nil || am.cfg.CoolDown == 0 {
		return defaultCoolDown
	}
	return am.cfg.CoolDown
}

// handleSlackPost ... Posts an alert to slack
func (am *alertManager) handleSlackPost(alert core.Alert) error {
	msg := am.interpolator.InterpolateSlackMessage(alert)

	resp, err := am.sc.PostData(am.ctx, msg)
	if err != nil {
		return err
	}

	if !resp.Ok {
		logging.WithContext(am.ctx).Error("Failed to post alert to slack",
			zap.String("error", resp.Err))
	}

	return nil
}

// handleEventPost ... Posts an alert to an additional destination
func (am *alertManager) handleEventPost(d destination, alert core.Alert) error {
	event := &client.AlertEventTrigger{
		Message: am.interpolator.InterpolateMessage(alert),
		Alert:   alert,
	}

	resp, err := d.client.PostEvent(am.ctx, event)
	if err != nil {
		return err
	}

	if resp.Status != core.SuccessStatus {
		return fmt.Errorf("%s rejected alert: %s", d.client.GetName(), resp.Message)
	}

	return nil
}

// dispatch ... Delivers an alert to every eligible destination. Returns true if any
// destination accepted it
func (am *alertManager) dispatch(alert core.Alert) bool {
	logger := logging.WithContext(am.ctx)
	delivered := false

	if am.sc != nil {
		if err := am.handleSlackPost(alert); err != nil {
			logger.Error("Could not post alert to slack", zap.Error(err))
		} else {
			delivered = true
		}
	}

	for _, d := range am.destinations {
		if alert.Criticality < d.minSev {
			continue
		}

		if err := am.handleEventPost(d, alert); err != nil {
			logger.Error("Could not post alert",
				zap.String("destination", d.client.GetName()), zap.Error(err))
			continue
		}
		delivered = true
	}

	return delivered
}

// EventLoop ... Event loop for alert manager subsystem
func (am *alertManager) EventLoop() error {
	logger := logging.WithContext(am.ctx)

	for {
		select {
		case <-am.ctx.Done():
			return nil

		case alert := <-am.alertTransit:
			logger.Info("Received alert",
				zap.String(logging.InvocationIDKey, alert.ID.String()),
				zap.String("class", alert.Class),
				zap.String("severity", alert.Criticality.String()))

			am.cdHandler.Update()
			if am.cdHandler.IsCoolDown(alert.Class) {
				logger.Debug("Alert class is cooling down, skipping", zap.String("class", alert.Class))
				continue
			}

			if !am.dispatch(alert) {
				continue
			}

			am.cdHandler.Add(alert.Class, am.coolDown())
		}
	}
}

// Shutdown ... Shuts down the alert manager subsystem
func (am *alertManager) Shutdown() error {
	am.cancel()
	return nil
}
