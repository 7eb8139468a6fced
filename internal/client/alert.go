//go:generate mockgen -package mocks --destination ../mocks/alert_client.go . AlertClient

package client

import (
	"context"

	"github.com/base-org/forcer/internal/core"
)

// AlertClient ... An interface for alert destinations besides slack
type AlertClient interface {
	PostEvent(ctx context.Context, data *AlertEventTrigger) (*AlertAPIResponse, error)
	GetName() string
}

// AlertEventTrigger ... A standardized event trigger for alert clients
type AlertEventTrigger struct {
	Message string
	Alert   core.Alert
}

// DedupKey ... Alerts of the same error class collapse into one incident
func (a *AlertEventTrigger) DedupKey() string {
	return a.Alert.Class
}

// AlertAPIResponse ... A standardized response for alert clients
type AlertAPIResponse struct {
	Status  core.AlertStatus
	Message string
}

// ToPagerdutyEvent ... Converts an AlertEventTrigger to a PagerDutyEventTrigger
func (a *AlertEventTrigger) ToPagerdutyEvent() *PagerDutyEventTrigger {
	return &PagerDutyEventTrigger{
		DedupKey: a.DedupKey(),
		Severity: PagerDutySeverityFor(a.Alert.Criticality),
		Message:  a.Message,
		Action:   Trigger,
	}
}

// ToSNSMessagePayload ... Converts an AlertEventTrigger to an SNS message payload
func (a *AlertEventTrigger) ToSNSMessagePayload() *SNSMessagePayload {
	return &SNSMessagePayload{
		InvocationID: a.Alert.ID.String(),
		Class:        a.Alert.Class,
		Severity:     a.Alert.Criticality.String(),
		Timestamp:    a.Alert.Timestamp,
		Content:      a.Alert.Content,
	}
}
