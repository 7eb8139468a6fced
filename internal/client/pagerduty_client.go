package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/base-org/forcer/internal/core"
	"github.com/base-org/forcer/internal/logging"

	"go.uber.org/zap"
)

// DefaultPagerDutyEventsURL ... PagerDuty events API v2 endpoint
const DefaultPagerDutyEventsURL = "https://events.pagerduty.com/v2/enqueue"

// PagerDutyAction represents the type of actions that can be triggered by an event
type PagerDutyAction string

const (
	Trigger                PagerDutyAction = "trigger"
	PagerDutyAckAction     PagerDutyAction = "acknowledge"
	PagerDutyResolveAction PagerDutyAction = "resolve"
)

// PagerDutySeverity represents the severity of an event
type PagerDutySeverity string

const (
	Critical PagerDutySeverity = "critical"
	Error    PagerDutySeverity = "error"
	Warning  PagerDutySeverity = "warning"
	Info     PagerDutySeverity = "info"
)

// PagerDutySeverityFor ... Maps an alert severity onto a PagerDuty severity
func PagerDutySeverityFor(sev core.Severity) PagerDutySeverity {
	switch sev {
	case core.HIGH:
		return Critical
	case core.MEDIUM:
		return Error
	case core.LOW:
		return Warning
	default:
		return Info
	}
}

// PagerDutyConfig ... Represents the configuration vars for a PagerDuty client
type PagerDutyConfig struct {
	IntegrationKey string
	AlertEventsURL string
}

// pagerdutyClient ... PagerDuty client for making requests
type pagerdutyClient struct {
	name           string
	integrationKey string
	alertEventsURL string
	client         *http.Client
}

// NewPagerDutyClient ... Initializer for PagerDuty client
func NewPagerDutyClient(cfg *PagerDutyConfig, name string) AlertClient {
	if cfg.IntegrationKey == "" {
		logging.NoContext().Warn("No PagerDuty integration key provided")
	}

	url := cfg.AlertEventsURL
	if url == "" {
		url = DefaultPagerDutyEventsURL
	}

	return &pagerdutyClient{
		name:           name,
		integrationKey: cfg.IntegrationKey,
		alertEventsURL: url,
		client:         &http.Client{Timeout: 10 * time.Second},
	}
}

// PagerDutyEventTrigger ... Represents caller specified fields for a PagerDuty event
type PagerDutyEventTrigger struct {
	Message  string
	Action   PagerDutyAction
	Severity PagerDutySeverity
	DedupKey string
}

// PagerDutyRequest ... Used to construct a PagerDuty api request
type PagerDutyRequest struct {
	RoutingKey  string           `json:"routing_key"`
	EventAction PagerDutyAction  `json:"event_action"`
	DedupKey    string           `json:"dedup_key"`
	Payload     PagerDutyPayload `json:"payload"`
}

// PagerDutyPayload ... Represents the payload of a PagerDuty event
type PagerDutyPayload struct {
	Summary   string            `json:"summary"`
	Source    string            `json:"source"`
	Severity  PagerDutySeverity `json:"severity"`
	Timestamp time.Time         `json:"timestamp"`
}

// newPagerDutyPayload ... Initializes a new PagerDuty payload given the integration key and event
func newPagerDutyPayload(integrationKey string, event *PagerDutyEventTrigger) *PagerDutyRequest {
	return &PagerDutyRequest{
		RoutingKey:  integrationKey,
		EventAction: event.Action,
		DedupKey:    event.DedupKey,
		Payload: PagerDutyPayload{
			Summary:   event.Message,
			Source:    "Forcer",
			Severity:  event.Severity,
			Timestamp: time.Now(),
		},
	}
}

// PagerDutyAPIResponse ... Represents the structure of a PagerDuty API response
type PagerDutyAPIResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	DedupKey string `json:"dedup_key"`
}

// ToAlertResponse ... Converts a PagerDuty API response to an AlertAPIResponse
func (pdr *PagerDutyAPIResponse) ToAlertResponse() *AlertAPIResponse {
	if pdr.Status == string(core.SuccessStatus) {
		return &AlertAPIResponse{
			Status:  core.SuccessStatus,
			Message: pdr.Message,
		}
	}

	return &AlertAPIResponse{
		Status:  core.FailureStatus,
		Message: pdr.Message,
	}
}

// PostEvent ... Triggers a PagerDuty incident for the alert
func (pdc *pagerdutyClient) PostEvent(ctx context.Context, event *AlertEventTrigger) (*AlertAPIResponse, error) {
	if pdc.integrationKey == "" {
		return nil, fmt.Errorf("no Pagerduty integration key provided")
	}

	// 1. Create and marshal payload into request object body
	payload, err := json.Marshal(newPagerDutyPayload(pdc.integrationKey, event.ToPagerdutyEvent()))
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, pdc.alertEventsURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	// 2. Make request to PagerDuty
	resp, err := pdc.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.WithContext(ctx).Warn("Could not close pagerduty response body",
				zap.Error(err))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var apiResp PagerDutyAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("could not unmarshal pagerduty response: %w", err)
	}

	return apiResp.ToAlertResponse(), nil
}

// GetName ... Returns the name of the destination
func (pdc *pagerdutyClient) GetName() string {
	return pdc.name
}
