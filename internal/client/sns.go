package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sns"
	"github.com/aws/aws-sdk-go/service/sns/snsiface"
	"github.com/base-org/forcer/internal/core"
	"github.com/base-org/forcer/internal/logging"
	"go.uber.org/zap"
)

// SNSConfig ... Configuration for SNS client
type SNSConfig struct {
	TopicArn string
	// Endpoint overrides the AWS endpoint, e.g. for localstack
	Endpoint string
}

// SNSMessagePayload ... Structured alert published to subscribers
type SNSMessagePayload struct {
	InvocationID string    `json:"invocation_id"`
	Class        string    `json:"class"`
	Severity     string    `json:"severity"`
	Timestamp    time.Time `json:"timestamp"`
	Content      string    `json:"content"`
}

// SNSMessage ... Message envelope for the json message structure
type SNSMessage struct {
	Default string `json:"default"`
}

// Marshal ... Wraps the payload into an SNS json message
func (p *SNSMessagePayload) Marshal() ([]byte, error) {
	inner, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return json.Marshal(SNSMessage{Default: string(inner)})
}

type snsClient struct {
	svc      snsiface.SNSAPI
	name     string
	topicArn string
}

// NewSNSClient ... Initializer
func NewSNSClient(cfg *SNSConfig, name string) (AlertClient, error) {
	if cfg.TopicArn == "" {
		logging.NoContext().Warn("No SNS topic ARN provided")
	}

	awsCfg := aws.NewConfig()
	if cfg.Endpoint != "" {
		awsCfg = awsCfg.WithEndpoint(cfg.Endpoint)
	}

	// Region and credentials come from the standard AWS environment
	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create SNS session: %w", err)
	}

	return newSNSClient(sns.New(sess), cfg.TopicArn, name), nil
}

func newSNSClient(svc snsiface.SNSAPI, topicArn, name string) *snsClient {
	return &snsClient{
		svc:      svc,
		topicArn: topicArn,
		name:     name,
	}
}

// PostEvent ... Publishes an alert to the SNS topic
func (sc *snsClient) PostEvent(ctx context.Context, event *AlertEventTrigger) (*AlertAPIResponse, error) {
	msg, err := event.ToSNSMessagePayload().Marshal()
	if err != nil {
		return nil, err
	}

	result, err := sc.svc.PublishWithContext(ctx, &sns.PublishInput{
		Message:           aws.String(string(msg)),
		MessageStructure:  aws.String("json"),
		MessageAttributes: getAttributesFromEvent(event),
		TopicArn:          aws.String(sc.topicArn),
	})
	if err != nil {
		return &AlertAPIResponse{
			Status:  core.FailureStatus,
			Message: err.Error(),
		}, err
	}

	logging.WithContext(ctx).Debug("Published alert to SNS",
		zap.String("message_id", aws.StringValue(result.MessageId)))

	return &AlertAPIResponse{
		Status:  core.SuccessStatus,
		Message: aws.StringValue(result.MessageId),
	}, nil
}

// getAttributesFromEvent ... Helper method to get attributes from an AlertEventTrigger
func getAttributesFromEvent(event *AlertEventTrigger) map[string]*sns.MessageAttributeValue {
	return map[string]*sns.MessageAttributeValue{
		"severity": {
			DataType:    aws.String("String"),
			StringValue: aws.String(event.Alert.Criticality.String()),
		},
		"dedup_key": {
			DataType:    aws.String("String"),
			StringValue: aws.String(event.DedupKey()),
		},
	}
}

// GetName ... Returns the name of the destination
func (sc *snsClient) GetName() string {
	return sc.name
}
