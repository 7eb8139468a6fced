package core

import (
	"time"
)

// Severity ... The severity of an alert
type Severity uint8

const (
	UNKNOWN Severity = iota

	LOW
	MEDIUM
	HIGH
)

// StringToSev ... Converts a string to a severity
func StringToSev(stringType string) Severity {
	switch stringType {
	case "low":
		return LOW
	case "medium":
		return MEDIUM
	case "high":
		return HIGH
	default:
		return UNKNOWN
	}
}

// String ... Converts a severity to a string
func (s Severity) String() string {
	switch s {
	case LOW:
		return "low"
	case MEDIUM:
		return "medium"
	case HIGH:
		return "high"

	case UNKNOWN:
		return UnknownType

	default:
		return UnknownType
	}
}

// Alert ... An alert raised by a force inclusion invocation
type Alert struct {
	Criticality Severity
	ID          InvocationID
	Class       string
	Timestamp   time.Time

	Content string
}

// AlertFromError ... Builds an alert for an invocation outcome, nil if the
// outcome does not warrant one
func AlertFromError(id InvocationID, err error) *Alert {
	if err == nil {
		return nil
	}

	var sev Severity
	switch {
	case IsFatal(err):
		sev = HIGH
	case IsTransient(err), IsBenign(err):
		return nil
	default:
		sev = MEDIUM
	}

	return &Alert{
		Criticality: sev,
		ID:          id,
		Class:       ErrorClass(err),
		Timestamp:   time.Now(),
		Content:     err.Error(),
	}
}

// AlertStatus ... Delivery status reported by an alert destination
type AlertStatus string

const (
	SuccessStatus AlertStatus = "success"
	FailureStatus AlertStatus = "failure"
)
