package alert

import (
	"fmt"
	"time"

	"github.com/base-org/forcer/internal/core"
)

const (
	CodeBlockFmt = "```%s```"

	// SlackMsgFmt ... Slack message format
	SlackMsgFmt = `
	⚠️🚨 Forcer Alert: %s 🚨⚠️

	_Force inclusion invocation failed_

	_Severity:_ %s
	_Invocation ID:_ %s
	_Time:_ %s

	*Error:*
	%s
	`

	// MsgFmt ... Plain text format for non slack destinations
	MsgFmt = "Forcer alert %s (%s): %s"
)

// Interpolator ... Interface for interpolating messages
type Interpolator interface {
	InterpolateSlackMessage(alert core.Alert) string
	InterpolateMessage(alert core.Alert) string
}

// interpolator ... Interpolator implementation
type interpolator struct{}

// NewInterpolator ... Initializer
func NewInterpolator() Interpolator {
	return &interpolator{}
}

// InterpolateSlackMessage ... Renders an alert as a slack message
func (*interpolator) InterpolateSlackMessage(alert core.Alert) string {
	return fmt.Sprintf(SlackMsgFmt,
		alert.Class,
		alert.Criticality.String(),
		alert.ID.String(),
		alert.Timestamp.UTC().Format(time.RFC3339),
		fmt.Sprintf(CodeBlockFmt, alert.Content))
}

// InterpolateMessage ... Renders an alert as a one line summary
func (*interpolator) InterpolateMessage(alert core.Alert) string {
	return fmt.Sprintf(MsgFmt, alert.Class, alert.Criticality.String(), alert.Content)
}
