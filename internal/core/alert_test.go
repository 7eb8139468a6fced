package core_test

import (
	"fmt"
	"testing"

	"github.com/base-org/forcer/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringToSev(t *testing.T) {
	assert.Equal(t, core.StringToSev("low"), core.LOW)
	assert.Equal(t, core.StringToSev("medium"), core.MEDIUM)
	assert.Equal(t, core.StringToSev("high"), core.HIGH)
	assert.Equal(t, core.StringToSev("unknown"), core.UNKNOWN)
	assert.Equal(t, core.StringToSev(""), core.UNKNOWN)
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, core.LOW.String(), "low")
	assert.Equal(t, core.MEDIUM.String(), "medium")
	assert.Equal(t, core.HIGH.String(), "high")
	assert.Equal(t, core.UNKNOWN.String(), "unknown")
}

func TestAlertFromError(t *testing.T) {
	id := core.MakeInvocationID()

	assert.Nil(t, core.AlertFromError(id, nil))
	assert.Nil(t, core.AlertFromError(id, fmt.Errorf("rpc: %w", core.ErrChainUnavailable)))
	assert.Nil(t, core.AlertFromError(id,
		fmt.Errorf("%w: %w", core.ErrSubmissionRejected, core.ErrAlreadyIncluded)))

	a := core.AlertFromError(id, fmt.Errorf("verify: %w", core.ErrInclusionNotObserved))
	require.NotNil(t, a)
	assert.Equal(t, core.HIGH, a.Criticality)
	assert.Equal(t, "inclusion_not_observed", a.Class)
	assert.Equal(t, id, a.ID)

	a = core.AlertFromError(id, fmt.Errorf("%w: reverted", core.ErrSubmissionRejected))
	require.NotNil(t, a)
	assert.Equal(t, core.MEDIUM, a.Criticality)
	assert.Equal(t, "submission_rejected", a.Class)
}
