package core_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/base-org/forcer/internal/core"
	"github.com/stretchr/testify/assert"
)

func Test_ErrorClassification(t *testing.T) {
	var tests = []struct {
		name      string
		err       error
		class     string
		transient bool
		benign    bool
		fatal     bool
	}{
		{
			name:  "No error",
			err:   nil,
			class: "none",
		},
		{
			name:      "Wrapped RPC failure",
			err:       fmt.Errorf("reading count: %w", core.ErrChainUnavailable),
			class:     "chain_unavailable",
			transient: true,
		},
		{
			name:   "Lost race",
			err:    fmt.Errorf("%w: %w", core.ErrSubmissionRejected, core.ErrAlreadyIncluded),
			class:  "already_included",
			benign: true,
		},
		{
			name:  "Accumulator revert",
			err:   fmt.Errorf("%w: %w", core.ErrSubmissionRejected, core.ErrAccumulatorMismatch),
			class: "accumulator_mismatch",
			fatal: true,
		},
		{
			name:  "Unobserved inclusion",
			err:   core.ErrInclusionNotObserved,
			class: "inclusion_not_observed",
			fatal: true,
		},
		{
			name:      "Confirmation timeout",
			err:       core.ErrConfirmationTimeout,
			class:     "confirmation_timeout",
			transient: true,
		},
		{
			name:  "Unclassified",
			err:   errors.New("boom"),
			class: core.UnknownType,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.class, core.ErrorClass(tc.err))
			assert.Equal(t, tc.transient, core.IsTransient(tc.err))
			assert.Equal(t, tc.benign, core.IsBenign(tc.err))
			assert.Equal(t, tc.fatal, core.IsFatal(tc.err))
		})
	}
}
