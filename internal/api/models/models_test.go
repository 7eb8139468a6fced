package models_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/base-org/forcer/internal/api/models"
	"github.com/base-org/forcer/internal/core"
	"github.com/base-org/forcer/internal/state"
	"github.com/stretchr/testify/assert"
)

func Test_ErrorCode(t *testing.T) {
	var tests = []struct {
		name string
		err  error
		code int
	}{
		{"Unknown attempt", fmt.Errorf("%w: abc", state.ErrNotFound), http.StatusNotFound},
		{"Already included", fmt.Errorf("%w: %w", core.ErrAlreadyIncluded, core.ErrSubmissionRejected), http.StatusConflict},
		{"Rejected", fmt.Errorf("%w: MAX_DELAY_BLOCKS", core.ErrSubmissionRejected), http.StatusUnprocessableEntity},
		{"Unavailable", fmt.Errorf("%w: dial", core.ErrChainUnavailable), http.StatusServiceUnavailable},
		{"Timeout", core.ErrConfirmationTimeout, http.StatusServiceUnavailable},
		{"Mismatch", core.ErrAccumulatorMismatch, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, models.ErrorCode(tc.err))
		})
	}
}

func Test_NewForceIncludeResp(t *testing.T) {
	fit := &core.ForceInclusionTx{Target: 4}

	resp := models.NewForceIncludeResp(fit, nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, models.OK, resp.Status)
	assert.Equal(t, fit, resp.Result)

	resp = models.NewForceIncludeResp(nil, nil)
	assert.Equal(t, models.OK, resp.Status)
	assert.Nil(t, resp.Result)

	resp = models.NewForceIncludeResp(fit, core.ErrConfirmationTimeout)
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
	assert.Equal(t, models.NotOK, resp.Status)
	assert.Equal(t, fit, resp.Result)
	assert.Equal(t, core.ErrConfirmationTimeout.Error(), resp.Error)
}
