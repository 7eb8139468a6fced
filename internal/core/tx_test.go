package core_test

import (
	"encoding/json"
	"testing"

	"github.com/base-org/forcer/internal/core"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ForceInclusionTx_JSON(t *testing.T) {
	fit := &core.ForceInclusionTx{
		ID:                core.MakeInvocationID(),
		Target:            9,
		ExpectedReadCount: 10,
		TxHash:            common.HexToHash("0x01"),
		Status:            core.TxConfirmed,
	}

	data, err := json.Marshal(fit)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"status":"confirmed"`)
	assert.Contains(t, string(data), fit.ID.String())

	var decoded core.ForceInclusionTx
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, fit.ID, decoded.ID)
	assert.Equal(t, core.TxConfirmed, decoded.Status)
	assert.True(t, fit.SubmittedAt.Equal(decoded.SubmittedAt))

	var status core.TxStatus
	assert.Error(t, status.UnmarshalText([]byte("mined")))
}

func Test_ForceInclusionTx_Pending(t *testing.T) {
	assert.True(t, (&core.ForceInclusionTx{Status: core.TxSubmitted}).Pending())
	assert.True(t, (&core.ForceInclusionTx{Status: core.TxPending}).Pending())
	assert.False(t, (&core.ForceInclusionTx{Status: core.TxConstructed}).Pending())
	assert.False(t, (&core.ForceInclusionTx{Status: core.TxConfirmed}).Pending())
}
