package bindings_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/base-org/forcer/internal/bindings"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dataError struct {
	msg  string
	data string
}

func (e dataError) Error() string          { return e.msg }
func (e dataError) ErrorData() interface{} { return e.data }

func revertStringData(t *testing.T, reason string) string {
	stringTy, err := abi.NewType("string", "", nil)
	require.NoError(t, err)

	encoded, err := abi.Arguments{{Type: stringTy}}.Pack(reason)
	require.NoError(t, err)

	selector := crypto.Keccak256([]byte("Error(string)"))[:4]
	return hexutil.Encode(append(selector, encoded...))
}

func Test_EventIDs(t *testing.T) {
	assert.Equal(t,
		crypto.Keccak256Hash([]byte("MessageDelivered(uint256,bytes32,address,uint8,address,bytes32,uint256,uint64)")),
		bindings.MessageDeliveredID)
	assert.Equal(t,
		crypto.Keccak256Hash([]byte("InboxMessageDelivered(uint256,bytes)")),
		bindings.InboxMessageDeliveredID)
	assert.Equal(t,
		crypto.Keccak256Hash([]byte("InboxMessageDeliveredFromOrigin(uint256)")),
		bindings.InboxMessageDeliveredFromOriginID)
}

func Test_ParseMessageDelivered(t *testing.T) {
	inbox := common.HexToAddress("0x4Dbd4fc535Ac27206064B68FfCf827b0A60BAB3f")
	sender := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	dataHash := crypto.Keccak256Hash([]byte("payload"))
	before := crypto.Keccak256Hash([]byte("before"))

	data, err := bindings.BridgeABI.Events["MessageDelivered"].Inputs.NonIndexed().Pack(
		inbox, uint8(12), sender, [32]byte(dataHash), big.NewInt(7), uint64(1_700_000_000))
	require.NoError(t, err)

	log := types.Log{
		Topics:      []common.Hash{bindings.MessageDeliveredID, common.BigToHash(big.NewInt(42)), before},
		Data:        data,
		BlockNumber: 100,
	}

	event, err := bindings.NewBridge(common.Address{}, nil).ParseMessageDelivered(log)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), event.MessageIndex.Uint64())
	assert.Equal(t, [32]byte(before), event.BeforeInboxAcc)
	assert.Equal(t, inbox, event.Inbox)
	assert.Equal(t, uint8(12), event.Kind)
	assert.Equal(t, sender, event.Sender)
	assert.Equal(t, [32]byte(dataHash), event.MessageDataHash)
	assert.Equal(t, int64(7), event.BaseFeeL1.Int64())
	assert.Equal(t, uint64(1_700_000_000), event.Timestamp)
	assert.Equal(t, uint64(100), event.Raw.BlockNumber)
}

func Test_ParseMessageDelivered_WrongEvent(t *testing.T) {
	log := types.Log{
		Topics: []common.Hash{bindings.InboxMessageDeliveredID, common.BigToHash(big.NewInt(1))},
	}

	_, err := bindings.NewBridge(common.Address{}, nil).ParseMessageDelivered(log)
	assert.Error(t, err)
}

func Test_SendL2MessageFromOrigin(t *testing.T) {
	payload := []byte{0x03, 0x01, 0x02, 0x03}

	calldata, err := bindings.PackSendL2MessageFromOrigin(payload)
	require.NoError(t, err)

	decoded, err := bindings.UnpackSendL2MessageFromOrigin(calldata)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)

	_, err = bindings.UnpackSendL2MessageFromOrigin([]byte{0xde, 0xad, 0xbe, 0xef})
	assert.Error(t, err)
}

func Test_RevertReason(t *testing.T) {
	customSelector := hexutil.Encode(crypto.Keccak256([]byte("DelayedBackwards()"))[:4])

	var tests = []struct {
		name     string
		err      error
		reason   string
		backward bool
	}{
		{
			name:   "Nil error",
			err:    nil,
			reason: "",
		},
		{
			name:     "Revert string in error data",
			err:      dataError{msg: "execution reverted", data: revertStringData(t, "DELAYED_BACKWARDS")},
			reason:   "DELAYED_BACKWARDS",
			backward: true,
		},
		{
			name:     "Custom error in error data",
			err:      fmt.Errorf("estimate: %w", dataError{msg: "execution reverted", data: customSelector}),
			reason:   "DelayedBackwards",
			backward: true,
		},
		{
			name:     "Plain error message",
			err:      fmt.Errorf("execution reverted: DELAYED_BACKWARDS"),
			reason:   "execution reverted: DELAYED_BACKWARDS",
			backward: true,
		},
		{
			name:   "Unrelated revert",
			err:    dataError{msg: "execution reverted", data: revertStringData(t, "DELAYED_ACCUMULATOR")},
			reason: "DELAYED_ACCUMULATOR",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.reason, bindings.RevertReason(tc.err))
			assert.Equal(t, tc.backward, bindings.RevertMatches(tc.err, bindings.DelayedBackwardsReasons))
		})
	}
}

func Test_PackForceInclusion(t *testing.T) {
	args := bindings.ForceInclusionArgs{
		TotalDelayedMessagesRead: big.NewInt(3),
		Kind:                     3,
		L1BlockAndTime:           [2]uint64{10, 20},
		BaseFeeL1:                big.NewInt(1),
		Sender:                   common.HexToAddress("0x01"),
		MessageDataHash:          crypto.Keccak256Hash([]byte{0x01}),
	}

	data, err := bindings.PackForceInclusion(args)
	require.NoError(t, err)

	method := bindings.SequencerInboxABI.Methods["forceInclusion"]
	assert.Equal(t, method.ID, data[:4])

	values, err := method.Inputs.Unpack(data[4:])
	require.NoError(t, err)
	assert.Equal(t, int64(3), values[0].(*big.Int).Int64())
	assert.Equal(t, uint8(3), values[1].(uint8))
	assert.Equal(t, [2]uint64{10, 20}, values[2].([2]uint64))
}

func Test_IsRevert(t *testing.T) {
	assert.False(t, bindings.IsRevert(nil))
	assert.False(t, bindings.IsRevert(fmt.Errorf("dial tcp: connection refused")))
	assert.True(t, bindings.IsRevert(fmt.Errorf("execution reverted: DELAYED_BACKWARDS")))
	assert.True(t, bindings.IsRevert(dataError{msg: "execution reverted", data: "0x"}))
}
