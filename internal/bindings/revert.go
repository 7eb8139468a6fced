package bindings

import (
	"bytes"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

// Revert strings and custom errors raised by forceInclusion, across contract versions
var (
	DelayedBackwardsReasons = []string{"DELAYED_BACKWARDS", "DelayedBackwards"}
	AccumulatorReasons      = []string{"DELAYED_ACCUMULATOR", "IncorrectMessagePreimage"}
	TooSoonReasons          = []string{"MAX_DELAY_BLOCKS", "MAX_DELAY_TIME", "ForceIncludeBlockTooSoon", "ForceIncludeTimeTooSoon"}
)

// RevertReason ... Best effort extraction of a revert string or custom error name from a
// call or gas estimation error
func RevertReason(err error) string {
	if err == nil {
		return ""
	}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if reason, ok := decodeRevertData(dataErr.ErrorData()); ok {
			return reason
		}
	}

	return err.Error()
}

// RevertMatches ... Returns true if the revert reason of err names any of the given reasons
func RevertMatches(err error, reasons []string) bool {
	reason := RevertReason(err)
	for _, r := range reasons {
		if strings.Contains(reason, r) {
			return true
		}
	}
	return false
}

func decodeRevertData(raw interface{}) (string, bool) {
	hexData, ok := raw.(string)
	if !ok {
		return "", false
	}

	data, err := hexutil.Decode(hexData)
	if err != nil || len(data) < 4 {
		return "", false
	}

	if reason, err := abi.UnpackRevert(data); err == nil {
		return reason, true
	}

	for name, customErr := range SequencerInboxABI.Errors {
		if bytes.Equal(customErr.ID[:4], data[:4]) {
			return name, true
		}
	}
	return "", false
}

// IsRevert ... Returns true if err reports an EVM revert rather than a transport failure
func IsRevert(err error) bool {
	if err == nil {
		return false
	}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		return true
	}
	return strings.Contains(err.Error(), "execution reverted")
}
