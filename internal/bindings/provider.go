package bindings

import (
	"bytes"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// InboxMessageDelivered ... Payload carrying event raised by a delayed message provider
type InboxMessageDelivered struct {
	MessageNum *big.Int
	Data       []byte
	Raw        types.Log
}

// InboxMessageDeliveredFromOrigin ... Event raised when the payload lives in the transaction calldata
type InboxMessageDeliveredFromOrigin struct {
	MessageNum *big.Int
	Raw        types.Log
}

// MessageProvider ... Binding around delayed message providers (inboxes) attached to the bridge
type MessageProvider struct {
	contract *bind.BoundContract
}

// NewMessageProvider ... Initializer; the address is irrelevant for log parsing
func NewMessageProvider(backend bind.ContractBackend) *MessageProvider {
	return &MessageProvider{
		contract: bind.NewBoundContract(common.Address{}, MessageProviderABI, backend, backend, backend),
	}
}

// ParseInboxMessageDelivered ... Decodes an InboxMessageDelivered log
func (mp *MessageProvider) ParseInboxMessageDelivered(log types.Log) (*InboxMessageDelivered, error) {
	event := new(InboxMessageDelivered)
	if err := mp.contract.UnpackLog(event, "InboxMessageDelivered", log); err != nil {
		return nil, errors.WithStack(err)
	}

	event.Raw = log
	return event, nil
}

// ParseInboxMessageDeliveredFromOrigin ... Decodes an InboxMessageDeliveredFromOrigin log
func (mp *MessageProvider) ParseInboxMessageDeliveredFromOrigin(log types.Log) (*InboxMessageDeliveredFromOrigin, error) {
	event := new(InboxMessageDeliveredFromOrigin)
	if err := mp.contract.UnpackLog(event, "InboxMessageDeliveredFromOrigin", log); err != nil {
		return nil, errors.WithStack(err)
	}

	event.Raw = log
	return event, nil
}

// UnpackSendL2MessageFromOrigin ... Extracts the message payload from sendL2MessageFromOrigin calldata
func UnpackSendL2MessageFromOrigin(calldata []byte) ([]byte, error) {
	method := InboxABI.Methods["sendL2MessageFromOrigin"]
	if len(calldata) < 4 || !bytes.Equal(calldata[:4], method.ID) {
		return nil, errors.New("calldata is not a sendL2MessageFromOrigin call")
	}

	args, err := method.Inputs.Unpack(calldata[4:])
	if err != nil {
		return nil, errors.WithStack(err)
	}

	payload, ok := args[0].([]byte)
	if !ok {
		return nil, errors.Errorf("unexpected sendL2MessageFromOrigin argument type %T", args[0])
	}
	return payload, nil
}

// PackSendL2MessageFromOrigin ... Returns the calldata of a sendL2MessageFromOrigin call
func PackSendL2MessageFromOrigin(payload []byte) ([]byte, error) {
	data, err := InboxABI.Pack("sendL2MessageFromOrigin", payload)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return data, nil
}
