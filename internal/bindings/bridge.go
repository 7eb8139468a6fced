package bindings

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// BridgeMessageDelivered ... MessageDelivered event raised by the bridge on every delayed append
type BridgeMessageDelivered struct {
	MessageIndex    *big.Int
	BeforeInboxAcc  [32]byte
	Inbox           common.Address
	Kind            uint8
	Sender          common.Address
	MessageDataHash [32]byte
	BaseFeeL1       *big.Int
	Timestamp       uint64
	Raw             types.Log
}

// Bridge ... Read binding around the L1 bridge contract
type Bridge struct {
	address  common.Address
	contract *bind.BoundContract
}

// NewBridge ... Initializer
func NewBridge(address common.Address, backend bind.ContractBackend) *Bridge {
	return &Bridge{
		address:  address,
		contract: bind.NewBoundContract(address, BridgeABI, backend, backend, backend),
	}
}

// Address ... Returns the bridge address
func (b *Bridge) Address() common.Address {
	return b.address
}

// DelayedMessageCount ... Solidity: function delayedMessageCount() view returns(uint256)
func (b *Bridge) DelayedMessageCount(opts *bind.CallOpts) (*big.Int, error) {
	var out []interface{}
	if err := b.contract.Call(opts, &out, "delayedMessageCount"); err != nil {
		return nil, errors.WithStack(err)
	}

	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// DelayedInboxAccs ... Solidity: function delayedInboxAccs(uint256) view returns(bytes32)
func (b *Bridge) DelayedInboxAccs(opts *bind.CallOpts, index *big.Int) (common.Hash, error) {
	var out []interface{}
	if err := b.contract.Call(opts, &out, "delayedInboxAccs", index); err != nil {
		return common.Hash{}, errors.WithStack(err)
	}

	return common.Hash(*abi.ConvertType(out[0], new([32]byte)).(*[32]byte)), nil
}

// ParseMessageDelivered ... Decodes a MessageDelivered log
func (b *Bridge) ParseMessageDelivered(log types.Log) (*BridgeMessageDelivered, error) {
	event := new(BridgeMessageDelivered)
	if err := b.contract.UnpackLog(event, "MessageDelivered", log); err != nil {
		return nil, errors.WithStack(err)
	}

	event.Raw = log
	return event, nil
}
