package bindings

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// MaxTimeVariation ... Delay and future windows configured on the sequencer inbox
type MaxTimeVariation struct {
	DelayBlocks   *big.Int
	FutureBlocks  *big.Int
	DelaySeconds  *big.Int
	FutureSeconds *big.Int
}

// SequencerInbox ... Read/write binding around the L1 sequencer inbox contract
type SequencerInbox struct {
	address  common.Address
	contract *bind.BoundContract
}

// NewSequencerInbox ... Initializer
func NewSequencerInbox(address common.Address, backend bind.ContractBackend) *SequencerInbox {
	return &SequencerInbox{
		address:  address,
		contract: bind.NewBoundContract(address, SequencerInboxABI, backend, backend, backend),
	}
}

// Address ... Returns the sequencer inbox address
func (si *SequencerInbox) Address() common.Address {
	return si.address
}

// TotalDelayedMessagesRead ... Solidity: function totalDelayedMessagesRead() view returns(uint256)
func (si *SequencerInbox) TotalDelayedMessagesRead(opts *bind.CallOpts) (*big.Int, error) {
	var out []interface{}
	if err := si.contract.Call(opts, &out, "totalDelayedMessagesRead"); err != nil {
		return nil, errors.WithStack(err)
	}

	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// MaxTimeVariation ... Solidity: function maxTimeVariation() view returns(uint256,uint256,uint256,uint256)
func (si *SequencerInbox) MaxTimeVariation(opts *bind.CallOpts) (MaxTimeVariation, error) {
	var out []interface{}
	if err := si.contract.Call(opts, &out, "maxTimeVariation"); err != nil {
		return MaxTimeVariation{}, errors.WithStack(err)
	}

	return MaxTimeVariation{
		DelayBlocks:   *abi.ConvertType(out[0], new(*big.Int)).(**big.Int),
		FutureBlocks:  *abi.ConvertType(out[1], new(*big.Int)).(**big.Int),
		DelaySeconds:  *abi.ConvertType(out[2], new(*big.Int)).(**big.Int),
		FutureSeconds: *abi.ConvertType(out[3], new(*big.Int)).(**big.Int),
	}, nil
}

// ForceInclusionArgs ... Arguments of forceInclusion describing the last message of the forced prefix
type ForceInclusionArgs struct {
	TotalDelayedMessagesRead *big.Int
	Kind                     uint8
	L1BlockAndTime           [2]uint64
	BaseFeeL1                *big.Int
	Sender                   common.Address
	MessageDataHash          [32]byte
}

func (a ForceInclusionArgs) params() []interface{} {
	return []interface{}{
		a.TotalDelayedMessagesRead,
		a.Kind,
		a.L1BlockAndTime,
		a.BaseFeeL1,
		a.Sender,
		a.MessageDataHash,
	}
}

// PackForceInclusion ... Returns the calldata of a forceInclusion call
func PackForceInclusion(args ForceInclusionArgs) ([]byte, error) {
	data, err := SequencerInboxABI.Pack("forceInclusion", args.params()...)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return data, nil
}

// ForceInclusion ... Solidity: function forceInclusion(uint256,uint8,uint64[2],uint256,address,bytes32)
func (si *SequencerInbox) ForceInclusion(opts *bind.TransactOpts, args ForceInclusionArgs) (*types.Transaction, error) {
	tx, err := si.contract.Transact(opts, "forceInclusion", args.params()...)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return tx, nil
}
