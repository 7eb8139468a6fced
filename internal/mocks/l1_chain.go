package mocks

import (
	"context"
	"encoding/binary"
	"fmt"
	"math/big"
	"sync"

	"github.com/base-org/forcer/internal/bindings"
	"github.com/base-org/forcer/internal/client"
	"github.com/base-org/forcer/internal/core"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	GenesisBlock  uint64 = 1_000
	GenesisTime   uint64 = 1_700_000_000
	BlockInterval uint64 = 12

	forceInclusionGas uint64 = 150_000
)

var (
	DefaultBridge         = common.HexToAddress("0x8315177aB297bA92A06054cE80a67Ed4DBd7ed3a")
	DefaultSequencerInbox = common.HexToAddress("0x1c479675ad559DC151F6Ec7ed3FbF8ceE79582B6")
	DefaultInbox          = common.HexToAddress("0x4Dbd4fc535Ac27206064B68FfCf827b0A60BAB3f")

	gwei = big.NewInt(1_000_000_000)

	errUnavailable = fmt.Errorf("dial tcp 127.0.0.1:8545: connect: connection refused")
)

var _ client.EthClient = (*L1Chain)(nil)

// L1Chain ... In-memory L1 exposing the bridge, inbox and sequencer inbox contracts through the
// client.EthClient surface. Calls are ABI decoded and forceInclusion is executed against a
// real accumulator. Every sent transaction is mined into its own block
type L1Chain struct {
	mu sync.Mutex

	BridgeAddress         common.Address
	SequencerInboxAddress common.Address
	InboxAddress          common.Address

	chainID    *big.Int
	number     uint64
	blockTimes map[uint64]uint64

	delayBlocks  uint64
	delaySeconds uint64

	messages  []core.DelayedMessage
	accs      []common.Hash
	readCount uint64

	logs     []types.Log
	txs      map[common.Hash]*types.Transaction
	receipts map[common.Hash]*types.Receipt
	nonces   map[common.Address]uint64

	unavailable  bool
	hideReceipts bool
	filterCalls  int
}

// NewL1Chain ... Initializer
func NewL1Chain(delayBlocks, delaySeconds uint64) *L1Chain {
	return &L1Chain{
		BridgeAddress:         DefaultBridge,
		SequencerInboxAddress: DefaultSequencerInbox,
		InboxAddress:          DefaultInbox,

		chainID:    big.NewInt(1337),
		number:     GenesisBlock,
		blockTimes: map[uint64]uint64{GenesisBlock: GenesisTime},

		delayBlocks:  delayBlocks,
		delaySeconds: delaySeconds,

		txs:      make(map[common.Hash]*types.Transaction),
		receipts: make(map[common.Hash]*types.Receipt),
		nonces:   make(map[common.Address]uint64),
	}
}

type revertError struct {
	reason string
}

func (e *revertError) Error() string {
	return "execution reverted: " + e.reason
}

func (e *revertError) ErrorData() interface{} {
	stringTy, _ := abi.NewType("string", "", nil)
	encoded, _ := abi.Arguments{{Type: stringTy}}.Pack(e.reason)
	selector := crypto.Keccak256([]byte("Error(string)"))[:4]
	return hexutil.Encode(append(selector, encoded...))
}

func revert(reason string) error {
	return &revertError{reason: reason}
}

/*
	Test controls
*/

// Mine ... Produces blocks empty blocks, secondsPerBlock apart
func (c *L1Chain) Mine(blocks, secondsPerBlock uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := uint64(0); i < blocks; i++ {
		c.mineLocked(secondsPerBlock)
	}
}

func (c *L1Chain) mineLocked(seconds uint64) {
	prev := c.blockTimes[c.number]
	c.number++
	c.blockTimes[c.number] = prev + seconds
}

// AppendMessage ... Enqueues a delayed message in the current block; the payload is
// carried by an InboxMessageDelivered event
func (c *L1Chain) AppendMessage(kind uint8, sender common.Address, payload []byte) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	seq := uint64(len(c.messages))
	txHash := crypto.Keccak256Hash([]byte("append"), uint64Bytes(seq))
	c.appendLocked(kind, sender, payload, txHash)

	data, _ := bindings.MessageProviderABI.Events["InboxMessageDelivered"].Inputs.NonIndexed().Pack(payload)
	c.addLogLocked(types.Log{
		Address: c.InboxAddress,
		Topics:  []common.Hash{bindings.InboxMessageDeliveredID, seqTopic(seq)},
		Data:    data,
		TxHash:  txHash,
	})

	return seq
}

// AppendMessageFromOrigin ... Enqueues a delayed message whose payload only lives in the
// calldata of a sendL2MessageFromOrigin transaction
func (c *L1Chain) AppendMessageFromOrigin(sender common.Address, payload []byte) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	calldata, _ := bindings.PackSendL2MessageFromOrigin(payload)
	to := c.InboxAddress
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    uint64(len(c.txs)),
		To:       &to,
		Gas:      100_000,
		GasPrice: gwei,
		Data:     calldata,
	})
	c.txs[tx.Hash()] = tx

	seq := uint64(len(c.messages))
	c.appendLocked(core.MessageKindL2Message, sender, payload, tx.Hash())
	c.addLogLocked(types.Log{
		Address: c.InboxAddress,
		Topics:  []common.Hash{bindings.InboxMessageDeliveredFromOriginID, seqTopic(seq)},
		TxHash:  tx.Hash(),
	})

	return seq
}

func (c *L1Chain) appendLocked(kind uint8, sender common.Address, payload []byte, txHash common.Hash) {
	seq := uint64(len(c.messages))

	var prev common.Hash
	if seq > 0 {
		prev = c.accs[seq-1]
	}

	msg := core.DelayedMessage{
		SequenceNumber: seq,
		Timestamp:      c.blockTimes[c.number],
		BlockNumber:    c.number,
		Sender:         sender,
		PayloadHash:    crypto.Keccak256Hash(payload),
		Kind:           kind,
		BaseFeeL1:      new(big.Int).Set(gwei),
		BeforeInboxAcc: prev,
		Inbox:          c.InboxAddress,
		TxHash:         txHash,
		Payload:        common.CopyBytes(payload),
	}
	c.messages = append(c.messages, msg)
	c.accs = append(c.accs, msg.AfterInboxAcc())

	data, _ := bindings.BridgeABI.Events["MessageDelivered"].Inputs.NonIndexed().Pack(
		msg.Inbox, msg.Kind, msg.Sender, [32]byte(msg.PayloadHash), msg.BaseFeeL1, msg.Timestamp)
	c.addLogLocked(types.Log{
		Address: c.BridgeAddress,
		Topics:  []common.Hash{bindings.MessageDeliveredID, seqTopic(seq), prev},
		Data:    data,
		TxHash:  txHash,
	})
}

func (c *L1Chain) addLogLocked(log types.Log) {
	log.BlockNumber = c.number
	log.BlockHash = blockHash(c.number)
	log.Index = uint(len(c.logs))
	c.logs = append(c.logs, log)
}

// Message ... Returns the message stored at seq
func (c *L1Chain) Message(seq uint64) core.DelayedMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.messages[seq]
}

// Accumulator ... Returns the accumulator stored at seq
func (c *L1Chain) Accumulator(seq uint64) common.Hash {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.accs[seq]
}

// ReadCount ... Returns the sequencer inbox read counter
func (c *L1Chain) ReadCount() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.readCount
}

// SetReadCount ... Simulates the sequencer reading delayed messages on its own
func (c *L1Chain) SetReadCount(n uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.readCount = n
}

// Head ... Returns the current block number and timestamp
func (c *L1Chain) Head() (uint64, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.number, c.blockTimes[c.number]
}

// SetUnavailable ... Makes every rpc call fail as if the node were unreachable
func (c *L1Chain) SetUnavailable(unavailable bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.unavailable = unavailable
}

// HideReceipts ... Keeps transaction receipts from being served
func (c *L1Chain) HideReceipts(hide bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.hideReceipts = hide
}

// DropLogs ... Removes every log matching the predicate, simulating a lagging log index
func (c *L1Chain) DropLogs(match func(types.Log) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.logs[:0]
	for _, log := range c.logs {
		if !match(log) {
			kept = append(kept, log)
		}
	}
	c.logs = kept
}

// ReplacePayload ... Rewrites the InboxMessageDelivered data of seq without touching the bridge
func (c *L1Chain) ReplacePayload(seq uint64, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, _ := bindings.MessageProviderABI.Events["InboxMessageDelivered"].Inputs.NonIndexed().Pack(payload)
	for i := range c.logs {
		log := &c.logs[i]
		if log.Topics[0] == bindings.InboxMessageDeliveredID && log.Topics[1] == seqTopic(seq) {
			log.Data = data
		}
	}
}

// FilterCalls ... Returns the number of eth_getLogs requests served
func (c *L1Chain) FilterCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.filterCalls
}

/*
	client.EthClient
*/

// CallContract ... Executes view calls against the bridge and sequencer inbox
func (c *L1Chain) CallContract(_ context.Context, call ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.unavailable {
		return nil, errUnavailable
	}
	if call.To == nil || len(call.Data) < 4 {
		return nil, fmt.Errorf("invalid call")
	}

	switch *call.To {
	case c.BridgeAddress:
		method, args, err := decodeCall(bindings.BridgeABI, call.Data)
		if err != nil {
			return nil, err
		}

		switch method.Name {
		case "delayedMessageCount":
			return method.Outputs.Pack(new(big.Int).SetUint64(uint64(len(c.messages))))

		case "delayedInboxAccs":
			idx := args[0].(*big.Int)
			if !idx.IsUint64() || idx.Uint64() >= uint64(len(c.accs)) {
				return nil, revert("index out of bounds")
			}
			return method.Outputs.Pack([32]byte(c.accs[idx.Uint64()]))
		}

	case c.SequencerInboxAddress:
		method, args, err := decodeCall(bindings.SequencerInboxABI, call.Data)
		if err != nil {
			return nil, err
		}

		switch method.Name {
		case "totalDelayedMessagesRead":
			return method.Outputs.Pack(new(big.Int).SetUint64(c.readCount))

		case "maxTimeVariation":
			return method.Outputs.Pack(
				new(big.Int).SetUint64(c.delayBlocks),
				new(big.Int).SetUint64(32),
				new(big.Int).SetUint64(c.delaySeconds),
				new(big.Int).SetUint64(3600),
			)

		case "forceInclusion":
			return nil, c.forceInclusionLocked(args, false)
		}
	}

	return nil, fmt.Errorf("execution reverted")
}

// EstimateGas ... Simulates forceInclusion against the pending block
func (c *L1Chain) EstimateGas(_ context.Context, call ethereum.CallMsg) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.unavailable {
		return 0, errUnavailable
	}

	if call.To != nil && *call.To == c.SequencerInboxAddress {
		_, args, err := decodeCall(bindings.SequencerInboxABI, call.Data)
		if err != nil {
			return 0, err
		}
		if err := c.forceInclusionLocked(args, false); err != nil {
			return 0, err
		}
		return forceInclusionGas, nil
	}

	return 21_000, nil
}

// SendTransaction ... Mines the transaction into a new block
func (c *L1Chain) SendTransaction(_ context.Context, tx *types.Transaction) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.unavailable {
		return errUnavailable
	}

	from, err := types.Sender(types.LatestSignerForChainID(c.chainID), tx)
	if err != nil {
		return err
	}
	if tx.Nonce() != c.nonces[from] {
		return fmt.Errorf("nonce too low: address %s, tx: %d state: %d", from, tx.Nonce(), c.nonces[from])
	}
	c.nonces[from]++

	c.mineLocked(BlockInterval)

	status := types.ReceiptStatusSuccessful
	if tx.To() != nil && *tx.To() == c.SequencerInboxAddress {
		method, args, err := decodeCall(bindings.SequencerInboxABI, tx.Data())
		if err != nil || method.Name != "forceInclusion" {
			status = types.ReceiptStatusFailed
		} else if err := c.forceInclusionLocked(args, true); err != nil {
			status = types.ReceiptStatusFailed
		}
	}

	c.txs[tx.Hash()] = tx
	c.receipts[tx.Hash()] = &types.Receipt{
		Type:        tx.Type(),
		Status:      status,
		TxHash:      tx.Hash(),
		GasUsed:     forceInclusionGas,
		BlockHash:   blockHash(c.number),
		BlockNumber: new(big.Int).SetUint64(c.number),
	}
	return nil
}

// forceInclusionLocked ... Mirrors SequencerInbox.forceInclusion. Simulations run against the
// pending block, sends against the block they were mined in
func (c *L1Chain) forceInclusionLocked(args []interface{}, apply bool) error {
	blockNumber, blockTime := c.number, c.blockTimes[c.number]
	if !apply {
		blockNumber, blockTime = c.number+1, c.blockTimes[c.number]+BlockInterval
	}

	n := args[0].(*big.Int).Uint64()
	kind := args[1].(uint8)
	blockAndTime := args[2].([2]uint64)
	baseFee := args[3].(*big.Int)
	sender := args[4].(common.Address)
	dataHash := common.Hash(args[5].([32]byte))

	if n <= c.readCount {
		return revert("DELAYED_BACKWARDS")
	}
	if n > uint64(len(c.messages)) {
		return revert("DELAYED_TOO_FAR")
	}
	if blockAndTime[0]+c.delayBlocks >= blockNumber {
		return revert("MAX_DELAY_BLOCKS")
	}
	if blockAndTime[1]+c.delaySeconds >= blockTime {
		return revert("MAX_DELAY_TIME")
	}

	var prev common.Hash
	if n > 1 {
		prev = c.accs[n-2]
	}

	msg := core.DelayedMessage{
		SequenceNumber: n - 1,
		Kind:           kind,
		Sender:         sender,
		BlockNumber:    blockAndTime[0],
		Timestamp:      blockAndTime[1],
		BaseFeeL1:      baseFee,
		PayloadHash:    dataHash,
	}
	if core.AccumulateInboxMessage(prev, msg.Hash()) != c.accs[n-1] {
		return revert("DELAYED_ACCUMULATOR")
	}

	if apply {
		c.readCount = n
	}
	return nil
}

// TransactionReceipt ... Returns the receipt of a mined transaction
func (c *L1Chain) TransactionReceipt(_ context.Context, txHash common.Hash) (*types.Receipt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.unavailable {
		return nil, errUnavailable
	}

	receipt, ok := c.receipts[txHash]
	if !ok || c.hideReceipts {
		return nil, ethereum.NotFound
	}
	return receipt, nil
}

// TransactionByHash ... Returns a known transaction
func (c *L1Chain) TransactionByHash(_ context.Context, hash common.Hash) (*types.Transaction, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.unavailable {
		return nil, false, errUnavailable
	}

	tx, ok := c.txs[hash]
	if !ok {
		return nil, false, ethereum.NotFound
	}
	return tx, false, nil
}

// FilterLogs ... Matches stored logs by block range, address and topics
func (c *L1Chain) FilterLogs(_ context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.filterCalls++
	if c.unavailable {
		return nil, errUnavailable
	}

	from, to := uint64(0), c.number
	if q.FromBlock != nil {
		from = q.FromBlock.Uint64()
	}
	if q.ToBlock != nil {
		to = q.ToBlock.Uint64()
	}

	var out []types.Log
	for _, log := range c.logs {
		if log.BlockNumber < from || log.BlockNumber > to {
			continue
		}
		if len(q.Addresses) > 0 && !containsAddress(q.Addresses, log.Address) {
			continue
		}
		if !matchTopics(q.Topics, log.Topics) {
			continue
		}
		out = append(out, log)
	}
	return out, nil
}

// SubscribeFilterLogs ... Not supported
func (c *L1Chain) SubscribeFilterLogs(context.Context, ethereum.FilterQuery,
	chan<- types.Log) (ethereum.Subscription, error) {
	return nil, fmt.Errorf("subscriptions not supported")
}

// HeaderByNumber ... Returns a header carrying number, time and a base fee
func (c *L1Chain) HeaderByNumber(_ context.Context, number *big.Int) (*types.Header, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.unavailable {
		return nil, errUnavailable
	}

	n := c.number
	if number != nil {
		n = number.Uint64()
	}
	blockTime, ok := c.blockTimes[n]
	if !ok {
		return nil, ethereum.NotFound
	}

	return &types.Header{
		Number:  new(big.Int).SetUint64(n),
		Time:    blockTime,
		BaseFee: new(big.Int).Set(gwei),
	}, nil
}

// BlockNumber ... Returns the current block number
func (c *L1Chain) BlockNumber(context.Context) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.unavailable {
		return 0, errUnavailable
	}
	return c.number, nil
}

// ChainID ... Returns the chain id used for signing
func (c *L1Chain) ChainID(context.Context) (*big.Int, error) {
	return new(big.Int).Set(c.chainID), nil
}

// BalanceAt ... Every account holds one ether
func (c *L1Chain) BalanceAt(context.Context, common.Address, *big.Int) (*big.Int, error) {
	return big.NewInt(1e18), nil
}

// CodeAt ... Every account has code
func (c *L1Chain) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return []byte{0x60}, nil
}

// PendingCodeAt ... Every account has code
func (c *L1Chain) PendingCodeAt(context.Context, common.Address) ([]byte, error) {
	return []byte{0x60}, nil
}

// PendingNonceAt ... Returns the next nonce of the account
func (c *L1Chain) PendingNonceAt(_ context.Context, account common.Address) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.unavailable {
		return 0, errUnavailable
	}
	return c.nonces[account], nil
}

// SuggestGasPrice ... Constant one gwei
func (c *L1Chain) SuggestGasPrice(context.Context) (*big.Int, error) {
	return new(big.Int).Set(gwei), nil
}

// SuggestGasTipCap ... Constant one gwei
func (c *L1Chain) SuggestGasTipCap(context.Context) (*big.Int, error) {
	return new(big.Int).Set(gwei), nil
}

func decodeCall(contract abi.ABI, data []byte) (*abi.Method, []interface{}, error) {
	if len(data) < 4 {
		return nil, nil, fmt.Errorf("calldata too short")
	}

	method, err := contract.MethodById(data[:4])
	if err != nil {
		return nil, nil, err
	}

	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, nil, err
	}
	return method, args, nil
}

func containsAddress(set []common.Address, addr common.Address) bool {
	for _, a := range set {
		if a == addr {
			return true
		}
	}
	return false
}

func matchTopics(filter [][]common.Hash, topics []common.Hash) bool {
	for i, set := range filter {
		if len(set) == 0 {
			continue
		}
		if i >= len(topics) {
			return false
		}

		matched := false
		for _, t := range set {
			if t == topics[i] {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

func seqTopic(seq uint64) common.Hash {
	return common.BigToHash(new(big.Int).SetUint64(seq))
}

func blockHash(number uint64) common.Hash {
	return crypto.Keccak256Hash([]byte("block"), uint64Bytes(number))
}

func uint64Bytes(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
