// Package bindings holds the subset of the Arbitrum bridge and sequencer inbox ABIs
// used to read the delayed inbox and to force include delayed messages.
package bindings

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

const bridgeABIJSON = `[
	{"inputs":[],"name":"delayedMessageCount","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"internalType":"uint256","name":"","type":"uint256"}],"name":"delayedInboxAccs","outputs":[{"internalType":"bytes32","name":"","type":"bytes32"}],"stateMutability":"view","type":"function"},
	{"anonymous":false,"inputs":[
		{"indexed":true,"internalType":"uint256","name":"messageIndex","type":"uint256"},
		{"indexed":true,"internalType":"bytes32","name":"beforeInboxAcc","type":"bytes32"},
		{"indexed":false,"internalType":"address","name":"inbox","type":"address"},
		{"indexed":false,"internalType":"uint8","name":"kind","type":"uint8"},
		{"indexed":false,"internalType":"address","name":"sender","type":"address"},
		{"indexed":false,"internalType":"bytes32","name":"messageDataHash","type":"bytes32"},
		{"indexed":false,"internalType":"uint256","name":"baseFeeL1","type":"uint256"},
		{"indexed":false,"internalType":"uint64","name":"timestamp","type":"uint64"}
	],"name":"MessageDelivered","type":"event"}
]`

const messageProviderABIJSON = `[
	{"anonymous":false,"inputs":[
		{"indexed":true,"internalType":"uint256","name":"messageNum","type":"uint256"},
		{"indexed":false,"internalType":"bytes","name":"data","type":"bytes"}
	],"name":"InboxMessageDelivered","type":"event"},
	{"anonymous":false,"inputs":[
		{"indexed":true,"internalType":"uint256","name":"messageNum","type":"uint256"}
	],"name":"InboxMessageDeliveredFromOrigin","type":"event"}
]`

const inboxABIJSON = `[
	{"inputs":[{"internalType":"bytes","name":"messageData","type":"bytes"}],"name":"sendL2MessageFromOrigin","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"nonpayable","type":"function"}
]`

const sequencerInboxABIJSON = `[
	{"inputs":[],"name":"totalDelayedMessagesRead","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"maxTimeVariation","outputs":[
		{"internalType":"uint256","name":"delayBlocks","type":"uint256"},
		{"internalType":"uint256","name":"futureBlocks","type":"uint256"},
		{"internalType":"uint256","name":"delaySeconds","type":"uint256"},
		{"internalType":"uint256","name":"futureSeconds","type":"uint256"}
	],"stateMutability":"view","type":"function"},
	{"inputs":[
		{"internalType":"uint256","name":"_totalDelayedMessagesRead","type":"uint256"},
		{"internalType":"uint8","name":"kind","type":"uint8"},
		{"internalType":"uint64[2]","name":"l1BlockAndTime","type":"uint64[2]"},
		{"internalType":"uint256","name":"baseFeeL1","type":"uint256"},
		{"internalType":"address","name":"sender","type":"address"},
		{"internalType":"bytes32","name":"messageDataHash","type":"bytes32"}
	],"name":"forceInclusion","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[],"name":"DelayedBackwards","type":"error"},
	{"inputs":[],"name":"DelayedTooFar","type":"error"},
	{"inputs":[],"name":"ForceIncludeBlockTooSoon","type":"error"},
	{"inputs":[],"name":"ForceIncludeTimeTooSoon","type":"error"},
	{"inputs":[],"name":"IncorrectMessagePreimage","type":"error"}
]`

var (
	BridgeABI          abi.ABI
	MessageProviderABI abi.ABI
	InboxABI           abi.ABI
	SequencerInboxABI  abi.ABI

	MessageDeliveredID                common.Hash
	InboxMessageDeliveredID           common.Hash
	InboxMessageDeliveredFromOriginID common.Hash
)

func init() {
	BridgeABI = mustParse(bridgeABIJSON)
	MessageProviderABI = mustParse(messageProviderABIJSON)
	InboxABI = mustParse(inboxABIJSON)
	SequencerInboxABI = mustParse(sequencerInboxABIJSON)

	MessageDeliveredID = BridgeABI.Events["MessageDelivered"].ID
	InboxMessageDeliveredID = MessageProviderABI.Events["InboxMessageDelivered"].ID
	InboxMessageDeliveredFromOriginID = MessageProviderABI.Events["InboxMessageDeliveredFromOrigin"].ID
}

func mustParse(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(err)
	}
	return parsed
}
