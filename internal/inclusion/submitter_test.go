package inclusion_test

import (
	"context"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/base-org/forcer/internal/bindings"
	"github.com/base-org/forcer/internal/core"
	"github.com/base-org/forcer/internal/inbox"
	"github.com/base-org/forcer/internal/inclusion"
	"github.com/base-org/forcer/internal/mocks"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testBridge   = common.HexToAddress("0x0000000000000000000000000000000000000b01")
	testSeqInbox = common.HexToAddress("0x0000000000000000000000000000000000000b02")
	testTxHash   = common.HexToHash("0x01")
)

type submitterSuite struct {
	mockL1    *mocks.MockEthClient
	reader    inbox.Reader
	submitter *inclusion.Submitter
}

func createSubmitterSuite(t *testing.T) *submitterSuite {
	ctrl := gomock.NewController(t)
	mockL1 := mocks.NewMockEthClient(ctrl)

	reader := inbox.NewReader(&inbox.Config{
		BridgeAddress:         testBridge,
		SequencerInboxAddress: testSeqInbox,
	}, mockL1)

	submitter := inclusion.NewSubmitter(&inclusion.SubmitterConfig{
		SequencerInboxAddress: testSeqInbox,
		Confirmation: &core.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: time.Millisecond,
			MaxInterval:     5 * time.Millisecond,
		},
	}, mockL1, reader, signer(t))

	return &submitterSuite{
		mockL1:    mockL1,
		reader:    reader,
		submitter: submitter,
	}
}

// expectTxBuilding ... Lets the transactor resolve fees and nonce for a dynamic fee tx
func (ss *submitterSuite) expectTxBuilding() {
	ss.mockL1.EXPECT().HeaderByNumber(gomock.Any(), gomock.Any()).
		Return(&types.Header{Number: big.NewInt(120), BaseFee: big.NewInt(1)}, nil).AnyTimes()
	ss.mockL1.EXPECT().SuggestGasTipCap(gomock.Any()).Return(big.NewInt(1), nil).AnyTimes()
	ss.mockL1.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(2), nil).AnyTimes()
	ss.mockL1.EXPECT().PendingNonceAt(gomock.Any(), gomock.Any()).Return(uint64(0), nil).AnyTimes()
	ss.mockL1.EXPECT().PendingCodeAt(gomock.Any(), gomock.Any()).Return([]byte{0x1}, nil).AnyTimes()
}

func packedReadCount(t *testing.T, n int64) []byte {
	out, err := bindings.SequencerInboxABI.Methods["totalDelayedMessagesRead"].Outputs.Pack(big.NewInt(n))
	require.NoError(t, err)
	return out
}

func testBatch() []core.DelayedMessage {
	return []core.DelayedMessage{{
		SequenceNumber: 2,
		Kind:           core.MessageKindL2Message,
		BlockNumber:    10,
		Timestamp:      100,
		Sender:         testSender,
	}}
}

func pendingTx() *core.ForceInclusionTx {
	return &core.ForceInclusionTx{
		Target:            2,
		ExpectedReadCount: 3,
		TxHash:            testTxHash,
		Status:            core.TxSubmitted,
	}
}

func Test_Submitter(t *testing.T) {
	var tests = []struct {
		name        string
		constructor func(t *testing.T) *submitterSuite
		testLogic   func(t *testing.T, ss *submitterSuite)
	}{
		{
			name: "Unreachable node during simulation is transient",
			constructor: func(t *testing.T) *submitterSuite {
				ss := createSubmitterSuite(t)
				ss.mockL1.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).
					Return(uint64(0), fmt.Errorf("dial tcp: connection refused")).
					Times(1)

				return ss
			},
			testLogic: func(t *testing.T, ss *submitterSuite) {
				fit, err := ss.submitter.Submit(context.Background(), 2, testBatch())
				assert.Nil(t, fit)
				assert.ErrorIs(t, err, core.ErrChainUnavailable)
				assert.NotErrorIs(t, err, core.ErrSubmissionRejected)
				assert.True(t, core.IsTransient(err))
			},
		},
		{
			name: "Revert during simulation is a rejection",
			constructor: func(t *testing.T) *submitterSuite {
				ss := createSubmitterSuite(t)
				ss.mockL1.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).
					Return(uint64(0), fmt.Errorf("execution reverted: MAX_DELAY_BLOCKS")).
					Times(1)
				ss.mockL1.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(packedReadCount(t, 0), nil).
					Times(1)

				return ss
			},
			testLogic: func(t *testing.T, ss *submitterSuite) {
				_, err := ss.submitter.Submit(context.Background(), 2, testBatch())
				assert.ErrorIs(t, err, core.ErrSubmissionRejected)
				assert.NotErrorIs(t, err, core.ErrChainUnavailable)
				assert.False(t, core.IsBenign(err))
			},
		},
		{
			name: "Unreachable node while sending is transient",
			constructor: func(t *testing.T) *submitterSuite {
				ss := createSubmitterSuite(t)
				ss.expectTxBuilding()
				ss.mockL1.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).
					Return(uint64(100_000), nil).
					Times(1)
				ss.mockL1.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("connection reset by peer")).
					Times(1)

				return ss
			},
			testLogic: func(t *testing.T, ss *submitterSuite) {
				fit, err := ss.submitter.Submit(context.Background(), 2, testBatch())
				assert.Nil(t, fit)
				assert.ErrorIs(t, err, core.ErrChainUnavailable)
				assert.NotErrorIs(t, err, core.ErrSubmissionRejected)
			},
		},
		{
			name: "Sent transaction carries the buffered gas limit",
			constructor: func(t *testing.T) *submitterSuite {
				ss := createSubmitterSuite(t)
				ss.expectTxBuilding()
				ss.mockL1.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).
					Return(uint64(100_000), nil).
					Times(1)
				ss.mockL1.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).
					Return(nil).
					Times(1)

				return ss
			},
			testLogic: func(t *testing.T, ss *submitterSuite) {
				fit, err := ss.submitter.Submit(context.Background(), 2, testBatch())
				require.NoError(t, err)
				require.NotNil(t, fit)
				assert.Equal(t, core.TxSubmitted, fit.Status)
				assert.Equal(t, uint64(3), fit.ExpectedReadCount)
				assert.Equal(t, uint64(120_000), fit.Tx.Gas())
				assert.Equal(t, testSeqInbox, *fit.Tx.To())
			},
		},
		{
			name: "Failed receipt lookup is retried",
			constructor: func(t *testing.T) *submitterSuite {
				ss := createSubmitterSuite(t)
				gomock.InOrder(
					ss.mockL1.EXPECT().TransactionReceipt(gomock.Any(), testTxHash).
						Return(nil, fmt.Errorf("connection reset by peer")).
						Times(1),
					ss.mockL1.EXPECT().TransactionReceipt(gomock.Any(), testTxHash).
						Return(&types.Receipt{
							Status:      types.ReceiptStatusSuccessful,
							BlockNumber: big.NewInt(120),
						}, nil).
						Times(1),
				)

				return ss
			},
			testLogic: func(t *testing.T, ss *submitterSuite) {
				fit, err := ss.submitter.WaitForConfirmation(context.Background(), pendingTx())
				require.NoError(t, err)
				assert.Equal(t, core.TxConfirmed, fit.Status)
				assert.Equal(t, uint64(120), fit.ConfirmedBlock)
			},
		},
		{
			name: "Missing receipt after every attempt times out",
			constructor: func(t *testing.T) *submitterSuite {
				ss := createSubmitterSuite(t)
				ss.mockL1.EXPECT().TransactionReceipt(gomock.Any(), testTxHash).
					Return(nil, ethereum.NotFound).
					Times(3)

				return ss
			},
			testLogic: func(t *testing.T, ss *submitterSuite) {
				fit, err := ss.submitter.WaitForConfirmation(context.Background(), pendingTx())
				assert.ErrorIs(t, err, core.ErrConfirmationTimeout)
				assert.Equal(t, core.TxPending, fit.Status)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ss := tc.constructor(t)
			tc.testLogic(t, ss)
		})
	}
}

func Test_Verifier_ReadsAtConfirmedBlock(t *testing.T) {
	ss := createSubmitterSuite(t)
	verifier := inclusion.NewVerifier(ss.reader)

	// A lagging latest state must not be consulted
	ss.mockL1.EXPECT().CallContract(gomock.Any(), gomock.Any(), big.NewInt(120)).
		Return(packedReadCount(t, 3), nil).
		Times(1)

	ok, err := verifier.VerifyAt(context.Background(), 3, 120)
	assert.NoError(t, err)
	assert.True(t, ok)
}
