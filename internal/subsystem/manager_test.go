package subsystem_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/base-org/forcer/internal/core"
	"github.com/base-org/forcer/internal/mocks"
	"github.com/base-org/forcer/internal/subsystem"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func testErr() error {
	return fmt.Errorf("test error")
}

type testSuite struct {
	subsys subsystem.Manager

	mockForcer *mocks.MockForcer
	mockAlrt   *mocks.AlertManager
	mockCtrl   *gomock.Controller
}

func createTestSuite(t *testing.T, cfg *subsystem.Config) *testSuite {
	ctrl := gomock.NewController(t)

	forcerMock := mocks.NewMockForcer(ctrl)
	alrtMock := mocks.NewAlertManager(ctrl)

	subsys := subsystem.NewManager(context.Background(), cfg, forcerMock, alrtMock)

	return &testSuite{
		subsys:     subsys,
		mockForcer: forcerMock,
		mockAlrt:   alrtMock,
		mockCtrl:   ctrl,
	}
}

func Test_RunOnce(t *testing.T) {
	fit := &core.ForceInclusionTx{Target: 3, Status: core.TxSubmitted}

	var tests = []struct {
		name        string
		constructor func(t *testing.T) *testSuite
		testLogic   func(t *testing.T, ts *testSuite)
	}{
		{
			name: "Submits without waiting",
			constructor: func(t *testing.T) *testSuite {
				ts := createTestSuite(t, &subsystem.Config{})
				ts.mockForcer.EXPECT().ForceInclude(gomock.Any()).
					Return(fit, nil).
					Times(1)

				return ts
			},
			testLogic: func(t *testing.T, ts *testSuite) {
				actual, err := ts.subsys.RunOnce(context.Background())
				assert.NoError(t, err)
				assert.Equal(t, fit, actual)
			},
		},
		{
			name: "Waits when configured",
			constructor: func(t *testing.T) *testSuite {
				ts := createTestSuite(t, &subsystem.Config{Wait: true})
				ts.mockForcer.EXPECT().ForceIncludeAndWait(gomock.Any()).
					Return(nil, testErr()).
					Times(1)

				return ts
			},
			testLogic: func(t *testing.T, ts *testSuite) {
				actual, err := ts.subsys.RunOnce(context.Background())
				assert.Error(t, err)
				assert.Nil(t, actual)
			},
		},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%d-%s", i, test.name), func(t *testing.T) {
			ts := test.constructor(t)
			test.testLogic(t, ts)
		})
	}
}

func Test_EventRoutines(t *testing.T) {
	var tests = []struct {
		name        string
		constructor func(t *testing.T) *testSuite
		testLogic   func(t *testing.T, ts *testSuite)
	}{
		{
			name: "Loop keeps invoking after failures",
			constructor: func(t *testing.T) *testSuite {
				ts := createTestSuite(t, &subsystem.Config{LoopInterval: time.Millisecond})
				ts.mockAlrt.EXPECT().EventLoop().Return(nil).Times(1)
				ts.mockAlrt.EXPECT().Shutdown().Return(nil).Times(1)

				return ts
			},
			testLogic: func(t *testing.T, ts *testSuite) {
				invoked := make(chan struct{}, 8)
				ts.mockForcer.EXPECT().ForceInclude(gomock.Any()).
					DoAndReturn(func(_ context.Context) (*core.ForceInclusionTx, error) {
						select {
						case invoked <- struct{}{}:
						default:
						}
						return nil, core.ErrChainUnavailable
					}).
					MinTimes(3)

				ts.subsys.StartEventRoutines(context.Background())
				for i := 0; i < 3; i++ {
					select {
					case <-invoked:
					case <-time.After(time.Second):
						t.Fatal("loop did not invoke the forcer")
					}
				}

				assert.NoError(t, ts.subsys.Shutdown())
			},
		},
		{
			name: "Loop disabled",
			constructor: func(t *testing.T) *testSuite {
				ts := createTestSuite(t, &subsystem.Config{})
				ts.mockAlrt.EXPECT().EventLoop().Return(nil).Times(1)
				ts.mockAlrt.EXPECT().Shutdown().Return(testErr()).Times(1)

				return ts
			},
			testLogic: func(t *testing.T, ts *testSuite) {
				ts.subsys.StartEventRoutines(context.Background())
				assert.Error(t, ts.subsys.Shutdown())
			},
		},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%d-%s", i, test.name), func(t *testing.T) {
			ts := test.constructor(t)
			test.testLogic(t, ts)
		})
	}
}
