package mocks

import (
	context "context"

	client "github.com/base-org/forcer/internal/client"
	"github.com/base-org/forcer/internal/core"
	"github.com/base-org/forcer/internal/state"
	gomock "github.com/golang/mock/gomock"
)

type MockSuite struct {
	Ctrl   *gomock.Controller
	Bundle *client.Bundle
	MockL1 *MockEthClient
	MockL2 *MockEthClient
	SS     state.Store
}

// Context ... Creates a context with mocked clients
func Context(ctx context.Context, ctrl *gomock.Controller) (context.Context, *MockSuite) {
	// 1. Construct mocked bundle
	mockedL1 := NewMockEthClient(ctrl)
	mockedL2 := NewMockEthClient(ctrl)
	ss := state.NewMemState(state.DefaultCapacity)

	bundle := &client.Bundle{
		L1Client: mockedL1,
		L2Client: mockedL2,
	}

	// 2. Bind to context
	ctx = context.WithValue(ctx, core.State, ss)
	ctx = context.WithValue(ctx, core.Clients, bundle)

	// 3. Generate mock suite
	mockSuite := &MockSuite{
		Ctrl:   ctrl,
		Bundle: bundle,
		MockL1: mockedL1,
		MockL2: mockedL2,
		SS:     ss,
	}

	return ctx, mockSuite
}
