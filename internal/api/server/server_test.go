package server_test

import (
	"context"
	"testing"

	"github.com/base-org/forcer/internal/api/handlers"
	"github.com/base-org/forcer/internal/api/server"
	"github.com/base-org/forcer/internal/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ServerFlow(t *testing.T) {
	cfg := &server.Config{
		Host:            "localhost",
		Port:            0,
		ShutdownTimeout: 1,
	}

	mockSvc := mocks.NewMockService(gomock.NewController(t))

	handlers, err := handlers.New(context.Background(), mockSvc)
	assert.NoError(t, err)

	svr, shutdown, err := server.New(context.Background(), cfg, handlers)
	require.NoError(t, err)

	assert.NotNil(t, svr)
	assert.Equal(t, "localhost:0", svr.Addr())
	assert.NotNil(t, shutdown)

	shutdown()
}

func Test_ServerInvalidPort(t *testing.T) {
	mockSvc := mocks.NewMockService(gomock.NewController(t))
	handlers, err := handlers.New(context.Background(), mockSvc)
	require.NoError(t, err)

	_, _, err = server.New(context.Background(), &server.Config{Port: 70000}, handlers)
	assert.Error(t, err)
}
