package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/base-org/forcer/internal/api/handlers"
	"github.com/base-org/forcer/internal/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

const (
	testAddress = "http://abc.xyz"
)

func testError1() error {
	return fmt.Errorf("test error 1")
}

type testSuite struct {
	mockSvc *mocks.MockService

	testHandler handlers.Handlers
	ctrl        *gomock.Controller
}

func createTestSuite(t *testing.T) testSuite {
	ctrl := gomock.NewController(t)

	mockSvc := mocks.NewMockService(ctrl)
	testHandler, err := handlers.New(context.Background(), mockSvc)

	if err != nil {
		panic(err)
	}

	return testSuite{
		mockSvc:     mockSvc,
		testHandler: testHandler,
		ctrl:        ctrl,
	}
}

// serve ... Routes a request through the handler's router and decodes the JSON body into v
func serve(t *testing.T, ts testSuite, method, path string, v interface{}) *http.Response {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(method, testAddress+path, nil)

	ts.testHandler.ServeHTTP(w, r)
	res := w.Result()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v), string(data))

	return res
}
