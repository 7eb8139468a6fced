package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/base-org/forcer/internal/api/models"
	"github.com/stretchr/testify/assert"
)

func Test_HealthCheck(t *testing.T) {

	var tests = []struct {
		name        string
		description string
		function    string

		constructionLogic func() testSuite
		testLogic         func(*testing.T, testSuite)
	}{
		{
			name:        "Healthy Nodes",
			description: "When both nodes are reachable the health check should report healthy",
			function:    "HealthCheck",

			constructionLogic: func() testSuite {
				ts := createTestSuite(t)
				ts.mockSvc.EXPECT().
					CheckHealth().
					Return(&models.HealthCheck{
						Healthy: true,
						ChainConnectionStatus: &models.ChainConnectionStatus{
							IsL1Healthy: true,
							IsL2Healthy: true,
						},
					}).
					Times(1)

				return ts
			},

			testLogic: func(t *testing.T, ts testSuite) {
				actualHc := models.HealthCheck{}
				res := serve(t, ts, http.MethodGet, "/health", &actualHc)

				assert.Equal(t, http.StatusOK, res.StatusCode)
				assert.True(t, actualHc.Healthy)
				assert.True(t, actualHc.ChainConnectionStatus.IsL1Healthy)
			},
		},
		{
			name:        "Unhealthy L2 Node",
			description: "When the L2 node is unreachable the health check should report unhealthy",
			function:    "HealthCheck",

			constructionLogic: func() testSuite {
				ts := createTestSuite(t)
				ts.mockSvc.EXPECT().
					CheckHealth().
					Return(&models.HealthCheck{
						Healthy: false,
						ChainConnectionStatus: &models.ChainConnectionStatus{
							IsL1Healthy: true,
							IsL2Healthy: false,
						},
					}).
					Times(1)

				return ts
			},

			testLogic: func(t *testing.T, ts testSuite) {
				actualHc := models.HealthCheck{}
				serve(t, ts, http.MethodGet, "/health", &actualHc)

				assert.False(t, actualHc.Healthy)
				assert.False(t, actualHc.ChainConnectionStatus.IsL2Healthy)
			},
		},
	}

	for i, tc := range tests {
		t.Run(fmt.Sprintf("%d-%s-%s", i, tc.name, tc.function), func(t *testing.T) {
			testMeta := tc.constructionLogic()
			tc.testLogic(t, testMeta)
		})

	}

}
