package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/base-org/forcer/internal/client"
)

func Test_SlackClient_PostData(t *testing.T) {
	var tests = []struct {
		name    string
		handler http.HandlerFunc
		ok      bool
		errMsg  string
	}{
		{
			name: "Webhook ok body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				body, _ := io.ReadAll(r.Body)
				var payload client.SlackPayload
				_ = json.Unmarshal(body, &payload)

				if payload.Text != "forced" || r.Header.Get("Content-Type") != "application/json" {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				_, _ = w.Write([]byte("ok"))
			},
			ok: true,
		},
		{
			name: "JSON error body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"ok":false,"error":"invalid_token"}`))
			},
			ok:     false,
			errMsg: "invalid_token",
		},
		{
			name: "Plain error body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte("no_service"))
			},
			ok:     false,
			errMsg: "no_service",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			resp, err := client.NewSlackClient(srv.URL).PostData(context.Background(), "forced")
			require.NoError(t, err)
			assert.Equal(t, tc.ok, resp.Ok)
			assert.Equal(t, tc.errMsg, resp.Err)
		})
	}
}

func Test_SlackClient_NoURL(t *testing.T) {
	_, err := client.NewSlackClient("").PostData(context.Background(), "forced")
	assert.Error(t, err)
}
