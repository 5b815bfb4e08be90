package settlement_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"fulfillment/internal/adapters/out/settlement"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewClient(t *testing.T) {
	t.Run("valid base URL", func(t *testing.T) {
		client, err := settlement.NewClient("http://settlement.local")

		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("empty base URL", func(t *testing.T) {
		client, err := settlement.NewClient("")

		assert.Error(t, err)
		assert.Nil(t, client)
	})
}

func Test_Client_Call(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("successful check", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/settlements/"+orderID.String(), r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"outcome":"success","score":80}`))
		}))
		defer server.Close()
		client, err := settlement.NewClient(server.URL)
		require.NoError(t, err)

		result, err := client.Call(context.Background(), orderID)

		require.NoError(t, err)
		assert.Equal(t, ports.SettlementResult{Outcome: "success", Score: 80}, result)
	})

	t.Run("non-success outcome is not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"outcome":"rejected","score":10}`))
		}))
		defer server.Close()
		client, err := settlement.NewClient(server.URL)
		require.NoError(t, err)

		result, err := client.Call(context.Background(), orderID)

		require.NoError(t, err)
		assert.Equal(t, "rejected", result.Outcome)
	})

	t.Run("server error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()
		client, err := settlement.NewClient(server.URL)
		require.NoError(t, err)

		_, err = client.Call(context.Background(), orderID)

		assert.ErrorContains(t, err, "status 500")
	})

	t.Run("malformed response body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer server.Close()
		client, err := settlement.NewClient(server.URL)
		require.NoError(t, err)

		_, err = client.Call(context.Background(), orderID)

		assert.ErrorContains(t, err, "decode settlement response")
	})

	t.Run("unreachable service", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()
		client, err := settlement.NewClient(server.URL)
		require.NoError(t, err)

		_, err = client.Call(context.Background(), orderID)

		assert.ErrorContains(t, err, "call settlement service")
	})
}
