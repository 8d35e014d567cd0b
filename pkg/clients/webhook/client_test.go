package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPost(t *testing.T) {
	t.Run("SendsJSONWithBearerToken", func(t *testing.T) {
		var gotAuth string
		var gotBody map[string]any

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(server.URL, "secret-token")
		err := client.Post(context.Background(), map[string]string{"summary": "2 alerts"})
		require.NoError(t, err)

		assert.Equal(t, "Bearer secret-token", gotAuth)
		assert.Equal(t, "2 alerts", gotBody["summary"])
	})

	t.Run("NoTokenNoAuthHeader", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
		}))
		defer server.Close()

		client := NewClient(server.URL, "")
		require.NoError(t, client.Post(context.Background(), map[string]string{}))
		assert.Empty(t, gotAuth)
	})

	t.Run("NonSuccessStatusIsAnError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewClient(server.URL, "")
		err := client.Post(context.Background(), map[string]string{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})
}
