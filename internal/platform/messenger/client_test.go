package messenger

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendText_RequestShape(t *testing.T) {
	var gotToken string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotToken = r.URL.Query().Get("access_token")

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &gotBody))

		_ = json.NewEncoder(w).Encode(map[string]string{
			"recipient_id": "u1",
			"message_id":   "mid.123",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-token")
	err := client.SendText(context.Background(), "u1", "hello there")
	require.NoError(t, err)

	assert.Equal(t, "secret-token", gotToken)
	assert.Equal(t, map[string]any{
		"recipient": map[string]any{"id": "u1"},
		"message":   map[string]any{"text": "hello there"},
	}, gotBody)
}

func TestSendText_ErrorPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"message": "Invalid OAuth access token",
				"type":    "OAuthException",
				"code":    190,
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-token")
	err := client.SendText(context.Background(), "u1", "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid OAuth access token")
}

func TestSendText_Non2xxStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "token")
	err := client.SendText(context.Background(), "u1", "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestSendText_ServerUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "token")
	err := client.SendText(context.Background(), "u1", "hello")

	assert.Error(t, err)
}
