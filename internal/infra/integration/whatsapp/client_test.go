package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSendTextSuccess(t *testing.T) {
	var got sendTextRequest
	var authHeader, path string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"messages":[{"id":"wamid.1"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second, zap.NewNop())
	err := c.SendText(context.Background(), "91900000001", "hello", Credentials{AccessToken: "tok", PhoneNumberID: "pn-1"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok", authHeader)
	assert.Equal(t, "/pn-1/messages", path)
	assert.Equal(t, "whatsapp", got.MessagingProduct)
	assert.Equal(t, "91900000001", got.To)
	assert.Equal(t, "text", got.Type)
	assert.Equal(t, "hello", got.Text.Body)
}

func TestSendTextMissingCredentials(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, zap.NewNop())

	err := c.SendText(context.Background(), "1", "x", Credentials{AccessToken: "tok"})
	assert.ErrorIs(t, err, ErrNotConfigured)

	err = c.SendText(context.Background(), "1", "x", Credentials{PhoneNumberID: "pn"})
	assert.ErrorIs(t, err, ErrNotConfigured)

	assert.False(t, called)
}

func TestSendTextAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Invalid OAuth access token","code":190,"type":"OAuthException"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, zap.NewNop())
	err := c.SendText(context.Background(), "1", "x", Credentials{AccessToken: "bad", PhoneNumberID: "pn"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid OAuth access token")
}

func TestSendTextTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 20*time.Millisecond, zap.NewNop())
	err := c.SendText(context.Background(), "1", "x", Credentials{AccessToken: "tok", PhoneNumberID: "pn"})
	assert.Error(t, err)
}
