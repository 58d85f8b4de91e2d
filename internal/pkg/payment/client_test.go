package payment

import (
	"Pulse/internal/api/config"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CreateOrder(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key_test", user)
		assert.Equal(t, "secret_test", pass)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"order_abc","amount":49900,"currency":"INR","receipt":"r-1","status":"created"}`)
	}))
	defer ts.Close()

	client := NewClient(config.PaymentConfig{
		BaseURL:   ts.URL,
		KeyID:     "key_test",
		KeySecret: "secret_test",
	})
	require.True(t, client.Configured())

	order, err := client.CreateOrder(context.Background(), 49900, "INR", "r-1")
	require.NoError(t, err)
	assert.Equal(t, "order_abc", order.ID)
	assert.Equal(t, int64(49900), order.Amount)
}

func TestClient_CreateOrder_GatewayError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	client := NewClient(config.PaymentConfig{BaseURL: ts.URL, KeyID: "k", KeySecret: "s"})
	_, err := client.CreateOrder(context.Background(), 49900, "INR", "r-1")
	assert.Error(t, err)
}

func TestClient_VerifySignature(t *testing.T) {
	client := NewClient(config.PaymentConfig{KeyID: "k", KeySecret: "secret_test"})

	mac := hmac.New(sha256.New, []byte("secret_test"))
	mac.Write([]byte("order_1|pay_1"))
	signature := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, client.VerifySignature("order_1", "pay_1", signature))
	assert.False(t, client.VerifySignature("order_1", "pay_2", signature))
	assert.False(t, client.VerifySignature("order_1", "pay_1", "deadbeef"))
}

func TestClient_Configured(t *testing.T) {
	assert.False(t, NewClient(config.PaymentConfig{}).Configured())
	assert.False(t, NewClient(config.PaymentConfig{KeyID: "k"}).Configured())
	assert.True(t, NewClient(config.PaymentConfig{KeyID: "k", KeySecret: "s"}).Configured())
}
