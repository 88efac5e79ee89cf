package lib

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"stays/src/types"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestInitializeTransaction(t *testing.T) {
	t.Run("returns checkout details on success", func(t *testing.T) {
		gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/transaction/initialize", r.URL.Path)
			assert.Equal(t, "Bearer test-secret", r.Header.Get("Authorization"))
			body, _ := io.ReadAll(r.Body)
			assert.Equal(t, "ETB", gjson.GetBytes(body, "currency").String())
			ref := gjson.GetBytes(body, "tx_ref").String()
			fmt.Fprintf(w, `{"status":"success","data":{"tx_ref":"%s","checkout_url":"https://checkout.example.com/%s"}}`, ref, ref)
		}))
		defer gateway.Close()

		c := &ChapaClient{BaseURL: gateway.URL, secretKey: "test-secret", http: gateway.Client()}
		out, err := c.InitializeTransaction(context.Background(), &InitializeTransactionInput{
			Amount:    150,
			Currency:  "ETB",
			TxRef:     "ref-1",
			ReturnURL: "https://api.example.com/verify?tx_ref=ref-1",
		})
		assert.Nil(t, err)
		assert.Equal(t, "ref-1", out.TxRef)
		assert.Equal(t, "https://checkout.example.com/ref-1", out.CheckoutURL)
	})

	t.Run("returns initiation error on a declined transaction", func(t *testing.T) {
		gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status":"failed","message":"insufficient funds"}`)
		}))
		defer gateway.Close()

		c := &ChapaClient{BaseURL: gateway.URL, http: gateway.Client()}
		out, err := c.InitializeTransaction(context.Background(), &InitializeTransactionInput{Amount: 10, TxRef: "ref-2"})
		assert.Nil(t, out)
		assert.ErrorIs(t, err, types.ErrInitiationFailed)
	})

	t.Run("returns malformed error on garbage response", func(t *testing.T) {
		gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<html>bad gateway</html>`)
		}))
		defer gateway.Close()

		c := &ChapaClient{BaseURL: gateway.URL, http: gateway.Client()}
		_, err := c.InitializeTransaction(context.Background(), &InitializeTransactionInput{Amount: 10, TxRef: "ref-3"})
		assert.ErrorIs(t, err, types.ErrGatewayMalformedResponse)
	})

	t.Run("returns malformed error when checkout details are missing", func(t *testing.T) {
		gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status":"success","data":{}}`)
		}))
		defer gateway.Close()

		c := &ChapaClient{BaseURL: gateway.URL, http: gateway.Client()}
		_, err := c.InitializeTransaction(context.Background(), &InitializeTransactionInput{Amount: 10, TxRef: "ref-4"})
		assert.ErrorIs(t, err, types.ErrGatewayMalformedResponse)
	})

	t.Run("returns unreachable error when the gateway is down", func(t *testing.T) {
		gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		gateway.Close()

		c := &ChapaClient{BaseURL: gateway.URL}
		c.http = &http.Client{}
		_, err := c.InitializeTransaction(context.Background(), &InitializeTransactionInput{Amount: 10, TxRef: "ref-5"})
		assert.ErrorIs(t, err, types.ErrGatewayUnreachable)
	})
}

func TestVerifyTransaction(t *testing.T) {
	t.Run("reports success only on an explicit success status", func(t *testing.T) {
		gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/transaction/verify/ref-9", r.URL.Path)
			fmt.Fprint(w, `{"status":"success","data":{"status":"success"}}`)
		}))
		defer gateway.Close()

		c := &ChapaClient{BaseURL: gateway.URL, http: gateway.Client()}
		ok, err := c.VerifyTransaction(context.Background(), "ref-9")
		assert.Nil(t, err)
		assert.True(t, ok)
	})

	t.Run("reports failure without error on a non-success status", func(t *testing.T) {
		gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status":"failed"}`)
		}))
		defer gateway.Close()

		c := &ChapaClient{BaseURL: gateway.URL, http: gateway.Client()}
		ok, err := c.VerifyTransaction(context.Background(), "ref-10")
		assert.Nil(t, err)
		assert.False(t, ok)
	})

	t.Run("returns malformed error when status is absent", func(t *testing.T) {
		gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"data":{}}`)
		}))
		defer gateway.Close()

		c := &ChapaClient{BaseURL: gateway.URL, http: gateway.Client()}
		_, err := c.VerifyTransaction(context.Background(), "ref-11")
		assert.ErrorIs(t, err, types.ErrGatewayMalformedResponse)
	})
}
