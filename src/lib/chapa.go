package lib

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"stays/src/config"
	"stays/src/types"
	"time"

	"github.com/tidwall/gjson"
)

// ChapaClient talks to the external payment gateway. The gateway is the
// sole authority for transaction status: any non-"success" status or
// malformed body is a failure outcome, never success by default.
type ChapaClient struct {
	BaseURL   string
	secretKey string
	http      *http.Client
}

var chapaClient *ChapaClient

func GetChapaClient() *ChapaClient {
	if chapaClient != nil {
		return chapaClient
	}
	c := &ChapaClient{
		BaseURL:   config.ChapaBaseURL(),
		secretKey: config.ChapaSecretKey(),
		http:      &http.Client{Timeout: 15 * time.Second},
	}
	chapaClient = c
	return c
}

// NewChapaClient Replace gateway instance with custom client implementation
func NewChapaClient(c *ChapaClient) {
	if c.http == nil {
		c.http = &http.Client{Timeout: 15 * time.Second}
	}
	chapaClient = c
}

type InitializeTransactionInput struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	TxRef     string  `json:"tx_ref"`
	ReturnURL string  `json:"return_url"`
}

type InitializeTransactionOutput struct {
	TxRef       string
	CheckoutURL string
}

func (c *ChapaClient) do(ctx context.Context, method string, url string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.secretKey))
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := c.http.Do(req)
	if err != nil {
		log.Printf("[chapa] Request to %s failed: %s\n", url, err.Error())
		return nil, fmt.Errorf("%w: %s", types.ErrGatewayUnreachable, err.Error())
	}
	defer res.Body.Close()
	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrGatewayUnreachable, err.Error())
	}
	return b, nil
}

// InitializeTransaction creates a transaction on the gateway. A checkout
// URL comes back only when the gateway reports status "success".
func (c *ChapaClient) InitializeTransaction(ctx context.Context, in *InitializeTransactionInput) (*InitializeTransactionOutput, error) {
	url := fmt.Sprintf("%s/transaction/initialize", c.BaseURL)
	body, err := c.do(ctx, http.MethodPost, url, in)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, types.ErrGatewayMalformedResponse
	}
	status := gjson.GetBytes(body, "status")
	if !status.Exists() {
		return nil, types.ErrGatewayMalformedResponse
	}
	if status.String() != "success" {
		return nil, types.ErrInitiationFailed
	}
	txRef := gjson.GetBytes(body, "data.tx_ref")
	checkoutURL := gjson.GetBytes(body, "data.checkout_url")
	if !txRef.Exists() || !checkoutURL.Exists() {
		return nil, types.ErrGatewayMalformedResponse
	}
	return &InitializeTransactionOutput{
		TxRef:       txRef.String(),
		CheckoutURL: checkoutURL.String(),
	}, nil
}

// VerifyTransaction asks the gateway for the final status of a
// transaction. Returns true only on an explicit "success" status; an
// explicit non-success status returns false with no error.
func (c *ChapaClient) VerifyTransaction(ctx context.Context, txRef string) (bool, error) {
	url := fmt.Sprintf("%s/transaction/verify/%s", c.BaseURL, txRef)
	body, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}
	if !gjson.ValidBytes(body) {
		return false, types.ErrGatewayMalformedResponse
	}
	status := gjson.GetBytes(body, "status")
	if !status.Exists() {
		return false, types.ErrGatewayMalformedResponse
	}
	return status.String() == "success", nil
}
