// Package razorpay talks to the Razorpay orders API and verifies payment
// callback signatures.
package razorpay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// ErrPaymentDeclined indicates the gateway rejected the order creation.
var ErrPaymentDeclined = errors.New("payment gateway declined the request")

// PaymentOptions is everything the storefront client needs to open the
// gateway checkout for an order.
type PaymentOptions struct {
	KeyID           string `json:"key"`
	GatewayOrderID  string `json:"orderId"`
	AmountMinorUnit int64  `json:"amount"`
	Currency        string `json:"currency"`
}

// Client exposes gateway operations used by the checkout flow.
type Client interface {
	CreateOrder(ctx context.Context, amountMinorUnits int64, currency, receipt string) (*PaymentOptions, error)
	VerifySignature(gatewayOrderID, paymentID, signature string) bool
}

// HTTPClient implements Client via the Razorpay REST API.
type HTTPClient struct {
	baseURL    *url.URL
	keyID      string
	keySecret  string
	httpClient *http.Client
	logger     *slog.Logger
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type createOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// NewHTTPClient creates a gateway client with default timeout.
func NewHTTPClient(baseURL, keyID, keySecret string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse gateway url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("gateway url must be absolute")
	}
	return &HTTPClient{
		baseURL:   parsed,
		keyID:     keyID,
		keySecret: keySecret,
		logger:    logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// CreateOrder registers a payable order with the gateway. Amount is in minor
// currency units (paise).
func (c *HTTPClient) CreateOrder(ctx context.Context, amountMinorUnits int64, currency, receipt string) (*PaymentOptions, error) {
	payload, err := json.Marshal(createOrderRequest{
		Amount:   amountMinorUnits,
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL.JoinPath("/v1/orders")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("gateway order creation failed",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return nil, ErrPaymentDeclined
		}
		return nil, fmt.Errorf("gateway error: %s", resp.Status)
	}

	var data createOrderResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, err
	}

	return &PaymentOptions{
		KeyID:           c.keyID,
		GatewayOrderID:  data.ID,
		AmountMinorUnit: data.Amount,
		Currency:        data.Currency,
	}, nil
}

// VerifySignature checks the HMAC the gateway sends with a successful
// payment: SHA-256 over "<gateway order id>|<payment id>" keyed with the
// API secret.
func (c *HTTPClient) VerifySignature(gatewayOrderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
