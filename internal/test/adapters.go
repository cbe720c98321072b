package test

import (
	"context"

	"github.com/printeasy/printeasy/internal/adapter/razorpay"
)

// GatewayStub simulates the payment gateway client.
type GatewayStub struct {
	CreateOrderFn func(context.Context, int64, string, string) (*razorpay.PaymentOptions, error)
	VerifyFn      func(string, string, string) bool

	Created []razorpay.PaymentOptions
}

// CreateOrder returns configured options or a deterministic default.
func (s *GatewayStub) CreateOrder(ctx context.Context, amountMinorUnits int64, currency, receipt string) (*razorpay.PaymentOptions, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, amountMinorUnits, currency, receipt)
	}
	options := razorpay.PaymentOptions{
		KeyID:           "key_test",
		GatewayOrderID:  "order_gw_1",
		AmountMinorUnit: amountMinorUnits,
		Currency:        currency,
	}
	s.Created = append(s.Created, options)
	return &options, nil
}

// VerifySignature delegates to the override, accepting everything by default.
func (s *GatewayStub) VerifySignature(gatewayOrderID, paymentID, signature string) bool {
	if s.VerifyFn != nil {
		return s.VerifyFn(gatewayOrderID, paymentID, signature)
	}
	return true
}

// MediaClientStub simulates the media host client.
type MediaClientStub struct {
	DestroyFn func(context.Context, string) error

	Destroyed []string
}

// Destroy records destroyed identifiers.
func (s *MediaClientStub) Destroy(ctx context.Context, remoteID string) error {
	if s.DestroyFn != nil {
		return s.DestroyFn(ctx, remoteID)
	}
	s.Destroyed = append(s.Destroyed, remoteID)
	return nil
}
