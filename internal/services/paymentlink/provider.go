// Package paymentlink defines the external payment-link collaborator: the
// hosted checkout page a user is sent to in order to fund a top-up.
package paymentlink

import (
	"context"
	"time"
)

// CreatePaymentLinkRequest carries everything the provider needs to mint a
// checkout link for one order.
type CreatePaymentLinkRequest struct {
	Amount      int64
	Description string
	OrderCode   int64
	CancelURL   string
	ReturnURL   string
}

// PaymentLinkInfo is the provider's answer: where to send the user and how to
// correlate the eventual confirmation.
type PaymentLinkInfo struct {
	CheckoutURL string     `json:"checkout_url"`
	OrderCode   int64      `json:"order_code"`
	Status      string     `json:"status"`
	QRCode      string     `json:"qr_code,omitempty"`
	ExpiredAt   *time.Time `json:"expired_at,omitempty"`
}

// Provider mints payment links. Implementations may fail with an error;
// callers must treat any failure as a provider-side fault.
type Provider interface {
	CreatePaymentLink(ctx context.Context, req CreatePaymentLinkRequest) (*PaymentLinkInfo, error)
}
