package paymentlink

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/checkout/session"
)

// StatusPending is reported for freshly minted links awaiting payment.
const StatusPending = "PENDING"

type stripeProvider struct {
	currency string
}

// NewStripeProvider returns a Provider backed by Stripe Checkout Sessions.
// stripe.Key must be set by the caller before use.
func NewStripeProvider(currency string) Provider {
	if currency == "" {
		currency = "usd"
	}
	return &stripeProvider{currency: currency}
}

func (p *stripeProvider) CreatePaymentLink(ctx context.Context, req CreatePaymentLinkRequest) (*PaymentLinkInfo, error) {
	orderCode := strconv.FormatInt(req.OrderCode, 10)

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(req.ReturnURL),
		CancelURL:         stripe.String(req.CancelURL),
		ClientReferenceID: stripe.String(orderCode),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(p.currency),
					UnitAmount: stripe.Int64(req.Amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx

	s, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe checkout session: %w", err)
	}

	info := &PaymentLinkInfo{
		CheckoutURL: s.URL,
		OrderCode:   req.OrderCode,
		Status:      StatusPending,
	}
	if s.ExpiresAt > 0 {
		expires := time.Unix(s.ExpiresAt, 0).UTC()
		info.ExpiredAt = &expires
	}
	return info, nil
}
