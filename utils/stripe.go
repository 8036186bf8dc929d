package utils

import (
	"context"
	"errors"
	"math"

	stripe "github.com/stripe/stripe-go"
	"github.com/stripe/stripe-go/client"
)

const (
	PaymentCurrency = "usd"
	PaymentMethod   = "card"
)

// StripeGateway creates payment intents through the Stripe API.
type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) *StripeGateway {
	return &StripeGateway{api: client.New(secretKey, nil)}
}

// CreatePaymentIntent returns the client secret of a new card payment intent.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{PaymentMethod}),
	}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		var serr *stripe.Error
		if errors.As(err, &serr) && serr.Msg != "" {
			return "", errors.New(serr.Msg)
		}
		return "", err
	}
	return pi.ClientSecret, nil
}

// ToMinorUnits converts a price to cents, truncating fractions of a cent.
// The price is first snapped to a micro-unit grid so 19.99 gives 1999 rather
// than the 1998 a bare float multiply would.
func ToMinorUnits(price float64) int64 {
	micros := math.Round(price * 1e6)
	return int64(math.Trunc(micros / 1e4))
}
