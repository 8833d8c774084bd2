package payment

import "context"

// LineItem describes one cart line in the processor's terms: unit amounts are
// minor currency units (price x 100).
type LineItem struct {
	Name        string
	Description string
	UnitAmount  int64
	Currency    string
	Quantity    int64
}

// Client is the payment processor seen from the checkout flow: one call that
// returns an opaque session identifier. The Stripe implementation is
// constructed in main and passed in, so tests can substitute a fake.
type Client interface {
	CreateCheckoutSession(ctx context.Context, items []LineItem, successURL, cancelURL string) (string, error)
}
