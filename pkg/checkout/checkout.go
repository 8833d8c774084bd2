package checkout

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"julianmorley.ca/shop/storefront/pkg/models"
	"julianmorley.ca/shop/storefront/pkg/payment"
)

const currency = "usd"

type CartResolver interface {
	Resolve(ctx context.Context, user *models.User) ([]models.CartLine, error)
}

// Service turns the current cart into a payment-processor session. Redirect
// targets are fixed configuration, injected at construction.
type Service struct {
	cart       CartResolver
	payments   payment.Client
	successURL string
	cancelURL  string
}

func NewService(cart CartResolver, payments payment.Client, successURL, cancelURL string) *Service {
	return &Service{
		cart:       cart,
		payments:   payments,
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

// Summary is what the checkout template needs: the resolved lines, the grand
// total and the processor's session handle.
type Summary struct {
	Lines     []models.CartLine
	Total     decimal.Decimal
	SessionID string
}

// Initiate resolves the cart, sums the line totals and requests a checkout
// session. An empty cart still reaches the processor; the session either
// fails there or succeeds with no lines. No session state is persisted on
// failure.
func (s *Service) Initiate(ctx context.Context, user *models.User) (*Summary, error) {
	lines, err := s.cart.Resolve(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cart: %w", err)
	}

	items := make([]payment.LineItem, 0, len(lines))
	for _, line := range lines {
		price := decimal.NewFromFloat(line.Product.Price)
		items = append(items, payment.LineItem{
			Name:        line.Product.Title,
			Description: line.Product.Description,
			UnitAmount:  price.Shift(2).Round(0).IntPart(),
			Currency:    currency,
			Quantity:    int64(line.Quantity),
		})
	}

	sessionID, err := s.payments.CreateCheckoutSession(ctx, items, s.successURL, s.cancelURL)
	if err != nil {
		return nil, fmt.Errorf("checkout initiation failed: %w", err)
	}

	return &Summary{
		Lines:     lines,
		Total:     Total(lines),
		SessionID: sessionID,
	}, nil
}

// Total is the running sum of quantity x unit price over all lines.
func Total(lines []models.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		price := decimal.NewFromFloat(line.Product.Price)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}
