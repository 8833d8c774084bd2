package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"julianmorley.ca/shop/storefront/pkg/models"
	"julianmorley.ca/shop/storefront/pkg/payment"
)

// MockCartResolver implements CartResolver for testing
type MockCartResolver struct {
	lines []models.CartLine
	err   error
}

func (m *MockCartResolver) Resolve(context.Context, *models.User) ([]models.CartLine, error) {
	return m.lines, m.err
}

// MockPaymentClient implements payment.Client for testing
type MockPaymentClient struct {
	sessionID string
	err       error

	called        bool
	gotItems      []payment.LineItem
	gotSuccessURL string
	gotCancelURL  string
}

func (m *MockPaymentClient) CreateCheckoutSession(_ context.Context, items []payment.LineItem, successURL, cancelURL string) (string, error) {
	m.called = true
	m.gotItems = items
	m.gotSuccessURL = successURL
	m.gotCancelURL = cancelURL
	return m.sessionID, m.err
}

func twoLineCart() []models.CartLine {
	return []models.CartLine{
		{Product: models.Product{Title: "Product A", Description: "first", Price: 10.00}, Quantity: 2},
		{Product: models.Product{Title: "Product B", Description: "second", Price: 5.50}, Quantity: 1},
	}
}

func TestInitiate_TotalAndLineItems(t *testing.T) {
	cart := &MockCartResolver{lines: twoLineCart()}
	payments := &MockPaymentClient{sessionID: "cs_test_123"}
	svc := NewService(cart, payments, "http://localhost:8000/checkout/success", "http://localhost:8000/checkout/cancel")

	summary, err := svc.Initiate(context.Background(), &models.User{})

	require.NoError(t, err)
	assert.Equal(t, "25.5", summary.Total.String())
	assert.Equal(t, "25.50", summary.Total.StringFixed(2))
	assert.Equal(t, "cs_test_123", summary.SessionID)

	require.Len(t, payments.gotItems, 2)
	assert.Equal(t, payment.LineItem{
		Name:        "Product A",
		Description: "first",
		UnitAmount:  1000,
		Currency:    "usd",
		Quantity:    2,
	}, payments.gotItems[0])
	assert.Equal(t, int64(550), payments.gotItems[1].UnitAmount)
	assert.Equal(t, "http://localhost:8000/checkout/success", payments.gotSuccessURL)
	assert.Equal(t, "http://localhost:8000/checkout/cancel", payments.gotCancelURL)
}

func TestInitiate_EmptyCartStillReachesProcessor(t *testing.T) {
	cart := &MockCartResolver{lines: nil}
	payments := &MockPaymentClient{sessionID: "cs_empty"}
	svc := NewService(cart, payments, "success", "cancel")

	summary, err := svc.Initiate(context.Background(), &models.User{})

	require.NoError(t, err)
	assert.True(t, payments.called)
	assert.Empty(t, payments.gotItems)
	assert.True(t, summary.Total.IsZero())
}

func TestInitiate_ProcessorFailure(t *testing.T) {
	cart := &MockCartResolver{lines: twoLineCart()}
	payments := &MockPaymentClient{err: errors.New("api key expired")}
	svc := NewService(cart, payments, "success", "cancel")

	summary, err := svc.Initiate(context.Background(), &models.User{})

	assert.Nil(t, summary)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "checkout initiation failed")
}

func TestInitiate_CartResolveFailure(t *testing.T) {
	cart := &MockCartResolver{err: errors.New("store unreachable")}
	payments := &MockPaymentClient{}
	svc := NewService(cart, payments, "success", "cancel")

	_, err := svc.Initiate(context.Background(), &models.User{})

	assert.Error(t, err)
	assert.False(t, payments.called)
}

func TestTotal_FractionalPrices(t *testing.T) {
	lines := []models.CartLine{
		{Product: models.Product{Price: 0.10}, Quantity: 3},
		{Product: models.Product{Price: 0.20}, Quantity: 1},
	}

	assert.Equal(t, "0.50", Total(lines).StringFixed(2))
}
