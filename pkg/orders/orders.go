package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"julianmorley.ca/shop/storefront/pkg/models"
)

var ErrOrderNotFound = errors.New("order not found")

type CartAccess interface {
	Resolve(ctx context.Context, user *models.User) ([]models.CartLine, error)
	Clear(ctx context.Context, user *models.User) error
}

type OrderStore interface {
	InsertOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	FindOrdersByUser(ctx context.Context, userID bson.ObjectID) ([]models.Order, error)
	GetOrderByID(ctx context.Context, id bson.ObjectID) (*models.Order, error)
}

type Service struct {
	cart  CartAccess
	store OrderStore
}

func NewService(cart CartAccess, store OrderStore) *Service {
	return &Service{cart: cart, store: store}
}

// Place snapshots the cart into a new immutable order. Each line item is a
// value copy of the product document at this instant; the purchaser's id and
// email are denormalized onto the order. The cart is cleared only after the
// order write succeeds: an insert failure leaves the cart untouched, and a
// clear failure after a durable insert is surfaced rather than masked.
func (s *Service) Place(ctx context.Context, user *models.User) (*models.Order, error) {
	lines, err := s.cart.Resolve(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cart: %w", err)
	}

	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.OrderItem{
			Product:  line.Product,
			Quantity: line.Quantity,
		})
	}

	order := &models.Order{
		User: models.OrderUser{
			UserID: user.ID,
			Email:  user.Email,
		},
		Items:     items,
		CreatedAt: time.Now(),
	}

	saved, err := s.store.InsertOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	if err := s.cart.Clear(ctx, user); err != nil {
		return saved, fmt.Errorf("order %s persisted but cart clear failed: %w", saved.ID.Hex(), err)
	}

	return saved, nil
}

// ListForUser returns every order whose denormalized user id matches, newest
// first. Unpaginated.
func (s *Service) ListForUser(ctx context.Context, user *models.User) ([]models.Order, error) {
	orders, err := s.store.FindOrdersByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

func (s *Service) Get(ctx context.Context, id bson.ObjectID) (*models.Order, error) {
	order, err := s.store.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return order, nil
}
