package cart

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"julianmorley.ca/shop/storefront/pkg/models"
)

var ErrProductNotFound = errors.New("product not found")

type ProductStore interface {
	GetProductByID(ctx context.Context, id bson.ObjectID) (*models.Product, error)
}

type UserStore interface {
	UpdateUserCart(ctx context.Context, userID bson.ObjectID, cart models.Cart) error
}

// Service mutates the cart embedded on a user document. There is no locking:
// concurrent mutations from the same user are last-write-wins.
type Service struct {
	products ProductStore
	users    UserStore
}

func NewService(products ProductStore, users UserStore) *Service {
	return &Service{products: products, users: users}
}

// Add puts one unit of the product into the user's cart: an existing entry has
// its quantity incremented, otherwise a new entry with quantity 1 is appended.
func (s *Service) Add(ctx context.Context, user *models.User, productID bson.ObjectID) error {
	if _, err := s.products.GetProductByID(ctx, productID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to fetch product: %w", err)
	}

	found := false
	for i, item := range user.Cart.Items {
		if item.ProductID == productID {
			user.Cart.Items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		user.Cart.Items = append(user.Cart.Items, models.CartItem{
			ProductID: productID,
			Quantity:  1,
		})
	}

	return s.persist(ctx, user)
}

// Remove drops the entry for productID. A missing entry is a no-op, not an
// error.
func (s *Service) Remove(ctx context.Context, user *models.User, productID bson.ObjectID) error {
	for i, item := range user.Cart.Items {
		if item.ProductID == productID {
			user.Cart.Items = append(user.Cart.Items[:i], user.Cart.Items[i+1:]...)
			break
		}
	}

	return s.persist(ctx, user)
}

func (s *Service) Clear(ctx context.Context, user *models.User) error {
	user.Cart.Items = []models.CartItem{}
	return s.persist(ctx, user)
}

// Resolve joins each cart entry with its product document. Entries whose
// product has since been deleted from the catalog are skipped.
func (s *Service) Resolve(ctx context.Context, user *models.User) ([]models.CartLine, error) {
	lines := make([]models.CartLine, 0, len(user.Cart.Items))
	for _, item := range user.Cart.Items {
		product, err := s.products.GetProductByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				continue
			}
			return nil, fmt.Errorf("failed to resolve cart item %s: %w", item.ProductID.Hex(), err)
		}
		lines = append(lines, models.CartLine{Product: *product, Quantity: item.Quantity})
	}
	return lines, nil
}

func (s *Service) persist(ctx context.Context, user *models.User) error {
	if err := s.users.UpdateUserCart(ctx, user.ID, user.Cart); err != nil {
		return fmt.Errorf("failed to update cart: %w", err)
	}
	return nil
}
