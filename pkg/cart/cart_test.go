package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"julianmorley.ca/shop/storefront/pkg/models"
)

// MockProductStore implements ProductStore for testing
type MockProductStore struct {
	byID map[bson.ObjectID]*models.Product
}

func (m *MockProductStore) GetProductByID(_ context.Context, id bson.ObjectID) (*models.Product, error) {
	if p, ok := m.byID[id]; ok {
		return p, nil
	}
	return nil, mongo.ErrNoDocuments
}

// MockUserStore implements UserStore for testing
type MockUserStore struct {
	saved      []models.Cart
	persistErr error
}

func (m *MockUserStore) UpdateUserCart(_ context.Context, _ bson.ObjectID, cart models.Cart) error {
	if m.persistErr != nil {
		return m.persistErr
	}
	m.saved = append(m.saved, cart)
	return nil
}

func newTestUser() *models.User {
	return &models.User{
		ID:    bson.NewObjectID(),
		Email: "shopper@example.com",
		Cart:  models.Cart{Items: []models.CartItem{}},
	}
}

func TestAdd_SameProductTwiceIncrementsQuantity(t *testing.T) {
	productID := bson.NewObjectID()
	products := &MockProductStore{byID: map[bson.ObjectID]*models.Product{
		productID: {ID: productID, Title: "Book", Price: 10.00},
	}}
	users := &MockUserStore{}
	svc := NewService(products, users)
	user := newTestUser()

	require.NoError(t, svc.Add(context.Background(), user, productID))
	require.NoError(t, svc.Add(context.Background(), user, productID))

	require.Len(t, user.Cart.Items, 1)
	assert.Equal(t, 2, user.Cart.Items[0].Quantity)
	assert.Equal(t, productID, user.Cart.Items[0].ProductID)
	assert.Len(t, users.saved, 2)
}

func TestAdd_NewProductAppendsWithQuantityOne(t *testing.T) {
	first := bson.NewObjectID()
	second := bson.NewObjectID()
	products := &MockProductStore{byID: map[bson.ObjectID]*models.Product{
		first:  {ID: first, Title: "Book"},
		second: {ID: second, Title: "Pen"},
	}}
	users := &MockUserStore{}
	svc := NewService(products, users)
	user := newTestUser()

	require.NoError(t, svc.Add(context.Background(), user, first))
	require.NoError(t, svc.Add(context.Background(), user, second))

	require.Len(t, user.Cart.Items, 2)
	assert.Equal(t, 1, user.Cart.Items[1].Quantity)
}

func TestAdd_UnknownProduct(t *testing.T) {
	products := &MockProductStore{byID: map[bson.ObjectID]*models.Product{}}
	users := &MockUserStore{}
	svc := NewService(products, users)
	user := newTestUser()

	err := svc.Add(context.Background(), user, bson.NewObjectID())

	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Empty(t, user.Cart.Items)
	assert.Empty(t, users.saved)
}

func TestRemove_AbsentProductIsNoOp(t *testing.T) {
	productID := bson.NewObjectID()
	users := &MockUserStore{}
	svc := NewService(&MockProductStore{}, users)
	user := newTestUser()
	user.Cart.Items = []models.CartItem{{ProductID: productID, Quantity: 3}}

	err := svc.Remove(context.Background(), user, bson.NewObjectID())

	require.NoError(t, err)
	require.Len(t, user.Cart.Items, 1)
	assert.Equal(t, 3, user.Cart.Items[0].Quantity)
}

func TestRemove_DeletesMatchingEntry(t *testing.T) {
	keep := bson.NewObjectID()
	drop := bson.NewObjectID()
	users := &MockUserStore{}
	svc := NewService(&MockProductStore{}, users)
	user := newTestUser()
	user.Cart.Items = []models.CartItem{
		{ProductID: keep, Quantity: 1},
		{ProductID: drop, Quantity: 2},
	}

	err := svc.Remove(context.Background(), user, drop)

	require.NoError(t, err)
	require.Len(t, user.Cart.Items, 1)
	assert.Equal(t, keep, user.Cart.Items[0].ProductID)
}

func TestClear_EmptiesCart(t *testing.T) {
	users := &MockUserStore{}
	svc := NewService(&MockProductStore{}, users)
	user := newTestUser()
	user.Cart.Items = []models.CartItem{{ProductID: bson.NewObjectID(), Quantity: 2}}

	err := svc.Clear(context.Background(), user)

	require.NoError(t, err)
	assert.Empty(t, user.Cart.Items)
	require.Len(t, users.saved, 1)
	assert.Empty(t, users.saved[0].Items)
}

func TestResolve_JoinsProductsAndSkipsDangling(t *testing.T) {
	present := bson.NewObjectID()
	missing := bson.NewObjectID()
	products := &MockProductStore{byID: map[bson.ObjectID]*models.Product{
		present: {ID: present, Title: "Book", Price: 10.00},
	}}
	svc := NewService(products, &MockUserStore{})
	user := newTestUser()
	user.Cart.Items = []models.CartItem{
		{ProductID: present, Quantity: 2},
		{ProductID: missing, Quantity: 1},
	}

	lines, err := svc.Resolve(context.Background(), user)

	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Book", lines[0].Product.Title)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestAdd_PersistFailureSurfaces(t *testing.T) {
	productID := bson.NewObjectID()
	products := &MockProductStore{byID: map[bson.ObjectID]*models.Product{
		productID: {ID: productID},
	}}
	users := &MockUserStore{persistErr: errors.New("write concern failed")}
	svc := NewService(products, users)
	user := newTestUser()

	err := svc.Add(context.Background(), user, productID)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update cart")
}
