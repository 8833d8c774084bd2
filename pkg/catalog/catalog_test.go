package catalog

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
	total    int64
	countErr error

	products []models.Product
	findErr  error

	byID map[bson.ObjectID]*models.Product

	gotSkip  int64
	gotLimit int64
}

func (m *MockProductStore) CountProducts(context.Context) (int64, error) {
	return m.total, m.countErr
}

func (m *MockProductStore) FindProductsPage(_ context.Context, skip, limit int64) ([]models.Product, error) {
	m.gotSkip = skip
	m.gotLimit = limit
	return m.products, m.findErr
}

func (m *MockProductStore) GetProductByID(_ context.Context, id bson.ObjectID) (*models.Product, error) {
	if p, ok := m.byID[id]; ok {
		return p, nil
	}
	return nil, mongo.ErrNoDocuments
}

func TestListPage_PaginationMetadata(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		page     int
		wantPage int
		hasNext  bool
		hasPrev  bool
		lastPage int
		wantSkip int64
	}{
		{name: "empty catalog", total: 0, page: 1, wantPage: 1, hasNext: false, hasPrev: false, lastPage: 0, wantSkip: 0},
		{name: "first of three pages", total: 5, page: 1, wantPage: 1, hasNext: true, hasPrev: false, lastPage: 3, wantSkip: 0},
		{name: "middle page", total: 5, page: 2, wantPage: 2, hasNext: true, hasPrev: true, lastPage: 3, wantSkip: 2},
		{name: "last short page", total: 5, page: 3, wantPage: 3, hasNext: false, hasPrev: true, lastPage: 3, wantSkip: 4},
		{name: "exact fit last page", total: 4, page: 2, wantPage: 2, hasNext: false, hasPrev: true, lastPage: 2, wantSkip: 2},
		{name: "page zero clamps to one", total: 4, page: 0, wantPage: 1, hasNext: true, hasPrev: false, lastPage: 2, wantSkip: 0},
		{name: "negative page clamps to one", total: 4, page: -3, wantPage: 1, hasNext: true, hasPrev: false, lastPage: 2, wantSkip: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockProductStore{total: tt.total}
			svc := NewService(mock)

			page, err := svc.ListPage(context.Background(), tt.page)

			require.NoError(t, err)
			assert.Equal(t, tt.total, page.Total)
			assert.Equal(t, tt.wantPage, page.CurrentPage)
			assert.Equal(t, tt.hasNext, page.HasNext)
			assert.Equal(t, tt.hasPrev, page.HasPrev)
			assert.Equal(t, tt.lastPage, page.LastPage)
			assert.Equal(t, tt.wantSkip, mock.gotSkip)
			assert.Equal(t, int64(PageSize), mock.gotLimit)
		})
	}
}

func TestListPage_NeverExceedsPageSize(t *testing.T) {
	mock := &MockProductStore{
		total:    10,
		products: []models.Product{{Title: "A"}, {Title: "B"}},
	}
	svc := NewService(mock)

	page, err := svc.ListPage(context.Background(), 1)

	require.NoError(t, err)
	assert.LessOrEqual(t, len(page.Items), PageSize)
}

func TestListPage_CountError(t *testing.T) {
	mock := &MockProductStore{countErr: errors.New("connection reset")}
	svc := NewService(mock)

	page, err := svc.ListPage(context.Background(), 1)

	assert.Error(t, err)
	assert.Nil(t, page)
	assert.Contains(t, err.Error(), "failed to count products")
}

func TestGetProduct_NotFound(t *testing.T) {
	mock := &MockProductStore{byID: map[bson.ObjectID]*models.Product{}}
	svc := NewService(mock)

	product, err := svc.GetProduct(context.Background(), bson.NewObjectID())

	assert.Nil(t, product)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestGetProduct_Found(t *testing.T) {
	id := bson.NewObjectID()
	mock := &MockProductStore{byID: map[bson.ObjectID]*models.Product{
		id: {ID: id, Title: "Book", Price: 12.99},
	}}
	svc := NewService(mock)

	product, err := svc.GetProduct(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "Book", product.Title)
}
