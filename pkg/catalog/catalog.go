package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"julianmorley.ca/shop/storefront/pkg/models"
)

// PageSize is the fixed catalog window. Listing endpoints never accept a
// client-supplied size.
const PageSize = 2

var ErrProductNotFound = errors.New("product not found")

// ProductStore is the slice of the document store the catalog needs.
type ProductStore interface {
	CountProducts(ctx context.Context) (int64, error)
	FindProductsPage(ctx context.Context, skip, limit int64) ([]models.Product, error)
	GetProductByID(ctx context.Context, id bson.ObjectID) (*models.Product, error)
}

type Service struct {
	store ProductStore
}

func NewService(store ProductStore) *Service {
	return &Service{store: store}
}

// Page is one catalog window plus the metadata the listing templates need.
type Page struct {
	Items       []models.Product
	Total       int64
	CurrentPage int
	HasNext     bool
	HasPrev     bool
	NextPage    int
	PrevPage    int
	LastPage    int
}

// ListPage fetches one window of the catalog. Pages below 1 are clamped to 1
// rather than rejected. The count and the fetch are separate store calls, so
// the metadata can lag the window by a write; that race is accepted.
func (s *Service) ListPage(ctx context.Context, page int) (*Page, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.store.CountProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	items, err := s.store.FindProductsPage(ctx, int64((page-1)*PageSize), PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return &Page{
		Items:       items,
		Total:       total,
		CurrentPage: page,
		HasNext:     int64(PageSize*page) < total,
		HasPrev:     page > 1,
		NextPage:    page + 1,
		PrevPage:    page - 1,
		LastPage:    int((total + PageSize - 1) / PageSize),
	}, nil
}

func (s *Service) GetProduct(ctx context.Context, id bson.ObjectID) (*models.Product, error) {
	product, err := s.store.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return product, nil
}
