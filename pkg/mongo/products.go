package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"julianmorley.ca/shop/storefront/pkg/models"
)

func (s *Store) CountProducts(ctx context.Context) (int64, error) {
	return s.collection("products").CountDocuments(ctx, bson.D{})
}

// FindProductsPage fetches one catalog window. Skip/limit mirror the cursor
// semantics of the listing contract; ordering is newest first.
func (s *Store) FindProductsPage(ctx context.Context, skip, limit int64) ([]models.Product, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := s.collection("products").Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) GetProductByID(ctx context.Context, id bson.ObjectID) (*models.Product, error) {
	var product models.Product
	err := s.collection("products").FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}
