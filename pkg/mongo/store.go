package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Store wraps the storefront database. It satisfies the narrow store
// interfaces declared by the catalog, cart, orders and checkout packages.
type Store struct {
	db *mongo.Database
}

func NewStore(client *mongo.Client, databaseName string) *Store {
	return &Store{db: client.Database(databaseName)}
}

func (s *Store) collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}
