package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"julianmorley.ca/shop/storefront/pkg/models"
)

func (s *Store) InsertOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if order.ID.IsZero() {
		order.ID = bson.NewObjectID()
	}
	if _, err := s.collection("orders").InsertOne(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *Store) FindOrdersByUser(ctx context.Context, userID bson.ObjectID) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.collection("orders").Find(ctx, bson.M{"user.userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Store) GetOrderByID(ctx context.Context, id bson.ObjectID) (*models.Order, error) {
	var order models.Order
	err := s.collection("orders").FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
