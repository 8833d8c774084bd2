package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"julianmorley.ca/shop/storefront/pkg/models"
)

func (s *Store) GetUserByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	var user models.User
	err := s.collection("users").FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	if _, err := s.collection("users").InsertOne(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUserCart persists the whole embedded cart in one $set. The document
// write is atomic; concurrent mutations from the same user are last-write-wins.
func (s *Store) UpdateUserCart(ctx context.Context, userID bson.ObjectID, cart models.Cart) error {
	_, err := s.collection("users").UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"cart": cart}},
	)
	return err
}
