package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Product is a catalog entry. The storefront only ever reads products;
// creation and deletion happen through the admin tooling.
type Product struct {
	ID          bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string        `json:"title" bson:"title" validate:"required,min=2,max=200"`
	Description string        `json:"description" bson:"description" validate:"max=2000"`
	Price       float64       `json:"price" bson:"price" validate:"required,gt=0"`
	ImageURL    string        `json:"image_url" bson:"image_url" validate:"url"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}
