package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// CartItem references a product by id. Quantities live here; the full product
// document is joined in when a handler needs prices or titles.
type CartItem struct {
	ProductID bson.ObjectID `json:"product_id" bson:"product_id"`
	Quantity  int           `json:"quantity" bson:"quantity"`
}

// Cart is embedded on the user document, one per user. ProductID is unique
// within Items.
type Cart struct {
	Items []CartItem `json:"items" bson:"items"`
}

// User is the authenticated shopper. This service never creates or mutates
// users beyond the embedded cart; the signup handler is the one exception.
type User struct {
	ID       bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Email    string        `json:"email" bson:"email" validate:"required,email"`
	Password string        `json:"-" bson:"password"`
	Cart     Cart          `json:"cart" bson:"cart"`
}

// CartLine is a cart item with its product document joined in.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
