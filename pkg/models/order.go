package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// OrderUser is a denormalized copy of the purchaser's identifying fields,
// stored on the order so later user edits never alter order history.
type OrderUser struct {
	UserID bson.ObjectID `json:"user_id" bson:"userId"`
	Email  string        `json:"email" bson:"email"`
}

// OrderItem holds a full value copy of the product as it looked at placement
// time. Later catalog edits must not retroactively change the order.
type OrderItem struct {
	Product  Product `json:"product" bson:"product"`
	Quantity int     `json:"quantity" bson:"quantity"`
}

// Order is written once at checkout and never mutated afterwards. There is no
// stored total; totals are recomputed from Items wherever they are needed.
type Order struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	User      OrderUser     `json:"user" bson:"user"`
	Items     []OrderItem   `json:"items" bson:"items" validate:"dive"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
}
