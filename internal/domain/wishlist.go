package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WishlistEntry struct {
	ProductID primitive.ObjectID `bson:"product" json:"product"`
	AddedAt   time.Time          `bson:"addedAt" json:"addedAt"`
}

// Wishlist is one document per user. Entries keep insertion order and
// never contain the same product twice.
type Wishlist struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   primitive.ObjectID `bson:"user" json:"user"`
	Products []WishlistEntry    `bson:"products" json:"products"`
}

func (w *Wishlist) Contains(productID primitive.ObjectID) bool {
	for _, e := range w.Products {
		if e.ProductID == productID {
			return true
		}
	}
	return false
}
