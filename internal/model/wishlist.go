package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistEntry links a user to a saved property. At most one entry exists
// per (UserID, PropertyID) pair, enforced by a unique compound index.
type WishlistEntry struct {
	ObjectID   primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID         int64              `bson:"id" json:"id"`
	UserID     int64              `bson:"userId" json:"userId"`
	PropertyID int64              `bson:"propertyId" json:"propertyId"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// WishlistItem is an entry joined with its property for list responses.
type WishlistItem struct {
	WishlistEntry
	Property Property `json:"property"`
}
