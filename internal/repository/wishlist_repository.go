package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/homevista/property-listings/internal/model"
)

// WishlistRepo encapsulates all store operations on the wishlists
// collection. A unique compound index on (userId, propertyId) guarantees at
// most one entry per pair even when duplicate adds race each other.
type WishlistRepo struct {
	col        *mongo.Collection
	seq        *SequenceRepo
	properties *PropertyRepo
}

func NewWishlistRepo(db *mongo.Database, seq *SequenceRepo, properties *PropertyRepo) *WishlistRepo {
	return &WishlistRepo{col: db.Collection("wishlists"), seq: seq, properties: properties}
}

// IsInWishlist reports whether the user has already saved the property.
func (r *WishlistRepo) IsInWishlist(ctx context.Context, userID, propertyID int64) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"userId": userID, "propertyId": propertyID})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Add saves a property for a user and returns the stored entry. A duplicate
// pair surfaces as ErrConflict via the unique index, so two concurrent adds
// can never both succeed.
func (r *WishlistRepo) Add(ctx context.Context, userID, propertyID int64) (*model.WishlistEntry, error) {
	id, err := r.seq.Next(ctx, SeqWishlists)
	if err != nil {
		return nil, err
	}
	entry := model.WishlistEntry{
		ID:         id,
		UserID:     userID,
		PropertyID: propertyID,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := r.col.InsertOne(ctx, entry); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &entry, nil
}

// Remove deletes the entry for the pair and reports whether one existed.
func (r *WishlistRepo) Remove(ctx context.Context, userID, propertyID int64) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"userId": userID, "propertyId": propertyID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// ListByUser returns the user's entries joined with their properties, one
// lookup per entry. Entries whose property has since been deleted are
// silently dropped from the result.
func (r *WishlistRepo) ListByUser(ctx context.Context, userID int64) ([]model.WishlistItem, error) {
	cur, err := r.col.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var entries []model.WishlistEntry
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}

	out := []model.WishlistItem{}
	for _, e := range entries {
		p, err := r.properties.GetByID(ctx, e.PropertyID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, model.WishlistItem{WishlistEntry: e, Property: *p})
	}
	return out, nil
}
