package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Counter keys, one per entity kind.
const (
	SeqUsers      = "users"
	SeqProperties = "properties"
	SeqWishlists  = "wishlists"
	SeqInquiries  = "inquiries"
)

// SequenceRepo issues monotonically increasing integer identifiers per
// entity kind. The store has no native auto-increment, so each kind keeps a
// counter document that is advanced with a single atomic increment-and-fetch.
type SequenceRepo struct {
	counters *mongo.Collection
}

func NewSequenceRepo(db *mongo.Database) *SequenceRepo {
	return &SequenceRepo{counters: db.Collection("counters")}
}

// Next atomically advances the counter for key and returns the new value.
// A missing counter document is created implicitly starting at 1. Any store
// error is returned as-is; there is deliberately no read-then-write fallback,
// which could hand out the same id twice.
func (r *SequenceRepo) Next(ctx context.Context, key string) (int64, error) {
	res := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": key},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	if err := res.Decode(&doc); err != nil {
		return 0, fmt.Errorf("next sequence for %q: %w", key, err)
	}
	return doc.Seq, nil
}
