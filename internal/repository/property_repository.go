package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/homevista/property-listings/internal/model"
)

// PropertyRepo encapsulates all store operations on the properties
// collection. The id field is assigned once at create time and never changes;
// updatedAt is refreshed on every mutation.
type PropertyRepo struct {
	col *mongo.Collection
	seq *SequenceRepo
}

func NewPropertyRepo(db *mongo.Database, seq *SequenceRepo) *PropertyRepo {
	return &PropertyRepo{col: db.Collection("properties"), seq: seq}
}

// Create assigns the next property id, stamps both timestamps and inserts the
// record. The caller receives the fully populated entity back through p.
func (r *PropertyRepo) Create(ctx context.Context, p *model.Property) error {
	id, err := r.seq.Next(ctx, SeqProperties)
	if err != nil {
		return err
	}
	p.ID = id
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	_, err = r.col.InsertOne(ctx, p)
	return err
}

// GetByID fetches a property by its application-assigned id.
func (r *PropertyRepo) GetByID(ctx context.Context, id int64) (*model.Property, error) {
	var p model.Property
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns all properties in store order.
func (r *PropertyRepo) List(ctx context.Context) ([]model.Property, error) {
	return r.Search(ctx, PropertySearchQuery{})
}

// propertyUpdateDoc builds the update document for a partial update. Moving
// status to sold stamps soldAt so the sale is attributed to that month;
// moving it anywhere else clears the stamp. Edits that leave status alone
// never touch soldAt, so fixing a typo on a sold listing cannot re-count its
// price in the current month's revenue.
func propertyUpdateDoc(upd model.PropertyUpdate, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if upd.PropertyType != nil {
		set["propertyType"] = *upd.PropertyType
	}
	if upd.Bedrooms != nil {
		set["bedrooms"] = *upd.Bedrooms
	}
	if upd.Bathrooms != nil {
		set["bathrooms"] = *upd.Bathrooms
	}
	if upd.AreaSqFt != nil {
		set["areaSqFt"] = *upd.AreaSqFt
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.Images != nil {
		set["images"] = *upd.Images
	}
	if upd.Features != nil {
		set["features"] = *upd.Features
	}
	if upd.AgentID != nil {
		set["agentId"] = *upd.AgentID
	}

	update := bson.M{"$set": set}
	if upd.Status != nil {
		if *upd.Status == model.StatusSold {
			set["soldAt"] = now
		} else {
			update["$unset"] = bson.M{"soldAt": ""}
		}
	}
	return update
}

// Update applies only the fields set in upd, refreshes updatedAt and returns
// the post-update entity. ErrNotFound is returned when no record matched.
func (r *PropertyRepo) Update(ctx context.Context, id int64, upd model.PropertyUpdate) (*model.Property, error) {
	res := r.col.FindOneAndUpdate(ctx,
		bson.M{"id": id},
		propertyUpdateDoc(upd, time.Now().UTC()),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var p model.Property
	if err := res.Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Delete removes a property and reports whether a record was actually
// removed. A second delete of the same id reports false, not an error.
func (r *PropertyRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// Count returns the number of listed properties.
func (r *PropertyRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// RevenueSince sums the prices of properties whose sale was stamped since
// the given time, summed store-side as decimals. Returns "0" when nothing
// was sold.
func (r *PropertyRepo) RevenueSince(ctx context.Context, since time.Time) (string, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"status": model.StatusSold,
			"soldAt": bson.M{"$gte": since},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": bson.M{"$toDecimal": "$price"}},
		}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return "", err
	}
	defer cur.Close(ctx)
	var rows []struct {
		Total primitive.Decimal128 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "0", nil
	}
	return rows[0].Total.String(), nil
}
