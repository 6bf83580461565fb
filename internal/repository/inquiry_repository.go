package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/homevista/property-listings/internal/model"
)

// InquiryRepo encapsulates all store operations on the inquiries collection.
type InquiryRepo struct {
	col *mongo.Collection
	seq *SequenceRepo
}

func NewInquiryRepo(db *mongo.Database, seq *SequenceRepo) *InquiryRepo {
	return &InquiryRepo{col: db.Collection("inquiries"), seq: seq}
}

// Create assigns the next inquiry id and inserts the record. Status always
// starts as pending regardless of what the caller set; only UpdateStatus
// moves an inquiry forward.
func (r *InquiryRepo) Create(ctx context.Context, inq *model.Inquiry) error {
	id, err := r.seq.Next(ctx, SeqInquiries)
	if err != nil {
		return err
	}
	inq.ID = id
	inq.Status = model.InquiryPending
	inq.CreatedAt = time.Now().UTC()
	_, err = r.col.InsertOne(ctx, inq)
	return err
}

// List returns all inquiries in store order.
func (r *InquiryRepo) List(ctx context.Context) ([]model.Inquiry, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []model.Inquiry{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus sets the status field only and returns the post-update
// inquiry, or ErrNotFound when no record matched.
func (r *InquiryRepo) UpdateStatus(ctx context.Context, id int64, status string) (*model.Inquiry, error) {
	res := r.col.FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var inq model.Inquiry
	if err := res.Decode(&inq); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &inq, nil
}

// Delete removes an inquiry and reports whether a record was actually removed.
func (r *InquiryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// CountByStatus returns how many inquiries sit in the given status.
func (r *InquiryRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"status": status})
}
