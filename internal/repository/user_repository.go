package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/homevista/property-listings/internal/model"
)

// UserRepo encapsulates all store operations on the users collection.
type UserRepo struct {
	col *mongo.Collection
	seq *SequenceRepo
}

func NewUserRepo(db *mongo.Database, seq *SequenceRepo) *UserRepo {
	return &UserRepo{col: db.Collection("users"), seq: seq}
}

// Create assigns the next user id, stamps the creation time and inserts the
// record. The password field must already be hashed by the caller. A unique
// index on email turns concurrent duplicate registrations into ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	id, err := r.seq.Next(ctx, SeqUsers)
	if err != nil {
		return err
	}
	u.ID = id
	u.CreatedAt = time.Now().UTC()
	if _, err := r.col.InsertOne(ctx, u); err != nil {
		if isDuplicateKey(err) {
			return ErrEmailExists
		}
		return err
	}
	return nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetByID fetches a user by its application-assigned id.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// List returns all users in store order.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []model.User{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a user and reports whether a record was actually removed.
// Deleting an unknown id is not an error.
func (r *UserRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// Count returns the number of registered users.
func (r *UserRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
