package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/homevista/property-listings/internal/model"
)

// nextSeqResponse mimics the counter document returned by the atomic
// increment-and-fetch.
func nextSeqResponse(n int64) bson.D {
	return mtest.CreateSuccessResponse(
		bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: "properties"},
			{Key: "seq", Value: n},
		}},
	)
}

func TestSequenceNextMonotonic(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ids strictly increase", func(mt *mtest.T) {
		mt.AddMockResponses(nextSeqResponse(1), nextSeqResponse(2), nextSeqResponse(3))
		seq := NewSequenceRepo(mt.DB)

		var prev int64
		for i := 0; i < 3; i++ {
			id, err := seq.Next(context.Background(), SeqProperties)
			require.NoError(mt, err)
			assert.Greater(mt, id, prev)
			prev = id
		}
	})

	mt.Run("store error surfaces instead of a reused id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 11601, Message: "operation was interrupted", Name: "Interrupted",
		}))
		seq := NewSequenceRepo(mt.DB)

		id, err := seq.Next(context.Background(), SeqProperties)
		require.Error(mt, err)
		assert.Zero(mt, id)
	})
}

func TestWishlistAddDuplicateReportsConflict(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("second add for the same pair", func(mt *mtest.T) {
		mt.AddMockResponses(
			nextSeqResponse(1),
			mtest.CreateSuccessResponse(),
			nextSeqResponse(2),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{
				Index: 0, Code: 11000, Message: "E11000 duplicate key error",
			}),
		)
		seq := NewSequenceRepo(mt.DB)
		properties := NewPropertyRepo(mt.DB, seq)
		wishlists := NewWishlistRepo(mt.DB, seq, properties)

		entry, err := wishlists.Add(context.Background(), 7, 3)
		require.NoError(mt, err)
		assert.Equal(mt, int64(7), entry.UserID)
		assert.Equal(mt, int64(3), entry.PropertyID)

		_, err = wishlists.Add(context.Background(), 7, 3)
		assert.ErrorIs(mt, err, ErrConflict)
	})
}

func TestPropertyDeleteIdempotent(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("second delete reports false without error", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)
		properties := NewPropertyRepo(mt.DB, NewSequenceRepo(mt.DB))

		removed, err := properties.Delete(context.Background(), 42)
		require.NoError(mt, err)
		assert.True(mt, removed)

		removed, err = properties.Delete(context.Background(), 42)
		require.NoError(mt, err)
		assert.False(mt, removed)
	})
}

func TestPropertyCreateThenGet(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create assigns id and stamps timestamps", func(mt *mtest.T) {
		mt.AddMockResponses(nextSeqResponse(11), mtest.CreateSuccessResponse())
		properties := NewPropertyRepo(mt.DB, NewSequenceRepo(mt.DB))

		p := &model.Property{
			Title:        "Harbor Loft",
			Price:        "540000",
			Location:     "Portland, ME",
			PropertyType: "apartment",
			Status:       model.StatusAvailable,
		}
		require.NoError(mt, properties.Create(context.Background(), p))
		assert.Equal(mt, int64(11), p.ID)
		assert.False(mt, p.CreatedAt.IsZero())
		assert.Equal(mt, p.CreatedAt, p.UpdatedAt)
		assert.NotNil(mt, p.Images, "nil slices normalize to empty for clean JSON")
		assert.NotNil(mt, p.Features)
	})

	mt.Run("get returns the stored record", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "homevista.properties", mtest.FirstBatch, bson.D{
			{Key: "id", Value: int64(11)},
			{Key: "title", Value: "Harbor Loft"},
			{Key: "price", Value: "540000"},
			{Key: "location", Value: "Portland, ME"},
			{Key: "propertyType", Value: "apartment"},
			{Key: "status", Value: model.StatusAvailable},
		}))
		properties := NewPropertyRepo(mt.DB, NewSequenceRepo(mt.DB))

		got, err := properties.GetByID(context.Background(), 11)
		require.NoError(mt, err)
		assert.Equal(mt, int64(11), got.ID)
		assert.Equal(mt, "Harbor Loft", got.Title)
		assert.Equal(mt, "540000", got.Price)
	})

	mt.Run("get of an unknown id reports not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "homevista.properties", mtest.FirstBatch))
		properties := NewPropertyRepo(mt.DB, NewSequenceRepo(mt.DB))

		_, err := properties.GetByID(context.Background(), 99)
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}
