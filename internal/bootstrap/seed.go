// Package bootstrap performs one-time initialization at process start:
// indexes, counter documents, the default administrator account and the
// sample catalog. Every step is gated by an existence check, so running it
// on each start never duplicates data.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/homevista/property-listings/internal/config"
	"github.com/homevista/property-listings/internal/model"
	"github.com/homevista/property-listings/internal/repository"
	"github.com/homevista/property-listings/internal/utils"
)

// Run ensures the store is ready to serve: unique indexes exist, counters
// are seeded, exactly one administrator exists and an empty catalog gets the
// sample listings.
func Run(ctx context.Context, db *mongo.Database, cfg config.Config) error {
	if err := ensureIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}
	if err := ensureCounters(ctx, db); err != nil {
		return fmt.Errorf("ensure counters: %w", err)
	}

	seq := repository.NewSequenceRepo(db)
	users := repository.NewUserRepo(db, seq)
	properties := repository.NewPropertyRepo(db, seq)

	if err := seedAdmin(ctx, users, cfg); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := seedProperties(ctx, properties); err != nil {
		return fmt.Errorf("seed properties: %w", err)
	}
	return nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return err
	}
	_, err = db.Collection("properties").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	// The compound index closes the check-then-insert race on duplicate adds:
	// the second insert fails with a duplicate-key error instead of slipping in.
	_, err = db.Collection("wishlists").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "propertyId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return err
	}
	_, err = db.Collection("inquiries").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true),
	})
	return err
}

// ensureCounters creates each counter document at 0 only if absent, so
// already-issued sequences are never rewound.
func ensureCounters(ctx context.Context, db *mongo.Database) error {
	counters := db.Collection("counters")
	keys := []string{
		repository.SeqUsers,
		repository.SeqProperties,
		repository.SeqWishlists,
		repository.SeqInquiries,
	}
	for _, key := range keys {
		_, err := counters.UpdateOne(ctx,
			bson.M{"_id": key},
			bson.M{"$setOnInsert": bson.M{"seq": int64(0)}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedAdmin(ctx context.Context, users *repository.UserRepo, cfg config.Config) error {
	if _, err := users.GetByEmail(ctx, cfg.AdminEmail); err == nil {
		return nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hash, err := utils.HashPassword(cfg.AdminPassword, cfg.BcryptCost)
	if err != nil {
		return err
	}
	admin := model.User{
		FirstName: "Site",
		LastName:  "Admin",
		Email:     cfg.AdminEmail,
		Password:  hash,
		Role:      model.RoleAdmin,
	}
	if err := users.Create(ctx, &admin); err != nil {
		// Another instance may have won the race; the account exists either way.
		if errors.Is(err, repository.ErrEmailExists) {
			return nil
		}
		return err
	}
	log.Printf("seeded default admin (id=%d, email=%s)", admin.ID, admin.Email)
	return nil
}

func seedProperties(ctx context.Context, properties *repository.PropertyRepo) error {
	n, err := properties.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for i := range sampleCatalog {
		p := sampleCatalog[i]
		if p.Status == model.StatusSold && p.SoldAt == nil {
			now := time.Now().UTC()
			p.SoldAt = &now
		}
		if err := properties.Create(ctx, &p); err != nil {
			return err
		}
	}
	log.Printf("seeded %d sample properties", len(sampleCatalog))
	return nil
}
