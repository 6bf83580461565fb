// Package repository contains data access logic separated from HTTP handlers.
// Sentinel errors defined here let handlers distinguish an absent record from
// a store failure and map each to the right HTTP status.
package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a record does not exist. Handlers should
// translate it into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when a user registration collides with an
// existing account. The users collection carries a unique index on email, so
// this surfaces even under concurrent registrations.
var ErrEmailExists = errors.New("email already exists")

// ErrConflict is returned when an insert collides with existing state, such
// as adding the same property to a wishlist twice.
var ErrConflict = errors.New("conflict")

// isDuplicateKey reports whether err is a unique-index violation.
func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
