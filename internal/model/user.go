package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles stored in the users collection and embedded in access tokens.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a persisted account. ID is the application-assigned sequence value
// used in URLs and tokens; ObjectID is the store's own record key and never
// leaves the repository layer.
type User struct {
	ObjectID  primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID        int64              `bson:"id" json:"id"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"password,omitempty"`
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Sanitize blanks the password hash so it never appears in a response body.
func (u *User) Sanitize() {
	u.Password = ""
}
