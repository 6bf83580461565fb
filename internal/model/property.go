package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Listing statuses. A property starts as available and moves through
// pending to sold or rented.
const (
	StatusAvailable = "available"
	StatusPending   = "pending"
	StatusSold      = "sold"
	StatusRented    = "rented"
)

var propertyTypes = map[string]bool{
	"house":     true,
	"apartment": true,
	"condo":     true,
	"villa":     true,
	"townhouse": true,
}

var propertyStatuses = map[string]bool{
	StatusAvailable: true,
	StatusPending:   true,
	StatusSold:      true,
	StatusRented:    true,
}

// ValidPropertyType reports whether t is one of the known listing types.
func ValidPropertyType(t string) bool { return propertyTypes[t] }

// ValidPropertyStatus reports whether s is one of the known listing statuses.
func ValidPropertyStatus(s string) bool { return propertyStatuses[s] }

// Property is a listed home. Price is kept as a decimal string to avoid
// floating-point drift; comparisons happen store-side as decimals.
// Bathrooms is fractional because half-baths are counted as 0.5.
type Property struct {
	ObjectID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID           int64              `bson:"id" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Price        string             `bson:"price" json:"price"`
	Location     string             `bson:"location" json:"location"`
	PropertyType string             `bson:"propertyType" json:"propertyType"`
	Bedrooms     int                `bson:"bedrooms" json:"bedrooms"`
	Bathrooms    float64            `bson:"bathrooms" json:"bathrooms"`
	AreaSqFt     int                `bson:"areaSqFt" json:"areaSqFt"`
	Status       string             `bson:"status" json:"status"`
	SoldAt       *time.Time         `bson:"soldAt,omitempty" json:"soldAt,omitempty"`
	Images       []string           `bson:"images" json:"images"`
	Features     []string           `bson:"features" json:"features"`
	AgentID      int64              `bson:"agentId" json:"agentId"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PropertyUpdate carries a partial update. Nil fields are left untouched;
// the repository merges only what is set and refreshes updatedAt.
type PropertyUpdate struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Price        *string   `json:"price"`
	Location     *string   `json:"location"`
	PropertyType *string   `json:"propertyType"`
	Bedrooms     *int      `json:"bedrooms"`
	Bathrooms    *float64  `json:"bathrooms"`
	AreaSqFt     *int      `json:"areaSqFt"`
	Status       *string   `json:"status"`
	Images       *[]string `json:"images"`
	Features     *[]string `json:"features"`
	AgentID      *int64    `json:"agentId"`
}
