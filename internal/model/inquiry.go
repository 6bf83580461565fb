package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Inquiry statuses. New inquiries always start as pending; only an
// administrator moves them forward.
const (
	InquiryPending   = "pending"
	InquiryContacted = "contacted"
	InquiryResolved  = "resolved"
)

var inquiryStatuses = map[string]bool{
	InquiryPending:   true,
	InquiryContacted: true,
	InquiryResolved:  true,
}

// ValidInquiryStatus reports whether s is a known inquiry status.
func ValidInquiryStatus(s string) bool { return inquiryStatuses[s] }

// Inquiry is a contact-form submission. PropertyID is set when the inquiry
// references a specific listing.
type Inquiry struct {
	ObjectID   primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID         int64              `bson:"id" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Message    string             `bson:"message" json:"message"`
	PropertyID *int64             `bson:"propertyId,omitempty" json:"propertyId,omitempty"`
	Status     string             `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
