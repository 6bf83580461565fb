// Package queue defines message payloads exchanged over the message broker.
package queue

// InquiryReceivedEvent is published when a contact inquiry is stored. It
// carries enough information for downstream consumers (notifications,
// analytics) without querying the primary store.
type InquiryReceivedEvent struct {
	InquiryID  int64  `json:"inquiry_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	PropertyID *int64 `json:"property_id,omitempty"`
	ReceivedAt string `json:"received_at"`
}
