package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPropertyType(t *testing.T) {
	for _, typ := range []string{"house", "apartment", "condo", "villa", "townhouse"} {
		assert.True(t, ValidPropertyType(typ), typ)
	}
	assert.False(t, ValidPropertyType("castle"))
	assert.False(t, ValidPropertyType(""))
	assert.False(t, ValidPropertyType("House"), "types are matched case-sensitively")
}

func TestValidPropertyStatus(t *testing.T) {
	for _, s := range []string{StatusAvailable, StatusPending, StatusSold, StatusRented} {
		assert.True(t, ValidPropertyStatus(s), s)
	}
	assert.False(t, ValidPropertyStatus("listed"))
}

func TestValidInquiryStatus(t *testing.T) {
	for _, s := range []string{InquiryPending, InquiryContacted, InquiryResolved} {
		assert.True(t, ValidInquiryStatus(s), s)
	}
	assert.False(t, ValidInquiryStatus("open"))
}

func TestUserSanitize(t *testing.T) {
	u := User{Email: "a@b.c", Password: "$2a$10$hash"}
	u.Sanitize()
	assert.Empty(t, u.Password)
	assert.Equal(t, "a@b.c", u.Email)
}
