package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/homevista/property-listings/internal/model"
)

func strp(s string) *string { return &s }

func TestPropertyUpdateDocSoldStampsSoldAt(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	doc := propertyUpdateDoc(model.PropertyUpdate{Status: strp(model.StatusSold)}, now)

	set, ok := doc["$set"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, model.StatusSold, set["status"])
	assert.Equal(t, now, set["soldAt"])
	assert.NotContains(t, doc, "$unset")
}

func TestPropertyUpdateDocLeavingSoldClearsSoldAt(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	doc := propertyUpdateDoc(model.PropertyUpdate{Status: strp(model.StatusAvailable)}, now)

	set := doc["$set"].(bson.M)
	assert.NotContains(t, set, "soldAt")
	assert.Equal(t, bson.M{"soldAt": ""}, doc["$unset"])
}

func TestPropertyUpdateDocEditWithoutStatusKeepsSoldAt(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	doc := propertyUpdateDoc(model.PropertyUpdate{Title: strp("Lakefront Craftsman (dock rebuilt)")}, now)

	set := doc["$set"].(bson.M)
	assert.Equal(t, "Lakefront Craftsman (dock rebuilt)", set["title"])
	assert.NotContains(t, set, "soldAt")
	assert.NotContains(t, doc, "$unset")
	assert.Equal(t, now, set["updatedAt"])
}
