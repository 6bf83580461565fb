package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildPropertyFilterEmpty(t *testing.T) {
	filter, err := buildPropertyFilter(PropertySearchQuery{})
	require.NoError(t, err)
	assert.Empty(t, filter, "absent filters must be omitted from the query entirely")
}

func TestBuildPropertyFilterLocation(t *testing.T) {
	filter, err := buildPropertyFilter(PropertySearchQuery{Location: "Miami"})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"$regex": "Miami", "$options": "i"}, filter["location"],
		"location must match as a case-insensitive substring")
}

func TestBuildPropertyFilterExactMatches(t *testing.T) {
	filter, err := buildPropertyFilter(PropertySearchQuery{
		PropertyType: "condo",
		Status:       "available",
	})
	require.NoError(t, err)
	assert.Equal(t, "condo", filter["propertyType"])
	assert.Equal(t, "available", filter["status"])
	assert.Len(t, filter, 2)
}

func TestBuildPropertyFilterBedroomsThreshold(t *testing.T) {
	filter, err := buildPropertyFilter(PropertySearchQuery{Bedrooms: "3"})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"$gte": 3}, filter["bedrooms"])
}

func TestBuildPropertyFilterPriceBounds(t *testing.T) {
	filter, err := buildPropertyFilter(PropertySearchQuery{
		MinPrice: "500000",
		MaxPrice: "900000",
	})
	require.NoError(t, err)

	expr, ok := filter["$expr"].(bson.M)
	require.True(t, ok, "price bounds must compare store-side as decimals via $expr")
	bounds, ok := expr["$and"].([]bson.M)
	require.True(t, ok)
	assert.Len(t, bounds, 2)
	assert.Contains(t, bounds[0], "$gte")
	assert.Contains(t, bounds[1], "$lte")
}

func TestBuildPropertyFilterSingleBound(t *testing.T) {
	filter, err := buildPropertyFilter(PropertySearchQuery{MinPrice: "250000.50"})
	require.NoError(t, err)
	expr := filter["$expr"].(bson.M)
	assert.Len(t, expr["$and"].([]bson.M), 1)
}

func TestBuildPropertyFilterConjunction(t *testing.T) {
	filter, err := buildPropertyFilter(PropertySearchQuery{
		Location:     "Austin",
		MinPrice:     "100000",
		PropertyType: "townhouse",
		Bedrooms:     "2",
		Status:       "available",
	})
	require.NoError(t, err)
	// location + propertyType + status + bedrooms + $expr
	assert.Len(t, filter, 5, "filters must compose conjunctively in one document")
}

func TestBuildPropertyFilterInvalidValues(t *testing.T) {
	cases := map[string]PropertySearchQuery{
		"bedrooms": {Bedrooms: "two"},
		"minPrice": {MinPrice: "cheap"},
		"maxPrice": {MaxPrice: "1,000,000"},
	}
	for name, q := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := buildPropertyFilter(q)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidFilter)
		})
	}
}
