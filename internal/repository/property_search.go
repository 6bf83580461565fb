package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/homevista/property-listings/internal/model"
)

// ErrInvalidFilter is returned when a search filter value cannot be parsed.
// Handlers should translate it into an HTTP 400 response.
var ErrInvalidFilter = errors.New("invalid filter")

// PropertySearchQuery carries the raw filter values from the query string.
// Empty fields are omitted from the store query entirely.
type PropertySearchQuery struct {
	Location     string
	MinPrice     string
	MaxPrice     string
	PropertyType string
	Bedrooms     string
	Status       string
}

// buildPropertyFilter turns a search query into a conjunctive store filter.
// Location matches as a case-insensitive substring; price bounds compare the
// string-stored price as a decimal; bedrooms is a minimum, the rest are exact.
// Invalid numeric values are reported as errors rather than silently skipped.
func buildPropertyFilter(q PropertySearchQuery) (bson.M, error) {
	filter := bson.M{}

	if q.Location != "" {
		filter["location"] = bson.M{"$regex": q.Location, "$options": "i"}
	}
	if q.PropertyType != "" {
		filter["propertyType"] = q.PropertyType
	}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.Bedrooms != "" {
		n, err := strconv.Atoi(q.Bedrooms)
		if err != nil {
			return nil, fmt.Errorf("%w: bedrooms %q", ErrInvalidFilter, q.Bedrooms)
		}
		filter["bedrooms"] = bson.M{"$gte": n}
	}

	var bounds []bson.M
	if q.MinPrice != "" {
		min, err := primitive.ParseDecimal128(q.MinPrice)
		if err != nil {
			return nil, fmt.Errorf("%w: minPrice %q", ErrInvalidFilter, q.MinPrice)
		}
		bounds = append(bounds, bson.M{"$gte": bson.A{bson.M{"$toDecimal": "$price"}, min}})
	}
	if q.MaxPrice != "" {
		max, err := primitive.ParseDecimal128(q.MaxPrice)
		if err != nil {
			return nil, fmt.Errorf("%w: maxPrice %q", ErrInvalidFilter, q.MaxPrice)
		}
		bounds = append(bounds, bson.M{"$lte": bson.A{bson.M{"$toDecimal": "$price"}, max}})
	}
	if len(bounds) > 0 {
		filter["$expr"] = bson.M{"$and": bounds}
	}

	return filter, nil
}

// Search returns all properties matching the query, in store order. A zero
// query returns the whole catalog.
func (r *PropertyRepo) Search(ctx context.Context, q PropertySearchQuery) ([]model.Property, error) {
	filter, err := buildPropertyFilter(q)
	if err != nil {
		return nil, err
	}
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []model.Property{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
