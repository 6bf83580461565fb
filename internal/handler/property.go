package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/homevista/property-listings/internal/model"
	"github.com/homevista/property-listings/internal/repository"
)

// PropertyHandler exposes the public catalog and the admin listing CRUD.
type PropertyHandler struct {
	Properties *repository.PropertyRepo
}

func NewPropertyHandler(properties *repository.PropertyRepo) *PropertyHandler {
	return &PropertyHandler{Properties: properties}
}

type createPropertyReq struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        string   `json:"price"`
	Location     string   `json:"location"`
	PropertyType string   `json:"propertyType"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    float64  `json:"bathrooms"`
	AreaSqFt     int      `json:"areaSqFt"`
	Status       string   `json:"status"`
	Images       []string `json:"images"`
	Features     []string `json:"features"`
	AgentID      int64    `json:"agentId"`
}

func validateCreateProperty(req createPropertyReq) error {
	if strings.TrimSpace(req.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(req.Location) == "" {
		return errors.New("location is required")
	}
	if _, err := primitive.ParseDecimal128(req.Price); err != nil {
		return fmt.Errorf("price must be a decimal string, got %q", req.Price)
	}
	if !model.ValidPropertyType(req.PropertyType) {
		return fmt.Errorf("unknown propertyType %q", req.PropertyType)
	}
	if req.Status != "" && !model.ValidPropertyStatus(req.Status) {
		return fmt.Errorf("unknown status %q", req.Status)
	}
	if req.Bedrooms < 0 || req.Bathrooms < 0 || req.AreaSqFt < 0 {
		return errors.New("bedrooms, bathrooms and areaSqFt must not be negative")
	}
	return nil
}

func validatePropertyUpdate(upd model.PropertyUpdate) error {
	if upd.Price != nil {
		if _, err := primitive.ParseDecimal128(*upd.Price); err != nil {
			return fmt.Errorf("price must be a decimal string, got %q", *upd.Price)
		}
	}
	if upd.PropertyType != nil && !model.ValidPropertyType(*upd.PropertyType) {
		return fmt.Errorf("unknown propertyType %q", *upd.PropertyType)
	}
	if upd.Status != nil && !model.ValidPropertyStatus(*upd.Status) {
		return fmt.Errorf("unknown status %q", *upd.Status)
	}
	return nil
}

// Search lists properties matching the query-string filters. Absent filters
// are simply left out of the store query, so a bare request returns the
// whole catalog.
func (h *PropertyHandler) Search(c echo.Context) error {
	q := repository.PropertySearchQuery{
		Location:     c.QueryParam("location"),
		MinPrice:     c.QueryParam("minPrice"),
		MaxPrice:     c.QueryParam("maxPrice"),
		PropertyType: c.QueryParam("propertyType"),
		Bedrooms:     c.QueryParam("bedrooms"),
		Status:       c.QueryParam("status"),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	properties, err := h.Properties.Search(ctx, q)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidFilter) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch properties"})
	}
	return c.JSON(http.StatusOK, properties)
}

// Get returns a single property by id.
func (h *PropertyHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid property id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch property"})
	}
	return c.JSON(http.StatusOK, p)
}

// Create stores a new listing. Admin only; the router enforces the role.
func (h *PropertyHandler) Create(c echo.Context) error {
	var req createPropertyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := validateCreateProperty(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	status := req.Status
	if status == "" {
		status = model.StatusAvailable
	}

	p := model.Property{
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		Price:        req.Price,
		Location:     strings.TrimSpace(req.Location),
		PropertyType: req.PropertyType,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		AreaSqFt:     req.AreaSqFt,
		Status:       status,
		Images:       req.Images,
		Features:     req.Features,
		AgentID:      req.AgentID,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Properties.Create(ctx, &p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create property"})
	}
	return c.JSON(http.StatusCreated, p)
}

// Update applies a partial update to a listing and returns the result.
func (h *PropertyHandler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid property id"})
	}
	var upd model.PropertyUpdate
	if err := c.Bind(&upd); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := validatePropertyUpdate(upd); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Properties.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update property"})
	}
	return c.JSON(http.StatusOK, p)
}

// Delete removes a listing. Deleting an unknown id reports 404.
func (h *PropertyHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid property id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	removed, err := h.Properties.Delete(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete property"})
	}
	if !removed {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "property deleted successfully"})
}
