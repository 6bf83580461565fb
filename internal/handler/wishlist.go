package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/homevista/property-listings/internal/repository"
)

// WishlistHandler exposes the authenticated user's saved properties.
type WishlistHandler struct {
	Wishlists  *repository.WishlistRepo
	Properties *repository.PropertyRepo
}

func NewWishlistHandler(wishlists *repository.WishlistRepo, properties *repository.PropertyRepo) *WishlistHandler {
	return &WishlistHandler{Wishlists: wishlists, Properties: properties}
}

type addWishlistReq struct {
	PropertyID int64 `json:"propertyId"`
}

// List returns the user's wishlist entries joined with their properties.
func (h *WishlistHandler) List(c echo.Context) error {
	userID := c.Get("user_id").(int64)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Wishlists.ListByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch wishlist"})
	}
	return c.JSON(http.StatusOK, items)
}

// Add saves a property for the user. The friendly duplicate check runs
// first; the unique index behind the repository still rejects the pair when
// two adds race past it.
func (h *WishlistHandler) Add(c echo.Context) error {
	userID := c.Get("user_id").(int64)
	var req addWishlistReq
	if err := c.Bind(&req); err != nil || req.PropertyID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "propertyId is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Properties.GetByID(ctx, req.PropertyID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch property"})
	}

	exists, err := h.Wishlists.IsInWishlist(ctx, userID, req.PropertyID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to check wishlist"})
	}
	if exists {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "property already in wishlist"})
	}

	entry, err := h.Wishlists.Add(ctx, userID, req.PropertyID)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "property already in wishlist"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to add to wishlist"})
	}
	return c.JSON(http.StatusCreated, entry)
}

// Remove drops a property from the user's wishlist.
func (h *WishlistHandler) Remove(c echo.Context) error {
	userID := c.Get("user_id").(int64)
	propertyID, err := strconv.ParseInt(c.Param("propertyId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid property id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	removed, err := h.Wishlists.Remove(ctx, userID, propertyID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to remove from wishlist"})
	}
	if !removed {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "wishlist entry not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "removed from wishlist"})
}
