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

	"github.com/homevista/property-listings/internal/model"
	"github.com/homevista/property-listings/internal/queue"
	"github.com/homevista/property-listings/internal/repository"
)

// InquiryPublisher delivers an event after an inquiry is stored. Broker
// failures must not fail the request; Create ignores the returned error.
type InquiryPublisher interface {
	PublishInquiryReceived(ctx context.Context, event queue.InquiryReceivedEvent) error
}

// InquiryHandler exposes the public contact form and the admin inquiry
// management endpoints.
type InquiryHandler struct {
	Inquiries *repository.InquiryRepo
	Events    InquiryPublisher
}

func NewInquiryHandler(inquiries *repository.InquiryRepo, events InquiryPublisher) *InquiryHandler {
	return &InquiryHandler{Inquiries: inquiries, Events: events}
}

type createInquiryReq struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
	PropertyID *int64 `json:"propertyId"`
}

type updateInquiryStatusReq struct {
	Status string `json:"status"`
}

func validateCreateInquiry(req createInquiryReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(req.Email) == "" || !strings.Contains(req.Email, "@") {
		return errors.New("a valid email is required")
	}
	if strings.TrimSpace(req.Message) == "" {
		return errors.New("message is required")
	}
	if req.PropertyID != nil && *req.PropertyID <= 0 {
		return errors.New("propertyId must be positive when set")
	}
	return nil
}

// Create stores a contact inquiry. Public, no authentication. The stored
// inquiry always starts as pending. An inquiry.received event is published
// afterwards; broker failures are logged by the publisher and ignored here.
func (h *InquiryHandler) Create(c echo.Context) error {
	var req createInquiryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := validateCreateInquiry(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	inq := model.Inquiry{
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
		Phone:      strings.TrimSpace(req.Phone),
		Message:    strings.TrimSpace(req.Message),
		PropertyID: req.PropertyID,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Inquiries.Create(ctx, &inq); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create inquiry"})
	}

	if h.Events != nil {
		_ = h.Events.PublishInquiryReceived(ctx, queue.InquiryReceivedEvent{
			InquiryID:  inq.ID,
			Name:       inq.Name,
			Email:      inq.Email,
			Phone:      inq.Phone,
			PropertyID: inq.PropertyID,
			ReceivedAt: inq.CreatedAt.Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusCreated, inq)
}

// List returns all inquiries. Admin only.
func (h *InquiryHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	inquiries, err := h.Inquiries.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch inquiries"})
	}
	return c.JSON(http.StatusOK, inquiries)
}

// UpdateStatus moves an inquiry to a new status. Admin only.
func (h *InquiryHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid inquiry id"})
	}
	var req updateInquiryStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if !model.ValidInquiryStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": fmt.Sprintf("unknown status %q", req.Status)})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	inq, err := h.Inquiries.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "inquiry not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update inquiry"})
	}
	return c.JSON(http.StatusOK, inq)
}

// Delete removes an inquiry. Admin only.
func (h *InquiryHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid inquiry id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	removed, err := h.Inquiries.Delete(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete inquiry"})
	}
	if !removed {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "inquiry not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "inquiry deleted successfully"})
}
