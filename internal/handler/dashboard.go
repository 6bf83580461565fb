package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/homevista/property-listings/internal/model"
	"github.com/homevista/property-listings/internal/repository"
)

// DashboardHandler aggregates counts across entities for the admin overview.
type DashboardHandler struct {
	Properties *repository.PropertyRepo
	Users      *repository.UserRepo
	Inquiries  *repository.InquiryRepo
}

func NewDashboardHandler(p *repository.PropertyRepo, u *repository.UserRepo, i *repository.InquiryRepo) *DashboardHandler {
	return &DashboardHandler{Properties: p, Users: u, Inquiries: i}
}

type dashboardStats struct {
	TotalProperties  int64  `json:"totalProperties"`
	ActiveUsers      int64  `json:"activeUsers"`
	PendingInquiries int64  `json:"pendingInquiries"`
	MonthlyRevenue   string `json:"monthlyRevenue"`
}

// Stats returns totals for the admin dashboard. Monthly revenue is the sum
// of prices of properties marked sold since the start of the current month.
func (h *DashboardHandler) Stats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	totalProperties, err := h.Properties.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to compute stats"})
	}
	activeUsers, err := h.Users.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to compute stats"})
	}
	pendingInquiries, err := h.Inquiries.CountByStatus(ctx, model.InquiryPending)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to compute stats"})
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	revenue, err := h.Properties.RevenueSince(ctx, monthStart)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to compute stats"})
	}

	return c.JSON(http.StatusOK, dashboardStats{
		TotalProperties:  totalProperties,
		ActiveUsers:      activeUsers,
		PendingInquiries: pendingInquiries,
		MonthlyRevenue:   revenue,
	})
}
