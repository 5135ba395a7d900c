package handlers

import (
	"net/http"
	"time"

	statsSvc "contour/services/stats"
	"contour/utils"

	"github.com/gin-gonic/gin"
)

// StatsHandler exposes the reporting endpoints.
type StatsHandler struct {
	Service statsSvc.StatsService
}

// statsWindow is the date-range body shared by the stats endpoints. Both
// bounds are optional; an open bound means "everything" on that side.
type statsWindow struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Overview handles POST /api/stats/overview.
func (h *StatsHandler) Overview(c *gin.Context) {
	var body statsWindow
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date range payload")
		return
	}

	overview, err := h.Service.Overview(c.Request.Context(), body.StartDate, body.EndDate)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Overview fetched successfully", overview)
}

// PaymentBreakdown handles POST /api/stats/payments.
func (h *StatsHandler) PaymentBreakdown(c *gin.Context) {
	var body statsWindow
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date range payload")
		return
	}

	breakdown, err := h.Service.PaymentBreakdown(c.Request.Context(), body.StartDate, body.EndDate)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Payment breakdown fetched successfully", breakdown)
}
