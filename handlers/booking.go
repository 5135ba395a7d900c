package handlers

import (
	"net/http"

	"contour/models"
	bookingSvc "contour/services/booking"
	"contour/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking endpoints.
type BookingHandler struct {
	Service bookingSvc.BookingService
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload")
		return
	}

	created, err := h.Service.Create(c.Request.Context(), &booking)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Booking created successfully", created)
}

// GetBooking handles GET /api/bookings/:bookingId.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.Service.Get(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Booking fetched successfully", booking)
}

// ListBookings handles GET /api/bookings. Optional query filters narrow the
// result by payment status and booking status.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	filter := map[string]interface{}{}
	if v := c.Query("paymentStatus"); v != "" {
		filter["paymentStatus"] = v
	}
	if v := c.Query("status"); v != "" {
		filter["status"] = v
	}

	bookings, err := h.Service.List(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Bookings fetched successfully", bookings)
}

// ListBookingsByUser handles GET /api/bookings/user/:userId.
func (h *BookingHandler) ListBookingsByUser(c *gin.Context) {
	bookings, err := h.Service.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Bookings fetched successfully", bookings)
}

// UpdateBooking handles PATCH /api/bookings/:bookingId.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update payload")
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), c.Param("bookingId"), fields)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Booking updated successfully", updated)
}

// UpdatePaymentStatus handles PATCH /api/bookings/payment/:bookingId.
func (h *BookingHandler) UpdatePaymentStatus(c *gin.Context) {
	var body struct {
		PaymentStatus   string  `json:"paymentStatus" binding:"required"`
		PaymentID       string  `json:"paymentId"`
		RemainingAmount float64 `json:"remainingAmount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "paymentStatus is required")
		return
	}

	fields := map[string]interface{}{"paymentStatus": body.PaymentStatus}
	if body.PaymentID != "" {
		fields["paymentId"] = body.PaymentID
	}
	if body.PaymentStatus == models.PaymentSucceeded {
		fields["remainingAmount"] = body.RemainingAmount
	}

	updated, err := h.Service.UpdatePaymentStatus(c.Request.Context(), c.Param("bookingId"), fields)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Payment status updated successfully", updated)
}

// CancelBooking handles PATCH /api/bookings/cancel/:bookingId.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	canceled, err := h.Service.Cancel(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Booking canceled successfully", canceled)
}

// SendInvoice handles POST /api/bookings/sendInvoice/:bookingId.
func (h *BookingHandler) SendInvoice(c *gin.Context) {
	var body struct {
		PDF string `json:"pdf" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "pdf is required")
		return
	}

	if err := h.Service.SendInvoice(c.Request.Context(), c.Param("bookingId"), body.PDF); err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Invoice sent successfully", nil)
}

// DeleteBooking handles DELETE /api/bookings/:bookingId.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("bookingId")); err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Booking deleted successfully", nil)
}

// DeleteBookings handles POST /api/bookings/multiple-delete.
func (h *BookingHandler) DeleteBookings(c *gin.Context) {
	var body idsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "ids is required")
		return
	}

	count, err := h.Service.DeleteMany(c.Request.Context(), body.IDs)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Bookings deleted successfully", gin.H{"deletedCount": count})
}
