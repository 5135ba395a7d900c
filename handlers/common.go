package handlers

import (
	"errors"
	"net/http"

	bookingRepo "contour/database/repository/booking"
	departureRepo "contour/database/repository/departure"
	expeditionRepo "contour/database/repository/expedition"
	faqRepo "contour/database/repository/faq"
	reviewRepo "contour/database/repository/review"
	userRepo "contour/database/repository/user"
	bookingSvc "contour/services/booking"
	departureSvc "contour/services/departure"
	expeditionSvc "contour/services/expedition"
	faqSvc "contour/services/faq"
	reviewSvc "contour/services/review"
	userSvc "contour/services/user"
	"contour/utils"

	"github.com/gin-gonic/gin"
)

// Response is the success envelope every endpoint returns.
type Response struct {
	Status string      `json:"status"`
	Msg    string      `json:"msg"`
	Data   interface{} `json:"data,omitempty"`
}

func respond(c *gin.Context, code int, msg string, data interface{}) {
	c.JSON(code, Response{Status: "success", Msg: msg, Data: data})
}

// handleServiceError maps service and repository errors onto HTTP codes:
// not-found → 404, capacity and validation → 400, bad credentials → 401,
// duplicate email → 409, anything else → 500 without leaking internals.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, bookingRepo.ErrNotFound),
		errors.Is(err, departureRepo.ErrNotFound),
		errors.Is(err, expeditionRepo.ErrNotFound),
		errors.Is(err, faqRepo.ErrNotFound),
		errors.Is(err, reviewRepo.ErrNotFound),
		errors.Is(err, userRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, userSvc.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, err.Error())
		return
	case errors.Is(err, userRepo.ErrDuplicateEmail):
		utils.JSONError(c, http.StatusConflict, err.Error())
		return
	case errors.Is(err, departureRepo.ErrTotalBelowSold):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	var bookingCapErr *bookingSvc.CapacityError
	var departureCapErr *departureSvc.CapacityError
	if errors.As(err, &bookingCapErr) || errors.As(err, &departureCapErr) {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	var bookingValErr *bookingSvc.ValidationError
	var departureValErr *departureSvc.ValidationError
	var expeditionValErr *expeditionSvc.ValidationError
	var faqValErr *faqSvc.ValidationError
	var reviewValErr *reviewSvc.ValidationError
	var userValErr *userSvc.ValidationError
	if errors.As(err, &bookingValErr) || errors.As(err, &departureValErr) ||
		errors.As(err, &expeditionValErr) || errors.As(err, &faqValErr) ||
		errors.As(err, &reviewValErr) || errors.As(err, &userValErr) {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
}

// idsRequest is the body shared by the multiple-delete endpoints.
type idsRequest struct {
	IDs []string `json:"ids" binding:"required"`
}
