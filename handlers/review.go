package handlers

import (
	"net/http"

	"contour/models"
	reviewSvc "contour/services/review"
	"contour/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes the review endpoints.
type ReviewHandler struct {
	Service reviewSvc.ReviewService
}

// CreateReview handles POST /api/reviews.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid review payload")
		return
	}

	created, err := h.Service.Create(c.Request.Context(), &review)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Review created successfully", created)
}

// GetReview handles GET /api/reviews/:reviewId.
func (h *ReviewHandler) GetReview(c *gin.Context) {
	review, err := h.Service.Get(c.Request.Context(), c.Param("reviewId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Review fetched successfully", review)
}

// ListReviews handles GET /api/reviews.
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.Service.ListAll(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Reviews fetched successfully", reviews)
}

// ListReviewsByExpedition handles GET /api/reviews/by-expeditionId/:expeditionId.
func (h *ReviewHandler) ListReviewsByExpedition(c *gin.Context) {
	reviews, err := h.Service.ListByExpedition(c.Request.Context(), c.Param("expeditionId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Reviews fetched successfully", reviews)
}

// UpdateReview handles PATCH /api/reviews/:reviewId.
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update payload")
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), c.Param("reviewId"), fields)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Review updated successfully", updated)
}

// ApproveReview handles PATCH /api/reviews/approve/:reviewId.
func (h *ReviewHandler) ApproveReview(c *gin.Context) {
	var body struct {
		Approved *bool `json:"approved" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "approved is required")
		return
	}

	updated, err := h.Service.Approve(c.Request.Context(), c.Param("reviewId"), *body.Approved)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Review approval updated successfully", updated)
}

// DeleteReview handles DELETE /api/reviews/:reviewId.
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("reviewId")); err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Review deleted successfully", nil)
}

// DeleteReviews handles POST /api/reviews/multiple-delete.
func (h *ReviewHandler) DeleteReviews(c *gin.Context) {
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
	respond(c, http.StatusOK, "Reviews deleted successfully", gin.H{"deletedCount": count})
}
