package handlers

import (
	"net/http"

	"contour/models"
	faqSvc "contour/services/faq"
	"contour/utils"

	"github.com/gin-gonic/gin"
)

// FaqHandler exposes the FAQ endpoints.
type FaqHandler struct {
	Service faqSvc.FaqService
}

// CreateFaq handles POST /api/faq.
func (h *FaqHandler) CreateFaq(c *gin.Context) {
	var faq models.Faq
	if err := c.ShouldBindJSON(&faq); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid FAQ payload")
		return
	}

	created, err := h.Service.Create(c.Request.Context(), &faq)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusCreated, "FAQ created successfully", created)
}

// GetFaq handles GET /api/faq/:faqId.
func (h *FaqHandler) GetFaq(c *gin.Context) {
	faq, err := h.Service.Get(c.Request.Context(), c.Param("faqId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "FAQ fetched successfully", faq)
}

// ListFaqs handles GET /api/faq.
func (h *FaqHandler) ListFaqs(c *gin.Context) {
	faqs, err := h.Service.ListAll(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "FAQs fetched successfully", faqs)
}

// ListFaqsByExpedition handles GET /api/faq/by-expeditionId/:expeditionId.
func (h *FaqHandler) ListFaqsByExpedition(c *gin.Context) {
	faqs, err := h.Service.ListByExpedition(c.Request.Context(), c.Param("expeditionId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "FAQs fetched successfully", faqs)
}

// UpdateFaq handles PATCH /api/faq/:faqId.
func (h *FaqHandler) UpdateFaq(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update payload")
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), c.Param("faqId"), fields)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "FAQ updated successfully", updated)
}

// SwapFaqOrder handles POST /api/faq/swap-order.
func (h *FaqHandler) SwapFaqOrder(c *gin.Context) {
	var body struct {
		ID1 string `json:"id1" binding:"required"`
		ID2 string `json:"id2" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "id1 and id2 are required")
		return
	}

	if err := h.Service.SwapOrder(c.Request.Context(), body.ID1, body.ID2); err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "FAQ order swapped successfully", nil)
}

// DeleteFaq handles DELETE /api/faq/:faqId.
func (h *FaqHandler) DeleteFaq(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("faqId")); err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "FAQ deleted successfully", nil)
}

// DeleteFaqs handles POST /api/faq/multiple-delete.
func (h *FaqHandler) DeleteFaqs(c *gin.Context) {
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
	respond(c, http.StatusOK, "FAQs deleted successfully", gin.H{"deletedCount": count})
}
