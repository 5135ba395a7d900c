package handlers

import (
	"net/http"

	"contour/models"
	expeditionSvc "contour/services/expedition"
	"contour/utils"

	"github.com/gin-gonic/gin"
)

// ExpeditionHandler exposes the expedition catalog endpoints.
type ExpeditionHandler struct {
	Service expeditionSvc.ExpeditionService
}

// CreateExpedition handles POST /api/expeditions.
func (h *ExpeditionHandler) CreateExpedition(c *gin.Context) {
	var exp models.Expedition
	if err := c.ShouldBindJSON(&exp); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid expedition payload")
		return
	}

	created, err := h.Service.Create(c.Request.Context(), &exp)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Expedition created successfully", created)
}

// GetExpedition handles GET /api/expeditions/:expeditionId.
func (h *ExpeditionHandler) GetExpedition(c *gin.Context) {
	exp, err := h.Service.Get(c.Request.Context(), c.Param("expeditionId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Expedition fetched successfully", exp)
}

// GetExpeditionBySlug handles GET /api/expeditions/slug/:slug.
func (h *ExpeditionHandler) GetExpeditionBySlug(c *gin.Context) {
	exp, err := h.Service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Expedition fetched successfully", exp)
}

// ListExpeditions handles GET /api/expeditions.
func (h *ExpeditionHandler) ListExpeditions(c *gin.Context) {
	exps, err := h.Service.ListAll(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Expeditions fetched successfully", exps)
}

// UpdateExpedition handles PATCH /api/expeditions/:expeditionId.
func (h *ExpeditionHandler) UpdateExpedition(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update payload")
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), c.Param("expeditionId"), fields)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Expedition updated successfully", updated)
}

// DeleteExpedition handles DELETE /api/expeditions/:expeditionId.
func (h *ExpeditionHandler) DeleteExpedition(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("expeditionId")); err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Expedition deleted successfully", nil)
}

// DeleteExpeditions handles POST /api/expeditions/multiple-delete.
func (h *ExpeditionHandler) DeleteExpeditions(c *gin.Context) {
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
	respond(c, http.StatusOK, "Expeditions deleted successfully", gin.H{"deletedCount": count})
}
