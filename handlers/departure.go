package handlers

import (
	"net/http"

	"contour/models"
	departureSvc "contour/services/departure"
	"contour/utils"

	"github.com/gin-gonic/gin"
)

// DepartureHandler exposes the group and private departure endpoints.
type DepartureHandler struct {
	Service departureSvc.DepartureService
}

// CreateGroupDeparture handles POST /api/groupDeparture.
func (h *DepartureHandler) CreateGroupDeparture(c *gin.Context) {
	var dep models.GroupDeparture
	if err := c.ShouldBindJSON(&dep); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid departure payload")
		return
	}

	created, err := h.Service.CreateGroup(c.Request.Context(), &dep)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Group departure created successfully", created)
}

// GetGroupDeparture handles GET /api/groupDeparture/:groupDepartureId.
func (h *DepartureHandler) GetGroupDeparture(c *gin.Context) {
	dep, err := h.Service.GetGroup(c.Request.Context(), c.Param("groupDepartureId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Group departure fetched successfully", dep)
}

// ListGroupDepartures handles GET /api/groupDeparture.
func (h *DepartureHandler) ListGroupDepartures(c *gin.Context) {
	deps, err := h.Service.ListGroup(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Group departures fetched successfully", deps)
}

// ListGroupDeparturesByExpedition handles GET /api/groupDeparture/by-expeditionId/:expeditionId.
func (h *DepartureHandler) ListGroupDeparturesByExpedition(c *gin.Context) {
	deps, err := h.Service.ListGroupByExpedition(c.Request.Context(), c.Param("expeditionId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Group departures fetched successfully", deps)
}

// UpdateGroupDeparture handles PATCH /api/groupDeparture/:groupDepartureId.
// Sold-count edits are rejected here; they go through the sold endpoint.
func (h *DepartureHandler) UpdateGroupDeparture(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update payload")
		return
	}

	updated, err := h.Service.UpdateGroup(c.Request.Context(), c.Param("groupDepartureId"), fields)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Group departure updated successfully", updated)
}

// AddSold handles PATCH /api/groupDeparture/sold/:groupDepartureId.
func (h *DepartureHandler) AddSold(c *gin.Context) {
	var body struct {
		Total int `json:"total" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "total is required")
		return
	}

	updated, err := h.Service.AddSold(c.Request.Context(), c.Param("groupDepartureId"), body.Total)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Sold count updated successfully", updated)
}

// DeleteGroupDeparture handles DELETE /api/groupDeparture/:groupDepartureId.
func (h *DepartureHandler) DeleteGroupDeparture(c *gin.Context) {
	if err := h.Service.DeleteGroup(c.Request.Context(), c.Param("groupDepartureId")); err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Group departure deleted successfully", nil)
}

// DeleteGroupDepartures handles POST /api/groupDeparture/multiple-delete.
func (h *DepartureHandler) DeleteGroupDepartures(c *gin.Context) {
	var body idsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "ids is required")
		return
	}

	count, err := h.Service.DeleteManyGroup(c.Request.Context(), body.IDs)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Group departures deleted successfully", gin.H{"deletedCount": count})
}

// CreatePrivateDeparture handles POST /api/privateDeparture.
func (h *DepartureHandler) CreatePrivateDeparture(c *gin.Context) {
	var dep models.PrivateDeparture
	if err := c.ShouldBindJSON(&dep); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid departure payload")
		return
	}

	created, err := h.Service.CreatePrivate(c.Request.Context(), &dep)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Private departure created successfully", created)
}

// GetPrivateDeparture handles GET /api/privateDeparture/:privateDepartureId.
func (h *DepartureHandler) GetPrivateDeparture(c *gin.Context) {
	dep, err := h.Service.GetPrivate(c.Request.Context(), c.Param("privateDepartureId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Private departure fetched successfully", dep)
}

// ListPrivateDepartures handles GET /api/privateDeparture.
func (h *DepartureHandler) ListPrivateDepartures(c *gin.Context) {
	deps, err := h.Service.ListPrivate(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Private departures fetched successfully", deps)
}

// ListPrivateDeparturesByExpedition handles GET /api/privateDeparture/by-expeditionId/:expeditionId.
func (h *DepartureHandler) ListPrivateDeparturesByExpedition(c *gin.Context) {
	deps, err := h.Service.ListPrivateByExpedition(c.Request.Context(), c.Param("expeditionId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Private departures fetched successfully", deps)
}

// UpdatePrivateDeparture handles PATCH /api/privateDeparture/:privateDepartureId.
func (h *DepartureHandler) UpdatePrivateDeparture(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update payload")
		return
	}

	updated, err := h.Service.UpdatePrivate(c.Request.Context(), c.Param("privateDepartureId"), fields)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Private departure updated successfully", updated)
}

// DeletePrivateDeparture handles DELETE /api/privateDeparture/:privateDepartureId.
func (h *DepartureHandler) DeletePrivateDeparture(c *gin.Context) {
	if err := h.Service.DeletePrivate(c.Request.Context(), c.Param("privateDepartureId")); err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Private departure deleted successfully", nil)
}

// DeletePrivateDepartures handles POST /api/privateDeparture/multiple-delete.
func (h *DepartureHandler) DeletePrivateDepartures(c *gin.Context) {
	var body idsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "ids is required")
		return
	}

	count, err := h.Service.DeleteManyPrivate(c.Request.Context(), body.IDs)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Private departures deleted successfully", gin.H{"deletedCount": count})
}
