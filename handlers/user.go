package handlers

import (
	"net/http"

	"contour/models"
	userSvc "contour/services/user"
	"contour/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes account and session endpoints.
type UserHandler struct {
	Service userSvc.UserService
}

// registerRequest carries the self-registration payload. The stored user model
// never deserializes its password field, so the credentials bind here and get
// mapped onto the model explicitly.
type registerRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	FirstName   string `json:"firstName"`
	MiddleName  string `json:"middleName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Gender      string `json:"gender"`
	DOB         string `json:"dob"`
}

// Register handles POST /api/users/register.
func (h *UserHandler) Register(c *gin.Context) {
	var body registerRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid registration payload")
		return
	}

	user := models.User{
		Email:       body.Email,
		Password:    body.Password,
		FirstName:   body.FirstName,
		MiddleName:  body.MiddleName,
		LastName:    body.LastName,
		PhoneNumber: body.PhoneNumber,
		Gender:      body.Gender,
		DOB:         body.DOB,
	}

	resp, err := h.Service.Register(c.Request.Context(), &user)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Account created successfully", resp)
}

// Login handles POST /api/users/login.
func (h *UserHandler) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	resp, err := h.Service.Login(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Logged in successfully", resp)
}

// Revoke handles DELETE /api/users/revoke. It invalidates the caller's own
// session token.
func (h *UserHandler) Revoke(c *gin.Context) {
	token, _ := c.Get("token")
	tokenString, _ := token.(string)
	if tokenString == "" {
		utils.JSONError(c, http.StatusUnauthorized, "No active session")
		return
	}

	if err := h.Service.Revoke(c.Request.Context(), tokenString); err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Session revoked successfully", nil)
}

// GetUser handles GET /api/users/:userId.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.Service.Get(c.Request.Context(), c.Param("userId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "User fetched successfully", user)
}

// ListUsers handles GET /api/users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.Service.ListAll(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Users fetched successfully", users)
}

// UpdateUser handles PATCH /api/users/:userId.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update payload")
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), c.Param("userId"), fields)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "User updated successfully", updated)
}

// DeleteUser handles DELETE /api/users/:userId.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("userId")); err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "User deleted successfully", nil)
}
