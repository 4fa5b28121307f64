package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodiesbnb/foodiesbnb-api/internal/httperr"
	"github.com/foodiesbnb/foodiesbnb-api/internal/identity"
	"github.com/foodiesbnb/foodiesbnb-api/internal/middleware"
	"github.com/foodiesbnb/foodiesbnb-api/internal/models"
)

type MeHandler struct {
	identity *identity.Service
}

func NewMeHandler(svc *identity.Service) *MeHandler {
	return &MeHandler{identity: svc}
}

func actingUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return "", false
	}
	id, ok := v.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_user_id_type"})
		return "", false
	}
	return id, true
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	user, err := h.identity.UserByID(c.Request.Context(), userID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

type UpdateProfileRequest struct {
	FullName       *string                `json:"fullName"`
	Phone          *string                `json:"phone"`
	Bio            *string                `json:"bio"`
	Preferences    []string               `json:"preferences"`
	RestaurantInfo *models.RestaurantInfo `json:"restaurantInfo"`
}

func (h *MeHandler) UpdateProfile(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	user, err := h.identity.UpdateProfile(c.Request.Context(), userID, identity.ProfileUpdate{
		FullName:       req.FullName,
		Phone:          req.Phone,
		Bio:            req.Bio,
		Preferences:    req.Preferences,
		RestaurantInfo: req.RestaurantInfo,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

func (h *MeHandler) ChangePassword(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if err := h.identity.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "password_changed"})
}
