package handler

import (
	"fmt"
	"net/http"

	"listing-engine/services/listing/helpers"
	"listing-engine/utils"

	"github.com/gin-gonic/gin"
)

// AddUserHandler handles POST /users (admin)
func (h *ListingHandler) AddUserHandler(c *gin.Context) {
	var req helpers.AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddUserHandler", err)
		return
	}

	if err := h.service.AddUser(req.Address, req.Merit); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AddUserHandler: failed to register user", map[string]any{
			"address": req.Address,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"address": req.Address, "merit": req.Merit}, "user registered successfully")
	helpers.LogSuccess("AddUserHandler", "user registered successfully", map[string]any{
		"address": req.Address,
		"merit":   req.Merit,
	})
}

// RemoveUserHandler handles DELETE /users/:address (admin)
func (h *ListingHandler) RemoveUserHandler(c *gin.Context) {
	address := c.Param("address")

	if err := h.service.RemoveUser(address); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RemoveUserHandler: failed to remove user", map[string]any{
			"address": address,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"address": address}, "user removed successfully")
	helpers.LogSuccess("RemoveUserHandler", "user removed successfully", map[string]any{"address": address})
}

// GetUserHandler handles GET /users/:address
func (h *ListingHandler) GetUserHandler(c *gin.Context) {
	address := c.Param("address")

	user, err := h.service.GetUser(address)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "user retrieved successfully")
}
